package convert

import (
	"encoding/hex"

	"github.com/google/uuid"

	"github.com/sudhansu1991/MIrA/helpers"
	"github.com/sudhansu1991/MIrA/rdf"
	"github.com/sudhansu1991/MIrA/wikidata"
)

// localIRI mints a catalogue-local IRI for an entity, e.g.
// mira:manuscript/MS_23_E_25.
func localIRI(kind, key string) rdf.IRI {
	return rdf.IRI(wikidata.MiraNS + kind + "/" + helpers.SafeID(key))
}

// subjectFor applies the subject resolution rule: the external Wikidata
// entity when a QID is known, the local IRI otherwise. External
// identifiers are never minted locally and local ones never fabricated
// externally.
func subjectFor(kind, key, qid string) rdf.IRI {
	if qid != "" {
		return wikidata.Entity(qid)
	}
	return localIRI(kind, key)
}

// syntheticID mints a random identifier for records that carry none,
// e.g. "ms_1a2b3c4d". The only nondeterministic path in a conversion.
func syntheticID(prefix string) string {
	u := uuid.New()
	return prefix + "_" + hex.EncodeToString(u[:])[:8]
}
