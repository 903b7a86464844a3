package rdf

// Prefix is one namespace binding for serialization.
type Prefix struct {
	Name      string
	Namespace string
}

// Graph is an append-only triple collection with set semantics: adding a
// structurally identical triple twice stores it once. Insertion order is
// preserved so serialization is deterministic.
type Graph struct {
	prefixes []Prefix
	triples  []Triple
	seen     map[Triple]struct{}
}

// NewGraph returns an empty graph with no prefix bindings.
func NewGraph() *Graph {
	return &Graph{seen: make(map[Triple]struct{})}
}

// Bind registers a namespace prefix for serialization. Rebinding an
// existing prefix name replaces its namespace.
func (g *Graph) Bind(name, namespace string) {
	for i, p := range g.prefixes {
		if p.Name == name {
			g.prefixes[i].Namespace = namespace
			return
		}
	}
	g.prefixes = append(g.prefixes, Prefix{Name: name, Namespace: namespace})
}

// Prefixes returns the bindings in bind order.
func (g *Graph) Prefixes() []Prefix {
	return g.prefixes
}

// Add appends one triple. Duplicates are dropped.
func (g *Graph) Add(s, p IRI, o Term) {
	t := Triple{Subject: s, Predicate: p, Object: o}
	if _, ok := g.seen[t]; ok {
		return
	}
	g.seen[t] = struct{}{}
	g.triples = append(g.triples, t)
}

// Len reports the number of distinct triples.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples returns the triples in insertion order.
func (g *Graph) Triples() []Triple {
	return g.triples
}
