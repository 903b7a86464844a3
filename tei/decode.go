package tei

import (
	"encoding/xml"
	"fmt"
	"os"
)

// decodeFile unmarshals one record-set file into v. Any failure is
// fatal to the conversion, so errors carry the path.
func decodeFile(path string, v any) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if err := xml.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// DecodePeople reads the person record set.
func DecodePeople(path string) (*People, error) {
	var doc People
	if err := decodeFile(path, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DecodePlaces reads the place record set.
func DecodePlaces(path string) (*Places, error) {
	var doc Places
	if err := decodeFile(path, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DecodeTexts reads the text record set.
func DecodeTexts(path string) (*Texts, error) {
	var doc Texts
	if err := decodeFile(path, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DecodeLibraries reads the library record set.
func DecodeLibraries(path string) (*Libraries, error) {
	var doc Libraries
	if err := decodeFile(path, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DecodeManuscripts reads the compiled manuscript descriptions.
func DecodeManuscripts(path string) (*Manuscripts, error) {
	var doc Manuscripts
	if err := decodeFile(path, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
