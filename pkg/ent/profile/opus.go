// Package profile contains entities of the species-profile domain: opuses
// (collections of profiles), profiles, their attributes and links, and the
// reference data (vocabulary terms, contributors) attributes point to.
// It also describes records of an import batch and outcomes of their import.
package profile

// NomCode is a nomenclatural code used to parse scientific names of an opus.
type NomCode string

const (
	Botanical  NomCode = "botanical"
	Zoological NomCode = "zoological"
)

// NewNomCode converts a string to a NomCode. Unknown values become
// Botanical, the code that tolerates the widest range of name forms.
func NewNomCode(s string) NomCode {
	switch NomCode(s) {
	case Zoological:
		return Zoological
	default:
		return Botanical
	}
}

// Opus is a named collection of profiles that share configuration.
type Opus struct {
	// ID is a UUID of the opus.
	ID string `json:"id"`

	// Title of the collection.
	Title string `json:"title"`

	// DataResourceID identifies the data resource the collection belongs
	// to. New contributors carry it as their origin.
	DataResourceID string `json:"dataResourceId"`

	// AttributeVocabID is the vocabulary that holds attribute titles.
	AttributeVocabID string `json:"attributeVocabId"`

	// Code is the nomenclatural code for parsing scientific names.
	Code NomCode `json:"code"`
}
