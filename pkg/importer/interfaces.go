package importer

import (
	"context"

	"github.com/gnames/gnprofiles/pkg/ent/profile"
)

// Lookups of the stores return nil and no error when nothing is found.

// OpusStore provides access to opuses.
type OpusStore interface {
	// FindOpus returns an opus by its ID.
	FindOpus(ctx context.Context, id string) (*profile.Opus, error)

	// CreateOpus saves a new opus. Empty ID is replaced by a new UUID.
	CreateOpus(ctx context.Context, o *profile.Opus) error
}

// TermStore provides get-or-create access to vocabulary terms.
type TermStore interface {
	// FindTerm returns the term with the label within a vocabulary.
	FindTerm(ctx context.Context, vocabID, label string) (*profile.Term, error)

	// CreateTerm persists a new term and returns it.
	CreateTerm(ctx context.Context, vocabID, label string) (*profile.Term, error)
}

// ContributorStore provides get-or-create access to contributors.
type ContributorStore interface {
	// FindContributor returns a contributor by its cleaned name.
	FindContributor(ctx context.Context, name string) (*profile.Contributor, error)

	// CreateContributor makes a new contributor without saving it.
	// The contributor is saved together with the first profile that
	// refers to it.
	CreateContributor(
		ctx context.Context,
		name, dataResourceID string,
	) (*profile.Contributor, error)

	// SaveContributor persists a contributor. Saving an already existing
	// contributor is not an error.
	SaveContributor(ctx context.Context, c *profile.Contributor) error
}

// ProfileStore provides access to profiles.
type ProfileStore interface {
	// FindProfile returns a profile of an opus by its scientific name.
	FindProfile(
		ctx context.Context,
		opusID, scientificName string,
	) (*profile.Profile, error)

	// SaveProfile persists a profile with its attributes, links and
	// authorship, together with contributors it refers to, in one
	// transaction. Broken constraints are reported as
	// *profile.ValidationError.
	SaveProfile(ctx context.Context, p *profile.Profile) error
}

// Store combines all stores the import needs.
type Store interface {
	OpusStore
	TermStore
	ContributorStore
	ProfileStore
}

// NameResolver matches scientific names to taxonomic records.
type NameResolver interface {
	// ResolveScientificName returns GUID of the best match for a name.
	// Empty string means there is no match.
	ResolveScientificName(ctx context.Context, name string) (string, error)

	// ResolveNomenclatureIdentifier returns the nomenclator identifier of
	// the name matched to the GUID.
	ResolveNomenclatureIdentifier(ctx context.Context, guid string) (string, error)
}

// Classifier provides a classification of a matched taxon.
type Classifier interface {
	// FetchClassification returns taxa from the highest rank down to the
	// taxon with the GUID.
	FetchClassification(ctx context.Context, guid string) ([]profile.Taxon, error)
}
