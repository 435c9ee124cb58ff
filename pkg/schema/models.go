// Package schema provides database schema models for GNprofiles.
// Tables are created and updated by GORM AutoMigrate, stores access
// them with plain SQL.
package schema

import "time"

// Opus is a collection of profiles.
type Opus struct {
	// ID is a UUID of the opus.
	ID string `gorm:"type:uuid;primaryKey"`

	// Title is a human-readable name of the collection.
	Title string `gorm:"type:varchar(255);not null"`

	// DataResourceID identifies the data resource of the collection.
	DataResourceID string `gorm:"type:varchar(255);index"`

	// AttributeVocabID points to the vocabulary of attribute titles.
	AttributeVocabID string `gorm:"type:uuid;not null"`

	// Code is a nomenclatural code for parsing names of the collection.
	Code string `gorm:"type:varchar(20);not null;default:botanical"`

	CreatedAt time.Time
}

// TableName returns the PostgreSQL table name for this model.
func (Opus) TableName() string { return "opuses" }

// Vocabulary is a named set of terms.
type Vocabulary struct {
	ID   string `gorm:"type:uuid;primaryKey"`
	Name string `gorm:"type:varchar(255);not null"`
}

// TableName returns the PostgreSQL table name for this model.
func (Vocabulary) TableName() string { return "vocabularies" }

// Term is a label of a vocabulary. Names are unique within a
// vocabulary.
type Term struct {
	ID      string `gorm:"type:uuid;primaryKey"`
	VocabID string `gorm:"type:uuid;not null;uniqueIndex:idx_terms_vocab_name"`
	Name    string `gorm:"type:varchar(255);not null;uniqueIndex:idx_terms_vocab_name"`
}

// TableName returns the PostgreSQL table name for this model.
func (Term) TableName() string { return "terms" }

// Contributor is a creator or an editor of profile content.
// Names are unique and kept in a cleaned form.
type Contributor struct {
	ID             string `gorm:"type:uuid;primaryKey"`
	Name           string `gorm:"type:varchar(255);not null;uniqueIndex"`
	DataResourceID string `gorm:"type:varchar(255)"`
}

// TableName returns the PostgreSQL table name for this model.
func (Contributor) TableName() string { return "contributors" }

// Profile is a taxon page of an opus. A scientific name can occur only
// once in an opus.
type Profile struct {
	ID             string `gorm:"type:uuid;primaryKey"`
	OpusID         string `gorm:"type:uuid;not null;uniqueIndex:idx_profiles_opus_name"`
	ScientificName string `gorm:"type:varchar(255);not null;uniqueIndex:idx_profiles_opus_name"`
	NameAuthor     string `gorm:"type:varchar(255)"`
	FullName       string `gorm:"type:varchar(512)"`
	Canonical      string `gorm:"type:varchar(255);index"`

	// GUID of the matched taxon, empty for unmatched names.
	GUID           string `gorm:"type:varchar(255);index"`
	NomenclatureID string `gorm:"type:varchar(255)"`
	Rank           string `gorm:"type:varchar(50)"`
	CreatedAt      time.Time
}

// TableName returns the PostgreSQL table name for this model.
func (Profile) TableName() string { return "profiles" }

// Classification is a node of a profile's classification. Position 0
// is the highest rank.
type Classification struct {
	ProfileID      string `gorm:"type:uuid;primaryKey"`
	Position       int    `gorm:"primaryKey;autoIncrement:false"`
	Rank           string `gorm:"type:varchar(50)"`
	GUID           string `gorm:"type:varchar(255)"`
	ScientificName string `gorm:"type:varchar(255)"`
}

// TableName returns the PostgreSQL table name for this model.
func (Classification) TableName() string { return "classifications" }

// Attribute is a titled text of a profile.
type Attribute struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	ProfileID string `gorm:"type:uuid;not null;index"`
	TermID    string `gorm:"type:uuid;not null;index"`
	Position  int    `gorm:"not null"`
	Text      string `gorm:"type:text;not null"`
}

// TableName returns the PostgreSQL table name for this model.
func (Attribute) TableName() string { return "attributes" }

// AttributeCreator connects an attribute to its creator.
type AttributeCreator struct {
	AttributeID   string `gorm:"type:uuid;primaryKey"`
	ContributorID string `gorm:"type:uuid;primaryKey;index"`
}

// TableName returns the PostgreSQL table name for this model.
func (AttributeCreator) TableName() string { return "attribute_creators" }

// AttributeEditor connects an attribute to its editor.
type AttributeEditor struct {
	AttributeID   string `gorm:"type:uuid;primaryKey"`
	ContributorID string `gorm:"type:uuid;primaryKey;index"`
}

// TableName returns the PostgreSQL table name for this model.
func (AttributeEditor) TableName() string { return "attribute_editors" }

// Link is an external or a bibliographic-history link of a profile.
type Link struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	ProfileID string `gorm:"type:uuid;not null;index"`

	// Kind is LinkKindExternal or LinkKindBHL.
	Kind        string `gorm:"type:varchar(10);not null"`
	Position    int    `gorm:"not null"`
	URL         string `gorm:"type:text"`
	Title       string `gorm:"type:text"`
	Description string `gorm:"type:text"`
}

// TableName returns the PostgreSQL table name for this model.
func (Link) TableName() string { return "links" }

// Kinds of links.
const (
	LinkKindExternal = "link"
	LinkKindBHL      = "bhl"
)

// LinkCreator connects a link to its creator.
type LinkCreator struct {
	LinkID        string `gorm:"type:uuid;primaryKey"`
	ContributorID string `gorm:"type:uuid;primaryKey;index"`
}

// TableName returns the PostgreSQL table name for this model.
func (LinkCreator) TableName() string { return "link_creators" }

// Authorship credits a category of contribution to a profile.
type Authorship struct {
	ProfileID string `gorm:"type:uuid;primaryKey"`
	Position  int    `gorm:"primaryKey;autoIncrement:false"`
	Category  string `gorm:"type:varchar(100)"`
	Text      string `gorm:"type:text"`
}

// TableName returns the PostgreSQL table name for this model.
func (Authorship) TableName() string { return "authorships" }
