package profile

import "time"

// Profile is the record of one taxonomic entity within an opus.
type Profile struct {
	ID     string `json:"id"`
	OpusID string `json:"opusId"`

	// ScientificName as it was given on import.
	ScientificName string `json:"scientificName"`

	// NameAuthor is the authorship of the scientific name.
	NameAuthor string `json:"nameAuthor,omitempty"`

	// FullName is the scientific name with its authorship.
	FullName string `json:"fullName"`

	// Canonical is the simple canonical form of the name.
	Canonical string `json:"canonical,omitempty"`

	// GUID is the identifier of the matched taxonomic record.
	// Empty GUID means the name was not matched.
	GUID string `json:"guid,omitempty"`

	// NomenclatureID identifies the matched name in a nomenclator.
	NomenclatureID string `json:"nomenclatureId,omitempty"`

	// Rank of the matched taxon.
	Rank string `json:"rank,omitempty"`

	// Classification of the matched taxon from the highest rank down.
	Classification []Taxon `json:"classification,omitempty"`

	Attributes []Attribute  `json:"attributes,omitempty"`
	Links      []Link       `json:"links,omitempty"`
	BHLLinks   []Link       `json:"bhlLinks,omitempty"`
	Authorship []Authorship `json:"authorship,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// Matched returns true if the profile's name was matched to a taxon.
func (p *Profile) Matched() bool {
	return p.GUID != ""
}

// Contributors returns all distinct contributors the profile refers to,
// in order of appearance.
func (p *Profile) Contributors() []Contributor {
	seen := make(map[string]struct{})
	var res []Contributor
	add := func(cc []Contributor) {
		for _, c := range cc {
			if _, ok := seen[c.ID]; ok {
				continue
			}
			seen[c.ID] = struct{}{}
			res = append(res, c)
		}
	}
	for _, v := range p.Attributes {
		add(v.Creators)
		add(v.Editors)
	}
	for _, v := range p.Links {
		add(v.Creators)
	}
	for _, v := range p.BHLLinks {
		add(v.Creators)
	}
	return res
}

// Taxon is an element of a classification.
type Taxon struct {
	Rank           string `json:"rank"`
	GUID           string `json:"guid"`
	ScientificName string `json:"scientificName"`
}

// Attribute is a categorized narrative fact about a profile.
type Attribute struct {
	ID       string        `json:"id"`
	Title    Term          `json:"title"`
	Text     string        `json:"text"`
	Creators []Contributor `json:"creators,omitempty"`
	Editors  []Contributor `json:"editors,omitempty"`
}

// Link is an external link or a bibliographic-history link.
type Link struct {
	ID          string        `json:"id"`
	URL         string        `json:"url"`
	Title       string        `json:"title,omitempty"`
	Description string        `json:"description,omitempty"`
	Creators    []Contributor `json:"creators,omitempty"`
}

// Authorship credits a category of contribution to a profile.
type Authorship struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}
