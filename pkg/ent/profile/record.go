package profile

import "strings"

// ImportRecord is one element of an import batch.
type ImportRecord struct {
	ScientificName string            `json:"scientificName" yaml:"scientificName"`
	NameAuthor     string            `json:"nameAuthor"     yaml:"nameAuthor"`
	Attributes     []AttributeInput  `json:"attributes"     yaml:"attributes"`
	Links          []LinkInput       `json:"links"          yaml:"links"`
	BHLLinks       []LinkInput       `json:"bhl"            yaml:"bhl"`
	Authorship     []AuthorshipInput `json:"authorship"     yaml:"authorship"`
}

// AttributeInput is an attribute of an import record.
type AttributeInput struct {
	Title     string   `json:"title"    yaml:"title"`
	Text      string   `json:"text"     yaml:"text"`
	StripHTML bool     `json:"stripHtml" yaml:"stripHtml"`
	Creators  []string `json:"creators" yaml:"creators"`
	Editors   []string `json:"editors"  yaml:"editors"`
}

// LinkInput is an external or a bibliographic-history link of an import
// record.
type LinkInput struct {
	URL         string   `json:"url"         yaml:"url"`
	Title       string   `json:"title"       yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Creators    []string `json:"creators"    yaml:"creators"`
}

// AuthorshipInput is an explicit authorship entry of an import record.
type AuthorshipInput struct {
	Category string `json:"category" yaml:"category"`
	Text     string `json:"text"     yaml:"text"`
}

// Normalize trims whitespace around scalar fields of the record and removes
// empty entries from its lists. Lists are rebuilt, so a shallow copy of a
// record can be normalized without changing the original.
func (r *ImportRecord) Normalize() {
	r.ScientificName = strings.TrimSpace(r.ScientificName)
	r.NameAuthor = strings.TrimSpace(r.NameAuthor)

	var attrs []AttributeInput
	for _, v := range r.Attributes {
		v.Title = strings.TrimSpace(v.Title)
		v.Creators = compactNames(v.Creators)
		v.Editors = compactNames(v.Editors)
		if v.Title == "" && strings.TrimSpace(v.Text) == "" {
			continue
		}
		attrs = append(attrs, v)
	}
	r.Attributes = attrs
	r.Links = compactLinks(r.Links)
	r.BHLLinks = compactLinks(r.BHLLinks)

	var auths []AuthorshipInput
	for _, v := range r.Authorship {
		v.Category = strings.TrimSpace(v.Category)
		v.Text = strings.TrimSpace(v.Text)
		if v.Category == "" && v.Text == "" {
			continue
		}
		auths = append(auths, v)
	}
	r.Authorship = auths
}

func compactLinks(ll []LinkInput) []LinkInput {
	var res []LinkInput
	for _, v := range ll {
		v.URL = strings.TrimSpace(v.URL)
		v.Title = strings.TrimSpace(v.Title)
		v.Description = strings.TrimSpace(v.Description)
		v.Creators = compactNames(v.Creators)
		if v.URL == "" && v.Title == "" {
			continue
		}
		res = append(res, v)
	}
	return res
}

func compactNames(ss []string) []string {
	var res []string
	for _, v := range ss {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		res = append(res, v)
	}
	return res
}
