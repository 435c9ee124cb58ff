package profile

import (
	"fmt"
	"net/url"
	"unicode/utf8"
)

// MaxNameLength is the longest scientific name a profile can keep.
const MaxNameLength = 255

// ValidationError is returned when a profile breaks a constraint of the
// storage.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// Validate checks the profile before it is saved and returns all the
// problems found, in order of the profile fields.
func (p *Profile) Validate() []error {
	var res []error
	if p.OpusID == "" {
		res = append(res, &ValidationError{Field: "opus", Msg: "is required"})
	}
	if p.ScientificName == "" {
		res = append(res,
			&ValidationError{Field: "scientificName", Msg: "is required"})
	}
	if utf8.RuneCountInString(p.ScientificName) > MaxNameLength {
		res = append(res, &ValidationError{
			Field: "scientificName",
			Msg:   fmt.Sprintf("is longer than %d characters", MaxNameLength),
		})
	}
	for i, v := range p.Attributes {
		if v.Title.ID == "" {
			res = append(res, &ValidationError{
				Field: fmt.Sprintf("attributes[%d].title", i),
				Msg:   "has no vocabulary term",
			})
		}
		if v.Text == "" {
			res = append(res, &ValidationError{
				Field: fmt.Sprintf("attributes[%d].text", i),
				Msg:   "is empty",
			})
		}
	}
	res = append(res, validateLinks("links", p.Links)...)
	res = append(res, validateLinks("bhl", p.BHLLinks)...)
	return res
}

func validateLinks(field string, ll []Link) []error {
	var res []error
	for i, v := range ll {
		if v.URL == "" {
			continue
		}
		u, err := url.Parse(v.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			res = append(res, &ValidationError{
				Field: fmt.Sprintf("%s[%d].url", field, i),
				Msg:   fmt.Sprintf("'%s' is not a valid URL", v.URL),
			})
		}
	}
	return res
}
