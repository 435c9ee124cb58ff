package importer

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/gnames/gnprofiles/pkg/ent/profile"
	"github.com/gnames/gnprofiles/pkg/textclean"
	"github.com/google/uuid"
)

// AuthorCategory is the authorship category given to creators of
// attributes when a record has no explicit authorship.
const AuthorCategory = "Author"

// buildJob carries read-only data of a run shared by all build workers.
type buildJob struct {
	opus  *profile.Opus
	lk    *lookups
	first map[string]int
}

// importRecord decides the outcome of one record and persists a new
// profile when the record is importable. It returns a key of the result
// map and the outcome.
func (imp *Importer) importRecord(
	ctx context.Context,
	job *buildJob,
	idx int,
	rec *profile.ImportRecord,
) (key, outcome string) {
	name := rec.ScientificName
	if name == "" {
		return profile.RowKey(idx), profile.Failed(profile.MissingNameMsg)
	}
	if job.first[name] != idx {
		return profile.DuplicateKey(name, idx), profile.AlreadyExists
	}

	existing, err := imp.store.FindProfile(ctx, job.opus.ID, name)
	if err != nil {
		return name, profile.Failed(err.Error())
	}
	if existing != nil {
		return name, profile.AlreadyExists
	}

	p, err := imp.buildProfile(ctx, job, rec)
	if err != nil {
		return name, profile.Failed(err.Error())
	}

	if errs := p.Validate(); len(errs) > 0 {
		return name, profile.Failed(errs[0].Error())
	}

	if err = imp.store.SaveProfile(ctx, p); err != nil {
		var vErr *profile.ValidationError
		if errors.As(err, &vErr) {
			return name, profile.Failed(vErr.Error())
		}
		return name, profile.Failed(err.Error())
	}

	if p.Matched() {
		return name, profile.Success
	}
	return name, profile.SuccessUnmatched
}

// buildProfile creates a new profile from a record. Only collaborator
// errors are returned, missing reference data makes the builder skip
// the entries that need it.
func (imp *Importer) buildProfile(
	ctx context.Context,
	job *buildJob,
	rec *profile.ImportRecord,
) (*profile.Profile, error) {
	name := rec.ScientificName
	p := &profile.Profile{
		ID:             uuid.NewString(),
		OpusID:         job.opus.ID,
		ScientificName: name,
		NameAuthor:     rec.NameAuthor,
		CreatedAt:      time.Now(),
	}

	if imp.parser != nil {
		parsed := imp.parser.Parse(name, job.opus.Code)
		if parsed.Parsed {
			p.Canonical = parsed.Canonical
			if p.NameAuthor == "" {
				p.NameAuthor = parsed.Authorship
			}
		}
	}
	p.FullName = fullName(name, p.NameAuthor)

	if err := imp.match(ctx, p); err != nil {
		return nil, err
	}

	p.Links = buildLinks(name, "link creator", rec.Links, job.lk)
	p.BHLLinks = buildLinks(name, "bhl creator", rec.BHLLinks, job.lk)

	var creators []string
	seen := make(map[string]struct{})
	for _, v := range rec.Attributes {
		attr, ok := buildAttribute(name, v, job.lk)
		if !ok {
			continue
		}
		for _, c := range attr.Creators {
			if _, ok := seen[c.ID]; ok {
				continue
			}
			seen[c.ID] = struct{}{}
			creators = append(creators, c.Name)
		}
		p.Attributes = append(p.Attributes, attr)
	}

	p.Authorship = buildAuthorship(rec.Authorship, creators)
	return p, nil
}

// match finds the taxon of the profile's name. A name without a match
// leaves the profile unmatched.
func (imp *Importer) match(ctx context.Context, p *profile.Profile) error {
	guid, err := imp.names.ResolveScientificName(ctx, p.ScientificName)
	if err != nil {
		return err
	}
	if guid == "" {
		slog.Debug("Name has no match", "scientific_name", p.ScientificName)
		return nil
	}
	p.GUID = guid

	p.NomenclatureID, err = imp.names.ResolveNomenclatureIdentifier(ctx, guid)
	if err != nil {
		return err
	}

	p.Classification, err = imp.classifier.FetchClassification(ctx, guid)
	if err != nil {
		return err
	}
	if l := len(p.Classification); l > 0 {
		p.Rank = p.Classification[l-1].Rank
	}
	return nil
}

func buildAttribute(
	name string,
	in profile.AttributeInput,
	lk *lookups,
) (profile.Attribute, bool) {
	var res profile.Attribute
	label := strings.TrimSpace(in.Title)
	if label == "" || strings.TrimSpace(in.Text) == "" {
		return res, false
	}

	term, ok := lk.terms[label]
	if !ok {
		slog.Warn("Vocabulary term is not available, skipping attribute",
			"scientific_name", name,
			"term", label,
		)
		return res, false
	}

	text := in.Text
	if in.StripHTML {
		text = textclean.StripHTML(text)
	}
	if strings.TrimSpace(text) == "" {
		return res, false
	}

	res = profile.Attribute{
		ID:       uuid.NewString(),
		Title:    term,
		Text:     text,
		Creators: lk.resolveContributors(name, "creator", in.Creators),
		Editors:  lk.resolveContributors(name, "editor", in.Editors),
	}
	return res, true
}

func buildLinks(
	name, role string,
	ll []profile.LinkInput,
	lk *lookups,
) []profile.Link {
	var res []profile.Link
	for _, v := range ll {
		url := strings.TrimSpace(v.URL)
		title := strings.TrimSpace(v.Title)
		if url == "" && title == "" {
			continue
		}
		res = append(res, profile.Link{
			ID:          uuid.NewString(),
			URL:         url,
			Title:       title,
			Description: strings.TrimSpace(v.Description),
			Creators:    lk.resolveContributors(name, role, v.Creators),
		})
	}
	return res
}

func buildAuthorship(
	explicit []profile.AuthorshipInput,
	creators []string,
) []profile.Authorship {
	var res []profile.Authorship
	for _, v := range explicit {
		if v.Category == "" && v.Text == "" {
			continue
		}
		res = append(res, profile.Authorship{Category: v.Category, Text: v.Text})
	}
	if len(res) > 0 || len(creators) == 0 {
		return res
	}
	return []profile.Authorship{
		{Category: AuthorCategory, Text: strings.Join(creators, ", ")},
	}
}

// fullName joins a scientific name with its authorship, unless the name
// already ends with it.
func fullName(name, author string) string {
	if author == "" || strings.HasSuffix(name, author) {
		return name
	}
	return name + " " + author
}
