package iostore

import (
	"context"
	"slices"
	"strings"

	"github.com/gnames/gnprofiles/pkg/ent/profile"
	"github.com/gnames/gnprofiles/pkg/schema"
	"github.com/jackc/pgx/v5"
)

// SaveProfile saves a profile with its classification, attributes,
// links and authorship in one transaction. Contributors the profile
// refers to are saved first, unless they exist.
func (s *Store) SaveProfile(ctx context.Context, p *profile.Profile) error {
	// Contributors are inserted in ID order, so concurrent saves that share
	// contributors lock their rows in the same order.
	cs := p.Contributors()
	slices.SortFunc(cs, func(a, b profile.Contributor) int {
		return strings.Compare(a.ID, b.ID)
	})
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		for _, c := range cs {
			if err := saveContributor(ctx, tx, &c); err != nil {
				return err
			}
		}
		return tx.SendBatch(ctx, profileBatch(p)).Close()
	})
	if err == nil {
		return nil
	}
	if vErr, ok := validationError(err); ok {
		return vErr
	}
	return ProfileError(p.ScientificName, err)
}

// profileBatch queues inserts of all rows of a profile.
func profileBatch(p *profile.Profile) *pgx.Batch {
	b := &pgx.Batch{}
	b.Queue(`
INSERT INTO profiles
	(id, opus_id, scientific_name, name_author, full_name, canonical,
	 guid, nomenclature_id, rank, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.OpusID, p.ScientificName, p.NameAuthor, p.FullName,
		p.Canonical, p.GUID, p.NomenclatureID, p.Rank, p.CreatedAt,
	)

	for i, v := range p.Classification {
		b.Queue(`
INSERT INTO classifications
	(profile_id, position, rank, guid, scientific_name)
	VALUES ($1, $2, $3, $4, $5)`,
			p.ID, i, v.Rank, v.GUID, v.ScientificName,
		)
	}

	for i, v := range p.Attributes {
		b.Queue(`
INSERT INTO attributes (id, profile_id, term_id, position, text)
	VALUES ($1, $2, $3, $4, $5)`,
			v.ID, p.ID, v.Title.ID, i, v.Text,
		)
		for _, c := range v.Creators {
			b.Queue(`
INSERT INTO attribute_creators (attribute_id, contributor_id)
	VALUES ($1, $2)`, v.ID, c.ID)
		}
		for _, c := range v.Editors {
			b.Queue(`
INSERT INTO attribute_editors (attribute_id, contributor_id)
	VALUES ($1, $2)`, v.ID, c.ID)
		}
	}

	queueLinks(b, p.ID, schema.LinkKindExternal, p.Links)
	queueLinks(b, p.ID, schema.LinkKindBHL, p.BHLLinks)

	for i, v := range p.Authorship {
		b.Queue(`
INSERT INTO authorships (profile_id, position, category, text)
	VALUES ($1, $2, $3, $4)`,
			p.ID, i, v.Category, v.Text,
		)
	}
	return b
}

func queueLinks(b *pgx.Batch, profileID, kind string, ll []profile.Link) {
	for i, v := range ll {
		b.Queue(`
INSERT INTO links
	(id, profile_id, kind, position, url, title, description)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			v.ID, profileID, kind, i, v.URL, v.Title, v.Description,
		)
		for _, c := range v.Creators {
			b.Queue(`
INSERT INTO link_creators (link_id, contributor_id)
	VALUES ($1, $2)`, v.ID, c.ID)
		}
	}
}
