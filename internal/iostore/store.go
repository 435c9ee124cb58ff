// Package iostore implements storage of opuses, reference data and
// profiles in PostgreSQL. Tables are created by ioschema, the store
// reads and writes them with pgx.
package iostore

import (
	"context"
	"errors"
	"fmt"

	"github.com/gnames/gnprofiles/pkg/db"
	"github.com/gnames/gnprofiles/pkg/ent/profile"
	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store implements importer.Store on a pgx connection pool.
// It is safe for concurrent use.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store that uses the pool of a connected operator.
func New(op db.Operator) *Store {
	return &Store{pool: op.Pool()}
}

// execer is satisfied by both the pool and a transaction.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// FindOpus returns an opus by its ID. IDs that are not UUIDs
// are never found.
func (s *Store) FindOpus(ctx context.Context, id string) (*profile.Opus, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	q := `
SELECT id, title, data_resource_id, attribute_vocab_id, code
	FROM opuses
	WHERE id = $1`
	var o profile.Opus
	var code string
	err := s.pool.QueryRow(ctx, q, id).Scan(
		&o.ID, &o.Title, &o.DataResourceID, &o.AttributeVocabID, &code,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	o.Code = profile.NewNomCode(code)
	return &o, nil
}

// Opuses returns all opuses sorted by title.
func (s *Store) Opuses(ctx context.Context) ([]profile.Opus, error) {
	q := `
SELECT id, title, data_resource_id, attribute_vocab_id, code
	FROM opuses
	ORDER BY title, id`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (profile.Opus, error) {
		var o profile.Opus
		var code string
		err := row.Scan(
			&o.ID, &o.Title, &o.DataResourceID, &o.AttributeVocabID, &code,
		)
		o.Code = profile.NewNomCode(code)
		return o, err
	})
}

// CreateOpus saves a new opus. An opus without ID gets a new UUID, an
// opus without attribute vocabulary gets a new vocabulary.
func (s *Store) CreateOpus(ctx context.Context, o *profile.Opus) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Code == "" {
		o.Code = profile.Botanical
	}
	newVocab := o.AttributeVocabID == ""
	if newVocab {
		o.AttributeVocabID = uuid.NewString()
	}

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if newVocab {
			_, err := tx.Exec(ctx,
				`INSERT INTO vocabularies (id, name) VALUES ($1, $2)`,
				o.AttributeVocabID, o.Title+" attributes",
			)
			if err != nil {
				return err
			}
		}
		_, err := tx.Exec(ctx, `
INSERT INTO opuses
	(id, title, data_resource_id, attribute_vocab_id, code, created_at)
	VALUES ($1, $2, $3, $4, $5, now())`,
			o.ID, o.Title, o.DataResourceID, o.AttributeVocabID, string(o.Code),
		)
		return err
	})
	if err != nil {
		return OpusCreateError(o.Title, err)
	}
	return nil
}

// FindTerm returns a term by its vocabulary and label.
func (s *Store) FindTerm(
	ctx context.Context,
	vocabID, label string,
) (*profile.Term, error) {
	q := `SELECT id FROM terms WHERE vocab_id = $1 AND name = $2`
	t := profile.Term{VocabID: vocabID, Name: label}
	err := s.pool.QueryRow(ctx, q, vocabID, label).Scan(&t.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, TermError(vocabID, label, err)
	}
	return &t, nil
}

// CreateTerm saves a term. The ID of a term is derived from its
// vocabulary and label, so creating the same term twice returns the
// same term.
func (s *Store) CreateTerm(
	ctx context.Context,
	vocabID, label string,
) (*profile.Term, error) {
	t := profile.Term{ID: TermID(vocabID, label), VocabID: vocabID, Name: label}
	_, err := s.pool.Exec(ctx, `
INSERT INTO terms (id, vocab_id, name) VALUES ($1, $2, $3)
	ON CONFLICT DO NOTHING`,
		t.ID, t.VocabID, t.Name,
	)
	if err != nil {
		return nil, TermError(vocabID, label, err)
	}
	return &t, nil
}

// FindContributor returns a contributor by its cleaned name.
func (s *Store) FindContributor(
	ctx context.Context,
	name string,
) (*profile.Contributor, error) {
	q := `SELECT id, data_resource_id FROM contributors WHERE name = $1`
	c := profile.Contributor{Name: name}
	err := s.pool.QueryRow(ctx, q, name).Scan(&c.ID, &c.DataResourceID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, ContributorError(name, err)
	}
	return &c, nil
}

// CreateContributor makes a contributor without saving it.
func (s *Store) CreateContributor(
	_ context.Context,
	name, dataResourceID string,
) (*profile.Contributor, error) {
	return &profile.Contributor{
		ID:             ContributorID(name),
		Name:           name,
		DataResourceID: dataResourceID,
	}, nil
}

// SaveContributor saves a contributor unless a contributor with the same
// name exists.
func (s *Store) SaveContributor(
	ctx context.Context,
	c *profile.Contributor,
) error {
	if err := saveContributor(ctx, s.pool, c); err != nil {
		return ContributorError(c.Name, err)
	}
	return nil
}

func saveContributor(ctx context.Context, ex execer, c *profile.Contributor) error {
	_, err := ex.Exec(ctx, `
INSERT INTO contributors (id, name, data_resource_id) VALUES ($1, $2, $3)
	ON CONFLICT DO NOTHING`,
		c.ID, c.Name, c.DataResourceID,
	)
	return err
}

// FindProfile returns a profile of an opus by its scientific name.
// Attributes, links and authorship are not loaded.
func (s *Store) FindProfile(
	ctx context.Context,
	opusID, name string,
) (*profile.Profile, error) {
	q := `
SELECT id, name_author, full_name, canonical, guid, nomenclature_id,
		rank, created_at
	FROM profiles
	WHERE opus_id = $1 AND scientific_name = $2`
	p := profile.Profile{OpusID: opusID, ScientificName: name}
	err := s.pool.QueryRow(ctx, q, opusID, name).Scan(
		&p.ID, &p.NameAuthor, &p.FullName, &p.Canonical, &p.GUID,
		&p.NomenclatureID, &p.Rank, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, ProfileError(name, err)
	}
	return &p, nil
}

// TermID returns a UUIDv5 of a term.
func TermID(vocabID, label string) string {
	return gnuuid.New(vocabID + "|" + label).String()
}

// ContributorID returns a UUIDv5 of a contributor's cleaned name.
func ContributorID(name string) string {
	return gnuuid.New(name).String()
}

// validationError converts broken constraints and invalid data reported
// by PostgreSQL to a profile.ValidationError.
func validationError(err error) (*profile.ValidationError, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || len(pgErr.Code) < 2 {
		return nil, false
	}
	switch pgErr.Code[:2] {
	case "22", "23":
	default:
		return nil, false
	}
	field := pgErr.ColumnName
	if field == "" {
		field = pgErr.ConstraintName
	}
	if field == "" {
		field = pgErr.TableName
	}
	return &profile.ValidationError{
		Field: field,
		Msg:   fmt.Sprintf("%s (%s)", pgErr.Message, pgErr.Code),
	}, true
}
