// Package iocache keeps results of name matching in a local SQLite
// database, so repeated imports do not query the matching service for
// names it already answered.
package iocache

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnprofiles/pkg/ent/profile"
	_ "modernc.org/sqlite"
)

// Match is a cached result of matching a scientific name. Empty GUID
// means the name has no match.
type Match struct {
	Name           string
	GUID           string
	NomenclatureID string
	// Accepted is false when the name is a synonym of the GUID taxon.
	Accepted       bool
	Classification []profile.Taxon
}

// Cache stores matches by name and finds them by name or GUID.
// It is safe for concurrent use.
type Cache struct {
	db  *sql.DB
	enc gnfmt.Encoder
}

const ddl = `
CREATE TABLE IF NOT EXISTS matches (
	name TEXT PRIMARY KEY,
	guid TEXT NOT NULL,
	nomenclature_id TEXT NOT NULL,
	accepted INTEGER NOT NULL DEFAULT 0,
	classification BLOB,
	updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_matches_guid ON matches (guid);`

// Open opens the cache at path, creating the file and its directory
// when they do not exist. Use ":memory:" for a cache that lives only
// while it is open.
func Open(path string) (*Cache, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, OpenError(path, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, OpenError(path, err)
	}
	// SQLite allows one writer, the pool must not open more connections.
	db.SetMaxOpenConns(1)

	if _, err = db.Exec(ddl); err != nil {
		db.Close()
		return nil, OpenError(path, err)
	}

	return &Cache{db: db, enc: gnfmt.GNgob{}}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// ByName returns the cached match of a name.
func (c *Cache) ByName(ctx context.Context, name string) (*Match, bool, error) {
	q := `
SELECT name, guid, nomenclature_id, accepted, classification
	FROM matches
	WHERE name = ?`
	return c.query(ctx, name, q, name)
}

// ByGUID returns a cached match with the GUID, preferring the match of
// the accepted name.
func (c *Cache) ByGUID(ctx context.Context, guid string) (*Match, bool, error) {
	if guid == "" {
		return nil, false, nil
	}
	q := `
SELECT name, guid, nomenclature_id, accepted, classification
	FROM matches
	WHERE guid = ?
	ORDER BY accepted DESC, name
	LIMIT 1`
	return c.query(ctx, guid, q, guid)
}

func (c *Cache) query(
	ctx context.Context,
	key, q string,
	args ...any,
) (*Match, bool, error) {
	var m Match
	var cls []byte
	err := c.db.QueryRowContext(ctx, q, args...).Scan(
		&m.Name, &m.GUID, &m.NomenclatureID, &m.Accepted, &cls,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, QueryError(key, err)
	}
	if len(cls) > 0 {
		if err = c.enc.Decode(cls, &m.Classification); err != nil {
			return nil, false, QueryError(key, err)
		}
	}
	return &m, true, nil
}

// Store saves a match, replacing an earlier match of the same name.
func (c *Cache) Store(ctx context.Context, m *Match) error {
	var cls []byte
	if len(m.Classification) > 0 {
		var err error
		if cls, err = c.enc.Encode(m.Classification); err != nil {
			return QueryError(m.Name, err)
		}
	}

	q := `
INSERT OR REPLACE INTO matches
	(name, guid, nomenclature_id, accepted, classification, updated_at)
	VALUES (?, ?, ?, ?, ?, ?)`
	_, err := c.db.ExecContext(ctx, q,
		m.Name, m.GUID, m.NomenclatureID, m.Accepted, cls, time.Now().Unix(),
	)
	if err != nil {
		return QueryError(m.Name, err)
	}
	return nil
}

// Len returns the number of cached names.
func (c *Cache) Len(ctx context.Context) (int, error) {
	var res int
	err := c.db.QueryRowContext(ctx, "SELECT count(*) FROM matches").Scan(&res)
	if err != nil {
		return 0, QueryError("count", err)
	}
	return res, nil
}
