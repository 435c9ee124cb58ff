// Package db defines the contract for managing connections to the
// PostgreSQL database of profiles.
package db

import (
	"context"

	"github.com/gnames/gnprofiles/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator defines basic database management operations. It owns the
// connection pool and exposes it to the schema manager and the stores,
// which run their own SQL.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables in the public schema.
	// Used to determine if schema creation should prompt for confirmation.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables in the public schema.
	DropAllTables(ctx context.Context) error
}
