// Package ioschema implements schema.Manager for database
// schema management. This is an impure I/O package that
// wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/gnprofiles/pkg/db"
	"github.com/gnames/gnprofiles/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the schema.Manager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new schema.Manager.
func NewManager(op db.Operator) schema.Manager {
	return &manager{operator: op}
}

// Create creates the initial database schema using
// GORM AutoMigrate and sets byte-order collation on
// name columns.
func (m *manager) Create(ctx context.Context) error {
	gormDB, err := m.gormDB()
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return CreateSchemaError(err)
	}

	if err := m.setCollation(ctx); err != nil {
		return err
	}

	slog.Info("Database schema created",
		"tables", len(schema.AllModels()))
	return nil
}

// Migrate updates the database schema to the latest version
// using GORM AutoMigrate.
func (m *manager) Migrate(ctx context.Context) error {
	gormDB, err := m.gormDB()
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return MigrateSchemaError(err)
	}

	slog.Info("Database schema migrated")
	return nil
}

func (m *manager) gormDB() (*gorm.DB, error) {
	pool := m.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return nil, GORMConnectionError(err)
	}
	return gormDB, nil
}

// setCollation sets "C" collation on name columns.
func (m *manager) setCollation(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	for _, col := range collatedColumns {
		if _, err := pool.Exec(ctx, formatCollationSQL(col)); err != nil {
			return CollationError(col.table, col.column, err)
		}
	}

	return nil
}
