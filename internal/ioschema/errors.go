package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnprofiles/pkg/errcode"
)

// NotConnectedError is returned when a schema operation
// is attempted without database connection.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Schema operation attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError is returned when GORM cannot use
// the connection pool.
func GORMConnectionError(err error) error {
	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  "Cannot connect to database with GORM",
		Err:  fmt.Errorf("failed to connect with GORM: %w", err),
	}
}

// CreateSchemaError is returned when profile tables
// cannot be created.
func CreateSchemaError(err error) error {
	msg := `Cannot create tables for profiles

<em>How to fix:</em>
  1. Check that the database user has CREATE permissions
  2. Recreate the schema: gnprofiles create --force`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to create schema: %w", err),
	}
}

// MigrateSchemaError is returned when profile tables
// cannot be updated.
func MigrateSchemaError(err error) error {
	msg := `Cannot update tables for profiles

<em>How to fix:</em>
  1. Check that the database user has ALTER permissions
  2. Backup profiles and recreate the schema:
     gnprofiles create --force`

	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to migrate schema: %w", err),
	}
}

// CollationError is returned when a name column cannot
// get byte-order collation.
func CollationError(table, column string, err error) error {
	return &gn.Error{
		Code: errcode.SchemaCollationError,
		Msg:  "Cannot set collation on <em>%s.%s</em>",
		Vars: []any{table, column},
		Err: fmt.Errorf(
			"failed to set collation on %s.%s: %w",
			table, column, err),
	}
}
