package iodb_test

import (
	"context"
	"testing"

	"github.com/gnames/gnprofiles/internal/iodb"
	"github.com/gnames/gnprofiles/internal/iotesting"
	"github.com/gnames/gnprofiles/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integration tests need PostgreSQL with a gnprofiles_test database.
// Connection settings come from GNPROFILES_DATABASE_* environment
// variables. Tests are skipped with -short or when the database is not
// reachable.

func TestPgxOperator_NotConnected(t *testing.T) {
	op := iodb.NewPgxOperator()
	ctx := context.Background()

	_, err := op.TableExists(ctx, "profiles")
	assert.Error(t, err)
	_, err = op.HasTables(ctx)
	assert.Error(t, err)
	assert.Error(t, op.DropAllTables(ctx))
}

func TestPgxOperator_Connect_InvalidHost(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	op := iodb.NewPgxOperator()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseHost("invalid-host-that-does-not-exist"),
	})

	err := op.Connect(context.Background(), &cfg.Database)
	assert.Error(t, err, "Connect should fail with invalid host")
}

func TestPgxOperator_TableExists(t *testing.T) {
	op := iotesting.ConnectOrSkip(t)
	ctx := context.Background()

	_, err := op.Pool().Exec(ctx,
		"CREATE TABLE IF NOT EXISTS iodb_probe (id INT)")
	require.NoError(t, err)
	defer func() {
		_, _ = op.Pool().Exec(ctx, "DROP TABLE IF EXISTS iodb_probe")
	}()

	exists, err := op.TableExists(ctx, "iodb_probe")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = op.TableExists(ctx, "nonexistent_table")
	require.NoError(t, err)
	assert.False(t, exists)

	has, err := op.HasTables(ctx)
	require.NoError(t, err)
	assert.True(t, has)
}
