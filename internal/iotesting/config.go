// Package iotesting provides shared utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"testing"
	"time"

	"github.com/gnames/gnprofiles/internal/iodb"
	"github.com/gnames/gnprofiles/pkg/config"
	"github.com/gnames/gnprofiles/pkg/db"
	"github.com/spf13/viper"
)

// TestDatabaseName is the database name used for all integration tests,
// so tests never run against a working database.
const TestDatabaseName = "gnprofiles_test"

// GetTestConfig returns a configuration suitable for integration tests.
// Database settings can be changed with GNPROFILES_DATABASE_* environment
// variables, the database name is always TestDatabaseName.
func GetTestConfig() *config.Config {
	v := viper.New()
	v.SetEnvPrefix("GNPROFILES")
	v.AutomaticEnv()

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseHost(v.GetString("DATABASE_HOST")),
		config.OptDatabasePort(v.GetInt("DATABASE_PORT")),
		config.OptDatabaseUser(v.GetString("DATABASE_USER")),
		config.OptDatabasePassword(v.GetString("DATABASE_PASSWORD")),
		config.OptDatabaseSSLMode(v.GetString("DATABASE_SSL_MODE")),
		config.OptDatabaseDatabase(TestDatabaseName),
	})
	return cfg
}

// ConnectOrSkip connects to the test database. The test is skipped in
// short mode or when the database is not reachable. The connection is
// closed when the test finishes.
func ConnectOrSkip(t *testing.T) db.Operator {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	op := iodb.NewPgxOperator()
	cfg := GetTestConfig()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		t.Skipf("Skipping integration test, no database: %v", err)
	}
	t.Cleanup(func() { _ = op.Close() })
	return op
}
