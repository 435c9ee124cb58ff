/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnprofiles/internal/iodb"
	"github.com/gnames/gnprofiles/internal/ioschema"
	"github.com/gnames/gnprofiles/pkg/db"
	"github.com/gnames/gnprofiles/pkg/schema"
	"github.com/spf13/cobra"
)

// getMigrateCmd returns the migrate command.
func getMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Bring profile tables to the current schema",
		Long: `Migrate upgrades an existing GNprofiles database after a new
release changed its tables.

The database must already hold the opuses and profiles tables. Tables
added by the release (for example new link or authorship tables) are
created, and new columns and indexes are added through GORM AutoMigrate.
Migrate Does NOT delete columns or tables, so opuses, vocabularies,
contributors and imported profiles stay in place.

For an empty database run 'gnprofiles create' instead.

Examples:
  gnprofiles migrate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, args)
		},
	}

	return migrateCmd
}

func runMigrate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	missing, err := missingTables(ctx, op, schema.TableNames())
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if !hasProfileTables(missing) {
		gn.Warn("No opuses or profiles tables found in the database.")
		gn.Warn("Run 'gnprofiles create' to set up the schema.")
		return nil
	}

	if len(missing) == 0 {
		gn.Info("All profile tables are present, checking columns and indexes...")
	} else {
		gn.Info("Tables to add: <em>%s</em>", strings.Join(missing, ", "))
	}

	sm := ioschema.NewManager(op)
	if err := sm.Migrate(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Profile tables are up to date.")
	return nil
}

// missingTables returns the tables from names that do not exist yet.
func missingTables(
	ctx context.Context,
	op db.Operator,
	names []string,
) ([]string, error) {
	var res []string
	for _, v := range names {
		ok, err := op.TableExists(ctx, v)
		if err != nil {
			return nil, err
		}
		if !ok {
			res = append(res, v)
		}
	}
	return res, nil
}

// hasProfileTables is false when opuses or profiles are missing, which
// means the schema was never created.
func hasProfileTables(missing []string) bool {
	for _, v := range missing {
		if v == "opuses" || v == "profiles" {
			return false
		}
	}
	return true
}
