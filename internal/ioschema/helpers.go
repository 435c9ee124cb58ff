package ioschema

import "fmt"

// collated is a text column that is compared byte by byte.
type collated struct {
	table, column string
	varchar       int
}

// collatedColumns keep names that must sort and compare the same way
// in PostgreSQL and in Go.
var collatedColumns = []collated{
	{"profiles", "scientific_name", 255},
	{"terms", "name", 255},
	{"contributors", "name", 255},
}

// formatCollationSQL formats the collation SQL statement.
func formatCollationSQL(col collated) string {
	return fmt.Sprintf(
		`ALTER TABLE %s ALTER COLUMN %s TYPE VARCHAR(%d) COLLATE "C"`,
		col.table, col.column, col.varchar,
	)
}
