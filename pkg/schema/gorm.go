package schema

import (
	"context"

	"gorm.io/gorm"
)

// Manager creates and updates the database schema.
type Manager interface {
	// Create creates all tables. Existing tables are kept.
	Create(ctx context.Context) error

	// Migrate updates tables to the current models.
	Migrate(ctx context.Context) error
}

// AllModels returns all schema models for GORM AutoMigrate.
func AllModels() []any {
	return []any{
		&Opus{},
		&Vocabulary{},
		&Term{},
		&Contributor{},
		&Profile{},
		&Classification{},
		&Attribute{},
		&AttributeCreator{},
		&AttributeEditor{},
		&Link{},
		&LinkCreator{},
		&Authorship{},
	}
}

// TableNames returns names of all tables in order of creation.
func TableNames() []string {
	models := AllModels()
	res := make([]string, len(models))
	for i, v := range models {
		res[i] = v.(interface{ TableName() string }).TableName()
	}
	return res
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
