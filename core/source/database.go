package source

import (
	"context"
	"fmt"

	"locale-manager/core/database"
	"locale-manager/core/tree"

	"gorm.io/gorm"
)

// Translation is one translated key of a locale.
type Translation struct {
	ID     uint   `gorm:"primaryKey"`
	Locale string `gorm:"size:35;not null;uniqueIndex:idx_translations_locale_key"`
	Key    string `gorm:"size:255;not null;uniqueIndex:idx_translations_locale_key"`
	Value  string `gorm:"type:text"`
}

// TableName specifies the table name for GORM.
func (Translation) TableName() string {
	return "translations"
}

// Migrate creates or updates the translations table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Translation{}); err != nil {
		return fmt.Errorf("failed to migrate translations: %w", err)
	}
	return nil
}

// Database reads translations stored as one row per dotted key.
type Database struct {
	db *gorm.DB
}

// NewDatabase creates a database source.
func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

// Verify checks that the translations table has the columns the source reads.
func (d *Database) Verify(ctx context.Context) error {
	return database.RequireColumns(d.db.WithContext(ctx), Translation{}.TableName(), "locale", "key", "value")
}

// Tree unflattens the rows of locale. Rows whose keys collide structurally, such as
// "a" and "a.b", fail with tree.ErrStructuralConflict.
func (d *Database) Tree(ctx context.Context, locale string) (tree.Node, error) {
	var rows []Translation
	if err := d.db.WithContext(ctx).Where(&Translation{Locale: locale}).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load translations for %s: %w", locale, err)
	}

	flat := make(tree.FlatMap, len(rows))
	for _, row := range rows {
		flat[row.Key] = row.Value
	}

	node, err := tree.Unflatten(flat)
	if err != nil {
		return nil, err
	}
	return tree.Root(locale, node), nil
}
