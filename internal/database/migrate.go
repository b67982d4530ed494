package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/pageza/ingrecipe/backend/internal/model"
)

// RunMigrations brings the recipes schema up to date
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Recipe{}); err != nil {
		return fmt.Errorf("failed to migrate recipes: %w", err)
	}

	// Dietary lookups compare a normalized value, so index the expression
	// on postgres. SQLite keeps the plain column index.
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_recipes_dietary_lower ON recipes (LOWER(TRIM(dietary)))`).Error; err != nil {
			return fmt.Errorf("failed to create dietary index: %w", err)
		}
	}

	return nil
}

// RollbackMigrations drops the recipes schema
func RollbackMigrations(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec(`DROP INDEX IF EXISTS idx_recipes_dietary_lower`).Error; err != nil {
			return fmt.Errorf("failed to drop dietary index: %w", err)
		}
	}
	if err := db.Migrator().DropTable(&model.Recipe{}); err != nil {
		return fmt.Errorf("failed to drop recipes: %w", err)
	}
	return nil
}
