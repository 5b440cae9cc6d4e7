package config

import (
	"fmt"
	"strings"

	"github.com/westeen/Medala-v3/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database named by DATABASE_URL and creates the three
// tables if they do not exist yet. A postgres DSN selects the postgres
// driver; anything else is treated as a sqlite file path (the default is a
// local health.db file).
func InitDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if isPostgresDSN(cfg.DatabaseURL) {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.DatabaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.NutritionLog{},
		&models.LabResult{},
		&models.TextRecord{},
	)
	if err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return db, nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.HasPrefix(dsn, "host=")
}
