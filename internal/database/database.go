package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// регистрирует драйвер "sqlite" в database/sql
	_ "modernc.org/sqlite"

	"adboard/internal/domain"
)

// Connect opens PostgreSQL for postgres:// DSNs and falls back to the
// cgo-free sqlite driver for anything else (local files, ":memory:").
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate keeps the schema in sync with the domain models, including the
// composite unique index on favorites(user_id, advertisement_id).
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Advertisement{},
		&domain.Favorite{},
	)
}
