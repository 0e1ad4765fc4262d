package db

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to Postgres. TranslateError lets repositories detect
// unique-key violations via gorm.ErrDuplicatedKey.
func Open(dsn string) *gorm.DB {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	return gdb
}
