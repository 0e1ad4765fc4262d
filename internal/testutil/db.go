package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Riyanshu-256/lms-elearning-platform/internal/domain"
)

// OpenDB returns an isolated in-memory database with the full schema.
// A single connection keeps the memory store alive and serializes
// concurrent writers the way the production database would.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("unwrap db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := gdb.AutoMigrate(
		&domain.User{},
		&domain.Course{},
		&domain.CourseRating{},
		&domain.Purchase{},
		&domain.WebhookEvent{},
		&domain.Enrollment{},
		&domain.CourseProgress{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}
