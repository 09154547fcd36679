package services

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MachineLearnerSatyam/Restaurant-Management-Project/configs"
	"github.com/MachineLearnerSatyam/Restaurant-Management-Project/entity"
)

// setupTestDB opens a fresh in-memory database, migrated and named per
// test so parallel tests never share state.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price int64) entity.MenuItem {
	t.Helper()

	item := entity.MenuItem{Name: name, Price: price, Category: "Main Course"}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return item
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()

	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}
