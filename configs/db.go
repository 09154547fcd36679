package configs

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/MachineLearnerSatyam/Restaurant-Management-Project/entity"
)

// Connect opens the configured database with a bounded retry policy:
// each attempt is verified with a Ping, and after ConnectAttempts
// failures the error is returned instead of retrying forever. Once
// connected, per-query reconnection is left to the database/sql pool.
func Connect(cfg *Config) (*gorm.DB, error) {
	attempts := cfg.ConnectAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	backoff := cfg.ConnectBackoff

	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := open(cfg)
		if err == nil {
			return db, nil
		}
		lastErr = err
		log.Printf("database connect attempt %d/%d failed: %v", attempt, attempts, err)

		if attempt < attempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	return nil, fmt.Errorf("connect database after %d attempts: %w", attempts, lastErr)
}

func open(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dialector = mysql.Open(cfg.DBSource)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBSource)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	// TranslateError maps driver unique-violations to gorm.ErrDuplicatedKey,
	// which the credential store relies on for duplicate usernames.
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// SetupDatabase migrates the schema.
func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Feedback{},
	)
}
