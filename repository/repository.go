package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// queryTimeout bounds every storage call so a dead connection cannot
// block the interactive session indefinitely.
const queryTimeout = 5 * time.Second

func withTimeout(db *gorm.DB) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	return db.WithContext(ctx), cancel
}
