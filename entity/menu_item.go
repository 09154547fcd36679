package entity

import (
	"gorm.io/gorm"
)

// MenuItem is read-only here; the catalog is owned by an external
// management process and only seeded on first run.
// Price is in cents.
type MenuItem struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`

	OrderItems []OrderItem `json:"-"`
}
