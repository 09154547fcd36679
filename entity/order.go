package entity

import (
	"gorm.io/gorm"
)

// Order is immutable after creation. Total must equal the sum of
// Qty*UnitPrice over its items, computed from the cart snapshot at
// confirmation time.
type Order struct {
	gorm.Model
	Total int64 `json:"total"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	Items []OrderItem `json:"items"`
}
