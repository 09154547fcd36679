package entity

import (
	"gorm.io/gorm"
)

type Feedback struct {
	gorm.Model
	Rating   int    `json:"rating"`
	Comments string `json:"comments"`

	UserID uint `json:"userId"`
	User   User `json:"-"`
}
