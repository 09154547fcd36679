package entity

import (
	"gorm.io/gorm"
)

// User is created once at sign-up and never updated or deleted afterwards.
type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`

	Orders    []Order    `json:"-"`
	Feedbacks []Feedback `json:"-"`
}
