package repository

import (
	"gorm.io/gorm"

	"github.com/MachineLearnerSatyam/Restaurant-Management-Project/entity"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

// Single-row insert, no transaction needed.
func (r *FeedbackRepository) Create(f *entity.Feedback) error {
	db, cancel := withTimeout(r.DB)
	defer cancel()
	return db.Create(f).Error
}
