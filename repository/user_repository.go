package repository

import (
	"gorm.io/gorm"

	"github.com/MachineLearnerSatyam/Restaurant-Management-Project/entity"
)

// UserRepository talks to the users table and nothing else.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *entity.User) error {
	db, cancel := withTimeout(r.DB)
	defer cancel()
	return db.Create(user).Error
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	db, cancel := withTimeout(r.DB)
	defer cancel()

	var user entity.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByUsername(username string) (int64, error) {
	db, cancel := withTimeout(r.DB)
	defer cancel()

	var count int64
	err := db.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error
	return count, err
}
