package repository

import (
	"gorm.io/gorm"

	"github.com/MachineLearnerSatyam/Restaurant-Management-Project/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// FindAll returns the whole catalog grouped for display. An empty
// catalog is a valid result, not an error.
func (r *MenuRepository) FindAll() ([]entity.MenuItem, error) {
	db, cancel := withTimeout(r.DB)
	defer cancel()

	var items []entity.MenuItem
	err := db.Order("category, id").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	db, cancel := withTimeout(r.DB)
	defer cancel()

	var item entity.MenuItem
	if err := db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
