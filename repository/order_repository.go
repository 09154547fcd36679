package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/MachineLearnerSatyam/Restaurant-Management-Project/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateOrder and CreateOrderItem run inside the transaction owned by
// the order service; they never commit on their own.
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

type OrderSummary struct {
	ID        uint      `json:"id"`
	Total     int64     `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	db, cancel := withTimeout(r.DB)
	defer cancel()

	var out []OrderSummary
	err := db.Model(&entity.Order{}).
		Select("id, total, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}
