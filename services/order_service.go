package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/MachineLearnerSatyam/Restaurant-Management-Project/entity"
	"github.com/MachineLearnerSatyam/Restaurant-Management-Project/repository"
)

// confirmTimeout bounds the whole order transaction.
const confirmTimeout = 5 * time.Second

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo}
}

// Confirm persists the cart as one order header plus one order item per
// line, as a single transaction: if any item insert fails the header is
// rolled back with it. The total is computed from the cart's snapshot
// prices at this moment, not from the live catalog. Confirm never
// mutates the cart — on success the caller clears it; on failure the
// cart stays intact for a manual retry.
func (s *OrderService) Confirm(userID uint, cart *Cart) (uint, error) {
	if cart.IsEmpty() {
		return 0, ErrEmptyCart
	}

	lines := cart.Lines()
	total := cart.Total()

	ctx, cancel := context.WithTimeout(context.Background(), confirmTimeout)
	defer cancel()

	var orderID uint
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order := entity.Order{UserID: userID, Total: total}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, line := range lines {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: line.MenuItemID,
				Qty:        line.Qty,
				UnitPrice:  line.UnitPrice,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("create order: %w", err)
	}
	return orderID, nil
}

// History lists the user's past orders, newest first.
func (s *OrderService) History(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListForUser(userID, limit)
}
