package services

import (
	"errors"
	"testing"

	"github.com/MachineLearnerSatyam/Restaurant-Management-Project/entity"
	"github.com/MachineLearnerSatyam/Restaurant-Management-Project/repository"
)

// Full customer journey: sign up, duplicate sign-up, login, build a
// cart, confirm, and end with an empty cart.
func TestOrderingScenario(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(repository.NewUserRepository(db))
	orders := NewOrderService(db, repository.NewOrderRepository(db))

	if _, err := auth.Register("alice", "secret1"); err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if _, err := auth.Register("alice", "other12"); !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("duplicate sign up: want ErrDuplicateUsername, got %v", err)
	}

	user, err := auth.Login("alice", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	session := NewSession(user)
	if !session.Cart.IsEmpty() {
		t.Fatal("a fresh session must start with an empty cart")
	}

	pizza := seedMenuItem(t, db, "Margherita Pizza", 999)
	soda := seedMenuItem(t, db, "Fresh Lime Soda", 350)

	added := session.AddToCart([]CartSelection{
		{Item: pizza, Qty: 2},
		{Item: soda, Qty: 1},
	})
	if added != 2 {
		t.Fatalf("want 2 selections applied, got %d", added)
	}
	if session.AddToCart(nil) != 0 {
		t.Error("empty selection must report zero applied, not fail")
	}

	if got := session.Cart.Total(); got != 2348 {
		t.Fatalf("want cart total 2348, got %d", got)
	}

	orderID, err := orders.Confirm(session.UserID, session.Cart)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	session.Cart.Clear()

	var order entity.Order
	if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	if order.UserID != user.ID {
		t.Errorf("order belongs to user %d, want %d", order.UserID, user.ID)
	}
	if order.Total != 2348 || len(order.Items) != 2 {
		t.Errorf("want total 2348 with 2 lines, got %d with %d", order.Total, len(order.Items))
	}
	if !session.Cart.IsEmpty() {
		t.Error("cart must be empty after a confirmed order")
	}
}
