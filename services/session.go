package services

import (
	"github.com/MachineLearnerSatyam/Restaurant-Management-Project/entity"
)

// Session is the explicit per-login state: created on successful login
// with an empty cart, discarded by the presentation layer on logout.
// An unconfirmed cart is lost with it, by design.
type Session struct {
	UserID   uint
	Username string
	Cart     *Cart
}

func NewSession(user *entity.User) *Session {
	return &Session{
		UserID:   user.ID,
		Username: user.Username,
		Cart:     NewCart(),
	}
}

// CartSelection is one checked item with its chosen quantity.
type CartSelection struct {
	Item entity.MenuItem
	Qty  int
}

// AddToCart applies a batch of selections and returns how many were
// applied, so the caller can tell "added N item(s)" apart from
// "nothing selected". Zero selections is a no-op, not an error.
func (s *Session) AddToCart(selections []CartSelection) int {
	for _, sel := range selections {
		s.Cart.Add(sel.Item, sel.Qty)
	}
	return len(selections)
}
