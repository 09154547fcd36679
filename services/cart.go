package services

import (
	"github.com/MachineLearnerSatyam/Restaurant-Management-Project/entity"
)

// CartLine is one selected menu item. Name and UnitPrice are snapshots
// taken when the item was first added; later catalog changes do not
// touch an open cart.
type CartLine struct {
	MenuItemID uint
	Name       string
	UnitPrice  int64
	Qty        int
}

// Cart holds the current selection of a single session. It lives
// entirely in memory: created empty on login, thrown away on logout,
// cleared by the caller after a confirmed order. Exactly one session is
// active per process, so no locking.
type Cart struct {
	lines map[uint]*CartLine
	order []uint // insertion order, for stable display
}

func NewCart() *Cart {
	return &Cart{lines: make(map[uint]*CartLine)}
}

// Add puts qty of item into the cart. Non-positive quantities default
// to 1. Adding an item already in the cart merges into the existing
// line; the first-add price wins for the rest of the session.
func (c *Cart) Add(item entity.MenuItem, qty int) {
	if qty <= 0 {
		qty = 1
	}

	if line, ok := c.lines[item.ID]; ok {
		line.Qty += qty
		return
	}

	c.lines[item.ID] = &CartLine{
		MenuItemID: item.ID,
		Name:       item.Name,
		UnitPrice:  item.Price,
		Qty:        qty,
	}
	c.order = append(c.order, item.ID)
}

// Remove deletes a line. Removing an item that is not in the cart is a
// no-op, not an error.
func (c *Cart) Remove(menuItemID uint) {
	if _, ok := c.lines[menuItemID]; !ok {
		return
	}
	delete(c.lines, menuItemID)
	for i, id := range c.order {
		if id == menuItemID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Cart) Clear() {
	c.lines = make(map[uint]*CartLine)
	c.order = nil
}

// Total is the sum of Qty*UnitPrice over all lines, in cents.
func (c *Cart) Total() int64 {
	var total int64
	for _, line := range c.lines {
		total += line.UnitPrice * int64(line.Qty)
	}
	return total
}

// Lines returns a copy of the cart contents in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
