package services

import (
	"testing"

	"gorm.io/gorm"

	"github.com/MachineLearnerSatyam/Restaurant-Management-Project/entity"
)

func menuItem(id uint, name string, price int64) entity.MenuItem {
	return entity.MenuItem{Model: gorm.Model{ID: id}, Name: name, Price: price}
}

func TestCartMergesRepeatedAdds(t *testing.T) {
	cart := NewCart()
	item := menuItem(1, "Margherita Pizza", 1250)

	cart.Add(item, 2)
	cart.Add(item, 3)

	lines := cart.Lines()
	if len(lines) != 1 {
		t.Fatalf("want 1 line, got %d", len(lines))
	}
	if lines[0].Qty != 5 {
		t.Errorf("want qty 5, got %d", lines[0].Qty)
	}
}

func TestCartKeepsFirstAddPrice(t *testing.T) {
	cart := NewCart()
	cart.Add(menuItem(1, "Iced Coffee", 400), 1)

	// Same item at a new catalog price: the session keeps its snapshot.
	cart.Add(menuItem(1, "Iced Coffee", 999), 1)

	lines := cart.Lines()
	if lines[0].UnitPrice != 400 {
		t.Errorf("want first-add price 400, got %d", lines[0].UnitPrice)
	}
	if got := cart.Total(); got != 800 {
		t.Errorf("want total 800, got %d", got)
	}
}

func TestCartClampsQuantity(t *testing.T) {
	for _, qty := range []int{0, -4} {
		cart := NewCart()
		cart.Add(menuItem(1, "Cheesecake", 700), qty)
		if got := cart.Lines()[0].Qty; got != 1 {
			t.Errorf("qty %d: want clamp to 1, got %d", qty, got)
		}
	}
}

func TestCartRemoveMissingIsNoop(t *testing.T) {
	cart := NewCart()
	cart.Add(menuItem(1, "Garlic Bread", 450), 1)

	cart.Remove(42)

	if cart.Len() != 1 {
		t.Errorf("want 1 line after removing missing id, got %d", cart.Len())
	}
}

func TestCartTotal(t *testing.T) {
	cart := NewCart()
	if got := cart.Total(); got != 0 {
		t.Errorf("empty cart: want total 0, got %d", got)
	}

	cart.Add(menuItem(1, "A", 1000), 2)
	cart.Add(menuItem(2, "B", 550), 1)

	if got := cart.Total(); got != 2550 {
		t.Errorf("want total 2550, got %d", got)
	}
}

func TestCartLinesInsertionOrder(t *testing.T) {
	cart := NewCart()
	cart.Add(menuItem(3, "C", 100), 1)
	cart.Add(menuItem(1, "A", 100), 1)
	cart.Add(menuItem(2, "B", 100), 1)
	cart.Add(menuItem(3, "C", 100), 1) // merge must not reorder

	want := []uint{3, 1, 2}
	lines := cart.Lines()
	for i, id := range want {
		if lines[i].MenuItemID != id {
			t.Fatalf("line %d: want item %d, got %d", i, id, lines[i].MenuItemID)
		}
	}

	// Lines is a snapshot: mutating it must not touch the cart.
	lines[0].Qty = 99
	if cart.Lines()[0].Qty != 2 {
		t.Errorf("cart mutated through Lines snapshot")
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	cart := NewCart()
	cart.Add(menuItem(1, "A", 100), 1)
	cart.Add(menuItem(2, "B", 200), 1)

	cart.Remove(1)
	if cart.Len() != 1 || cart.Lines()[0].MenuItemID != 2 {
		t.Fatalf("remove left unexpected lines: %+v", cart.Lines())
	}

	cart.Clear()
	if !cart.IsEmpty() || cart.Total() != 0 {
		t.Errorf("clear left a non-empty cart")
	}
}
