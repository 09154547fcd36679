package configs

import (
	"gorm.io/gorm"

	"github.com/MachineLearnerSatyam/Restaurant-Management-Project/entity"
)

// SeedMenu populates the catalog on first run. Idempotent: items are
// matched by name, prices are in cents.
func SeedMenu(db *gorm.DB) error {
	items := []entity.MenuItem{
		{Name: "Garlic Bread", Description: "Toasted baguette with garlic butter", Price: 450, Category: "Appetizer"},
		{Name: "Spring Rolls", Description: "Crispy vegetable rolls with sweet chili dip", Price: 550, Category: "Appetizer"},
		{Name: "Tomato Soup", Description: "Creamy tomato soup with basil", Price: 500, Category: "Appetizer"},
		{Name: "Margherita Pizza", Description: "Tomato, mozzarella and fresh basil", Price: 1250, Category: "Main Course"},
		{Name: "Spaghetti Bolognese", Description: "Slow-cooked beef ragu", Price: 1350, Category: "Main Course"},
		{Name: "Grilled Chicken", Description: "Herb-marinated chicken with roast potatoes", Price: 1450, Category: "Main Course"},
		{Name: "Paneer Tikka Masala", Description: "Cottage cheese in spiced tomato gravy", Price: 1200, Category: "Main Course"},
		{Name: "Chocolate Brownie", Description: "Warm brownie with vanilla ice cream", Price: 650, Category: "Dessert"},
		{Name: "Cheesecake", Description: "New York style baked cheesecake", Price: 700, Category: "Dessert"},
		{Name: "Fresh Lime Soda", Description: "Sweet or salted", Price: 300, Category: "Beverage"},
		{Name: "Iced Coffee", Description: "Cold brew over ice", Price: 400, Category: "Beverage"},
		{Name: "Mango Lassi", Description: "Yogurt smoothie with mango pulp", Price: 450, Category: "Beverage"},
	}

	for _, it := range items {
		if err := db.Where(entity.MenuItem{Name: it.Name}).FirstOrCreate(&it).Error; err != nil {
			return err
		}
	}
	return nil
}
