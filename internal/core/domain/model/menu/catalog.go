// Package menu holds the static restaurant catalog with filter and search.
package menu

import (
	"strings"

	"foodhub/internal/pkg/errs"
)

// Catalog is the browsable menu. It is immutable after construction and safe
// for concurrent reads.
type Catalog struct {
	items      []MenuItem
	categories []string
}

// NewCatalog builds the default FoodHub catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		items:      defaultItems(),
		categories: defaultCategories(),
	}
}

// Items returns the catalog filtered by category and a case-insensitive
// search over name and description. A blank or "All" category matches
// everything; a blank search matches everything.
func (c *Catalog) Items(category, search string) []MenuItem {
	filtered := make([]MenuItem, 0, len(c.items))
	search = strings.ToLower(strings.TrimSpace(search))

	for _, item := range c.items {
		if category != "" && category != "All" && !strings.EqualFold(item.Category, category) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) {
			continue
		}
		filtered = append(filtered, item)
	}

	return filtered
}

// ByID returns the menu item with the given id.
func (c *Catalog) ByID(id string) (MenuItem, error) {
	for _, item := range c.items {
		if item.ID == id {
			return item, nil
		}
	}
	return MenuItem{}, errs.NewObjectNotFoundError("menuItemId", id)
}

// Categories returns the category list, "All" first.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

func defaultCategories() []string {
	return []string{
		"All",
		"Pizza",
		"Burgers",
		"Salads",
		"Seafood",
		"Pasta",
		"Appetizers",
		"Mexican",
		"Japanese",
		"Healthy",
		"Desserts",
	}
}

func defaultItems() []MenuItem {
	return []MenuItem{
		{
			ID:          "1",
			Name:        "Margherita Pizza",
			Description: "Fresh tomatoes, mozzarella cheese, basil, and olive oil on a crispy thin crust",
			Price:       14.99,
			Image:       "https://images.unsplash.com/photo-1604382355076-af4b0eb60143?w=500&h=500&fit=crop",
			Category:    "Pizza",
			Rating:      4.8,
			PrepTime:    "20-25 min",
		},
		{
			ID:          "2",
			Name:        "Pepperoni Supreme",
			Description: "Loaded with pepperoni, mozzarella, and our signature tomato sauce",
			Price:       16.99,
			Image:       "https://images.unsplash.com/photo-1628840042765-356cda07504e?w=500&h=500&fit=crop",
			Category:    "Pizza",
			Rating:      4.9,
			PrepTime:    "20-25 min",
		},
		{
			ID:          "3",
			Name:        "Classic Cheeseburger",
			Description: "Juicy beef patty with cheddar cheese, lettuce, tomato, and special sauce",
			Price:       12.99,
			Image:       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=500&h=500&fit=crop",
			Category:    "Burgers",
			Rating:      4.7,
			PrepTime:    "15-20 min",
		},
		{
			ID:          "4",
			Name:        "Bacon BBQ Burger",
			Description: "Smoky bacon, BBQ sauce, crispy onions, and melted cheddar",
			Price:       14.99,
			Image:       "https://images.unsplash.com/photo-1553979459-d2229ba7433b?w=500&h=500&fit=crop",
			Category:    "Burgers",
			Rating:      4.8,
			PrepTime:    "15-20 min",
		},
		{
			ID:          "5",
			Name:        "Caesar Salad",
			Description: "Crisp romaine, parmesan, croutons with creamy Caesar dressing",
			Price:       9.99,
			Image:       "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=500&h=500&fit=crop",
			Category:    "Salads",
			Rating:      4.5,
			PrepTime:    "10-15 min",
		},
		{
			ID:          "6",
			Name:        "Grilled Salmon",
			Description: "Atlantic salmon with lemon herb butter, served with seasonal vegetables",
			Price:       22.99,
			Image:       "https://images.unsplash.com/photo-1467003909585-2f8a72700288?w=500&h=500&fit=crop",
			Category:    "Seafood",
			Rating:      4.9,
			PrepTime:    "25-30 min",
		},
		{
			ID:          "7",
			Name:        "Spaghetti Carbonara",
			Description: "Classic Italian pasta with pancetta, egg, and parmesan cheese",
			Price:       15.99,
			Image:       "https://images.unsplash.com/photo-1612874742237-6526221588e3?w=500&h=500&fit=crop",
			Category:    "Pasta",
			Rating:      4.7,
			PrepTime:    "20-25 min",
		},
		{
			ID:          "9",
			Name:        "Beef Tacos",
			Description: "Three soft tacos with seasoned beef, fresh salsa, and sour cream",
			Price:       11.99,
			Image:       "https://images.unsplash.com/photo-1565299585323-38d6b0865b47?w=500&h=500&fit=crop",
			Category:    "Mexican",
			Rating:      4.6,
			PrepTime:    "15-20 min",
		},
		{
			ID:          "10",
			Name:        "Chocolate Lava Cake",
			Description: "Warm chocolate cake with molten center, served with vanilla ice cream",
			Price:       8.99,
			Image:       "https://images.unsplash.com/photo-1624353365286-3f8d62daad51?w=500&h=500&fit=crop",
			Category:    "Desserts",
			Rating:      4.9,
			PrepTime:    "10-15 min",
		},
		{
			ID:          "11",
			Name:        "Sushi Platter",
			Description: "Assorted fresh sushi rolls with wasabi, ginger, and soy sauce",
			Price:       24.99,
			Image:       "https://images.unsplash.com/photo-1579871494447-9811cf80d66c?w=500&h=500&fit=crop",
			Category:    "Japanese",
			Rating:      4.8,
			PrepTime:    "25-30 min",
		},
		{
			ID:          "12",
			Name:        "Veggie Buddha Bowl",
			Description: "Quinoa, roasted vegetables, chickpeas, and tahini dressing",
			Price:       13.99,
			Image:       "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=500&h=500&fit=crop",
			Category:    "Healthy",
			Rating:      4.7,
			PrepTime:    "15-20 min",
		},
	}
}
