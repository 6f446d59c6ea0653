package model

import "time"

// MenuCategory enumerates catalog sections.
type MenuCategory string

const (
	CategoryCoffee           MenuCategory = "coffee"
	CategoryTea              MenuCategory = "tea"
	CategorySnacks           MenuCategory = "snacks"
	CategoryDesserts         MenuCategory = "desserts"
	CategoryGujaratiSpecials MenuCategory = "gujarati-specials"
	CategoryBeverages        MenuCategory = "beverages"
)

// ValidMenuCategory reports whether value belongs to the category enumeration.
func ValidMenuCategory(value MenuCategory) bool {
	switch value {
	case CategoryCoffee, CategoryTea, CategorySnacks, CategoryDesserts, CategoryGujaratiSpecials, CategoryBeverages:
		return true
	}
	return false
}

// MenuItem describes a purchasable catalog entry.
type MenuItem struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    MenuCategory
	Image       string
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
