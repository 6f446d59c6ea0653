package dto

import "time"

// MenuItemRequest carries catalog item fields for create/update.
type MenuItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	IsAvailable *bool   `json:"isAvailable"`
}

// AvailabilityRequest toggles whether an item can be ordered.
type AvailabilityRequest struct {
	IsAvailable *bool `json:"isAvailable"`
}

// MenuItemResponse is a catalog entry as returned to clients.
type MenuItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image,omitempty"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
