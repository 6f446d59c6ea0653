package dto

import "time"

// CreateReservationRequest is the booking payload.
type CreateReservationRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"specialRequests"`
}

// UpdateReservationStatusRequest carries a target status and optional table.
type UpdateReservationStatusRequest struct {
	Status      string `json:"status"`
	TableNumber *int   `json:"tableNumber"`
}

// ReservationResponse is a booking as returned to clients.
type ReservationResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Guests          int       `json:"guests"`
	Status          string    `json:"status"`
	TableNumber     *int      `json:"tableNumber,omitempty"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ReservationListResponse is a paginated admin listing.
type ReservationListResponse struct {
	Data       []ReservationResponse `json:"data"`
	Pagination Pagination            `json:"pagination"`
}
