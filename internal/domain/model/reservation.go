package model

import "time"

// ReservationStatus describes table booking lifecycle.
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
)

// ValidReservationStatus reports whether value belongs to the status enumeration.
func ValidReservationStatus(value ReservationStatus) bool {
	switch value {
	case ReservationStatusPending, ReservationStatusConfirmed,
		ReservationStatusCancelled, ReservationStatusCompleted:
		return true
	}
	return false
}

// Reservation is a table booking request.
type Reservation struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	Date            time.Time
	Time            string
	Guests          int
	Status          ReservationStatus
	TableNumber     *int
	SpecialRequests string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
