package repository

import (
	"context"
	"time"

	"github.com/anandpatel/cafewala/internal/domain/model"
)

// ReservationFilter narrows reservation listings.
type ReservationFilter struct {
	Status *model.ReservationStatus
	Day    *time.Time
	Offset int
	Limit  int
}

// ReservationRepository describes persistence operations with reservations.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *model.Reservation) error
	GetByID(ctx context.Context, id string) (*model.Reservation, error)
	List(ctx context.Context, filter ReservationFilter) ([]model.Reservation, int64, error)
	UpdateStatus(ctx context.Context, id string, status model.ReservationStatus, tableNumber *int) (*model.Reservation, error)
	Delete(ctx context.Context, id string) error
	CompletePast(ctx context.Context, now time.Time, limit int) (int64, error)
}
