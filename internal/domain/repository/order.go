package repository

import (
	"context"
	"time"

	"github.com/anandpatel/cafewala/internal/domain/model"
)

// OrderFilter narrows admin order listings.
type OrderFilter struct {
	Status *model.OrderStatus
	Day    *time.Time
	Offset int
	Limit  int
}

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create persists the order together with its line items, assigning
	// ID, OrderNumber and timestamps atomically.
	Create(ctx context.Context, order *model.Order) error
	GetByNumber(ctx context.Context, number string) (*model.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]model.Order, int64, error)
	UpdateStatus(ctx context.Context, number string, status model.OrderStatus) (*model.Order, error)
}
