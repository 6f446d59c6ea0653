package repository

import (
	"context"

	"github.com/anandpatel/cafewala/internal/domain/model"
)

// MenuFilter narrows catalog listings.
type MenuFilter struct {
	Category      *model.MenuCategory
	AvailableOnly bool
	Search        string
}

// MenuRepository describes persistence operations with the catalog.
type MenuRepository interface {
	Create(ctx context.Context, item *model.MenuItem) error
	GetByID(ctx context.Context, id string) (*model.MenuItem, error)
	List(ctx context.Context, filter MenuFilter) ([]model.MenuItem, error)
	Update(ctx context.Context, item *model.MenuItem) error
	SetAvailability(ctx context.Context, id string, available bool) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
