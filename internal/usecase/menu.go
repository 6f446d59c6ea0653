package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/anandpatel/cafewala/internal/domain/errors"
	"github.com/anandpatel/cafewala/internal/domain/model"
	"github.com/anandpatel/cafewala/internal/domain/repository"
)

const maxMenuItemName = 100

// MenuItemDraft carries catalog item fields for create/update.
type MenuItemDraft struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Image       string
	IsAvailable *bool
}

// ListMenuParams narrows public catalog listings.
type ListMenuParams struct {
	Category      string
	AvailableOnly bool
	Search        string
}

// MenuUseCase encapsulates catalog management logic.
type MenuUseCase struct {
	menu repository.MenuRepository
}

// NewMenuUseCase constructs MenuUseCase.
func NewMenuUseCase(menu repository.MenuRepository) *MenuUseCase {
	return &MenuUseCase{menu: menu}
}

func (u *MenuUseCase) validateDraft(draft MenuItemDraft) (model.MenuItem, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return model.MenuItem{}, domainErrors.NewValidation("name", "name is required")
	}
	if len(name) > maxMenuItemName {
		return model.MenuItem{}, domainErrors.NewValidation("name", "must be at most %d characters", maxMenuItemName)
	}
	if draft.Price < 0 {
		return model.MenuItem{}, domainErrors.NewValidation("price", "must not be negative")
	}
	category := model.MenuCategory(draft.Category)
	if !model.ValidMenuCategory(category) {
		return model.MenuItem{}, domainErrors.NewValidation("category", "unknown category: %s", draft.Category)
	}

	available := true
	if draft.IsAvailable != nil {
		available = *draft.IsAvailable
	}

	return model.MenuItem{
		Name:        name,
		Description: strings.TrimSpace(draft.Description),
		Price:       draft.Price,
		Category:    category,
		Image:       strings.TrimSpace(draft.Image),
		IsAvailable: available,
	}, nil
}

// Create validates and persists a new catalog item.
func (u *MenuUseCase) Create(ctx context.Context, draft MenuItemDraft) (*model.MenuItem, error) {
	item, err := u.validateDraft(draft)
	if err != nil {
		return nil, err
	}
	item.ID = uuid.NewString()
	if err := u.menu.Create(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Get returns one catalog item by id.
func (u *MenuUseCase) Get(ctx context.Context, id string) (*model.MenuItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domainErrors.NewValidation("id", "invalid menu item id: %s", id)
	}
	return u.menu.GetByID(ctx, id)
}

// List returns catalog items matching the filters.
func (u *MenuUseCase) List(ctx context.Context, params ListMenuParams) ([]model.MenuItem, error) {
	filter := repository.MenuFilter{
		AvailableOnly: params.AvailableOnly,
		Search:        strings.TrimSpace(params.Search),
	}
	if params.Category != "" {
		category := model.MenuCategory(params.Category)
		if !model.ValidMenuCategory(category) {
			return nil, domainErrors.NewValidation("category", "unknown category: %s", params.Category)
		}
		filter.Category = &category
	}
	return u.menu.List(ctx, filter)
}

// Update validates and stores new field values for an existing item.
func (u *MenuUseCase) Update(ctx context.Context, id string, draft MenuItemDraft) (*model.MenuItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domainErrors.NewValidation("id", "invalid menu item id: %s", id)
	}
	item, err := u.validateDraft(draft)
	if err != nil {
		return nil, err
	}
	item.ID = id
	if err := u.menu.Update(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// SetAvailability toggles whether an item can be ordered.
func (u *MenuUseCase) SetAvailability(ctx context.Context, id string, available bool) error {
	if _, err := uuid.Parse(id); err != nil {
		return domainErrors.NewValidation("id", "invalid menu item id: %s", id)
	}
	return u.menu.SetAvailability(ctx, id, available)
}

// Delete removes an item from the catalog. Existing orders keep their
// snapshots.
func (u *MenuUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domainErrors.NewValidation("id", "invalid menu item id: %s", id)
	}
	return u.menu.Delete(ctx, id)
}
