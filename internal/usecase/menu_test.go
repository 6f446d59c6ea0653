package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	domainErrors "github.com/anandpatel/cafewala/internal/domain/errors"
	"github.com/anandpatel/cafewala/internal/domain/model"
	"github.com/anandpatel/cafewala/internal/domain/repository"
)

type recordingMenuRepository struct {
	stubMenuRepository
	created   *model.MenuItem
	updated   *model.MenuItem
	lastFlag  *bool
	lastQuery repository.MenuFilter
}

func (r *recordingMenuRepository) Create(_ context.Context, item *model.MenuItem) error {
	r.created = item
	return nil
}

func (r *recordingMenuRepository) Update(_ context.Context, item *model.MenuItem) error {
	r.updated = item
	return nil
}

func (r *recordingMenuRepository) SetAvailability(_ context.Context, id string, available bool) error {
	r.lastFlag = &available
	return nil
}

func (r *recordingMenuRepository) List(_ context.Context, filter repository.MenuFilter) ([]model.MenuItem, error) {
	r.lastQuery = filter
	return nil, nil
}

func (r *recordingMenuRepository) Delete(context.Context, string) error { return nil }

func TestMenuCreateAssignsIDAndDefaults(t *testing.T) {
	repo := &recordingMenuRepository{}
	uc := NewMenuUseCase(repo)

	item, err := uc.Create(context.Background(), MenuItemDraft{
		Name:     "  Masala Chai  ",
		Price:    25,
		Category: "tea",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uuid.Parse(item.ID); err != nil {
		t.Fatalf("expected generated uuid, got %q", item.ID)
	}
	if item.Name != "Masala Chai" {
		t.Fatalf("expected trimmed name, got %q", item.Name)
	}
	if !item.IsAvailable {
		t.Fatal("expected new item to default to available")
	}
	if repo.created == nil {
		t.Fatal("expected item to be persisted")
	}
}

func TestMenuCreateValidation(t *testing.T) {
	cases := []struct {
		name  string
		draft MenuItemDraft
		field string
	}{
		{"empty name", MenuItemDraft{Category: "tea"}, "name"},
		{"name too long", MenuItemDraft{Name: strings.Repeat("x", maxMenuItemName+1), Category: "tea"}, "name"},
		{"negative price", MenuItemDraft{Name: "Chai", Price: -1, Category: "tea"}, "price"},
		{"unknown category", MenuItemDraft{Name: "Chai", Category: "pizza"}, "category"},
	}

	uc := NewMenuUseCase(&recordingMenuRepository{})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), tc.draft)
			ve, ok := domainErrors.IsValidation(err)
			if !ok {
				t.Fatalf("expected validation error, got %v", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("expected field %s, got %s", tc.field, ve.Field)
			}
		})
	}
}

func TestMenuUpdateKeepsProvidedID(t *testing.T) {
	repo := &recordingMenuRepository{}
	uc := NewMenuUseCase(repo)
	id := uuid.NewString()

	available := false
	item, err := uc.Update(context.Background(), id, MenuItemDraft{
		Name:        "Cold Coffee",
		Price:       80,
		Category:    "coffee",
		IsAvailable: &available,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID != id {
		t.Fatalf("expected id %s, got %s", id, item.ID)
	}
	if item.IsAvailable {
		t.Fatal("expected explicit availability to be honoured")
	}
	if repo.updated == nil {
		t.Fatal("expected item to be persisted")
	}
}

func TestMenuOperationsRejectMalformedID(t *testing.T) {
	uc := NewMenuUseCase(&recordingMenuRepository{})
	ctx := context.Background()

	if _, err := uc.Get(ctx, "nope"); err == nil {
		t.Fatal("expected error for malformed id on get")
	}
	if _, err := uc.Update(ctx, "nope", MenuItemDraft{Name: "Chai", Category: "tea"}); err == nil {
		t.Fatal("expected error for malformed id on update")
	}
	if err := uc.SetAvailability(ctx, "nope", true); err == nil {
		t.Fatal("expected error for malformed id on availability")
	}
	if err := uc.Delete(ctx, "nope"); err == nil {
		t.Fatal("expected error for malformed id on delete")
	}
}

func TestMenuListValidatesCategory(t *testing.T) {
	repo := &recordingMenuRepository{}
	uc := NewMenuUseCase(repo)

	if _, err := uc.List(context.Background(), ListMenuParams{Category: "pizza"}); err == nil {
		t.Fatal("expected error for unknown category")
	}

	if _, err := uc.List(context.Background(), ListMenuParams{Category: "gujarati-specials", AvailableOnly: true, Search: " thepla "}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastQuery.Category == nil || *repo.lastQuery.Category != model.CategoryGujaratiSpecials {
		t.Fatalf("unexpected category filter %+v", repo.lastQuery.Category)
	}
	if !repo.lastQuery.AvailableOnly {
		t.Fatal("expected availability filter to pass through")
	}
	if repo.lastQuery.Search != "thepla" {
		t.Fatalf("expected trimmed search, got %q", repo.lastQuery.Search)
	}
}
