package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/anandpatel/cafewala/internal/domain/errors"
	"github.com/anandpatel/cafewala/internal/domain/model"
	"github.com/anandpatel/cafewala/internal/domain/repository"
)

type stubMenuRepository struct {
	items   map[string]*model.MenuItem
	getByID func(context.Context, string) (*model.MenuItem, error)
}

func (s stubMenuRepository) Create(context.Context, *model.MenuItem) error {
	panic("not implemented")
}

func (s stubMenuRepository) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	if s.getByID != nil {
		return s.getByID(ctx, id)
	}
	if item, ok := s.items[id]; ok {
		return item, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s stubMenuRepository) List(context.Context, repository.MenuFilter) ([]model.MenuItem, error) {
	panic("not implemented")
}

func (s stubMenuRepository) Update(context.Context, *model.MenuItem) error {
	panic("not implemented")
}

func (s stubMenuRepository) SetAvailability(context.Context, string, bool) error {
	panic("not implemented")
}

func (s stubMenuRepository) Delete(context.Context, string) error {
	panic("not implemented")
}

func (s stubMenuRepository) Count(context.Context) (int64, error) {
	panic("not implemented")
}

type stubOrderRepository struct {
	createFn       func(context.Context, *model.Order) error
	getByNumberFn  func(context.Context, string) (*model.Order, error)
	listFn         func(context.Context, repository.OrderFilter) ([]model.Order, int64, error)
	updateStatusFn func(context.Context, string, model.OrderStatus) (*model.Order, error)
}

func (s stubOrderRepository) Create(ctx context.Context, order *model.Order) error {
	return s.createFn(ctx, order)
}

func (s stubOrderRepository) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	return s.getByNumberFn(ctx, number)
}

func (s stubOrderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, int64, error) {
	return s.listFn(ctx, filter)
}

func (s stubOrderRepository) UpdateStatus(ctx context.Context, number string, status model.OrderStatus) (*model.Order, error) {
	return s.updateStatusFn(ctx, number, status)
}

func newCatalog() (stubMenuRepository, string, string) {
	chaiID := uuid.NewString()
	dhoklaID := uuid.NewString()
	return stubMenuRepository{items: map[string]*model.MenuItem{
		chaiID:   {ID: chaiID, Name: "Masala Chai", Price: 25, IsAvailable: true},
		dhoklaID: {ID: dhoklaID, Name: "Khaman Dhokla", Price: 60, IsAvailable: true},
	}}, chaiID, dhoklaID
}

func validDraft(items ...OrderItemRequest) OrderDraft {
	return OrderDraft{
		Customer:        &model.CustomerInfo{Name: "Ravi", Email: "Ravi@Example.com ", Phone: "9876543210"},
		DeliveryAddress: &model.DeliveryAddress{Street: "12 CG Road", Area: "Navrangpura", Pincode: "380009"},
		Items:           items,
	}
}

func TestOrderCreateComputesTotalsWithDeliveryFee(t *testing.T) {
	menu, chaiID, dhoklaID := newCatalog()
	var created *model.Order
	orders := stubOrderRepository{createFn: func(_ context.Context, order *model.Order) error {
		created = order
		order.OrderNumber = "CAFE-20260831-0001"
		return nil
	}}
	uc := NewOrderUseCase(orders, menu)

	order, err := uc.Create(context.Background(), validDraft(
		OrderItemRequest{MenuItemID: chaiID, Quantity: 2},
		OrderItemRequest{MenuItemID: dhoklaID, Quantity: 1},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("expected order to be persisted")
	}
	if order.Subtotal != 110 {
		t.Fatalf("unexpected subtotal %v", order.Subtotal)
	}
	if order.DeliveryFee != 30 {
		t.Fatalf("expected delivery fee below threshold, got %v", order.DeliveryFee)
	}
	if order.Total != 140 {
		t.Fatalf("unexpected total %v", order.Total)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("unexpected status %s", order.Status)
	}
	if order.PaymentMethod != model.PaymentMethodCOD {
		t.Fatalf("unexpected payment method %s", order.PaymentMethod)
	}
	if order.Customer.Email != "ravi@example.com" {
		t.Fatalf("expected normalized email, got %s", order.Customer.Email)
	}
	if order.DeliveryAddress.City != "Ahmedabad" {
		t.Fatalf("expected default city, got %s", order.DeliveryAddress.City)
	}
}

func TestOrderCreateWaivesFeeAtThreshold(t *testing.T) {
	menu, _, dhoklaID := newCatalog()
	orders := stubOrderRepository{createFn: func(context.Context, *model.Order) error { return nil }}
	uc := NewOrderUseCase(orders, menu)

	// 5 * 60 = 300 hits the free delivery threshold exactly.
	order, err := uc.Create(context.Background(), validDraft(OrderItemRequest{MenuItemID: dhoklaID, Quantity: 5}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.DeliveryFee != 0 {
		t.Fatalf("expected free delivery at threshold, got %v", order.DeliveryFee)
	}
	if order.Total != 300 {
		t.Fatalf("unexpected total %v", order.Total)
	}
}

func TestOrderCreateSnapshotsCatalogPrices(t *testing.T) {
	menu, chaiID, _ := newCatalog()
	orders := stubOrderRepository{createFn: func(context.Context, *model.Order) error { return nil }}
	uc := NewOrderUseCase(orders, menu)

	order, err := uc.Create(context.Background(), validDraft(OrderItemRequest{MenuItemID: chaiID, Quantity: 3}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	item := order.Items[0]
	if item.Name != "Masala Chai" || item.Price != 25 {
		t.Fatalf("expected catalog snapshot, got %+v", item)
	}
	if item.LineTotal() != 75 {
		t.Fatalf("unexpected line total %v", item.LineTotal())
	}
}

func TestOrderCreateValidationFailures(t *testing.T) {
	menu, chaiID, _ := newCatalog()
	unavailableID := uuid.NewString()
	menu.items[unavailableID] = &model.MenuItem{ID: unavailableID, Name: "Cold Coffee", Price: 80, IsAvailable: false}
	missingID := uuid.NewString()

	cases := []struct {
		name  string
		draft OrderDraft
		field string
	}{
		{
			name:  "missing customer",
			draft: OrderDraft{DeliveryAddress: &model.DeliveryAddress{}, Items: []OrderItemRequest{{MenuItemID: chaiID, Quantity: 1}}},
			field: "order",
		},
		{
			name:  "no items",
			draft: OrderDraft{Customer: &model.CustomerInfo{}, DeliveryAddress: &model.DeliveryAddress{}},
			field: "order",
		},
		{
			name: "blank customer fields",
			draft: func() OrderDraft {
				d := validDraft(OrderItemRequest{MenuItemID: chaiID, Quantity: 1})
				d.Customer = &model.CustomerInfo{Name: "  ", Email: "a@b.c", Phone: "1"}
				return d
			}(),
			field: "customer",
		},
		{
			name: "incomplete address",
			draft: func() OrderDraft {
				d := validDraft(OrderItemRequest{MenuItemID: chaiID, Quantity: 1})
				d.DeliveryAddress = &model.DeliveryAddress{Street: "12 CG Road"}
				return d
			}(),
			field: "deliveryAddress",
		},
		{
			name: "instructions too long",
			draft: func() OrderDraft {
				d := validDraft(OrderItemRequest{MenuItemID: chaiID, Quantity: 1})
				d.SpecialInstructions = strings.Repeat("x", maxSpecialInstructions+1)
				return d
			}(),
			field: "specialInstructions",
		},
		{
			name:  "malformed item id",
			draft: validDraft(OrderItemRequest{MenuItemID: "not-a-uuid", Quantity: 1}),
			field: "items[0]",
		},
		{
			name:  "unknown item",
			draft: validDraft(OrderItemRequest{MenuItemID: missingID, Quantity: 1}),
			field: "items[0]",
		},
		{
			name:  "unavailable item",
			draft: validDraft(OrderItemRequest{MenuItemID: unavailableID, Quantity: 1}),
			field: "items[0]",
		},
		{
			name: "zero quantity on second line",
			draft: validDraft(
				OrderItemRequest{MenuItemID: chaiID, Quantity: 1},
				OrderItemRequest{MenuItemID: chaiID, Quantity: 0},
			),
			field: "items[1]",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			orders := stubOrderRepository{createFn: func(context.Context, *model.Order) error {
				t.Fatal("create should not be called for invalid draft")
				return nil
			}}
			uc := NewOrderUseCase(orders, menu)

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

func TestOrderCreateRetriesOnceOnNumberCollision(t *testing.T) {
	menu, chaiID, _ := newCatalog()
	calls := 0
	orders := stubOrderRepository{createFn: func(_ context.Context, order *model.Order) error {
		calls++
		if calls == 1 {
			return domainErrors.ErrAlreadyExists
		}
		order.OrderNumber = "CAFE-20260831-0002"
		return nil
	}}
	uc := NewOrderUseCase(orders, menu)

	order, err := uc.Create(context.Background(), validDraft(OrderItemRequest{MenuItemID: chaiID, Quantity: 1}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected exactly one retry, got %d calls", calls)
	}
	if order.OrderNumber != "CAFE-20260831-0002" {
		t.Fatalf("unexpected order number %s", order.OrderNumber)
	}
}

func TestOrderCreateReportsConflictAfterRetry(t *testing.T) {
	menu, chaiID, _ := newCatalog()
	orders := stubOrderRepository{createFn: func(context.Context, *model.Order) error {
		return domainErrors.ErrAlreadyExists
	}}
	uc := NewOrderUseCase(orders, menu)

	if _, err := uc.Create(context.Background(), validDraft(OrderItemRequest{MenuItemID: chaiID, Quantity: 1})); !errors.Is(err, domainErrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestOrderTrackFillsFallbackItemName(t *testing.T) {
	menu, _, _ := newCatalog()
	orders := stubOrderRepository{getByNumberFn: func(_ context.Context, number string) (*model.Order, error) {
		return &model.Order{
			OrderNumber: number,
			Items:       []model.OrderLineItem{{MenuItemID: uuid.NewString(), Name: "", Price: 25, Quantity: 1}},
		}, nil
	}}
	uc := NewOrderUseCase(orders, menu)

	order, err := uc.Track(context.Background(), "CAFE-20260831-0001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Items[0].Name != fallbackItemName {
		t.Fatalf("expected fallback name, got %q", order.Items[0].Name)
	}
}

func TestOrderUpdateStatusRejectsUnknownStatus(t *testing.T) {
	menu, _, _ := newCatalog()
	orders := stubOrderRepository{updateStatusFn: func(context.Context, string, model.OrderStatus) (*model.Order, error) {
		t.Fatal("repository should not be called for unknown status")
		return nil, nil
	}}
	uc := NewOrderUseCase(orders, menu)

	if _, err := uc.UpdateStatus(context.Background(), "CAFE-20260831-0001", "shipped"); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected invalid status error, got %v", err)
	}
}

func TestOrderListNormalizesPagination(t *testing.T) {
	menu, _, _ := newCatalog()
	var gotFilter repository.OrderFilter
	orders := stubOrderRepository{listFn: func(_ context.Context, filter repository.OrderFilter) ([]model.Order, int64, error) {
		gotFilter = filter
		return []model.Order{{OrderNumber: "CAFE-20260831-0001"}}, 41, nil
	}}
	uc := NewOrderUseCase(orders, menu)

	page, err := uc.List(context.Background(), ListOrdersParams{Page: 0, Limit: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotFilter.Offset != 0 || gotFilter.Limit != maxLimit {
		t.Fatalf("unexpected filter %+v", gotFilter)
	}
	if page.Page != 1 || page.Limit != maxLimit {
		t.Fatalf("unexpected page %d limit %d", page.Page, page.Limit)
	}
	if page.Total != 41 || page.TotalPages != 1 {
		t.Fatalf("unexpected totals %d/%d", page.Total, page.TotalPages)
	}
}

func TestOrderListFilters(t *testing.T) {
	menu, _, _ := newCatalog()
	var gotFilter repository.OrderFilter
	orders := stubOrderRepository{listFn: func(_ context.Context, filter repository.OrderFilter) ([]model.Order, int64, error) {
		gotFilter = filter
		return nil, 0, nil
	}}
	uc := NewOrderUseCase(orders, menu)

	if _, err := uc.List(context.Background(), ListOrdersParams{Status: "preparing", Date: "2026-08-31"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotFilter.Status == nil || *gotFilter.Status != model.OrderStatusPreparing {
		t.Fatalf("expected preparing filter, got %+v", gotFilter.Status)
	}
	if gotFilter.Day == nil || !gotFilter.Day.Equal(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected day filter %+v", gotFilter.Day)
	}

	if _, err := uc.List(context.Background(), ListOrdersParams{Status: "shipped"}); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected invalid status error, got %v", err)
	}
	if _, err := uc.List(context.Background(), ListOrdersParams{Date: "31-08-2026"}); err == nil {
		t.Fatal("expected error for malformed date")
	}
}
