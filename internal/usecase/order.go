package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/anandpatel/cafewala/internal/domain/errors"
	"github.com/anandpatel/cafewala/internal/domain/model"
	"github.com/anandpatel/cafewala/internal/domain/repository"
)

const (
	deliveryFee           = 30.0
	freeDeliveryThreshold = 300.0
	deliveryEstimate      = 45 * time.Minute

	maxSpecialInstructions = 500

	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100

	// fallbackItemName is used when neither the snapshot nor the live
	// catalog can name a line item.
	fallbackItemName = "Menu item"
)

// OrderItemRequest is one requested line of an order draft.
type OrderItemRequest struct {
	MenuItemID string
	Quantity   int
}

// OrderDraft is the raw order request before validation. Nil Customer or
// DeliveryAddress means the field was absent from the request.
type OrderDraft struct {
	Customer            *model.CustomerInfo
	DeliveryAddress     *model.DeliveryAddress
	Items               []OrderItemRequest
	SpecialInstructions string
}

// ListOrdersParams carries admin listing filters.
type ListOrdersParams struct {
	Page   int
	Limit  int
	Status string
	Date   string
}

// OrderPage is a listing result with pagination totals.
type OrderPage struct {
	Orders     []model.Order
	Page       int
	Limit      int
	Total      int64
	TotalPages int64
}

// OrderUseCase encapsulates order construction and lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
	menu   repository.MenuRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, menu repository.MenuRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, menu: menu}
}

// Create validates the draft against the catalog, computes totals and
// persists the order. Validation is fail-fast and all-or-nothing: nothing is
// written unless every line item passes.
func (u *OrderUseCase) Create(ctx context.Context, draft OrderDraft) (*model.Order, error) {
	if draft.Customer == nil || draft.DeliveryAddress == nil || len(draft.Items) == 0 {
		return nil, domainErrors.NewValidation("order", "customer, delivery address, and items are required")
	}

	customer := model.CustomerInfo{
		Name:  strings.TrimSpace(draft.Customer.Name),
		Email: strings.ToLower(strings.TrimSpace(draft.Customer.Email)),
		Phone: strings.TrimSpace(draft.Customer.Phone),
	}
	if customer.Name == "" || customer.Email == "" || customer.Phone == "" {
		return nil, domainErrors.NewValidation("customer", "name, email, and phone are required")
	}

	address := model.DeliveryAddress{
		Street:   strings.TrimSpace(draft.DeliveryAddress.Street),
		Area:     strings.TrimSpace(draft.DeliveryAddress.Area),
		City:     strings.TrimSpace(draft.DeliveryAddress.City),
		Pincode:  strings.TrimSpace(draft.DeliveryAddress.Pincode),
		Landmark: strings.TrimSpace(draft.DeliveryAddress.Landmark),
	}
	if address.Street == "" || address.Area == "" || address.Pincode == "" {
		return nil, domainErrors.NewValidation("deliveryAddress", "street, area, and pincode are required")
	}
	if address.City == "" {
		address.City = "Ahmedabad"
	}

	instructions := strings.TrimSpace(draft.SpecialInstructions)
	if len(instructions) > maxSpecialInstructions {
		return nil, domainErrors.NewValidation("specialInstructions", "must be at most %d characters", maxSpecialInstructions)
	}

	items, subtotal, err := u.resolveItems(ctx, draft.Items)
	if err != nil {
		return nil, err
	}

	fee := deliveryFee
	if subtotal >= freeDeliveryThreshold {
		fee = 0
	}

	order := &model.Order{
		Customer:              customer,
		DeliveryAddress:       address,
		Items:                 items,
		Subtotal:              subtotal,
		DeliveryFee:           fee,
		Total:                 subtotal + fee,
		PaymentMethod:         model.PaymentMethodCOD,
		Status:                model.OrderStatusPending,
		SpecialInstructions:   instructions,
		EstimatedDeliveryTime: time.Now().Add(deliveryEstimate),
	}

	if err := u.orders.Create(ctx, order); err != nil {
		if !errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, err
		}
		// Order number collided under concurrent creation; the counter is
		// atomic so a single retry draws a fresh sequence value.
		if err := u.orders.Create(ctx, order); err != nil {
			if errors.Is(err, domainErrors.ErrAlreadyExists) {
				return nil, domainErrors.ErrConflict
			}
			return nil, err
		}
	}

	return order, nil
}

// resolveItems checks every requested line against the catalog in input order
// and returns snapshot line items. Client-supplied names and prices are
// ignored; the catalog is the only source of truth.
func (u *OrderUseCase) resolveItems(ctx context.Context, requests []OrderItemRequest) ([]model.OrderLineItem, float64, error) {
	items := make([]model.OrderLineItem, 0, len(requests))
	var subtotal float64

	for i, req := range requests {
		field := fmt.Sprintf("items[%d]", i)

		if _, err := uuid.Parse(req.MenuItemID); err != nil {
			return nil, 0, domainErrors.NewValidation(field, "invalid menu item id: %s", req.MenuItemID)
		}

		menuItem, err := u.menu.GetByID(ctx, req.MenuItemID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return nil, 0, domainErrors.NewValidation(field, "menu item %s not found", req.MenuItemID)
			}
			return nil, 0, err
		}

		if !menuItem.IsAvailable {
			return nil, 0, domainErrors.NewValidation(field, "%s is currently unavailable", menuItem.Name)
		}

		if req.Quantity < 1 {
			return nil, 0, domainErrors.NewValidation(field, "quantity must be at least 1")
		}

		item := model.OrderLineItem{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Price:      menuItem.Price,
			Image:      menuItem.Image,
			Quantity:   req.Quantity,
		}
		subtotal += item.LineTotal()
		items = append(items, item)
	}

	return items, subtotal, nil
}

// Track returns the order for a customer-facing view, filling item defaults
// when neither the snapshot nor the catalog has data.
func (u *OrderUseCase) Track(ctx context.Context, number string) (*model.Order, error) {
	order, err := u.orders.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	for i := range order.Items {
		if order.Items[i].Name == "" {
			order.Items[i].Name = fallbackItemName
		}
	}
	return order, nil
}

// UpdateStatus transitions the order identified by number. Any status from
// the enumeration is reachable from any other; delivered stamps the actual
// delivery time.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, number string, status model.OrderStatus) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, domainErrors.ErrInvalidStatus
	}
	return u.orders.UpdateStatus(ctx, number, status)
}

// List returns a page of orders, newest first.
func (u *OrderUseCase) List(ctx context.Context, params ListOrdersParams) (*OrderPage, error) {
	page := params.Page
	if page < 1 {
		page = defaultPage
	}
	limit := params.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	filter := repository.OrderFilter{
		Offset: (page - 1) * limit,
		Limit:  limit,
	}

	if params.Status != "" {
		status := model.OrderStatus(params.Status)
		if !model.ValidOrderStatus(status) {
			return nil, domainErrors.ErrInvalidStatus
		}
		filter.Status = &status
	}

	if params.Date != "" {
		day, err := time.Parse("2006-01-02", params.Date)
		if err != nil {
			return nil, domainErrors.NewValidation("date", "must be in YYYY-MM-DD format")
		}
		filter.Day = &day
	}

	orders, total, err := u.orders.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	return &OrderPage{
		Orders:     orders,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
