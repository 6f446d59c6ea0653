package test

import (
	"context"

	"github.com/anandpatel/cafewala/internal/domain/model"
	"github.com/anandpatel/cafewala/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	LoginFn func(context.Context, string, string) (string, error)
	ParseFn func(string) (int64, error)
}

// Login returns token for successful authentication scenarios.
func (s AuthFacadeStub) Login(ctx context.Context, login, password string) (string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, login, password)
	}
	return "token", nil
}

// ParseToken returns stored identifier for authenticated admin.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceOrderFn        func(context.Context, usecase.OrderDraft) (*model.Order, error)
	TrackOrderFn        func(context.Context, string) (*model.Order, error)
	ListOrdersFn        func(context.Context, usecase.ListOrdersParams) (*usecase.OrderPage, error)
	UpdateOrderStatusFn func(context.Context, string, model.OrderStatus) (*model.Order, error)
}

func (s OrderFacadeStub) PlaceOrder(ctx context.Context, draft usecase.OrderDraft) (*model.Order, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, draft)
	}
	return &model.Order{OrderNumber: "CAFE-20260101-0001", Status: model.OrderStatusPending}, nil
}

func (s OrderFacadeStub) TrackOrder(ctx context.Context, number string) (*model.Order, error) {
	if s.TrackOrderFn != nil {
		return s.TrackOrderFn(ctx, number)
	}
	return &model.Order{OrderNumber: number, Status: model.OrderStatusPending}, nil
}

func (s OrderFacadeStub) ListOrders(ctx context.Context, params usecase.ListOrdersParams) (*usecase.OrderPage, error) {
	if s.ListOrdersFn != nil {
		return s.ListOrdersFn(ctx, params)
	}
	return &usecase.OrderPage{Page: 1, Limit: 20}, nil
}

func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, number string, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, number, status)
	}
	return &model.Order{OrderNumber: number, Status: status}, nil
}

// MenuFacadeStub provides controllable behaviour for catalog endpoints.
type MenuFacadeStub struct {
	MenuListFn            func(context.Context, usecase.ListMenuParams) ([]model.MenuItem, error)
	MenuItemFn            func(context.Context, string) (*model.MenuItem, error)
	CreateMenuItemFn      func(context.Context, usecase.MenuItemDraft) (*model.MenuItem, error)
	UpdateMenuItemFn      func(context.Context, string, usecase.MenuItemDraft) (*model.MenuItem, error)
	SetMenuAvailabilityFn func(context.Context, string, bool) error
	DeleteMenuItemFn      func(context.Context, string) error
}

func (s MenuFacadeStub) MenuList(ctx context.Context, params usecase.ListMenuParams) ([]model.MenuItem, error) {
	if s.MenuListFn != nil {
		return s.MenuListFn(ctx, params)
	}
	return nil, nil
}

func (s MenuFacadeStub) MenuItem(ctx context.Context, id string) (*model.MenuItem, error) {
	if s.MenuItemFn != nil {
		return s.MenuItemFn(ctx, id)
	}
	return &model.MenuItem{ID: id}, nil
}

func (s MenuFacadeStub) CreateMenuItem(ctx context.Context, draft usecase.MenuItemDraft) (*model.MenuItem, error) {
	if s.CreateMenuItemFn != nil {
		return s.CreateMenuItemFn(ctx, draft)
	}
	return &model.MenuItem{Name: draft.Name}, nil
}

func (s MenuFacadeStub) UpdateMenuItem(ctx context.Context, id string, draft usecase.MenuItemDraft) (*model.MenuItem, error) {
	if s.UpdateMenuItemFn != nil {
		return s.UpdateMenuItemFn(ctx, id, draft)
	}
	return &model.MenuItem{ID: id, Name: draft.Name}, nil
}

func (s MenuFacadeStub) SetMenuAvailability(ctx context.Context, id string, available bool) error {
	if s.SetMenuAvailabilityFn != nil {
		return s.SetMenuAvailabilityFn(ctx, id, available)
	}
	return nil
}

func (s MenuFacadeStub) DeleteMenuItem(ctx context.Context, id string) error {
	if s.DeleteMenuItemFn != nil {
		return s.DeleteMenuItemFn(ctx, id)
	}
	return nil
}

// ReservationFacadeStub provides controllable behaviour for booking endpoints.
type ReservationFacadeStub struct {
	CreateReservationFn       func(context.Context, usecase.ReservationDraft) (*model.Reservation, error)
	ReservationFn             func(context.Context, string) (*model.Reservation, error)
	ListReservationsFn        func(context.Context, usecase.ListReservationsParams) (*usecase.ReservationPage, error)
	UpdateReservationStatusFn func(context.Context, string, model.ReservationStatus, *int) (*model.Reservation, error)
	DeleteReservationFn       func(context.Context, string) error
}

func (s ReservationFacadeStub) CreateReservation(ctx context.Context, draft usecase.ReservationDraft) (*model.Reservation, error) {
	if s.CreateReservationFn != nil {
		return s.CreateReservationFn(ctx, draft)
	}
	return &model.Reservation{Name: draft.Name, Status: model.ReservationStatusPending}, nil
}

func (s ReservationFacadeStub) Reservation(ctx context.Context, id string) (*model.Reservation, error) {
	if s.ReservationFn != nil {
		return s.ReservationFn(ctx, id)
	}
	return &model.Reservation{ID: id}, nil
}

func (s ReservationFacadeStub) ListReservations(ctx context.Context, params usecase.ListReservationsParams) (*usecase.ReservationPage, error) {
	if s.ListReservationsFn != nil {
		return s.ListReservationsFn(ctx, params)
	}
	return &usecase.ReservationPage{Page: 1, Limit: 20}, nil
}

func (s ReservationFacadeStub) UpdateReservationStatus(ctx context.Context, id string, status model.ReservationStatus, tableNumber *int) (*model.Reservation, error) {
	if s.UpdateReservationStatusFn != nil {
		return s.UpdateReservationStatusFn(ctx, id, status, tableNumber)
	}
	return &model.Reservation{ID: id, Status: status, TableNumber: tableNumber}, nil
}

func (s ReservationFacadeStub) DeleteReservation(ctx context.Context, id string) error {
	if s.DeleteReservationFn != nil {
		return s.DeleteReservationFn(ctx, id)
	}
	return nil
}

// ContactFacadeStub provides controllable behaviour for contact endpoints.
type ContactFacadeStub struct {
	SubmitContactFn   func(context.Context, usecase.ContactDraft) (*model.ContactMessage, error)
	ListContactsFn    func(context.Context, int, int) (*usecase.ContactPage, error)
	MarkContactReadFn func(context.Context, string) error
}

func (s ContactFacadeStub) SubmitContact(ctx context.Context, draft usecase.ContactDraft) (*model.ContactMessage, error) {
	if s.SubmitContactFn != nil {
		return s.SubmitContactFn(ctx, draft)
	}
	return &model.ContactMessage{Name: draft.Name, Message: draft.Message}, nil
}

func (s ContactFacadeStub) ListContacts(ctx context.Context, page, limit int) (*usecase.ContactPage, error) {
	if s.ListContactsFn != nil {
		return s.ListContactsFn(ctx, page, limit)
	}
	return &usecase.ContactPage{Page: 1, Limit: 20}, nil
}

func (s ContactFacadeStub) MarkContactRead(ctx context.Context, id string) error {
	if s.MarkContactReadFn != nil {
		return s.MarkContactReadFn(ctx, id)
	}
	return nil
}

// HealthFacadeStub reports configurable health state.
type HealthFacadeStub struct {
	Err error
}

func (s HealthFacadeStub) Health(ctx context.Context) error {
	return s.Err
}

// CafeFacadeStub aggregates facade dependencies for HTTP layer tests.
type CafeFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	MenuFacadeStub
	ReservationFacadeStub
	ContactFacadeStub
	HealthFacadeStub
}
