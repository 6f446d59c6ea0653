package handlers

import (
	"context"

	"github.com/anandpatel/cafewala/internal/domain/model"
	"github.com/anandpatel/cafewala/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Login(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, draft usecase.OrderDraft) (*model.Order, error)
	TrackOrder(ctx context.Context, number string) (*model.Order, error)
	ListOrders(ctx context.Context, params usecase.ListOrdersParams) (*usecase.OrderPage, error)
	UpdateOrderStatus(ctx context.Context, number string, status model.OrderStatus) (*model.Order, error)
}

// MenuFacade provides catalog operations.
type MenuFacade interface {
	MenuList(ctx context.Context, params usecase.ListMenuParams) ([]model.MenuItem, error)
	MenuItem(ctx context.Context, id string) (*model.MenuItem, error)
	CreateMenuItem(ctx context.Context, draft usecase.MenuItemDraft) (*model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id string, draft usecase.MenuItemDraft) (*model.MenuItem, error)
	SetMenuAvailability(ctx context.Context, id string, available bool) error
	DeleteMenuItem(ctx context.Context, id string) error
}

// ReservationFacade provides booking operations.
type ReservationFacade interface {
	CreateReservation(ctx context.Context, draft usecase.ReservationDraft) (*model.Reservation, error)
	Reservation(ctx context.Context, id string) (*model.Reservation, error)
	ListReservations(ctx context.Context, params usecase.ListReservationsParams) (*usecase.ReservationPage, error)
	UpdateReservationStatus(ctx context.Context, id string, status model.ReservationStatus, tableNumber *int) (*model.Reservation, error)
	DeleteReservation(ctx context.Context, id string) error
}

// ContactFacade provides contact form operations.
type ContactFacade interface {
	SubmitContact(ctx context.Context, draft usecase.ContactDraft) (*model.ContactMessage, error)
	ListContacts(ctx context.Context, page, limit int) (*usecase.ContactPage, error)
	MarkContactRead(ctx context.Context, id string) error
}

// HealthFacade verifies dependencies are reachable.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// CafeFacade aggregates the full set of operations used across handlers.
type CafeFacade interface {
	AuthFacade
	OrderFacade
	MenuFacade
	ReservationFacade
	ContactFacade
	HealthFacade
}
