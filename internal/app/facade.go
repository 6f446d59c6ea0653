package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/anandpatel/cafewala/internal/adapter/notify"
	"github.com/anandpatel/cafewala/internal/domain/model"
	"github.com/anandpatel/cafewala/internal/usecase"
)

// notifyTimeout bounds how long a best-effort notification may take.
const notifyTimeout = 5 * time.Second

// HealthChecker verifies dependencies are reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// CafeFacade aggregates the full set of operations used across handlers and
// workers.
type CafeFacade struct {
	auth         *usecase.AuthUseCase
	orders       *usecase.OrderUseCase
	menu         *usecase.MenuUseCase
	reservations *usecase.ReservationUseCase
	contacts     *usecase.ContactUseCase
	notifier     notify.Publisher
	health       HealthChecker
	logger       *slog.Logger
}

func NewCafeFacade(
	auth *usecase.AuthUseCase,
	orders *usecase.OrderUseCase,
	menu *usecase.MenuUseCase,
	reservations *usecase.ReservationUseCase,
	contacts *usecase.ContactUseCase,
	notifier notify.Publisher,
	health HealthChecker,
	logger *slog.Logger,
) *CafeFacade {
	return &CafeFacade{
		auth:         auth,
		orders:       orders,
		menu:         menu,
		reservations: reservations,
		contacts:     contacts,
		notifier:     notifier,
		health:       health,
		logger:       logger,
	}
}

// --- auth ---

func (f *CafeFacade) Login(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *CafeFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

// --- orders ---

// PlaceOrder builds and persists the order, then dispatches a confirmation
// notification. The dispatch is best-effort: it runs off the request path and
// its failure is only logged.
func (f *CafeFacade) PlaceOrder(ctx context.Context, draft usecase.OrderDraft) (*model.Order, error) {
	order, err := f.orders.Create(ctx, draft)
	if err != nil {
		return nil, err
	}
	f.dispatch(notify.RouteOrderConfirmed, order.OrderNumber, order)
	return order, nil
}

func (f *CafeFacade) TrackOrder(ctx context.Context, number string) (*model.Order, error) {
	return f.orders.Track(ctx, number)
}

func (f *CafeFacade) ListOrders(ctx context.Context, params usecase.ListOrdersParams) (*usecase.OrderPage, error) {
	return f.orders.List(ctx, params)
}

func (f *CafeFacade) UpdateOrderStatus(ctx context.Context, number string, status model.OrderStatus) (*model.Order, error) {
	order, err := f.orders.UpdateStatus(ctx, number, status)
	if err != nil {
		return nil, err
	}
	if status == model.OrderStatusConfirmed {
		f.dispatch(notify.RouteOrderConfirmed, order.OrderNumber, order)
	}
	return order, nil
}

// --- menu ---

func (f *CafeFacade) MenuList(ctx context.Context, params usecase.ListMenuParams) ([]model.MenuItem, error) {
	return f.menu.List(ctx, params)
}

func (f *CafeFacade) MenuItem(ctx context.Context, id string) (*model.MenuItem, error) {
	return f.menu.Get(ctx, id)
}

func (f *CafeFacade) CreateMenuItem(ctx context.Context, draft usecase.MenuItemDraft) (*model.MenuItem, error) {
	return f.menu.Create(ctx, draft)
}

func (f *CafeFacade) UpdateMenuItem(ctx context.Context, id string, draft usecase.MenuItemDraft) (*model.MenuItem, error) {
	return f.menu.Update(ctx, id, draft)
}

func (f *CafeFacade) SetMenuAvailability(ctx context.Context, id string, available bool) error {
	return f.menu.SetAvailability(ctx, id, available)
}

func (f *CafeFacade) DeleteMenuItem(ctx context.Context, id string) error {
	return f.menu.Delete(ctx, id)
}

// --- reservations ---

func (f *CafeFacade) CreateReservation(ctx context.Context, draft usecase.ReservationDraft) (*model.Reservation, error) {
	return f.reservations.Create(ctx, draft)
}

func (f *CafeFacade) Reservation(ctx context.Context, id string) (*model.Reservation, error) {
	return f.reservations.Get(ctx, id)
}

func (f *CafeFacade) ListReservations(ctx context.Context, params usecase.ListReservationsParams) (*usecase.ReservationPage, error) {
	return f.reservations.List(ctx, params)
}

func (f *CafeFacade) UpdateReservationStatus(ctx context.Context, id string, status model.ReservationStatus, tableNumber *int) (*model.Reservation, error) {
	reservation, err := f.reservations.UpdateStatus(ctx, id, status, tableNumber)
	if err != nil {
		return nil, err
	}
	if status == model.ReservationStatusConfirmed {
		f.dispatch(notify.RouteReservationConfirmed, reservation.ID, reservation)
	}
	return reservation, nil
}

func (f *CafeFacade) DeleteReservation(ctx context.Context, id string) error {
	return f.reservations.Delete(ctx, id)
}

func (f *CafeFacade) CompletePastReservations(ctx context.Context, limit int) (int64, error) {
	return f.reservations.CompletePast(ctx, limit)
}

// --- contact ---

func (f *CafeFacade) SubmitContact(ctx context.Context, draft usecase.ContactDraft) (*model.ContactMessage, error) {
	return f.contacts.Create(ctx, draft)
}

func (f *CafeFacade) ListContacts(ctx context.Context, page, limit int) (*usecase.ContactPage, error) {
	return f.contacts.List(ctx, page, limit)
}

func (f *CafeFacade) MarkContactRead(ctx context.Context, id string) error {
	return f.contacts.MarkRead(ctx, id)
}

// --- health ---

func (f *CafeFacade) Health(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}

// dispatch publishes asynchronously so notification latency never extends
// the request and failures never affect the committed operation.
func (f *CafeFacade) dispatch(routingKey, subject string, payload any) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := f.notifier.Publish(ctx, routingKey, payload); err != nil {
			f.logger.Error("notification dispatch failed",
				slog.String("route", routingKey),
				slog.String("subject", subject),
				slog.String("error", err.Error()),
			)
		}
	}()
}
