package test

import (
	"context"
	"time"

	domainErrors "github.com/anandpatel/cafewala/internal/domain/errors"
	"github.com/anandpatel/cafewala/internal/domain/model"
	"github.com/anandpatel/cafewala/internal/domain/repository"
)

// MenuRepositoryStub stores catalog items in-memory for tests.
type MenuRepositoryStub struct {
	Items map[string]*model.MenuItem
	Err   error

	GetByIDFn func(context.Context, string) (*model.MenuItem, error)
}

// NewMenuRepositoryStub constructs stub repository with initialized map.
func NewMenuRepositoryStub(items ...model.MenuItem) *MenuRepositoryStub {
	stub := &MenuRepositoryStub{Items: make(map[string]*model.MenuItem)}
	for i := range items {
		item := items[i]
		stub.Items[item.ID] = &item
	}
	return stub
}

// Create registers item unless stub has explicit error.
func (s *MenuRepositoryStub) Create(ctx context.Context, item *model.MenuItem) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Items == nil {
		s.Items = make(map[string]*model.MenuItem)
	}
	if _, exists := s.Items[item.ID]; exists {
		return domainErrors.ErrAlreadyExists
	}
	stored := *item
	s.Items[item.ID] = &stored
	return nil
}

// GetByID fetches item or returns not found.
func (s *MenuRepositoryStub) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if item, ok := s.Items[id]; ok {
		copied := *item
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored items matching the filter.
func (s *MenuRepositoryStub) List(ctx context.Context, filter repository.MenuFilter) ([]model.MenuItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	items := make([]model.MenuItem, 0, len(s.Items))
	for _, item := range s.Items {
		if filter.Category != nil && item.Category != *filter.Category {
			continue
		}
		if filter.AvailableOnly && !item.IsAvailable {
			continue
		}
		items = append(items, *item)
	}
	return items, nil
}

// Update replaces stored item fields.
func (s *MenuRepositoryStub) Update(ctx context.Context, item *model.MenuItem) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Items[item.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	stored := *item
	s.Items[item.ID] = &stored
	return nil
}

// SetAvailability toggles the stored flag.
func (s *MenuRepositoryStub) SetAvailability(ctx context.Context, id string, available bool) error {
	if s.Err != nil {
		return s.Err
	}
	item, ok := s.Items[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	item.IsAvailable = available
	return nil
}

// Delete removes the stored item.
func (s *MenuRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Items[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Items, id)
	return nil
}

// Count returns how many items are stored.
func (s *MenuRepositoryStub) Count(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return int64(len(s.Items)), nil
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, *model.Order) error
	GetByNumberFn  func(context.Context, string) (*model.Order, error)
	ListFn         func(context.Context, repository.OrderFilter) ([]model.Order, int64, error)
	UpdateStatusFn func(context.Context, string, model.OrderStatus) (*model.Order, error)

	Created []*model.Order
}

// Create delegates to override or records the order with a stub number.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	s.Created = append(s.Created, order)
	order.ID = int64(len(s.Created))
	order.OrderNumber = "CAFE-20260101-0001"
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	return nil
}

// GetByNumber delegates to override or returns not found.
func (s *OrderRepositoryStub) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	if s.GetByNumberFn != nil {
		return s.GetByNumberFn(ctx, number)
	}
	return nil, domainErrors.ErrNotFound
}

// List delegates to override or returns an empty page.
func (s *OrderRepositoryStub) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, int64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return nil, 0, nil
}

// UpdateStatus delegates to override or returns not found.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, number string, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, number, status)
	}
	return nil, domainErrors.ErrNotFound
}

// ReservationRepositoryStub allows tests to customize behaviour.
type ReservationRepositoryStub struct {
	CreateFn       func(context.Context, *model.Reservation) error
	GetByIDFn      func(context.Context, string) (*model.Reservation, error)
	ListFn         func(context.Context, repository.ReservationFilter) ([]model.Reservation, int64, error)
	UpdateStatusFn func(context.Context, string, model.ReservationStatus, *int) (*model.Reservation, error)
	DeleteFn       func(context.Context, string) error
	CompletePastFn func(context.Context, time.Time, int64) (int64, error)

	Created []*model.Reservation
}

// Create delegates to override or records the reservation.
func (s *ReservationRepositoryStub) Create(ctx context.Context, reservation *model.Reservation) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, reservation)
	}
	s.Created = append(s.Created, reservation)
	reservation.CreatedAt = time.Now()
	reservation.UpdatedAt = reservation.CreatedAt
	return nil
}

// GetByID delegates to override or returns not found.
func (s *ReservationRepositoryStub) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// List delegates to override or returns an empty page.
func (s *ReservationRepositoryStub) List(ctx context.Context, filter repository.ReservationFilter) ([]model.Reservation, int64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return nil, 0, nil
}

// UpdateStatus delegates to override or returns not found.
func (s *ReservationRepositoryStub) UpdateStatus(ctx context.Context, id string, status model.ReservationStatus, tableNumber *int) (*model.Reservation, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status, tableNumber)
	}
	return nil, domainErrors.ErrNotFound
}

// Delete delegates to override or returns not found.
func (s *ReservationRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return domainErrors.ErrNotFound
}

// CompletePast delegates to override or reports zero rows.
func (s *ReservationRepositoryStub) CompletePast(ctx context.Context, now time.Time, limit int) (int64, error) {
	if s.CompletePastFn != nil {
		return s.CompletePastFn(ctx, now, int64(limit))
	}
	return 0, nil
}

// ContactRepositoryStub stores contact messages in-memory for tests.
type ContactRepositoryStub struct {
	Messages []*model.ContactMessage
	Err      error
}

// Create records the message unless stub has explicit error.
func (s *ContactRepositoryStub) Create(ctx context.Context, message *model.ContactMessage) error {
	if s.Err != nil {
		return s.Err
	}
	message.CreatedAt = time.Now()
	s.Messages = append(s.Messages, message)
	return nil
}

// List returns the requested window of stored messages.
func (s *ContactRepositoryStub) List(ctx context.Context, offset, limit int) ([]model.ContactMessage, int64, error) {
	if s.Err != nil {
		return nil, 0, s.Err
	}
	total := int64(len(s.Messages))
	if offset >= len(s.Messages) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(s.Messages) {
		end = len(s.Messages)
	}
	page := make([]model.ContactMessage, 0, end-offset)
	for _, message := range s.Messages[offset:end] {
		page = append(page, *message)
	}
	return page, total, nil
}

// MarkRead flags the stored message as handled.
func (s *ContactRepositoryStub) MarkRead(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	for _, message := range s.Messages {
		if message.ID == id {
			message.Read = true
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// AdminRepositoryStub stores staff accounts in-memory for tests.
type AdminRepositoryStub struct {
	Admins map[string]*model.Admin
	ByID   map[int64]*model.Admin
	Next   int64
	Err    error
}

// NewAdminRepositoryStub constructs stub repository with initialized maps.
func NewAdminRepositoryStub() *AdminRepositoryStub {
	return &AdminRepositoryStub{
		Admins: make(map[string]*model.Admin),
		ByID:   make(map[int64]*model.Admin),
		Next:   1,
	}
}

// Create registers admin unless already exists or stub has explicit error.
func (s *AdminRepositoryStub) Create(ctx context.Context, login, passwordHash string) (*model.Admin, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Admins == nil {
		s.Admins = make(map[string]*model.Admin)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.Admin)
	}
	if _, exists := s.Admins[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	admin := &model.Admin{ID: s.Next, Login: login, PasswordHash: passwordHash}
	s.Next++
	s.Admins[login] = admin
	s.ByID[admin.ID] = admin
	return admin, nil
}

// GetByLogin fetches admin by login or returns not found.
func (s *AdminRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.Admin, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if admin, ok := s.Admins[login]; ok {
		return admin, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches admin by identifier or returns not found.
func (s *AdminRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Admin, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if admin, ok := s.ByID[id]; ok {
		return admin, nil
	}
	return nil, domainErrors.ErrNotFound
}

var (
	_ repository.MenuRepository        = (*MenuRepositoryStub)(nil)
	_ repository.OrderRepository       = (*OrderRepositoryStub)(nil)
	_ repository.ReservationRepository = (*ReservationRepositoryStub)(nil)
	_ repository.ContactRepository     = (*ContactRepositoryStub)(nil)
	_ repository.AdminRepository       = (*AdminRepositoryStub)(nil)
)
