package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/anandpatel/cafewala/internal/domain/errors"
	"github.com/anandpatel/cafewala/internal/domain/model"
	"github.com/anandpatel/cafewala/internal/domain/repository"
)

const (
	minGuests = 1
	maxGuests = 20

	minTableNumber = 1
	maxTableNumber = 50
)

var timeSlotPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ReservationDraft is the raw booking request before validation.
type ReservationDraft struct {
	Name            string
	Email           string
	Phone           string
	Date            string
	Time            string
	Guests          int
	SpecialRequests string
}

// ListReservationsParams carries admin listing filters.
type ListReservationsParams struct {
	Page   int
	Limit  int
	Status string
	Date   string
}

// ReservationPage is a listing result with pagination totals.
type ReservationPage struct {
	Reservations []model.Reservation
	Page         int
	Limit        int
	Total        int64
	TotalPages   int64
}

// ReservationUseCase encapsulates table booking logic.
type ReservationUseCase struct {
	reservations repository.ReservationRepository
	now          func() time.Time
}

// NewReservationUseCase constructs ReservationUseCase.
func NewReservationUseCase(reservations repository.ReservationRepository) *ReservationUseCase {
	return &ReservationUseCase{reservations: reservations, now: time.Now}
}

// Create validates and persists a booking with status pending.
func (u *ReservationUseCase) Create(ctx context.Context, draft ReservationDraft) (*model.Reservation, error) {
	name := strings.TrimSpace(draft.Name)
	email := strings.ToLower(strings.TrimSpace(draft.Email))
	phone := strings.TrimSpace(draft.Phone)
	if name == "" || email == "" || phone == "" {
		return nil, domainErrors.NewValidation("reservation", "name, email, and phone are required")
	}

	if !timeSlotPattern.MatchString(draft.Time) {
		return nil, domainErrors.NewValidation("time", "must be in HH:MM format")
	}

	day, err := time.Parse("2006-01-02", draft.Date)
	if err != nil {
		return nil, domainErrors.NewValidation("date", "must be in YYYY-MM-DD format")
	}
	today := u.now()
	todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(todayStart) {
		return nil, domainErrors.NewValidation("date", "must not be in the past")
	}

	if draft.Guests < minGuests || draft.Guests > maxGuests {
		return nil, domainErrors.NewValidation("guests", "must be between %d and %d", minGuests, maxGuests)
	}

	reservation := &model.Reservation{
		ID:              uuid.NewString(),
		Name:            name,
		Email:           email,
		Phone:           phone,
		Date:            day,
		Time:            draft.Time,
		Guests:          draft.Guests,
		Status:          model.ReservationStatusPending,
		SpecialRequests: strings.TrimSpace(draft.SpecialRequests),
	}
	if err := u.reservations.Create(ctx, reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

// Get returns one reservation by id.
func (u *ReservationUseCase) Get(ctx context.Context, id string) (*model.Reservation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domainErrors.NewValidation("id", "invalid reservation id: %s", id)
	}
	return u.reservations.GetByID(ctx, id)
}

// List returns a page of reservations.
func (u *ReservationUseCase) List(ctx context.Context, params ListReservationsParams) (*ReservationPage, error) {
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

	filter := repository.ReservationFilter{
		Offset: (page - 1) * limit,
		Limit:  limit,
	}

	if params.Status != "" {
		status := model.ReservationStatus(params.Status)
		if !model.ValidReservationStatus(status) {
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

	reservations, total, err := u.reservations.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	return &ReservationPage{
		Reservations: reservations,
		Page:         page,
		Limit:        limit,
		Total:        total,
		TotalPages:   totalPages,
	}, nil
}

// UpdateStatus transitions a reservation, optionally assigning a table.
func (u *ReservationUseCase) UpdateStatus(ctx context.Context, id string, status model.ReservationStatus, tableNumber *int) (*model.Reservation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domainErrors.NewValidation("id", "invalid reservation id: %s", id)
	}
	if !model.ValidReservationStatus(status) {
		return nil, domainErrors.ErrInvalidStatus
	}
	if tableNumber != nil && (*tableNumber < minTableNumber || *tableNumber > maxTableNumber) {
		return nil, domainErrors.NewValidation("tableNumber", "must be between %d and %d", minTableNumber, maxTableNumber)
	}
	return u.reservations.UpdateStatus(ctx, id, status, tableNumber)
}

// Delete removes a reservation.
func (u *ReservationUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domainErrors.NewValidation("id", "invalid reservation id: %s", id)
	}
	return u.reservations.Delete(ctx, id)
}

// CompletePast marks confirmed reservations whose slot has passed as
// completed, returning how many rows changed.
func (u *ReservationUseCase) CompletePast(ctx context.Context, limit int) (int64, error) {
	return u.reservations.CompletePast(ctx, u.now(), limit)
}
