package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/anandpatel/cafewala/internal/domain/errors"
	"github.com/anandpatel/cafewala/internal/domain/model"
	"github.com/anandpatel/cafewala/internal/domain/repository"
)

// ContactDraft is the raw contact form submission.
type ContactDraft struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactPage is a listing result with pagination totals.
type ContactPage struct {
	Messages   []model.ContactMessage
	Page       int
	Limit      int
	Total      int64
	TotalPages int64
}

// ContactUseCase encapsulates contact form handling.
type ContactUseCase struct {
	contacts repository.ContactRepository
}

// NewContactUseCase constructs ContactUseCase.
func NewContactUseCase(contacts repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{contacts: contacts}
}

// Create validates and stores a contact message.
func (u *ContactUseCase) Create(ctx context.Context, draft ContactDraft) (*model.ContactMessage, error) {
	name := strings.TrimSpace(draft.Name)
	email := strings.ToLower(strings.TrimSpace(draft.Email))
	message := strings.TrimSpace(draft.Message)
	if name == "" || email == "" || message == "" {
		return nil, domainErrors.NewValidation("contact", "name, email, and message are required")
	}

	record := &model.ContactMessage{
		ID:      uuid.NewString(),
		Name:    name,
		Email:   email,
		Subject: strings.TrimSpace(draft.Subject),
		Message: message,
	}
	if err := u.contacts.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// List returns a page of messages, newest first.
func (u *ContactUseCase) List(ctx context.Context, page, limit int) (*ContactPage, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	messages, total, err := u.contacts.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	return &ContactPage{
		Messages:   messages,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// MarkRead flags a message as handled.
func (u *ContactUseCase) MarkRead(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domainErrors.NewValidation("id", "invalid message id: %s", id)
	}
	return u.contacts.MarkRead(ctx, id)
}
