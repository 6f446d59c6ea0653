package repository

import (
	"context"

	"github.com/anandpatel/cafewala/internal/domain/model"
)

// ContactRepository describes persistence operations with contact messages.
type ContactRepository interface {
	Create(ctx context.Context, message *model.ContactMessage) error
	List(ctx context.Context, offset, limit int) ([]model.ContactMessage, int64, error)
	MarkRead(ctx context.Context, id string) error
}
