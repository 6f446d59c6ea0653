package postgres

import (
	"context"

	domainErrors "github.com/anandpatel/cafewala/internal/domain/errors"
	"github.com/anandpatel/cafewala/internal/domain/model"
)

func (r *contactRepository) Create(ctx context.Context, message *model.ContactMessage) error {
	const query = `INSERT INTO contact_messages (id, name, email, subject, message)
                   VALUES ($1,$2,$3,$4,$5)
                   RETURNING created_at`
	return r.storage.pool.QueryRow(ctx, query,
		message.ID, message.Name, message.Email, message.Subject, message.Message,
	).Scan(&message.CreatedAt)
}

func (r *contactRepository) List(ctx context.Context, offset, limit int) ([]model.ContactMessage, int64, error) {
	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `SELECT id, name, email, subject, message, is_read, created_at
                   FROM contact_messages
                  ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.storage.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var messages []model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Read, &m.CreatedAt); err != nil {
			return nil, 0, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

func (r *contactRepository) MarkRead(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE contact_messages SET is_read=TRUE WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
