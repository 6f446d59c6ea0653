package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/anandpatel/cafewala/internal/domain/errors"
	"github.com/anandpatel/cafewala/internal/domain/model"
	"github.com/anandpatel/cafewala/internal/domain/repository"
)

const selectMenuItem = `SELECT id, name, description, price, category, image, is_available, created_at, updated_at
          FROM menu_items`

func scanMenuItem(row pgx.Row, m *model.MenuItem) error {
	return row.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.Category, &m.Image, &m.IsAvailable, &m.CreatedAt, &m.UpdatedAt)
}

func (r *menuRepository) Create(ctx context.Context, item *model.MenuItem) error {
	const query = `INSERT INTO menu_items (id, name, description, price, category, image, is_available)
                   VALUES ($1,$2,$3,$4,$5,$6,$7)
                   RETURNING created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query,
		item.ID, item.Name, item.Description, item.Price, item.Category, item.Image, item.IsAvailable,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *menuRepository) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	var item model.MenuItem
	err := scanMenuItem(r.storage.pool.QueryRow(ctx, selectMenuItem+` WHERE id=$1`, id), &item)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) List(ctx context.Context, filter repository.MenuFilter) ([]model.MenuItem, error) {
	where := ""
	args := []any{}
	appendCond := func(cond string, arg any) {
		args = append(args, arg)
		if where == "" {
			where = " WHERE " + fmt.Sprintf(cond, len(args))
		} else {
			where += " AND " + fmt.Sprintf(cond, len(args))
		}
	}

	if filter.Category != nil {
		appendCond("category=$%d", *filter.Category)
	}
	if filter.AvailableOnly {
		args = append(args, true)
		if where == "" {
			where = fmt.Sprintf(" WHERE is_available=$%d", len(args))
		} else {
			where += fmt.Sprintf(" AND is_available=$%d", len(args))
		}
	}
	if filter.Search != "" {
		appendCond("name ILIKE '%%' || $%d || '%%'", filter.Search)
	}

	rows, err := r.storage.pool.Query(ctx, selectMenuItem+where+` ORDER BY category, name`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.MenuItem
	for rows.Next() {
		var item model.MenuItem
		if err := scanMenuItem(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepository) Update(ctx context.Context, item *model.MenuItem) error {
	const query = `UPDATE menu_items
                  SET name=$1, description=$2, price=$3, category=$4, image=$5, is_available=$6, updated_at=NOW()
                WHERE id=$7
            RETURNING updated_at`
	err := r.storage.pool.QueryRow(ctx, query,
		item.Name, item.Description, item.Price, item.Category, item.Image, item.IsAvailable, item.ID,
	).Scan(&item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *menuRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE menu_items SET is_available=$1, updated_at=NOW() WHERE id=$2`, available, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *menuRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM menu_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *menuRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
