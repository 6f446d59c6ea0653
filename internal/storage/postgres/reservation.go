package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/anandpatel/cafewala/internal/domain/errors"
	"github.com/anandpatel/cafewala/internal/domain/model"
	"github.com/anandpatel/cafewala/internal/domain/repository"
)

const selectReservation = `SELECT id, name, email, phone, date, time_slot, guests, status, table_number, special_requests, created_at, updated_at
          FROM reservations`

func scanReservation(row pgx.Row, res *model.Reservation) error {
	return row.Scan(&res.ID, &res.Name, &res.Email, &res.Phone, &res.Date, &res.Time,
		&res.Guests, &res.Status, &res.TableNumber, &res.SpecialRequests, &res.CreatedAt, &res.UpdatedAt)
}

func (r *reservationRepository) Create(ctx context.Context, reservation *model.Reservation) error {
	const query = `INSERT INTO reservations (id, name, email, phone, date, time_slot, guests, status, table_number, special_requests)
                   VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
                   RETURNING created_at, updated_at`
	return r.storage.pool.QueryRow(ctx, query,
		reservation.ID, reservation.Name, reservation.Email, reservation.Phone,
		reservation.Date, reservation.Time, reservation.Guests, reservation.Status,
		reservation.TableNumber, reservation.SpecialRequests,
	).Scan(&reservation.CreatedAt, &reservation.UpdatedAt)
}

func (r *reservationRepository) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	var reservation model.Reservation
	err := scanReservation(r.storage.pool.QueryRow(ctx, selectReservation+` WHERE id=$1`, id), &reservation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) List(ctx context.Context, filter repository.ReservationFilter) ([]model.Reservation, int64, error) {
	where := ""
	args := []any{}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = fmt.Sprintf(" WHERE status=$%d", len(args))
	}
	if filter.Day != nil {
		args = append(args, filter.Day.Format("2006-01-02"))
		if where == "" {
			where = fmt.Sprintf(" WHERE date=$%d", len(args))
		} else {
			where += fmt.Sprintf(" AND date=$%d", len(args))
		}
	}

	var total int64
	if err := r.storage.pool.QueryRow(ctx, "SELECT COUNT(*) FROM reservations"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit)
	pageClause := fmt.Sprintf(" ORDER BY date DESC, time_slot DESC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	pageClause += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.storage.pool.Query(ctx, selectReservation+where+pageClause, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reservations []model.Reservation
	for rows.Next() {
		var reservation model.Reservation
		if err := scanReservation(rows, &reservation); err != nil {
			return nil, 0, err
		}
		reservations = append(reservations, reservation)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return reservations, total, nil
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id string, status model.ReservationStatus, tableNumber *int) (*model.Reservation, error) {
	const query = `UPDATE reservations
                  SET status=$1,
                      table_number = COALESCE($2, table_number),
                      updated_at=NOW()
                WHERE id=$3
            RETURNING id, name, email, phone, date, time_slot, guests, status, table_number, special_requests, created_at, updated_at`
	var reservation model.Reservation
	if err := scanReservation(r.storage.pool.QueryRow(ctx, query, status, tableNumber, id), &reservation); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM reservations WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *reservationRepository) CompletePast(ctx context.Context, now time.Time, limit int) (int64, error) {
	const query = `UPDATE reservations
                  SET status='completed', updated_at=NOW()
                WHERE id IN (
                      SELECT id FROM reservations
                       WHERE status='confirmed'
                         AND date + time_slot::time < $1
                       ORDER BY date, time_slot
                       LIMIT $2
                )`
	tag, err := r.storage.pool.Exec(ctx, query, now, limit)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
