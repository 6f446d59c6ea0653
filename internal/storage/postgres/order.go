package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/anandpatel/cafewala/internal/domain/errors"
	"github.com/anandpatel/cafewala/internal/domain/model"
	"github.com/anandpatel/cafewala/internal/domain/repository"
)

// nextOrderSequence atomically increments the per-day counter row.
const nextOrderSequence = `INSERT INTO order_counters (day, value) VALUES ($1, 1)
               ON CONFLICT (day) DO UPDATE SET value = order_counters.value + 1
               RETURNING value`

func orderNumberFor(day string, seq int64) string {
	return fmt.Sprintf("CAFE-%s-%04d", day, seq)
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		day := time.Now().UTC().Format("20060102")
		var seq int64
		if err := tx.QueryRow(ctx, nextOrderSequence, day).Scan(&seq); err != nil {
			return fmt.Errorf("next order sequence: %w", err)
		}
		order.OrderNumber = orderNumberFor(day, seq)

		const insertOrder = `INSERT INTO orders
            (order_number, customer_name, customer_email, customer_phone,
             street, area, city, pincode, landmark,
             subtotal, delivery_fee, total, payment_method, status,
             special_instructions, estimated_delivery_time)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
            RETURNING id, created_at, updated_at`
		err := tx.QueryRow(ctx, insertOrder,
			order.OrderNumber,
			order.Customer.Name, order.Customer.Email, order.Customer.Phone,
			order.DeliveryAddress.Street, order.DeliveryAddress.Area,
			order.DeliveryAddress.City, order.DeliveryAddress.Pincode,
			order.DeliveryAddress.Landmark,
			order.Subtotal, order.DeliveryFee, order.Total,
			order.PaymentMethod, order.Status,
			order.SpecialInstructions, order.EstimatedDeliveryTime,
		).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items
            (order_id, position, menu_item_id, name, price, image, quantity)
            VALUES ($1,$2,$3,$4,$5,$6,$7)`
		for i, item := range order.Items {
			if _, err := tx.Exec(ctx, insertItem,
				order.ID, i, item.MenuItemID, item.Name, item.Price, item.Image, item.Quantity,
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

const selectOrder = `SELECT id, order_number, customer_name, customer_email, customer_phone,
               street, area, city, pincode, landmark,
               subtotal, delivery_fee, total, payment_method, status,
               special_instructions, estimated_delivery_time, actual_delivery_time,
               created_at, updated_at
          FROM orders`

func scanOrder(row pgx.Row, o *model.Order) error {
	return row.Scan(
		&o.ID, &o.OrderNumber,
		&o.Customer.Name, &o.Customer.Email, &o.Customer.Phone,
		&o.DeliveryAddress.Street, &o.DeliveryAddress.Area,
		&o.DeliveryAddress.City, &o.DeliveryAddress.Pincode, &o.DeliveryAddress.Landmark,
		&o.Subtotal, &o.DeliveryFee, &o.Total, &o.PaymentMethod, &o.Status,
		&o.SpecialInstructions, &o.EstimatedDeliveryTime, &o.ActualDeliveryTime,
		&o.CreatedAt, &o.UpdatedAt,
	)
}

func (r *orderRepository) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	var order model.Order
	err := scanOrder(r.storage.pool.QueryRow(ctx, selectOrder+` WHERE order_number=$1`, number), &order)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	items, err := r.loadItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

// loadItems returns line items with the snapshot fields, falling back to the
// live catalog row when a snapshot field is empty.
func (r *orderRepository) loadItems(ctx context.Context, orderID int64) ([]model.OrderLineItem, error) {
	const query = `SELECT oi.menu_item_id,
                      COALESCE(NULLIF(oi.name, ''), mi.name, ''),
                      CASE WHEN oi.price > 0 THEN oi.price ELSE COALESCE(mi.price, 0) END,
                      COALESCE(NULLIF(oi.image, ''), mi.image, ''),
                      oi.quantity
                 FROM order_items oi
                 LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id
                WHERE oi.order_id=$1
                ORDER BY oi.position`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.OrderLineItem
	for rows.Next() {
		var item model.OrderLineItem
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.Price, &item.Image, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, int64, error) {
	where := ""
	args := []any{}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = fmt.Sprintf(" WHERE status=$%d", len(args))
	}
	if filter.Day != nil {
		start := time.Date(filter.Day.Year(), filter.Day.Month(), filter.Day.Day(), 0, 0, 0, 0, filter.Day.Location())
		end := start.Add(24 * time.Hour)
		args = append(args, start)
		if where == "" {
			where = fmt.Sprintf(" WHERE created_at >= $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND created_at >= $%d", len(args))
		}
		args = append(args, end)
		where += fmt.Sprintf(" AND created_at < $%d", len(args))
	}

	var total int64
	if err := r.storage.pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit)
	limitClause := fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	limitClause += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.storage.pool.Query(ctx, selectOrder+where+limitClause, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	rows.Close()

	for i := range orders {
		items, err := r.loadItems(ctx, orders[i].ID)
		if err != nil {
			return nil, 0, err
		}
		orders[i].Items = items
	}
	return orders, total, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, number string, status model.OrderStatus) (*model.Order, error) {
	const query = `UPDATE orders
                  SET status=$1,
                      actual_delivery_time = CASE WHEN $1 = 'delivered' THEN NOW() ELSE actual_delivery_time END,
                      updated_at=NOW()
                WHERE order_number=$2
            RETURNING id, order_number, customer_name, customer_email, customer_phone,
                      street, area, city, pincode, landmark,
                      subtotal, delivery_fee, total, payment_method, status,
                      special_instructions, estimated_delivery_time, actual_delivery_time,
                      created_at, updated_at`
	var order model.Order
	if err := scanOrder(r.storage.pool.QueryRow(ctx, query, status, number), &order); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	items, err := r.loadItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}
