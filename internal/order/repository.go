package order

import (
	"context"
	"database/sql"
	"errors"

	"savora-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	// CreateTx persists the order and its item snapshots in one transaction.
	CreateTx(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id int64) (*Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]Order, error)
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]Order, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateTx(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			customer_id, restaurant_id, total_amount, status,
			delivery_address, special_instructions, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		o.CustomerID, o.RestaurantID, o.TotalAmount, o.Status,
		o.DeliveryAddress, o.SpecialInstructions, o.CreatedAt,
	).Scan(&o.ID)
	if err != nil {
		log.Error("db: failed to insert order",
			zap.Int64("customer_id", o.CustomerID),
			zap.Int64("restaurant_id", o.RestaurantID),
			zap.Error(err),
		)
		return err
	}

	for i := range o.Items {
		item := &o.Items[i]
		item.OrderID = o.ID
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, item_name, quantity, price, special_instructions)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, o.ID, item.ItemName, item.Quantity, item.Price, item.SpecialInstructions,
		).Scan(&item.ID)
		if err != nil {
			log.Error("db: failed to insert order item",
				zap.Int64("order_id", o.ID),
				zap.String("item_name", item.ItemName),
				zap.Error(err),
			)
			return err
		}
	}

	return tx.Commit()
}

const orderColumns = `id, customer_id, restaurant_id, total_amount, status,
		delivery_address, special_instructions, estimated_delivery_time, created_at`

func scanOrder(scanner interface {
	Scan(dest ...interface{}) error
}) (Order, error) {
	var o Order
	err := scanner.Scan(
		&o.ID, &o.CustomerID, &o.RestaurantID, &o.TotalAmount, &o.Status,
		&o.DeliveryAddress, &o.SpecialInstructions, &o.EstimatedDeliveryTime, &o.CreatedAt,
	)
	return o, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := r.loadItems(ctx, []int64{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return &o, nil
}

func (r *repository) ListByCustomer(ctx context.Context, customerID int64) ([]Order, error) {
	return r.list(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE customer_id = $1 ORDER BY created_at DESC`,
		customerID)
}

func (r *repository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]Order, error) {
	return r.list(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE restaurant_id = $1 ORDER BY created_at DESC`,
		restaurantID)
}

func (r *repository) list(ctx context.Context, query string, arg interface{}) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	var ids []int64
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}
	return orders, nil
}

func (r *repository) loadItems(ctx context.Context, orderIDs []int64) (map[int64][]OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, item_name, quantity, price, special_instructions
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id
	`, pq.Array(orderIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[int64][]OrderItem)
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ItemName, &it.Quantity, &it.Price, &it.SpecialInstructions); err != nil {
			return nil, err
		}
		items[it.OrderID] = append(items[it.OrderID], it)
	}
	return items, rows.Err()
}

func (r *repository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
