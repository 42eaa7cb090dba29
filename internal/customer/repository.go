package customer

import (
	"context"
	"database/sql"
	"errors"
)

type Repository interface {
	FindByUserID(ctx context.Context, userID int64) (*Customer, error)
	UpdateProfile(ctx context.Context, id int64, params ProfileParams) (*Customer, error)
	// AddLoyaltyPoints increments the balance; points never go below zero
	// because only positive increments exist.
	AddLoyaltyPoints(ctx context.Context, id int64, points int) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const customerColumns = `id, user_id, COALESCE(address, ''),
		COALESCE(delivery_instructions, ''), loyalty_points, is_active`

func (r *repository) FindByUserID(ctx context.Context, userID int64) (*Customer, error) {
	return r.findBy(ctx, "user_id", userID)
}

func (r *repository) findBy(ctx context.Context, column string, arg int64) (*Customer, error) {
	var c Customer
	err := r.db.QueryRowContext(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE `+column+` = $1`, arg,
	).Scan(&c.ID, &c.UserID, &c.Address, &c.DeliveryInstructions, &c.LoyaltyPoints, &c.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) UpdateProfile(ctx context.Context, id int64, params ProfileParams) (*Customer, error) {
	var c Customer
	err := r.db.QueryRowContext(ctx, `
		UPDATE customers SET
			address               = COALESCE($2, address),
			delivery_instructions = COALESCE($3, delivery_instructions)
		WHERE id = $1
		RETURNING `+customerColumns,
		id, params.Address, params.DeliveryInstructions,
	).Scan(&c.ID, &c.UserID, &c.Address, &c.DeliveryInstructions, &c.LoyaltyPoints, &c.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) AddLoyaltyPoints(ctx context.Context, id int64, points int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE customers SET loyalty_points = loyalty_points + $2 WHERE id = $1`, id, points)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
