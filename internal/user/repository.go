package user

import (
	"context"
	"database/sql"
	"errors"

	"savora-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)

	// CreateAdmin inserts a bare user row with the ADMIN role.
	CreateAdmin(ctx context.Context, u *User) (*User, error)

	// CreateCustomer inserts the user and its customer profile in one
	// transaction so a failure leaves no orphaned user row.
	CreateCustomer(ctx context.Context, u *User, address string) (*User, error)

	// CreateRestaurant inserts the user, the restaurant profile with its
	// defaults and the empty default menu in one transaction.
	CreateRestaurant(ctx context.Context, u *User, seed RestaurantSeed) (*User, error)
}

// RestaurantSeed holds the caller-supplied business fields applied at
// registration; everything else gets defaults.
type RestaurantSeed struct {
	Name        string
	Description string
	Address     string
	Phone       string
	CuisineType string
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const userColumns = "id, email, password, name, phone, role, created_at"

func scanUser(row *sql.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Phone, &u.Role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", email,
	).Scan(&exists)
	return exists, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email))
}

func (r *repository) FindByID(ctx context.Context, id int64) (*User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id))
}

func insertUser(ctx context.Context, tx *sql.Tx, u *User) error {
	err := tx.QueryRowContext(ctx, `
		INSERT INTO users (email, password, name, phone, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, u.Email, u.Password, u.Name, u.Phone, u.Role).Scan(&u.ID, &u.CreatedAt)
	return mapUniqueViolation(err)
}

func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == PgUniqueViolation {
		return ErrEmailExists
	}
	return err
}

func (r *repository) CreateAdmin(ctx context.Context, u *User) (*User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := insertUser(ctx, tx, u); err != nil {
		return nil, err
	}
	return u, tx.Commit()
}

func (r *repository) CreateCustomer(ctx context.Context, u *User, address string) (*User, error) {
	log := logger.FromCtx(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := insertUser(ctx, tx, u); err != nil {
		log.Error("db: failed to insert user", zap.String("email", u.Email), zap.Error(err))
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO customers (user_id, address, loyalty_points, is_active)
		VALUES ($1, NULLIF($2, ''), 0, TRUE)
	`, u.ID, address)
	if err != nil {
		log.Error("db: failed to insert customer profile", zap.Int64("user_id", u.ID), zap.Error(err))
		return nil, err
	}

	return u, tx.Commit()
}

func (r *repository) CreateRestaurant(ctx context.Context, u *User, seed RestaurantSeed) (*User, error) {
	log := logger.FromCtx(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := insertUser(ctx, tx, u); err != nil {
		log.Error("db: failed to insert user", zap.String("email", u.Email), zap.Error(err))
		return nil, err
	}

	var restaurantID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO restaurants (
			user_id, name, description, address, phone, email, cuisine_type,
			opening_hours, closing_hours, rating, total_reviews, is_verified
		) VALUES ($1, $2, $3, $4, $5, $6, $7, '09:00', '22:00', 0, 0, FALSE)
		RETURNING id
	`, u.ID, seed.Name, seed.Description, seed.Address, seed.Phone, u.Email, seed.CuisineType,
	).Scan(&restaurantID)
	if err != nil {
		log.Error("db: failed to insert restaurant profile", zap.Int64("user_id", u.ID), zap.Error(err))
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO menus (restaurant_id, name, description, is_active)
		VALUES ($1, 'Default Menu', $2, TRUE)
	`, restaurantID, "Welcome to "+seed.Name+"'s menu")
	if err != nil {
		log.Error("db: failed to insert default menu", zap.Int64("restaurant_id", restaurantID), zap.Error(err))
		return nil, err
	}

	return u, tx.Commit()
}
