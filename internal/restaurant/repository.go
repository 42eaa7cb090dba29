package restaurant

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

type Repository interface {
	FindByID(ctx context.Context, id int64) (*Restaurant, error)
	FindByUserID(ctx context.Context, userID int64) (*Restaurant, error)
	ListAll(ctx context.Context) ([]Restaurant, error)

	Exists(ctx context.Context, restaurantID int64) (bool, error)
	OwnerUserID(ctx context.Context, restaurantID int64) (int64, error)

	UpdateSettings(ctx context.Context, id int64, params SettingsParams) (*Restaurant, error)
	SetCategories(ctx context.Context, id int64, categories []string) error
	SetVerified(ctx context.Context, id int64, verified bool) error
	SetMenuFile(ctx context.Context, id int64, file MenuFile) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const restaurantColumns = `id, user_id, name, description, address, phone, email,
		cuisine_type, opening_hours, closing_hours, rating, total_reviews,
		is_verified, menu_file_kind, COALESCE(menu_file_ref, ''), categories`

func scanRestaurant(scanner interface {
	Scan(dest ...interface{}) error
}) (Restaurant, error) {
	var r Restaurant
	err := scanner.Scan(
		&r.ID, &r.UserID, &r.Name, &r.Description, &r.Address, &r.Phone, &r.Email,
		&r.CuisineType, &r.OpeningHours, &r.ClosingHours, &r.Rating, &r.TotalReviews,
		&r.IsVerified, &r.MenuFile.Kind, &r.MenuFile.Ref, pq.Array(&r.Categories),
	)
	return r, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Restaurant, error) {
	return r.findBy(ctx, "id", id)
}

func (r *repository) FindByUserID(ctx context.Context, userID int64) (*Restaurant, error) {
	return r.findBy(ctx, "user_id", userID)
}

func (r *repository) findBy(ctx context.Context, column string, arg int64) (*Restaurant, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants WHERE `+column+` = $1`, arg)
	rest, err := scanRestaurant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Restaurant, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rest)
	}
	return out, rows.Err()
}

func (r *repository) Exists(ctx context.Context, restaurantID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM restaurants WHERE id = $1)`, restaurantID).Scan(&exists)
	return exists, err
}

func (r *repository) OwnerUserID(ctx context.Context, restaurantID int64) (int64, error) {
	var userID int64
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id FROM restaurants WHERE id = $1`, restaurantID).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	return userID, err
}

func (r *repository) UpdateSettings(ctx context.Context, id int64, params SettingsParams) (*Restaurant, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE restaurants SET
			name          = COALESCE($2, name),
			description   = COALESCE($3, description),
			address       = COALESCE($4, address),
			phone         = COALESCE($5, phone),
			cuisine_type  = COALESCE($6, cuisine_type),
			opening_hours = COALESCE($7, opening_hours),
			closing_hours = COALESCE($8, closing_hours)
		WHERE id = $1
		RETURNING `+restaurantColumns,
		id, params.Name, params.Description, params.Address, params.Phone,
		params.CuisineType, params.OpeningHours, params.ClosingHours,
	)
	rest, err := scanRestaurant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *repository) SetCategories(ctx context.Context, id int64, categories []string) error {
	return r.exec(ctx,
		`UPDATE restaurants SET categories = $2 WHERE id = $1`, id, pq.Array(categories))
}

func (r *repository) SetVerified(ctx context.Context, id int64, verified bool) error {
	return r.exec(ctx,
		`UPDATE restaurants SET is_verified = $2 WHERE id = $1`, id, verified)
}

func (r *repository) SetMenuFile(ctx context.Context, id int64, file MenuFile) error {
	// Writing the union replaces whatever representation was there before.
	return r.exec(ctx, `
		UPDATE restaurants
		SET menu_file_kind = $2, menu_file_ref = NULLIF($3, '')
		WHERE id = $1
	`, id, file.Kind, file.Ref)
}

func (r *repository) exec(ctx context.Context, query string, args ...interface{}) error {
	res, err := r.db.ExecContext(ctx, query, args...)
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
