package favorite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

type Repository interface {
	Find(ctx context.Context, userID, restaurantID int64) (*Favorite, error)
	Insert(ctx context.Context, userID, restaurantID int64) error
	Delete(ctx context.Context, userID, restaurantID int64) error
	ListRestaurantIDs(ctx context.Context, userID int64) ([]int64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Find(ctx context.Context, userID, restaurantID int64) (*Favorite, error) {
	var f Favorite
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, restaurant_id, is_active
		FROM favorites
		WHERE user_id = $1 AND restaurant_id = $2
	`, userID, restaurantID).Scan(&f.ID, &f.UserID, &f.RestaurantID, &f.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repository) Insert(ctx context.Context, userID, restaurantID int64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO favorites (user_id, restaurant_id, is_active)
		VALUES ($1, $2, TRUE)
	`, userID, restaurantID)

	// Two concurrent toggles can both see "no row"; the unique constraint
	// on (user_id, restaurant_id) keeps the second insert from duplicating.
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == PgUniqueViolation {
		return nil
	}
	return err
}

func (r *repository) Delete(ctx context.Context, userID, restaurantID int64) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM favorites WHERE user_id = $1 AND restaurant_id = $2
	`, userID, restaurantID)
	return err
}

func (r *repository) ListRestaurantIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT restaurant_id FROM favorites
		WHERE user_id = $1 AND is_active
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
