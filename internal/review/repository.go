package review

import (
	"context"
	"database/sql"

	"savora-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	// CreateTx inserts the review and refreshes the restaurant's rating and
	// review count from the full review set, in one transaction.
	CreateTx(ctx context.Context, rv *Review) error
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]Review, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateTx(ctx context.Context, rv *Review) error {
	log := logger.FromCtx(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO reviews (restaurant_id, customer_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, rv.RestaurantID, rv.CustomerID, rv.Rating, rv.Comment,
	).Scan(&rv.ID, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		log.Error("db: failed to insert review",
			zap.Int64("restaurant_id", rv.RestaurantID), zap.Error(err))
		return err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE restaurants SET
			rating = (SELECT AVG(rating) FROM reviews WHERE restaurant_id = $1),
			total_reviews = (SELECT COUNT(*) FROM reviews WHERE restaurant_id = $1)
		WHERE id = $1
	`, rv.RestaurantID)
	if err != nil {
		log.Error("db: failed to refresh restaurant rating",
			zap.Int64("restaurant_id", rv.RestaurantID), zap.Error(err))
		return err
	}

	return tx.Commit()
}

func (r *repository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, restaurant_id, customer_id, rating, comment, created_at, updated_at
		FROM reviews
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Review
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ID, &rv.RestaurantID, &rv.CustomerID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}
