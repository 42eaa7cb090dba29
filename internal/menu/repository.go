package menu

import (
	"context"
	"database/sql"
	"errors"
)

type Repository interface {
	// FindActiveByRestaurant returns the restaurant's active menu with its
	// items. Registration guarantees every restaurant has one.
	FindActiveByRestaurant(ctx context.Context, restaurantID int64) (*Menu, error)
	FindByID(ctx context.Context, id int64) (*Menu, error)
	// OwnerUserID resolves the user owning the restaurant the menu belongs to.
	OwnerUserID(ctx context.Context, menuID int64) (int64, error)

	SetFileRef(ctx context.Context, menuID int64, ref string) error

	InsertItem(ctx context.Context, item *MenuItem) error
	UpdateItem(ctx context.Context, itemID int64, params ItemParams) (*MenuItem, error)
	DeleteItem(ctx context.Context, itemID int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const menuColumns = `id, restaurant_id, name, description, is_active, COALESCE(file_ref, '')`

func (r *repository) FindActiveByRestaurant(ctx context.Context, restaurantID int64) (*Menu, error) {
	return r.findOne(ctx,
		`SELECT `+menuColumns+` FROM menus
		 WHERE restaurant_id = $1 AND is_active
		 ORDER BY id LIMIT 1`, restaurantID)
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Menu, error) {
	return r.findOne(ctx,
		`SELECT `+menuColumns+` FROM menus WHERE id = $1`, id)
}

func (r *repository) findOne(ctx context.Context, query string, arg int64) (*Menu, error) {
	var m Menu
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&m.ID, &m.RestaurantID, &m.Name, &m.Description, &m.IsActive, &m.FileRef)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMenuNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, menu_id, name, description, price, COALESCE(image_ref, ''), is_available
		FROM menu_items
		WHERE menu_id = $1
		ORDER BY id
	`, m.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it MenuItem
		if err := rows.Scan(&it.ID, &it.MenuID, &it.Name, &it.Description, &it.Price, &it.ImageRef, &it.IsAvailable); err != nil {
			return nil, err
		}
		m.Items = append(m.Items, it)
	}
	return &m, rows.Err()
}

func (r *repository) OwnerUserID(ctx context.Context, menuID int64) (int64, error) {
	var userID int64
	err := r.db.QueryRowContext(ctx, `
		SELECT r.user_id
		FROM menus m JOIN restaurants r ON r.id = m.restaurant_id
		WHERE m.id = $1
	`, menuID).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrMenuNotFound
	}
	return userID, err
}

func (r *repository) SetFileRef(ctx context.Context, menuID int64, ref string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE menus SET file_ref = NULLIF($2, '') WHERE id = $1`, menuID, ref)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMenuNotFound
	}
	return nil
}

func (r *repository) InsertItem(ctx context.Context, item *MenuItem) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO menu_items (menu_id, name, description, price, image_ref, is_available)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		RETURNING id
	`, item.MenuID, item.Name, item.Description, item.Price, item.ImageRef, item.IsAvailable,
	).Scan(&item.ID)
}

func (r *repository) UpdateItem(ctx context.Context, itemID int64, params ItemParams) (*MenuItem, error) {
	var it MenuItem
	err := r.db.QueryRowContext(ctx, `
		UPDATE menu_items SET
			name         = COALESCE($2, name),
			description  = COALESCE($3, description),
			price        = COALESCE($4, price),
			image_ref    = COALESCE($5, image_ref),
			is_available = COALESCE($6, is_available)
		WHERE id = $1
		RETURNING id, menu_id, name, description, price, COALESCE(image_ref, ''), is_available
	`, itemID, params.Name, params.Description, params.Price, params.ImageRef, params.IsAvailable,
	).Scan(&it.ID, &it.MenuID, &it.Name, &it.Description, &it.Price, &it.ImageRef, &it.IsAvailable)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *repository) DeleteItem(ctx context.Context, itemID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = $1`, itemID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}
