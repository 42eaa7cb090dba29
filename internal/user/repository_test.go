package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_ExistsByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM users WHERE email = \$1\)`).
			WithArgs("alice@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := repo.ExistsByEmail(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("NotExists", func(t *testing.T) {
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		exists, err := repo.ExistsByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestRepository_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "email", "password", "name", "phone", "role", "created_at"}).
			AddRow(1, "alice@example.com", "hash", "Alice", "555-0101", "CUSTOMER", time.Now())

		mock.ExpectQuery(`SELECT id, email, password, name, phone, role, created_at FROM users WHERE email = \$1`).
			WithArgs("alice@example.com").
			WillReturnRows(rows)

		u, err := repo.FindByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, int64(1), u.ID)
		assert.Equal(t, RoleCustomer, u.Role)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, email, password, name, phone, role, created_at FROM users WHERE email = \$1`).
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "name", "phone", "role", "created_at"}))

		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestRepository_CreateCustomer(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	u := &User{Email: "alice@example.com", Password: "hash", Name: "Alice", Role: RoleCustomer}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(u.Email, u.Password, u.Name, u.Phone, u.Role).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))
		mock.ExpectExec(`INSERT INTO customers`).
			WithArgs(int64(1), "1 Main St").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		created, err := repo.CreateCustomer(ctx, u, "1 Main St")
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UniqueViolation", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(&pq.Error{Code: PgUniqueViolation, Constraint: "users_email_key"})
		mock.ExpectRollback()

		_, err := repo.CreateCustomer(ctx, u, "")
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("ProfileInsertFailureRollsBack", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(2, time.Now()))
		mock.ExpectExec(`INSERT INTO customers`).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()

		_, err := repo.CreateCustomer(ctx, u, "")
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_CreateRestaurant(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	u := &User{Email: "resto@example.com", Password: "hash", Name: "Luigi's", Role: RoleRestaurant}
	seed := RestaurantSeed{
		Name:        "Luigi's",
		Description: "Welcome to Luigi's",
		Address:     "2 Side St",
		Phone:       "555-0102",
		CuisineType: "Italian",
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(u.Email, u.Password, u.Name, u.Phone, u.Role).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(5, time.Now()))
		mock.ExpectQuery(`INSERT INTO restaurants`).
			WithArgs(int64(5), seed.Name, seed.Description, seed.Address, seed.Phone, u.Email, seed.CuisineType).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
		mock.ExpectExec(`INSERT INTO menus`).
			WithArgs(int64(9), "Welcome to Luigi's's menu").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		created, err := repo.CreateRestaurant(ctx, u, seed)
		require.NoError(t, err)
		assert.Equal(t, int64(5), created.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("MenuInsertFailureRollsBack", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(6, time.Now()))
		mock.ExpectQuery(`INSERT INTO restaurants`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
		mock.ExpectExec(`INSERT INTO menus`).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()

		_, err := repo.CreateRestaurant(ctx, u, seed)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
