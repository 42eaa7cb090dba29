package favorite

import (
	"context"
	"testing"

	"savora-be/internal/restaurant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Find(ctx context.Context, userID, restaurantID int64) (*Favorite, error) {
	args := m.Called(ctx, userID, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Favorite), args.Error(1)
}

func (m *MockRepository) Insert(ctx context.Context, userID, restaurantID int64) error {
	args := m.Called(ctx, userID, restaurantID)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, userID, restaurantID int64) error {
	args := m.Called(ctx, userID, restaurantID)
	return args.Error(0)
}

func (m *MockRepository) ListRestaurantIDs(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type MockRestaurants struct {
	mock.Mock
}

func (m *MockRestaurants) Exists(ctx context.Context, restaurantID int64) (bool, error) {
	args := m.Called(ctx, restaurantID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRestaurants) FindByID(ctx context.Context, id int64) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

func TestService_Toggle(t *testing.T) {
	ctx := context.Background()

	t.Run("OnThenOff", func(t *testing.T) {
		repo := new(MockRepository)
		restos := new(MockRestaurants)
		svc := NewService(repo, restos)

		restos.On("Exists", ctx, int64(2)).Return(true, nil)

		// First toggle: no existing row, insert, now a favorite.
		repo.On("Find", ctx, int64(1), int64(2)).Return(nil, nil).Once()
		repo.On("Insert", ctx, int64(1), int64(2)).Return(nil).Once()

		on, err := svc.Toggle(ctx, 1, 2)
		require.NoError(t, err)
		assert.True(t, on)

		// Second toggle: row exists, delete, no longer a favorite.
		repo.On("Find", ctx, int64(1), int64(2)).
			Return(&Favorite{ID: 5, UserID: 1, RestaurantID: 2, IsActive: true}, nil).Once()
		repo.On("Delete", ctx, int64(1), int64(2)).Return(nil).Once()

		on, err = svc.Toggle(ctx, 1, 2)
		require.NoError(t, err)
		assert.False(t, on)

		repo.AssertExpectations(t)
	})

	t.Run("RestaurantMissing", func(t *testing.T) {
		repo := new(MockRepository)
		restos := new(MockRestaurants)
		svc := NewService(repo, restos)

		restos.On("Exists", ctx, int64(9)).Return(false, nil)

		_, err := svc.Toggle(ctx, 1, 9)
		assert.ErrorIs(t, err, ErrRestaurantNotFound)
		repo.AssertNotCalled(t, "Insert")
	})
}

func TestService_IsFavorite(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo, new(MockRestaurants))

	repo.On("Find", ctx, int64(1), int64(2)).Return(&Favorite{ID: 5}, nil)
	repo.On("Find", ctx, int64(1), int64(3)).Return(nil, nil)

	fav, err := svc.IsFavorite(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, fav)

	fav, err = svc.IsFavorite(ctx, 1, 3)
	require.NoError(t, err)
	assert.False(t, fav)
}

func TestService_ListForUser(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	restos := new(MockRestaurants)
	svc := NewService(repo, restos)

	repo.On("ListRestaurantIDs", ctx, int64(1)).Return([]int64{2, 3}, nil)
	restos.On("FindByID", ctx, int64(2)).Return(&restaurant.Restaurant{ID: 2, Name: "Luigi's"}, nil)
	restos.On("FindByID", ctx, int64(3)).Return(&restaurant.Restaurant{ID: 3, Name: "Sakura"}, nil)

	list, err := svc.ListForUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Luigi's", list[0].Name)
}
