package restaurant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindByID(ctx context.Context, id int64) (*Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Restaurant), args.Error(1)
}

func (m *MockRepository) FindByUserID(ctx context.Context, userID int64) (*Restaurant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Restaurant), args.Error(1)
}

func (m *MockRepository) ListAll(ctx context.Context) ([]Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Restaurant), args.Error(1)
}

func (m *MockRepository) Exists(ctx context.Context, restaurantID int64) (bool, error) {
	args := m.Called(ctx, restaurantID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) OwnerUserID(ctx context.Context, restaurantID int64) (int64, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) UpdateSettings(ctx context.Context, id int64, params SettingsParams) (*Restaurant, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Restaurant), args.Error(1)
}

func (m *MockRepository) SetCategories(ctx context.Context, id int64, categories []string) error {
	args := m.Called(ctx, id, categories)
	return args.Error(0)
}

func (m *MockRepository) SetVerified(ctx context.Context, id int64, verified bool) error {
	args := m.Called(ctx, id, verified)
	return args.Error(0)
}

func (m *MockRepository) SetMenuFile(ctx context.Context, id int64, file MenuFile) error {
	args := m.Called(ctx, id, file)
	return args.Error(0)
}

func TestService_UpdateSettings(t *testing.T) {
	ctx := context.Background()
	name := "New Name"

	t.Run("OwnerCanUpdate", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("OwnerUserID", ctx, int64(1)).Return(int64(10), nil)
		repo.On("UpdateSettings", ctx, int64(1), mock.Anything).
			Return(&Restaurant{ID: 1, Name: name}, nil)

		svc := NewService(repo)
		r, err := svc.UpdateSettings(ctx, 1, 10, SettingsParams{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, name, r.Name)
	})

	t.Run("NonOwnerRejected", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("OwnerUserID", ctx, int64(1)).Return(int64(10), nil)

		svc := NewService(repo)
		_, err := svc.UpdateSettings(ctx, 1, 99, SettingsParams{Name: &name})

		assert.ErrorIs(t, err, ErrForbidden)
		repo.AssertNotCalled(t, "UpdateSettings", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MissingRestaurant", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("OwnerUserID", ctx, int64(404)).Return(int64(0), ErrNotFound)

		svc := NewService(repo)
		_, err := svc.UpdateSettings(ctx, 404, 10, SettingsParams{})

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_Verify(t *testing.T) {
	// Verification is admin-scoped and skips the ownership check entirely.
	ctx := context.Background()

	repo := new(MockRepository)
	repo.On("SetVerified", ctx, int64(1), true).Return(nil)

	svc := NewService(repo)
	err := svc.Verify(ctx, 1, true)

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "OwnerUserID", mock.Anything, mock.Anything)
}

func TestService_AttachMenuFile(t *testing.T) {
	ctx := context.Background()

	t.Run("ReplacesPreviousKind", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("OwnerUserID", ctx, int64(1)).Return(int64(10), nil)
		repo.On("SetMenuFile", ctx, int64(1), MenuFile{Kind: MenuFileImage, Ref: "x.png"}).Return(nil)

		svc := NewService(repo)
		err := svc.AttachMenuFile(ctx, 1, 10, MenuFile{Kind: MenuFileImage, Ref: "x.png"})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("NonOwnerRejected", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("OwnerUserID", ctx, int64(1)).Return(int64(10), nil)

		svc := NewService(repo)
		err := svc.AttachMenuFile(ctx, 1, 99, MenuFile{Kind: MenuFilePDF, Ref: "m.pdf"})

		assert.ErrorIs(t, err, ErrForbidden)
	})
}
