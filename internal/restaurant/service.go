package restaurant

import (
	"context"

	"savora-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Get(ctx context.Context, id int64) (*Restaurant, error)
	GetByUserID(ctx context.Context, userID int64) (*Restaurant, error)
	List(ctx context.Context) ([]Restaurant, error)

	// UpdateSettings applies a partial update after checking the acting
	// user owns the restaurant.
	UpdateSettings(ctx context.Context, id int64, actingUserID int64, params SettingsParams) (*Restaurant, error)
	SetCategories(ctx context.Context, id int64, actingUserID int64, categories []string) error

	// Verify is an admin operation and carries no ownership check.
	Verify(ctx context.Context, id int64, verified bool) error

	// AttachMenuFile records the uploaded menu representation; a new upload
	// replaces the previous one regardless of kind.
	AttachMenuFile(ctx context.Context, id int64, actingUserID int64, file MenuFile) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context, id int64) (*Restaurant, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetByUserID(ctx context.Context, userID int64) (*Restaurant, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *service) List(ctx context.Context) ([]Restaurant, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) checkOwner(ctx context.Context, id, actingUserID int64) error {
	ownerID, err := s.repo.OwnerUserID(ctx, id)
	if err != nil {
		return err
	}
	if ownerID != actingUserID {
		return ErrForbidden
	}
	return nil
}

func (s *service) UpdateSettings(ctx context.Context, id int64, actingUserID int64, params SettingsParams) (*Restaurant, error) {
	if err := s.checkOwner(ctx, id, actingUserID); err != nil {
		return nil, err
	}

	rest, err := s.repo.UpdateSettings(ctx, id, params)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update restaurant settings",
			zap.Int64("restaurant_id", id), zap.Error(err))
		return nil, err
	}
	return rest, nil
}

func (s *service) SetCategories(ctx context.Context, id int64, actingUserID int64, categories []string) error {
	if err := s.checkOwner(ctx, id, actingUserID); err != nil {
		return err
	}
	return s.repo.SetCategories(ctx, id, categories)
}

func (s *service) Verify(ctx context.Context, id int64, verified bool) error {
	return s.repo.SetVerified(ctx, id, verified)
}

func (s *service) AttachMenuFile(ctx context.Context, id int64, actingUserID int64, file MenuFile) error {
	if err := s.checkOwner(ctx, id, actingUserID); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("menu file attached",
		zap.Int64("restaurant_id", id),
		zap.String("kind", string(file.Kind)),
	)
	return s.repo.SetMenuFile(ctx, id, file)
}
