package menu

import (
	"context"

	"savora-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	GetForRestaurant(ctx context.Context, restaurantID int64) (*Menu, error)
	Get(ctx context.Context, menuID int64) (*Menu, error)

	// AttachFile overwrites the menu's uploaded-file reference; a re-upload
	// never creates a second menu.
	AttachFile(ctx context.Context, menuID int64, actingUserID int64, ref string) error

	AddItem(ctx context.Context, menuID int64, actingUserID int64, params ItemParams) (*MenuItem, error)
	UpdateItem(ctx context.Context, menuID, itemID int64, actingUserID int64, params ItemParams) (*MenuItem, error)
	RemoveItem(ctx context.Context, menuID, itemID int64, actingUserID int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetForRestaurant(ctx context.Context, restaurantID int64) (*Menu, error) {
	return s.repo.FindActiveByRestaurant(ctx, restaurantID)
}

func (s *service) Get(ctx context.Context, menuID int64) (*Menu, error) {
	return s.repo.FindByID(ctx, menuID)
}

func (s *service) checkOwner(ctx context.Context, menuID, actingUserID int64) error {
	ownerID, err := s.repo.OwnerUserID(ctx, menuID)
	if err != nil {
		return err
	}
	if ownerID != actingUserID {
		return ErrForbidden
	}
	return nil
}

func (s *service) AttachFile(ctx context.Context, menuID int64, actingUserID int64, ref string) error {
	if err := s.checkOwner(ctx, menuID, actingUserID); err != nil {
		return err
	}
	return s.repo.SetFileRef(ctx, menuID, ref)
}

func (s *service) AddItem(ctx context.Context, menuID int64, actingUserID int64, params ItemParams) (*MenuItem, error) {
	log := logger.FromCtx(ctx)

	if err := s.checkOwner(ctx, menuID, actingUserID); err != nil {
		return nil, err
	}

	if params.Name == nil || *params.Name == "" {
		return nil, ErrMissingName
	}
	item := MenuItem{
		MenuID:      menuID,
		Name:        *params.Name,
		IsAvailable: true,
	}
	if params.Description != nil {
		item.Description = *params.Description
	}
	if params.Price != nil {
		if *params.Price < 0 {
			return nil, ErrInvalidPrice
		}
		item.Price = *params.Price
	}
	if params.ImageRef != nil {
		item.ImageRef = *params.ImageRef
	}
	if params.IsAvailable != nil {
		item.IsAvailable = *params.IsAvailable
	}

	if err := s.repo.InsertItem(ctx, &item); err != nil {
		log.Error("failed to insert menu item", zap.Int64("menu_id", menuID), zap.Error(err))
		return nil, err
	}
	return &item, nil
}

func (s *service) UpdateItem(ctx context.Context, menuID, itemID int64, actingUserID int64, params ItemParams) (*MenuItem, error) {
	if err := s.checkOwner(ctx, menuID, actingUserID); err != nil {
		return nil, err
	}
	if params.Price != nil && *params.Price < 0 {
		return nil, ErrInvalidPrice
	}
	return s.repo.UpdateItem(ctx, itemID, params)
}

func (s *service) RemoveItem(ctx context.Context, menuID, itemID int64, actingUserID int64) error {
	if err := s.checkOwner(ctx, menuID, actingUserID); err != nil {
		return err
	}
	return s.repo.DeleteItem(ctx, itemID)
}
