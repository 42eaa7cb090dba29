package customer

import "context"

type Service interface {
	GetByUserID(ctx context.Context, userID int64) (*Customer, error)
	UpdateProfile(ctx context.Context, userID int64, params ProfileParams) (*Customer, error)
	AwardPoints(ctx context.Context, customerID int64, points int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByUserID(ctx context.Context, userID int64) (*Customer, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *service) UpdateProfile(ctx context.Context, userID int64, params ProfileParams) (*Customer, error) {
	c, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateProfile(ctx, c.ID, params)
}

func (s *service) AwardPoints(ctx context.Context, customerID int64, points int) error {
	if points <= 0 {
		return ErrInvalidPoints
	}
	return s.repo.AddLoyaltyPoints(ctx, customerID, points)
}
