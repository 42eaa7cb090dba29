package analytics

import (
	"context"

	"savora-be/internal/order"
)

const defaultTopItems = 5

// OrderSource supplies the order history the summary is computed from.
// Satisfied by order.Repository.
type OrderSource interface {
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]order.Order, error)
}

type Service struct {
	orders OrderSource
	repo   Repository
}

func NewService(orders OrderSource, repo Repository) *Service {
	return &Service{orders: orders, repo: repo}
}

// RestaurantSummary aggregates a restaurant's full order history.
func (s *Service) RestaurantSummary(ctx context.Context, restaurantID int64) (Summary, error) {
	orders, err := s.orders.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return Summary{}, err
	}
	return Compute(orders, defaultTopItems), nil
}

// Dashboard returns the platform-wide stats for the admin view.
func (s *Service) Dashboard(ctx context.Context) (DashboardStats, error) {
	return s.repo.DashboardStats(ctx)
}
