package favorite

import (
	"context"

	"savora-be/internal/restaurant"
)

// RestaurantDirectory is the narrow read path the favorites service needs;
// restaurant.Repository satisfies it.
type RestaurantDirectory interface {
	Exists(ctx context.Context, restaurantID int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*restaurant.Restaurant, error)
}

type Service interface {
	// Toggle flips the favorite for (user, restaurant) and reports the new
	// state: true when the restaurant is now a favorite.
	Toggle(ctx context.Context, userID, restaurantID int64) (bool, error)
	IsFavorite(ctx context.Context, userID, restaurantID int64) (bool, error)
	ListForUser(ctx context.Context, userID int64) ([]restaurant.Restaurant, error)
}

type service struct {
	repo        Repository
	restaurants RestaurantDirectory
}

func NewService(repo Repository, restaurants RestaurantDirectory) Service {
	return &service{repo: repo, restaurants: restaurants}
}

func (s *service) Toggle(ctx context.Context, userID, restaurantID int64) (bool, error) {
	exists, err := s.restaurants.Exists(ctx, restaurantID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, ErrRestaurantNotFound
	}

	existing, err := s.repo.Find(ctx, userID, restaurantID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, s.repo.Delete(ctx, userID, restaurantID)
	}
	return true, s.repo.Insert(ctx, userID, restaurantID)
}

func (s *service) IsFavorite(ctx context.Context, userID, restaurantID int64) (bool, error) {
	f, err := s.repo.Find(ctx, userID, restaurantID)
	if err != nil {
		return false, err
	}
	return f != nil, nil
}

func (s *service) ListForUser(ctx context.Context, userID int64) ([]restaurant.Restaurant, error) {
	ids, err := s.repo.ListRestaurantIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]restaurant.Restaurant, 0, len(ids))
	for _, id := range ids {
		r, err := s.restaurants.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, nil
}
