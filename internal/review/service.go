package review

import "context"

// RestaurantDirectory is the existence check the review service needs;
// restaurant.Repository satisfies it.
type RestaurantDirectory interface {
	Exists(ctx context.Context, restaurantID int64) (bool, error)
}

type Service interface {
	Create(ctx context.Context, customerID, restaurantID int64, rating int, comment string) (*Review, error)
	ListForRestaurant(ctx context.Context, restaurantID int64) ([]Review, error)
}

type service struct {
	repo        Repository
	restaurants RestaurantDirectory
}

func NewService(repo Repository, restaurants RestaurantDirectory) Service {
	return &service{repo: repo, restaurants: restaurants}
}

func (s *service) Create(ctx context.Context, customerID, restaurantID int64, rating int, comment string) (*Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	exists, err := s.restaurants.Exists(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRestaurantNotFound
	}

	rv := &Review{
		RestaurantID: restaurantID,
		CustomerID:   customerID,
		Rating:       rating,
		Comment:      comment,
	}
	if err := s.repo.CreateTx(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *service) ListForRestaurant(ctx context.Context, restaurantID int64) ([]Review, error) {
	return s.repo.ListByRestaurant(ctx, restaurantID)
}
