package order

import (
	"context"
	"math"
	"time"

	"savora-be/internal/identity"
	"savora-be/internal/logger"
	"savora-be/internal/user"

	"go.uber.org/zap"
)

// RestaurantDirectory is the read path the lifecycle manager needs from the
// restaurant side: existence and the owning user for ownership checks.
type RestaurantDirectory interface {
	Exists(ctx context.Context, restaurantID int64) (bool, error)
	OwnerUserID(ctx context.Context, restaurantID int64) (int64, error)
}

type Service interface {
	Create(ctx context.Context, params CreateParams) (*Order, error)
	// UpdateStatus moves the order along the state machine. Only the owning
	// restaurant's user (or an admin) may transition an order.
	UpdateStatus(ctx context.Context, orderID int64, newStatus Status, actor identity.Identity) (*Order, error)
	// Cancel succeeds only while the order is still PENDING.
	Cancel(ctx context.Context, orderID int64) error
	Get(ctx context.Context, orderID int64) (*Order, error)
	ListForCustomer(ctx context.Context, customerID int64) ([]Order, error)
	ListForRestaurant(ctx context.Context, restaurantID int64) ([]Order, error)
}

type CreateParams struct {
	CustomerID          int64
	RestaurantID        int64
	Items               []ItemParams
	DeliveryAddress     string
	SpecialInstructions string
	// Total is taken from the caller rather than recomputed; a mismatch
	// against the item sum is logged but accepted.
	Total float64
}

type service struct {
	repo        Repository
	restaurants RestaurantDirectory
}

func NewService(repo Repository, restaurants RestaurantDirectory) Service {
	return &service{repo: repo, restaurants: restaurants}
}

func (s *service) Create(ctx context.Context, params CreateParams) (*Order, error) {
	log := logger.FromCtx(ctx)

	if len(params.Items) == 0 {
		return nil, ErrNoItems
	}
	itemSum := 0.0
	for _, it := range params.Items {
		if it.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		if it.Price < 0 {
			return nil, ErrInvalidPrice
		}
		itemSum += it.Price * float64(it.Quantity)
	}
	if params.Total < 0 {
		return nil, ErrInvalidTotal
	}

	exists, err := s.restaurants.Exists(ctx, params.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRestaurantNotFound
	}

	if math.Abs(itemSum-params.Total) > 0.01 {
		log.Warn("order total differs from item sum",
			zap.Int64("restaurant_id", params.RestaurantID),
			zap.Float64("total", params.Total),
			zap.Float64("item_sum", itemSum),
		)
	}

	o := &Order{
		CustomerID:          params.CustomerID,
		RestaurantID:        params.RestaurantID,
		TotalAmount:         params.Total,
		Status:              StatusPending,
		CreatedAt:           time.Now(),
		DeliveryAddress:     params.DeliveryAddress,
		SpecialInstructions: params.SpecialInstructions,
	}
	for _, it := range params.Items {
		o.Items = append(o.Items, OrderItem{
			ItemName:            it.ItemName,
			Quantity:            it.Quantity,
			Price:               it.Price,
			SpecialInstructions: it.SpecialInstructions,
		})
	}

	if err := s.repo.CreateTx(ctx, o); err != nil {
		log.Error("failed to create order",
			zap.Int64("customer_id", params.CustomerID),
			zap.Int64("restaurant_id", params.RestaurantID),
			zap.Error(err),
		)
		return nil, err
	}

	log.Info("order created",
		zap.Int64("order_id", o.ID),
		zap.Int64("restaurant_id", o.RestaurantID),
		zap.Float64("total", o.TotalAmount),
	)

	return o, nil
}

func (s *service) UpdateStatus(ctx context.Context, orderID int64, newStatus Status, actor identity.Identity) (*Order, error) {
	log := logger.FromCtx(ctx)

	if !ValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if actor.Role != string(user.RoleAdmin) {
		if actor.Role != string(user.RoleRestaurant) {
			return nil, ErrForbidden
		}
		ownerID, err := s.restaurants.OwnerUserID(ctx, o.RestaurantID)
		if err != nil {
			return nil, err
		}
		if ownerID != actor.UserID {
			return nil, ErrForbidden
		}
	}

	if !CanTransition(o.Status, newStatus) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, orderID, newStatus); err != nil {
		return nil, err
	}

	log.Info("order status updated",
		zap.Int64("order_id", orderID),
		zap.String("from", string(o.Status)),
		zap.String("to", string(newStatus)),
	)

	o.Status = newStatus
	return o, nil
}

func (s *service) Cancel(ctx context.Context, orderID int64) error {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	if o.Status != StatusPending {
		return ErrInvalidState
	}

	return s.repo.UpdateStatus(ctx, orderID, StatusCancelled)
}

func (s *service) Get(ctx context.Context, orderID int64) (*Order, error) {
	return s.repo.FindByID(ctx, orderID)
}

func (s *service) ListForCustomer(ctx context.Context, customerID int64) ([]Order, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *service) ListForRestaurant(ctx context.Context, restaurantID int64) ([]Order, error) {
	return s.repo.ListByRestaurant(ctx, restaurantID)
}
