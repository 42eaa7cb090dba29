package user

import (
	"context"
	"errors"
	"strings"

	"savora-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	// Register creates the user and its role-specific profile, then issues a token.
	Register(ctx context.Context, params RegisterParams) (string, *User, error)
	// Login checks the credentials and the expected role (when given) and issues a token.
	Login(ctx context.Context, email, password string, expectedRole Role) (string, *User, error)
	// IssueToken signs a fresh token for an already authenticated email.
	IssueToken(ctx context.Context, email string) (string, error)
	// VerifyToken returns the subject email of a valid token.
	VerifyToken(tokenStr string) (*CustomClaims, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, params RegisterParams) (string, *User, error) {
	log := logger.FromCtx(ctx)

	if params.Email == "" || params.Password == "" || params.Name == "" {
		return "", nil, ErrMissingFields
	}
	params.Role = Role(strings.ToUpper(string(params.Role)))
	if !ValidRole(params.Role) {
		return "", nil, ErrInvalidRole
	}

	// Check-then-act: reject the duplicate before any side effect. The
	// unique constraint on users.email is the safety net under
	// concurrent registrations.
	exists, err := s.repo.ExistsByEmail(ctx, params.Email)
	if err != nil {
		log.Error("failed to check email", zap.String("email", params.Email), zap.Error(err))
		return "", nil, err
	}
	if exists {
		return "", nil, ErrEmailExists
	}

	hashed, err := HashPassword(params.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", nil, err
	}

	u := &User{
		Email:    params.Email,
		Password: hashed,
		Name:     params.Name,
		Phone:    params.Phone,
		Role:     params.Role,
	}

	switch params.Role {
	case RoleCustomer:
		u, err = s.repo.CreateCustomer(ctx, u, params.Address)
	case RoleRestaurant:
		u, err = s.repo.CreateRestaurant(ctx, u, RestaurantSeed{
			Name:        params.Name,
			Description: "Welcome to " + params.Name,
			Address:     params.Address,
			Phone:       params.Phone,
			CuisineType: params.CuisineType,
		})
	default:
		u, err = s.repo.CreateAdmin(ctx, u)
	}
	if err != nil {
		log.Error("failed to create user",
			zap.String("email", params.Email),
			zap.String("role", string(params.Role)),
			zap.Error(err),
		)
		return "", nil, err
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Email)
	if err != nil {
		log.Error("failed to generate jwt", zap.Int64("user_id", u.ID), zap.Error(err))
		return "", nil, err
	}

	log.Info("register completed",
		zap.Int64("user_id", u.ID),
		zap.String("email", u.Email),
		zap.String("role", string(u.Role)),
	)

	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string, expectedRole Role) (string, *User, error) {
	log := logger.FromCtx(ctx)

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			log.Error("failed to look up user", zap.Error(err))
			return "", nil, err
		}
		return "", nil, ErrInvalidCredentials
	}

	if expectedRole != "" && !strings.EqualFold(string(expectedRole), string(u.Role)) {
		return "", nil, ErrRoleMismatch
	}

	if !CheckPasswordHash(password, u.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Email)
	return token, u, err
}

func (s *service) IssueToken(ctx context.Context, email string) (string, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return GenerateJWT(u.ID, string(u.Role), u.Email)
}

func (s *service) VerifyToken(tokenStr string) (*CustomClaims, error) {
	return ParseJWT(tokenStr)
}

func (s *service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *service) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.FindByID(ctx, id)
}
