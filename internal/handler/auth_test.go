package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"savora-be/internal/user"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, params user.RegisterParams) (string, *user.User, error) {
	args := m.Called(ctx, params)
	var u *user.User
	if args.Get(1) != nil {
		u = args.Get(1).(*user.User)
	}
	return args.String(0), u, args.Error(2)
}

func (m *MockUserService) Login(ctx context.Context, email, password string, expectedRole user.Role) (string, *user.User, error) {
	args := m.Called(ctx, email, password, expectedRole)
	var u *user.User
	if args.Get(1) != nil {
		u = args.Get(1).(*user.User)
	}
	return args.String(0), u, args.Error(2)
}

func (m *MockUserService) IssueToken(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) VerifyToken(tokenStr string) (*user.CustomClaims, error) {
	args := m.Called(tokenStr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.CustomClaims), args.Error(1)
}

func (m *MockUserService) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func authRouter(users user.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(users)
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	return r
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		users := new(MockUserService)
		users.On("Register", mock.Anything, mock.MatchedBy(func(p user.RegisterParams) bool {
			return p.Email == "a@b.c" && p.Phone == "0812"
		})).Return("tok", &user.User{ID: 1, Email: "a@b.c", Name: "A", Role: user.RoleCustomer}, nil)

		body := `{"email":"a@b.c","password":"secret","name":"A","phoneNumber":"0812","role":"CUSTOMER"}`
		req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		authRouter(users).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"tok"`)
		users.AssertExpectations(t)
	})

	t.Run("PhoneFieldWinsOverPhoneNumber", func(t *testing.T) {
		users := new(MockUserService)
		users.On("Register", mock.Anything, mock.MatchedBy(func(p user.RegisterParams) bool {
			return p.Phone == "111"
		})).Return("tok", &user.User{ID: 1}, nil)

		body := `{"email":"a@b.c","password":"x","name":"A","phone":"111","phoneNumber":"222","role":"CUSTOMER"}`
		req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		authRouter(users).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		users.AssertExpectations(t)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		users := new(MockUserService)
		users.On("Register", mock.Anything, mock.Anything).Return("", nil, user.ErrEmailExists)

		body := `{"email":"a@b.c","password":"x","name":"A","role":"CUSTOMER"}`
		req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		authRouter(users).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		users := new(MockUserService)

		req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		authRouter(users).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		users := new(MockUserService)
		users.On("Login", mock.Anything, "a@b.c", "secret", user.Role("")).
			Return("tok", &user.User{ID: 1, Email: "a@b.c", Role: user.RoleCustomer}, nil)

		body := `{"email":"a@b.c","password":"secret"}`
		req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		authRouter(users).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"tok"`)
	})

	t.Run("BadCredentials", func(t *testing.T) {
		users := new(MockUserService)
		users.On("Login", mock.Anything, "a@b.c", "wrong", user.Role("")).
			Return("", nil, user.ErrInvalidCredentials)

		body := `{"email":"a@b.c","password":"wrong"}`
		req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		authRouter(users).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("RoleMismatch", func(t *testing.T) {
		users := new(MockUserService)
		users.On("Login", mock.Anything, "a@b.c", "secret", user.RoleRestaurant).
			Return("", nil, user.ErrRoleMismatch)

		body := `{"email":"a@b.c","password":"secret","role":"RESTAURANT"}`
		req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		authRouter(users).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
