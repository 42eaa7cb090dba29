package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"savora-be/internal/user"
)

type AuthHandler struct {
	users user.Service
}

func NewAuthHandler(users user.Service) *AuthHandler {
	return &AuthHandler{users: users}
}

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
	Address     string `json:"address"`
	CuisineType string `json:"cuisineType"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phoneNumber"`
	Role  string `json:"role"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func toUserResponse(u *user.User) userResponse {
	return userResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Phone: u.Phone,
		Role:  string(u.Role),
	}
}

// Register provisions the account and its role profile and returns a token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// Clients send either phone or phoneNumber; phone wins when both are set.
	phone := req.Phone
	if phone == "" {
		phone = req.PhoneNumber
	}

	token, u, err := h.users.Register(c.Request.Context(), user.RegisterParams{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		Phone:       phone,
		Role:        user.Role(req.Role),
		Address:     req.Address,
		CuisineType: req.CuisineType,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, authResponse{Token: token, User: toUserResponse(u)})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, u, err := h.users.Login(c.Request.Context(), req.Email, req.Password, user.Role(req.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{Token: token, User: toUserResponse(u)})
}
