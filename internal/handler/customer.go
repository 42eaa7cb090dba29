package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"savora-be/internal/customer"
	"savora-be/internal/favorite"
	"savora-be/internal/identity"
)

type CustomerHandler struct {
	customers customer.Service
	favorites favorite.Service
}

func NewCustomerHandler(customers customer.Service, favorites favorite.Service) *CustomerHandler {
	return &CustomerHandler{customers: customers, favorites: favorites}
}

type customerResponse struct {
	ID                   int64  `json:"id"`
	UserID               int64  `json:"userId"`
	Address              string `json:"address"`
	DeliveryInstructions string `json:"deliveryInstructions,omitempty"`
	LoyaltyPoints        int    `json:"loyaltyPoints"`
}

func toCustomerResponse(cu *customer.Customer) customerResponse {
	return customerResponse{
		ID:                   cu.ID,
		UserID:               cu.UserID,
		Address:              cu.Address,
		DeliveryInstructions: cu.DeliveryInstructions,
		LoyaltyPoints:        cu.LoyaltyPoints,
	}
}

func (h *CustomerHandler) Profile(c *gin.Context) {
	id, _ := identity.FromContext(c.Request.Context())

	cu, err := h.customers.GetByUserID(c.Request.Context(), id.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(cu))
}

type profileRequest struct {
	Address              *string `json:"address"`
	DeliveryInstructions *string `json:"deliveryInstructions"`
}

func (h *CustomerHandler) UpdateProfile(c *gin.Context) {
	id, _ := identity.FromContext(c.Request.Context())

	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cu, err := h.customers.UpdateProfile(c.Request.Context(), id.UserID, customer.ProfileParams{
		Address:              req.Address,
		DeliveryInstructions: req.DeliveryInstructions,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(cu))
}

// ToggleFavorite flips the favorite state and reports the new one.
func (h *CustomerHandler) ToggleFavorite(c *gin.Context) {
	id, _ := identity.FromContext(c.Request.Context())

	restID, ok := pathID(c, "id")
	if !ok {
		return
	}

	nowFavorite, err := h.favorites.Toggle(c.Request.Context(), id.UserID, restID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorite": nowFavorite})
}

func (h *CustomerHandler) IsFavorite(c *gin.Context) {
	id, _ := identity.FromContext(c.Request.Context())

	restID, ok := pathID(c, "id")
	if !ok {
		return
	}

	fav, err := h.favorites.IsFavorite(c.Request.Context(), id.UserID, restID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorite": fav})
}

// ListFavorites returns the caller's favorite restaurants, skipping inactive
// ones.
func (h *CustomerHandler) ListFavorites(c *gin.Context) {
	id, _ := identity.FromContext(c.Request.Context())

	list, err := h.favorites.ListForUser(c.Request.Context(), id.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]restaurantResponse, 0, len(list))
	for i := range list {
		out = append(out, toRestaurantResponse(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}
