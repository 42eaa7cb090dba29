package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"savora-be/internal/analytics"
	"savora-be/internal/restaurant"
)

type AdminHandler struct {
	restaurants restaurant.Service
	analytics   *analytics.Service
}

func NewAdminHandler(restaurants restaurant.Service, analytics *analytics.Service) *AdminHandler {
	return &AdminHandler{restaurants: restaurants, analytics: analytics}
}

type dashboardResponse struct {
	TotalUsers       int64   `json:"totalUsers"`
	TotalRestaurants int64   `json:"totalRestaurants"`
	TotalOrders      int64   `json:"totalOrders"`
	TotalRevenue     float64 `json:"totalRevenue"`
}

// Dashboard returns the platform-wide counters.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.analytics.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboardResponse{
		TotalUsers:       stats.TotalUsers,
		TotalRestaurants: stats.TotalRestaurants,
		TotalOrders:      stats.TotalOrders,
		TotalRevenue:     stats.TotalRevenue,
	})
}

type verifyRequest struct {
	Verified bool `json:"verified"`
}

// VerifyRestaurant flips the verification flag. Admin only.
func (h *AdminHandler) VerifyRestaurant(c *gin.Context) {
	restID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.restaurants.Verify(c.Request.Context(), restID, req.Verified); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "restaurant verification updated"})
}
