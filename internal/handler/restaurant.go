package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"savora-be/internal/analytics"
	"savora-be/internal/identity"
	"savora-be/internal/order"
	"savora-be/internal/restaurant"
)

type RestaurantHandler struct {
	restaurants restaurant.Service
	analytics   *analytics.Service
}

func NewRestaurantHandler(restaurants restaurant.Service, analytics *analytics.Service) *RestaurantHandler {
	return &RestaurantHandler{restaurants: restaurants, analytics: analytics}
}

type restaurantResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Address      string   `json:"address"`
	Phone        string   `json:"phoneNumber"`
	Email        string   `json:"email,omitempty"`
	CuisineType  string   `json:"cuisineType"`
	OpeningHours string   `json:"openingHours"`
	ClosingHours string   `json:"closingHours"`
	Rating       float64  `json:"rating"`
	TotalReviews int      `json:"totalReviews"`
	IsVerified   bool     `json:"isVerified"`
	MenuFileKind string   `json:"menuFileKind,omitempty"`
	Categories   []string `json:"categories,omitempty"`
}

func toRestaurantResponse(r *restaurant.Restaurant) restaurantResponse {
	resp := restaurantResponse{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Address:      r.Address,
		Phone:        r.Phone,
		Email:        r.Email,
		CuisineType:  r.CuisineType,
		OpeningHours: r.OpeningHours,
		ClosingHours: r.ClosingHours,
		Rating:       r.Rating,
		TotalReviews: r.TotalReviews,
		IsVerified:   r.IsVerified,
		Categories:   r.Categories,
	}
	if r.MenuFile.Kind != restaurant.MenuFileNone {
		resp.MenuFileKind = string(r.MenuFile.Kind)
	}
	return resp
}

func (h *RestaurantHandler) List(c *gin.Context) {
	list, err := h.restaurants.List(c.Request.Context())
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

func (h *RestaurantHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	r, err := h.restaurants.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRestaurantResponse(r))
}

// GetMine returns the restaurant owned by the authenticated user.
func (h *RestaurantHandler) GetMine(c *gin.Context) {
	id, _ := identity.FromContext(c.Request.Context())

	r, err := h.restaurants.GetByUserID(c.Request.Context(), id.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRestaurantResponse(r))
}

type settingsRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Address      *string `json:"address"`
	Phone        *string `json:"phone"`
	PhoneNumber  *string `json:"phoneNumber"`
	CuisineType  *string `json:"cuisineType"`
	OpeningHours *string `json:"openingHours"`
	ClosingHours *string `json:"closingHours"`
}

// UpdateSettings applies a partial update to the caller's restaurant.
func (h *RestaurantHandler) UpdateSettings(c *gin.Context) {
	id, _ := identity.FromContext(c.Request.Context())

	restID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// Clients send either phone or phoneNumber; phone wins when both are set.
	phone := req.Phone
	if phone == nil {
		phone = req.PhoneNumber
	}

	r, err := h.restaurants.UpdateSettings(c.Request.Context(), restID, id.UserID, restaurant.SettingsParams{
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		Phone:        phone,
		CuisineType:  req.CuisineType,
		OpeningHours: req.OpeningHours,
		ClosingHours: req.ClosingHours,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRestaurantResponse(r))
}

type categoriesRequest struct {
	Categories []string `json:"categories"`
}

func (h *RestaurantHandler) SetCategories(c *gin.Context) {
	id, _ := identity.FromContext(c.Request.Context())

	restID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req categoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.restaurants.SetCategories(c.Request.Context(), restID, id.UserID, req.Categories); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "categories updated"})
}

type analyticsResponse struct {
	TotalOrders       int                   `json:"totalOrders"`
	TotalRevenue      float64               `json:"totalRevenue"`
	AverageOrderValue float64               `json:"averageOrderValue"`
	OrdersByStatus    map[order.Status]int  `json:"ordersByStatus"`
	RevenueByDay      map[string]float64    `json:"revenueByDay"`
	TopItems          []analytics.ItemCount `json:"topItems"`
}

// Analytics reports the caller's restaurant over its full order history.
func (h *RestaurantHandler) Analytics(c *gin.Context) {
	id, _ := identity.FromContext(c.Request.Context())

	r, err := h.restaurants.GetByUserID(c.Request.Context(), id.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	s, err := h.analytics.RestaurantSummary(c.Request.Context(), r.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, analyticsResponse{
		TotalOrders:       s.TotalOrders,
		TotalRevenue:      s.TotalRevenue,
		AverageOrderValue: s.AverageOrderValue,
		OrdersByStatus:    s.OrdersByStatus,
		RevenueByDay:      s.RevenueByDay,
		TopItems:          s.TopItems,
	})
}
