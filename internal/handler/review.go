package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"savora-be/internal/customer"
	"savora-be/internal/identity"
	"savora-be/internal/review"
)

type ReviewHandler struct {
	reviews   review.Service
	customers customer.Service
}

func NewReviewHandler(reviews review.Service, customers customer.Service) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, customers: customers}
}

type createReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type reviewResponse struct {
	ID           int64     `json:"id"`
	RestaurantID int64     `json:"restaurantId"`
	CustomerID   int64     `json:"customerId"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toReviewResponse(r *review.Review) reviewResponse {
	return reviewResponse{
		ID:           r.ID,
		RestaurantID: r.RestaurantID,
		CustomerID:   r.CustomerID,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
	}
}

// Create posts a review and refreshes the restaurant's aggregate rating.
func (h *ReviewHandler) Create(c *gin.Context) {
	id, _ := identity.FromContext(c.Request.Context())

	restID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cust, err := h.customers.GetByUserID(c.Request.Context(), id.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	r, err := h.reviews.Create(c.Request.Context(), cust.ID, restID, req.Rating, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toReviewResponse(r))
}

func (h *ReviewHandler) ListForRestaurant(c *gin.Context) {
	restID, ok := pathID(c, "id")
	if !ok {
		return
	}

	list, err := h.reviews.ListForRestaurant(c.Request.Context(), restID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]reviewResponse, 0, len(list))
	for i := range list {
		out = append(out, toReviewResponse(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}
