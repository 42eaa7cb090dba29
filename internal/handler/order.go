package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"savora-be/internal/customer"
	"savora-be/internal/identity"
	"savora-be/internal/logger"
	"savora-be/internal/order"
	"savora-be/internal/restaurant"
)

type OrderHandler struct {
	orders      order.Service
	customers   customer.Service
	restaurants restaurant.Service
}

func NewOrderHandler(orders order.Service, customers customer.Service, restaurants restaurant.Service) *OrderHandler {
	return &OrderHandler{orders: orders, customers: customers, restaurants: restaurants}
}

type orderItemRequest struct {
	ItemName            string  `json:"itemName"`
	Quantity            int     `json:"quantity"`
	Price               float64 `json:"price"`
	SpecialInstructions string  `json:"specialInstructions"`
}

type createOrderRequest struct {
	RestaurantID        int64              `json:"restaurantId"`
	Items               []orderItemRequest `json:"items"`
	TotalAmount         float64            `json:"totalAmount"`
	DeliveryAddress     string             `json:"deliveryAddress"`
	SpecialInstructions string             `json:"specialInstructions"`
}

type orderItemResponse struct {
	ID                  int64   `json:"id"`
	ItemName            string  `json:"itemName"`
	Quantity            int     `json:"quantity"`
	Price               float64 `json:"price"`
	SpecialInstructions string  `json:"specialInstructions,omitempty"`
}

type orderResponse struct {
	ID                    int64               `json:"id"`
	CustomerID            int64               `json:"customerId"`
	RestaurantID          int64               `json:"restaurantId"`
	Items                 []orderItemResponse `json:"items"`
	TotalAmount           float64             `json:"totalAmount"`
	Status                string              `json:"status"`
	CreatedAt             time.Time           `json:"createdAt"`
	EstimatedDeliveryTime *time.Time          `json:"estimatedDeliveryTime,omitempty"`
	DeliveryAddress       string              `json:"deliveryAddress"`
	SpecialInstructions   string              `json:"specialInstructions,omitempty"`
}

func toOrderResponse(o *order.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemResponse{
			ID:                  it.ID,
			ItemName:            it.ItemName,
			Quantity:            it.Quantity,
			Price:               it.Price,
			SpecialInstructions: it.SpecialInstructions,
		})
	}
	return orderResponse{
		ID:                    o.ID,
		CustomerID:            o.CustomerID,
		RestaurantID:          o.RestaurantID,
		Items:                 items,
		TotalAmount:           o.TotalAmount,
		Status:                string(o.Status),
		CreatedAt:             o.CreatedAt,
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
		DeliveryAddress:       o.DeliveryAddress,
		SpecialInstructions:   o.SpecialInstructions,
	}
}

func toOrderList(orders []order.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}
	return out
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// Create places an order for the authenticated customer.
func (h *OrderHandler) Create(c *gin.Context) {
	id, _ := identity.FromContext(c.Request.Context())

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cust, err := h.customers.GetByUserID(c.Request.Context(), id.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]order.ItemParams, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, order.ItemParams{
			ItemName:            it.ItemName,
			Quantity:            it.Quantity,
			Price:               it.Price,
			SpecialInstructions: it.SpecialInstructions,
		})
	}

	o, err := h.orders.Create(c.Request.Context(), order.CreateParams{
		CustomerID:          cust.ID,
		RestaurantID:        req.RestaurantID,
		Items:               items,
		DeliveryAddress:     req.DeliveryAddress,
		SpecialInstructions: req.SpecialInstructions,
		Total:               req.TotalAmount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(o))
}

func (h *OrderHandler) Get(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	o, err := h.orders.Get(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(o))
}

// ListMine returns the authenticated customer's orders, newest first.
func (h *OrderHandler) ListMine(c *gin.Context) {
	id, _ := identity.FromContext(c.Request.Context())

	cust, err := h.customers.GetByUserID(c.Request.Context(), id.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	orders, err := h.orders.ListForCustomer(c.Request.Context(), cust.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderList(orders))
}

// ListForRestaurant returns the authenticated restaurant's orders.
func (h *OrderHandler) ListForRestaurant(c *gin.Context) {
	id, _ := identity.FromContext(c.Request.Context())

	rest, err := h.restaurants.GetByUserID(c.Request.Context(), id.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	orders, err := h.orders.ListForRestaurant(c.Request.Context(), rest.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderList(orders))
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus transitions the order; only the owning restaurant or an admin
// may do so. A delivered order earns the customer loyalty points.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, _ := identity.FromContext(c.Request.Context())

	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	o, err := h.orders.UpdateStatus(c.Request.Context(), orderID, order.Status(req.Status), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if o.Status == order.StatusDelivered {
		points := int(o.TotalAmount)
		if points > 0 {
			if err := h.customers.AwardPoints(c.Request.Context(), o.CustomerID, points); err != nil {
				logger.FromCtx(c.Request.Context()).Warn("failed to award loyalty points",
					zap.Int64("order_id", o.ID), zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, toOrderResponse(o))
}

// Cancel rejects anything past PENDING.
func (h *OrderHandler) Cancel(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.orders.Cancel(c.Request.Context(), orderID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order cancelled"})
}
