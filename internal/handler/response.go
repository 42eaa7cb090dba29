package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"savora-be/internal/customer"
	"savora-be/internal/favorite"
	"savora-be/internal/logger"
	"savora-be/internal/menu"
	"savora-be/internal/metrics"
	"savora-be/internal/order"
	"savora-be/internal/restaurant"
	"savora-be/internal/review"
	"savora-be/internal/storage"
	"savora-be/internal/user"
)

// statusFor maps domain errors onto HTTP status codes. Unknown errors are
// treated as internal.
func statusFor(err error) int {
	switch {
	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, user.ErrInvalidToken):
		return http.StatusUnauthorized

	case errors.Is(err, user.ErrRoleMismatch),
		errors.Is(err, order.ErrForbidden),
		errors.Is(err, restaurant.ErrForbidden),
		errors.Is(err, menu.ErrForbidden):
		return http.StatusForbidden

	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, order.ErrRestaurantNotFound),
		errors.Is(err, restaurant.ErrNotFound),
		errors.Is(err, menu.ErrMenuNotFound),
		errors.Is(err, menu.ErrItemNotFound),
		errors.Is(err, customer.ErrNotFound),
		errors.Is(err, favorite.ErrRestaurantNotFound),
		errors.Is(err, review.ErrRestaurantNotFound),
		errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, user.ErrEmailExists),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrInvalidState):
		return http.StatusConflict

	case errors.Is(err, user.ErrMissingFields),
		errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, order.ErrNoItems),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrInvalidPrice),
		errors.Is(err, order.ErrInvalidTotal),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, menu.ErrMissingName),
		errors.Is(err, menu.ErrInvalidPrice),
		errors.Is(err, customer.ErrInvalidPoints),
		errors.Is(err, review.ErrInvalidRating):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.FromCtx(c.Request.Context()).Error("request failed", zap.Error(err))
		metrics.Requests.Errors.Inc()
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
