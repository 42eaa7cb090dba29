package handler

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"savora-be/internal/logger"
	"savora-be/internal/metrics"
	"savora-be/internal/middleware"
	"savora-be/internal/user"
)

type Handlers struct {
	Auth       *AuthHandler
	Order      *OrderHandler
	Restaurant *RestaurantHandler
	Menu       *MenuHandler
	Customer   *CustomerHandler
	Review     *ReviewHandler
	Admin      *AdminHandler
	Users      user.Service
}

func countRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.Requests.Total.Inc()
		c.Next()
		if c.Writer.Status() >= http.StatusInternalServerError {
			metrics.Requests.Errors.Inc()
		}
	}
}

// NewRouter wires all routes. Ownership checks live in the services; the
// router only gates by role.
func NewRouter(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestIDMiddleware())
	r.Use(logger.LoggingMiddleware())
	r.Use(countRequests())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"requests": metrics.Requests.Total.Load(),
			"errors":   metrics.Requests.Errors.Load(),
		})
	})

	api := r.Group("/api")

	// Public
	authRoutes := api.Group("/auth", middleware.RateLimit("strict"))
	{
		authRoutes.POST("/register", h.Auth.Register)
		authRoutes.POST("/login", h.Auth.Login)
	}
	api.GET("/restaurants", h.Restaurant.List)
	api.GET("/restaurants/:id", h.Restaurant.Get)
	api.GET("/restaurants/:id/menu", h.Menu.GetForRestaurant)
	api.GET("/restaurants/:id/reviews", h.Review.ListForRestaurant)
	api.GET("/files/:ref", h.Menu.File)

	authed := api.Group("", middleware.Auth(h.Users), middleware.RateLimit("general"))
	authed.GET("/orders/:id", h.Order.Get)

	customer := authed.Group("", middleware.RequireRole(string(user.RoleCustomer)))
	{
		customer.POST("/orders", h.Order.Create)
		customer.GET("/orders", h.Order.ListMine)
		customer.PUT("/orders/:id/cancel", h.Order.Cancel)
		customer.GET("/profile", h.Customer.Profile)
		customer.PUT("/profile", h.Customer.UpdateProfile)
		customer.POST("/restaurants/:id/reviews", h.Review.Create)
		customer.POST("/restaurants/:id/favorite", h.Customer.ToggleFavorite)
		customer.GET("/restaurants/:id/favorite", h.Customer.IsFavorite)
		customer.GET("/favorites", h.Customer.ListFavorites)
	}

	authed.PUT("/orders/:id/status",
		middleware.RequireRole(string(user.RoleRestaurant), string(user.RoleAdmin)),
		h.Order.UpdateStatus)

	owner := authed.Group("/restaurant", middleware.RequireRole(string(user.RoleRestaurant)))
	{
		owner.GET("", h.Restaurant.GetMine)
		owner.GET("/orders", h.Order.ListForRestaurant)
		owner.GET("/analytics", h.Restaurant.Analytics)
	}

	manage := authed.Group("", middleware.RequireRole(string(user.RoleRestaurant)))
	{
		manage.PUT("/restaurants/:id/settings", h.Restaurant.UpdateSettings)
		manage.PUT("/restaurants/:id/categories", h.Restaurant.SetCategories)
		manage.POST("/menus/:id/upload", h.Menu.Upload)
		manage.POST("/menus/:id/items", h.Menu.AddItem)
		manage.PUT("/menus/:id/items/:itemId", h.Menu.UpdateItem)
		manage.DELETE("/menus/:id/items/:itemId", h.Menu.RemoveItem)
	}

	admin := authed.Group("/admin", middleware.RequireRole(string(user.RoleAdmin)))
	{
		admin.GET("/dashboard", h.Admin.Dashboard)
		admin.PUT("/restaurants/:id/verify", h.Admin.VerifyRestaurant)
	}

	return r
}
