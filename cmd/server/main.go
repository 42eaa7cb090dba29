package main

import (
	"log"

	"savora-be/internal/analytics"
	"savora-be/internal/config"
	"savora-be/internal/customer"
	"savora-be/internal/db"
	"savora-be/internal/favorite"
	"savora-be/internal/handler"
	"savora-be/internal/logger"
	"savora-be/internal/menu"
	"savora-be/internal/order"
	"savora-be/internal/restaurant"
	"savora-be/internal/review"
	"savora-be/internal/storage"
	"savora-be/internal/user"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	files, err := storage.NewDisk(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to init file storage: %v", err)
	}

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	customerRepo := customer.NewRepository(database)
	customerSvc := customer.NewService(customerRepo)

	restaurantRepo := restaurant.NewRepository(database)
	restaurantSvc := restaurant.NewService(restaurantRepo)

	menuRepo := menu.NewRepository(database)
	menuSvc := menu.NewService(menuRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, restaurantRepo)

	favoriteRepo := favorite.NewRepository(database)
	favoriteSvc := favorite.NewService(favoriteRepo, restaurantRepo)

	reviewRepo := review.NewRepository(database)
	reviewSvc := review.NewService(reviewRepo, restaurantRepo)

	analyticsSvc := analytics.NewService(orderRepo, analytics.NewRepository(database))

	router := handler.NewRouter(handler.Handlers{
		Auth:       handler.NewAuthHandler(userSvc),
		Order:      handler.NewOrderHandler(orderSvc, customerSvc, restaurantSvc),
		Restaurant: handler.NewRestaurantHandler(restaurantSvc, analyticsSvc),
		Menu:       handler.NewMenuHandler(menuSvc, restaurantSvc, files),
		Customer:   handler.NewCustomerHandler(customerSvc, favoriteSvc),
		Review:     handler.NewReviewHandler(reviewSvc, customerSvc),
		Admin:      handler.NewAdminHandler(restaurantSvc, analyticsSvc),
		Users:      userSvc,
	})

	log.Printf("🚀 API server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(router.Run(":" + cfg.AppPort))
}
