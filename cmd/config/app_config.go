package config

import (
	"NutriTrack-Backend/internal/api/handlers"
	"NutriTrack-Backend/internal/api/routes"
	"NutriTrack-Backend/internal/middleware"
	"NutriTrack-Backend/internal/utils"
	"NutriTrack-Backend/internal/utils/storage"
	"NutriTrack-Backend/pkg/food"
	"NutriTrack-Backend/pkg/jwt"
	"NutriTrack-Backend/pkg/subscription"
	"NutriTrack-Backend/pkg/tracker"
	"NutriTrack-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	trackerRepository := tracker.NewTrackerRepository(db)
	subscriptionRepository := subscription.NewSubscriptionRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	foodService := food.NewFoodService(foodRepository, s3)
	trackerService := tracker.NewTrackerService(
		trackerRepository,
		foodRepository,
		userRepository,
	)
	subscriptionService := subscription.NewSubscriptionService(
		subscriptionRepository,
		userRepository,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator, jwtService)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	trackerHandler := handlers.NewTrackerHandler(trackerService, validator)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		FoodHandler:         foodHandler,
		TrackerHandler:      trackerHandler,
		SubscriptionHandler: subscriptionHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
