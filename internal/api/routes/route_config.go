package routes

import (
	"NutriTrack-Backend/internal/api/handlers"
	"NutriTrack-Backend/internal/middleware"
	"NutriTrack-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	FoodHandler         handlers.FoodHandler
	TrackerHandler      handlers.TrackerHandler
	SubscriptionHandler handlers.SubscriptionHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Foods()
	c.Tracker()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")

	user.Post("/register", c.UserHandler.Register)
	user.Post("/login", c.UserHandler.Login)
	user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
	user.Get("/verify", c.UserHandler.VerifyEmail)
	user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
	user.Get("/targets", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetTargets)
	user.Post("/avatar", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadAvatar)
	user.Post("/forget", c.UserHandler.ForgotPassword)
	user.Post("/reset", c.UserHandler.ResetPassword)
	user.Post("/subscribe", c.Middleware.AuthMiddleware(c.JWTService), c.SubscriptionHandler.CreateTransaction)
}

func (c *Config) Foods() {
	foods := c.App.Group("/api/v1/foods", c.Middleware.AuthMiddleware(c.JWTService))

	foods.Post("", c.FoodHandler.AddFood)
	foods.Get("", c.FoodHandler.GetFoods)
	foods.Get("/:id", c.FoodHandler.GetFoodDetails)
	foods.Put("/:id", c.FoodHandler.UpdateFood)
	foods.Delete("/:id", c.FoodHandler.DeleteFood)
	foods.Post("/image", c.FoodHandler.UploadFoodImage)
}

func (c *Config) Tracker() {
	tracker := c.App.Group("/api/v1/tracker", c.Middleware.AuthMiddleware(c.JWTService))

	tracker.Post("/food-logs", c.TrackerHandler.AddFoodLog)
	tracker.Put("/food-logs/:id", c.TrackerHandler.UpdateFoodLog)
	tracker.Delete("/food-logs/:id", c.TrackerHandler.DeleteFoodLog)
	tracker.Post("/exercise-logs", c.TrackerHandler.AddExerciseLog)
	tracker.Put("/exercise-logs/:id", c.TrackerHandler.UpdateExerciseLog)
	tracker.Delete("/exercise-logs/:id", c.TrackerHandler.DeleteExerciseLog)
	tracker.Post("/water-logs", c.TrackerHandler.AddWaterLog)
	tracker.Delete("/water-logs/:id", c.TrackerHandler.DeleteWaterLog)

	tracker.Get("/summary", c.TrackerHandler.GetDailySummary)
	tracker.Get("/streak", c.TrackerHandler.GetStreak)
	tracker.Get("/calendar", c.TrackerHandler.GetCalendar)
	tracker.Get("/weekly", c.TrackerHandler.GetWeekly)
	tracker.Get("/dashboard", c.TrackerHandler.GetDashboard)
	tracker.Get("/export", c.TrackerHandler.ExportLogs)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.SubscriptionHandler.MidtransWebhookHandler)
}
