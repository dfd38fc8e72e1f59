package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/volunteercentral/volunteer-backend/internal/config"
	"github.com/volunteercentral/volunteer-backend/internal/handlers"
	"github.com/volunteercentral/volunteer-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	eventHandler *handlers.EventHandler,
	userHandler *handlers.UserHandler,
	historyHandler *handlers.HistoryHandler,
	notificationHandler *handlers.NotificationHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	authLimit := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	api.Post("/signup", authLimit, authHandler.Signup)
	api.Post("/login", authLimit, authHandler.Login)
	api.Post("/token/refresh", authLimit, authHandler.Refresh)

	// Authenticated routes
	protected := api.Group("", middleware.JWTProtected(cfg))
	protected.Delete("/auth/account", authHandler.DeleteAccount)

	protected.Get("/profile", profileHandler.GetProfile)
	protected.Put("/profile", profileHandler.UpdateProfile)
	protected.Get("/availabilities", profileHandler.ListAvailabilities)
	protected.Post("/availabilities", profileHandler.AddAvailabilities)
	protected.Get("/skills", profileHandler.ListSkills)
	protected.Post("/skills", profileHandler.AddSkills)

	protected.Get("/events", eventHandler.List)
	protected.Get("/events/:id", eventHandler.Get)
	protected.Get("/event-skills", eventHandler.ListEventSkills)

	protected.Get("/volunteer-history", historyHandler.List)
	protected.Get("/history/:id", historyHandler.Get)

	protected.Get("/notifications", notificationHandler.List)
	protected.Delete("/notifications/:id", notificationHandler.Delete)

	// Admin routes
	admin := api.Group("", middleware.JWTProtected(cfg), middleware.AdminRequired(db))
	admin.Post("/events", eventHandler.Create)
	admin.Put("/events/:id", eventHandler.Update)
	admin.Delete("/events/:id", eventHandler.Delete)
	admin.Post("/event-skills", eventHandler.CreateEventSkill)

	admin.Get("/users", userHandler.List)
	admin.Get("/users/:id", userHandler.Get)

	admin.Post("/volunteer-history/bulk-create", historyHandler.BulkCreate)

	admin.Get("/report/events/csv", reportHandler.EventsCSV)
	admin.Get("/report/events/pdf", reportHandler.EventsPDF)
	admin.Get("/report/volunteer-history/csv", reportHandler.VolunteerHistoryCSV)
	admin.Get("/report/volunteer-history/pdf", reportHandler.VolunteerHistoryPDF)
}
