// Package server contains the HTTP handlers for the GameChanger API.
package server

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"gamechanger/internal/bootstrap"
	"gamechanger/internal/config"
	"gamechanger/internal/featureflags"
	"gamechanger/internal/middleware"
	"gamechanger/internal/models"
	"gamechanger/internal/notifications"
	"gamechanger/internal/onboarding"
	"gamechanger/internal/service"
	"gamechanger/internal/session"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
)

const defaultOrigins = "http://localhost:3000,http://127.0.0.1:3000"

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	runtime        *bootstrap.Runtime
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	session        session.Session
	featureFlags   *featureflags.Manager
	wizards        *onboarding.Registry
	notifier       *notifications.Notifier

	feedService         *service.FeedService
	notificationService *service.NotificationService
	directoryService    *service.DirectoryService
	profileService      *service.ProfileService
	messageService      *service.MessageService
	postService         *service.PostService
}

// NewServer connects the configured storage, restores the session and
// builds the server.
func NewServer(cfg *config.Config) (*Server, error) {
	rt, err := bootstrap.InitRuntime(cfg)
	if err != nil {
		return nil, fmt.Errorf("runtime initialization failed: %w", err)
	}

	sess := rt.OpenSession(context.Background(), cfg)
	return NewServerWithDeps(cfg, rt, sess), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
func NewServerWithDeps(cfg *config.Config, rt *bootstrap.Runtime, sess session.Session) *Server {
	flags := featureflags.NewManager(cfg.FeatureFlags)

	return &Server{
		config:         cfg,
		runtime:        rt,
		redis:          rt.Redis,
		promMiddleware: middleware.InitMetrics("gamechanger-api"),
		session:        sess,
		featureFlags:   flags,
		wizards:        onboarding.NewRegistry(),
		notifier:       notifications.NewNotifier(rt.Redis),

		feedService:         service.NewFeedService(rt.Catalog, flags),
		notificationService: service.NewNotificationService(),
		directoryService:    service.NewDirectoryService(),
		profileService:      service.NewProfileService(rt.Catalog),
		messageService:      service.NewMessageService(),
		postService:         service.NewPostService(cfg.PostSubmitDelay()),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.TracingMiddleware())

	// Viewer must run before ContextMiddleware so log records carry the viewer id.
	if s.session != nil {
		app.Use(middleware.Viewer(s.session))
	}
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	// CORS runs before the limiter so rejected requests still carry CORS headers.
	origins := strings.Join(s.config.Origins(), ",")
	if origins == "" {
		origins = defaultOrigins
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")
	api.Get("/feature-flags", s.GetFeatureFlags)

	sess := api.Group("/session")
	sess.Get("/", s.GetSession)
	sess.Post("/login", middleware.RateLimit(s.redis, 10, 5*time.Minute, "login"), s.Login)
	sess.Post("/demo", middleware.RateLimit(s.redis, 10, 5*time.Minute, "login"), s.DemoLogin)
	sess.Post("/logout", s.Logout)

	// The home feed is public; anonymous viewers see every author.
	api.Get("/feed", s.GetFeed)

	wizard := api.Group("/onboarding")
	wizard.Post("/", s.StartOnboarding)
	wizard.Get("/:id", s.GetOnboarding)
	wizard.Put("/:id/fields", s.SetOnboardingFields)
	wizard.Post("/:id/next", s.NextOnboardingStep)
	wizard.Post("/:id/previous", s.PreviousOnboardingStep)
	wizard.Post("/:id/complete", s.CompleteOnboarding)

	notifications := api.Group("/notifications", s.SessionRequired("notifications"))
	notifications.Get("/", s.GetNotifications)
	// Specific routes before generic /:id
	notifications.Post("/read-all", s.MarkAllNotificationsRead)
	notifications.Post("/:id/read", s.MarkNotificationRead)

	search := api.Group("/search", s.SessionRequired("search"))
	search.Get("/athletes", s.SearchAthletes)
	search.Get("/scouts", s.SearchScouts)

	profiles := api.Group("/profiles", s.SessionRequired("profile"))
	profiles.Post("/:id/achievements", s.AddAchievement)
	profiles.Delete("/:id/achievements/:index", s.RemoveAchievement)
	profiles.Post("/:id/clubs", s.AddClub)
	profiles.Delete("/:id/clubs/:index", s.RemoveClub)
	profiles.Get("/:id", s.GetProfile)

	messages := api.Group("/messages", s.SessionRequired("messages"))
	messages.Get("/", s.GetChats)
	messages.Post("/:id", middleware.RateLimit(s.redis, 15, time.Minute, "send_message"), s.SendMessage)
	messages.Get("/:id", s.GetThread)

	posts := api.Group("/posts", s.SessionRequired("create-post"))
	posts.Post("/", middleware.RateLimit(s.redis, 5, 5*time.Minute, "create_post"), s.CreatePost)
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "GameChanger API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if s.runtime != nil {
		s.runtime.Close()
	}

	log.Println("Server shutdown complete")
	return nil
}
