// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"sync"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"

	_ "postboard/docs" // swagger docs
	"postboard/internal/auth"
	"postboard/internal/config"
	"postboard/internal/middleware"
	"postboard/internal/models"
	"postboard/internal/store"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config *config.Config
	store  *store.Store
	issuer *auth.Issuer
}

// Prometheus collectors register against the default registry exactly once,
// however many apps are built (tests build several).
var (
	promOnce       sync.Once
	promMiddleware *fiberprometheus.FiberPrometheus
)

func metricsMiddleware() *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promMiddleware = fiberprometheus.New("postboard-api")
	})
	return promMiddleware
}

// NewServer creates a new server instance with a freshly seeded store.
func NewServer(cfg *config.Config) *Server {
	return NewServerWithStore(cfg, store.New())
}

// NewServerWithStore creates a Server around an existing store. Use this
// in tests that need to arrange store state directly.
func NewServerWithStore(cfg *config.Config, st *store.Store) *Server {
	return &Server{
		config: cfg,
		store:  st,
		issuer: auth.NewIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTExpiryHours, st),
	}
}

// App builds the Fiber application with all middleware and routes mounted.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Postboard API",
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for log correlation
	app.Use(requestid.New())

	// Context middleware to propagate request ID and user ID to the logger
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	app.Use(metricsMiddleware().Middleware)

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS before middlewares that can short-circuit so browser clients
	// still receive CORS headers on error responses.
	app.Use(cors.New(cors.Config{
		AllowOrigins: s.config.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		MaxAge:       86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			// Never rate-limit preflight requests or test traffic.
			return c.Method() == fiber.MethodOptions || s.config.Env == "test"
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
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	metricsMiddleware().RegisterAt(app, "/metrics")
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Postboard Metrics Dashboard",
	}))

	// Swagger documentation
	api.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Post("/token", s.IssueToken)

	// Public post routes (browse/read)
	posts := api.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Get("/:postId/comments", s.GetComments)
	posts.Get("/:id", s.GetPost)

	// Public comment read
	api.Get("/comments/:id", s.GetComment)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired(s.config))
	protected.Post("/posts", s.CreatePost)
	protected.Put("/posts/:id", s.UpdatePost)
	protected.Patch("/posts/:id", s.PatchPost)
	protected.Delete("/posts/:id", s.DeletePost)
	protected.Post("/posts/:postId/comments", s.CreateComment)
	protected.Put("/comments/:id", s.UpdateComment)
	protected.Delete("/comments/:id", s.DeleteComment)

	// Admin routes
	admin := protected.Group("/admin", middleware.RoleRequired(models.RoleAdmin))
	admin.Get("/users", s.GetAllUsers)
	admin.Post("/users/:id/lock", s.LockUser)
	admin.Post("/users/:id/unlock", s.UnlockUser)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now().UTC(),
	})
}

// ReadinessCheck handles readiness probe requests. The store is in-process
// memory, so readiness reduces to the process being up and the store answering.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "healthy",
		"version": "1.0.0",
		"checks": fiber.Map{
			"store": fiber.Map{
				"posts":    s.store.PostCount(),
				"comments": s.store.CommentCount(),
			},
		},
		"time": time.Now().UTC(),
	})
}
