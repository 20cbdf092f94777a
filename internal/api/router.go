package api

import (
	"errors"
	"time"

	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"todo-service/internal/jwt"
)

type Handlers struct {
	Users  *UserHandler
	Todos  *TodoHandler
	Auth   *AuthHandler
	Health *HealthHandler
}

type RouterConfig struct {
	ServiceName string
	// RateLimitMax requests per RateLimitExpiration per client IP; 0 disables.
	RateLimitMax        int
	RateLimitExpiration time.Duration
}

func NewApp(cfg RouterConfig, h Handlers, tokens *jwt.Manager) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.ServiceName,
		ErrorHandler: errorHandler,
	})

	app.Use(otelfiber.Middleware())
	app.Use(PrometheusMiddleware())
	app.Use(RequestLogger())

	if cfg.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitMax,
			Expiration: cfg.RateLimitExpiration,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"success": false,
					"message": "Too many requests, please try again later.",
				})
			},
		}))
	}

	SetupRoutes(app, h, AuthMiddleware(tokens))

	return app
}

// SetupRoutes guards every mutating resource route with auth; reads stay public.
func SetupRoutes(app *fiber.App, h Handlers, auth fiber.Handler) {
	app.Get("/", h.Health.Root)
	app.Get("/health", h.Health.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post("/auth/login", h.Auth.Login)

	app.Post("/users", auth, h.Users.CreateUser)
	app.Get("/users", h.Users.ListUsers)
	app.Get("/users/:id", h.Users.GetUser)
	app.Put("/users/:id", auth, h.Users.UpdateUser)
	app.Delete("/users/:id", auth, h.Users.DeleteUser)

	app.Post("/todos", auth, h.Todos.CreateTodo)
	app.Get("/todos", h.Todos.ListTodos)
	app.Get("/todos/:id", h.Todos.GetTodo)
	app.Put("/todos/:id", auth, h.Todos.UpdateTodo)
	app.Delete("/todos/:id", auth, h.Todos.DeleteTodo)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Route not found"})
	})
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{"success": false, "message": err.Error()})
}
