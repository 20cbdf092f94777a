package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"todo-service/internal/api"
	"todo-service/internal/config"
	"todo-service/internal/database"
	"todo-service/internal/events"
	"todo-service/internal/jwt"
	"todo-service/internal/logging"
	"todo-service/internal/repository"
	"todo-service/internal/service"
	"todo-service/internal/tracing"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Create the schema if needed and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return run(ctx)
		},
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(".env", ".env.dev")
	if err != nil {
		return err
	}

	logging.SetupGlobalHandler(serviceName, cfg.LogLevel)

	shutdownTracer, err := tracing.InitTracerProvider(ctx, serviceName, cfg.OTELEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			slog.Error("Error shutting down tracer provider", slog.String("error", err.Error()))
		}
	}()

	db, err := database.Connect(ctx, cfg.DSN())
	if err != nil {
		return err
	}
	defer db.Close()
	slog.Info("Successfully connected to the database.")

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}

	publisher := newPublisher(cfg.NATSURL)
	defer publisher.Close()

	tokens := jwt.NewManager(cfg.JWTSecret, cfg.JWTTTL)

	userRepo := repository.NewPostgresUserRepository(db)
	todoRepo := repository.NewPostgresTodoRepository(db)

	userService := service.NewUserService(userRepo, publisher)
	todoService := service.NewTodoService(todoRepo, publisher)
	authService := service.NewAuthService(userRepo, tokens)

	app := api.NewApp(api.RouterConfig{
		ServiceName:         serviceName,
		RateLimitMax:        cfg.RateLimitMax,
		RateLimitExpiration: time.Duration(cfg.RateLimitExpiration) * time.Second,
	}, api.Handlers{
		Users:  api.NewUserHandler(userService),
		Todos:  api.NewTodoHandler(todoService),
		Auth:   api.NewAuthHandler(authService),
		Health: api.NewHealthHandler(serviceName, db),
	}, tokens)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Listening", slog.String("service", serviceName), slog.String("port", cfg.AppPort))
		errCh <- app.Listen(":" + cfg.AppPort)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down HTTP server")

	return app.ShutdownWithTimeout(shutdownTimeout)
}

// newPublisher falls back to a no-op publisher so a missing or unreachable
// NATS server never blocks the API.
func newPublisher(natsURL string) events.EventPublisher {
	if natsURL == "" {
		return events.NopPublisher{}
	}

	publisher, err := events.NewNatsPublisher(natsURL)
	if err != nil {
		slog.Warn("Failed to connect to NATS, events disabled", slog.String("url", natsURL), slog.String("error", err.Error()))
		return events.NopPublisher{}
	}

	slog.Info("Successfully connected to NATS.")

	return publisher
}
