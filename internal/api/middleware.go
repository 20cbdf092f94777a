package api

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"todo-service/internal/jwt"
)

const claimsKey = "userClaims"

var (
	httpRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of http request",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)
)

// AuthMiddleware accepts "Bearer <token>" or a bare token. Every failure
// answers the same 401 body.
func AuthMiddleware(tokens *jwt.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if authHeader == "" {
			return unauthorized(c)
		}

		tokenString := authHeader
		if scheme, rest, ok := strings.Cut(authHeader, " "); ok && strings.EqualFold(scheme, "Bearer") {
			tokenString = strings.TrimSpace(rest)
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			reason := "invalid token"
			if errors.Is(err, jwtv5.ErrTokenExpired) {
				reason = "token expired"
			}
			slog.DebugContext(c.UserContext(), "Rejected request", slog.String("reason", reason), slog.String("path", c.Path()))
			return unauthorized(c)
		}

		c.Locals(claimsKey, claims)

		return c.Next()
	}
}

// GetClaims returns the claims stored by AuthMiddleware.
func GetClaims(c *fiber.Ctx) (jwtv5.MapClaims, bool) {
	claims, ok := c.Locals(claimsKey).(jwtv5.MapClaims)
	return claims, ok
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Unauthorized"})
}

func PrometheusMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		duration := time.Since(start).Seconds()
		statusCode := statusOf(c, err)

		method := c.Method()
		path := c.Route().Path
		statusStr := fmt.Sprintf("%d", statusCode)

		httpRequestTotal.WithLabelValues(method, path, statusStr).Inc()
		httpRequestDuration.WithLabelValues(method, path, statusStr).Observe(duration)

		return err
	}
}

func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		attrs := []any{
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", statusOf(c, err)),
			slog.Duration("latency", time.Since(start)),
		}
		if claims, ok := GetClaims(c); ok {
			if sub, err := claims.GetSubject(); err == nil {
				attrs = append(attrs, slog.String("sub", sub))
			}
		}

		slog.InfoContext(c.UserContext(), "Request handled", attrs...)

		return err
	}
}

func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}

	var e *fiber.Error
	if errors.As(err, &e) {
		return e.Code
	}

	return fiber.StatusInternalServerError
}
