package api

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

// parseID reports false for anything that cannot be a SERIAL primary key.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// parseBody leaves req untouched for an empty body so that missing fields
// reach the database as NULL.
func parseBody(c *fiber.Ctx, req interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}

	return c.BodyParser(req)
}

func badBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Cannot parse JSON",
		"error":   err.Error(),
	})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": message})
}

// dataAccessError collapses every driver failure into one 500 body carrying
// the driver message.
func dataAccessError(c *fiber.Ctx, message string, err error) error {
	attrs := []any{slog.String("error", err.Error()), slog.String("path", c.Path())}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		attrs = append(attrs, slog.String("pg_code", pgErr.Code), slog.String("constraint", pgErr.ConstraintName))
	}
	slog.ErrorContext(c.UserContext(), message, attrs...)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}
