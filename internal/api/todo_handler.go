package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"todo-service/internal/service"
)

const todoNotFound = "Todo not found"

type TodoHandler struct {
	todoService service.TodoService
}

func NewTodoHandler(todoService service.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

type CreateTodoRequest struct {
	UserID      *int64  `json:"user_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	// DueDate is YYYY-MM-DD or RFC 3339.
	DueDate *string `json:"due_date"`
}

type UpdateTodoRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

func parseDueDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}

	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, *s); err == nil {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("due_date %q is not a date", *s)
}

func (h *TodoHandler) CreateTodo(c *fiber.Ctx) error {
	var req CreateTodoRequest
	if err := parseBody(c, &req); err != nil {
		return badBody(c, err)
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return badBody(c, err)
	}

	todo, err := h.todoService.CreateTodo(c.UserContext(), service.CreateTodoDTO{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
	})
	if err != nil {
		return dataAccessError(c, "Error inserting todo into the database", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Todo created successfully",
		"todo":    todo,
	})
}

func (h *TodoHandler) ListTodos(c *fiber.Ctx) error {
	todos, err := h.todoService.ListTodos(c.UserContext())
	if err != nil {
		return dataAccessError(c, "Error fetching todos from the database", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "todos": todos})
}

func (h *TodoHandler) GetTodo(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, todoNotFound)
	}

	todo, err := h.todoService.GetTodo(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			return notFound(c, todoNotFound)
		}
		return dataAccessError(c, "Error fetching todo from the database", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "todo": todo})
}

func (h *TodoHandler) UpdateTodo(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, todoNotFound)
	}

	var req UpdateTodoRequest
	if err := parseBody(c, &req); err != nil {
		return badBody(c, err)
	}

	todo, err := h.todoService.UpdateTodo(c.UserContext(), id, service.UpdateTodoDTO{Title: req.Title, Completed: req.Completed})
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			return notFound(c, todoNotFound)
		}
		return dataAccessError(c, "Error updating todo in the database", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Todo updated successfully",
		"todo":    todo,
	})
}

func (h *TodoHandler) DeleteTodo(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, todoNotFound)
	}

	todo, err := h.todoService.DeleteTodo(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			return notFound(c, todoNotFound)
		}
		return dataAccessError(c, "Error deleting todo from the database", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Todo deleted successfully",
		"todo":    todo,
	})
}
