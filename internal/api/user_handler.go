package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"todo-service/internal/service"
)

const userNotFound = "User not found"

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type CreateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Age      *int    `json:"age"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Password *string `json:"password"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := parseBody(c, &req); err != nil {
		return badBody(c, err)
	}

	user, err := h.userService.CreateUser(c.UserContext(), service.CreateUserDTO{
		Name:     req.Name,
		Email:    req.Email,
		Age:      req.Age,
		Phone:    req.Phone,
		Address:  req.Address,
		Password: req.Password,
	})
	if err != nil {
		return dataAccessError(c, "Error inserting data into the database", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User created successfully",
		"user":    user,
	})
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.UserContext())
	if err != nil {
		return dataAccessError(c, "Error fetching users from the database", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "users": users})
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, userNotFound)
	}

	user, err := h.userService.GetUser(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return notFound(c, userNotFound)
		}
		return dataAccessError(c, "Error fetching user from the database", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "user": user})
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, userNotFound)
	}

	var req UpdateUserRequest
	if err := parseBody(c, &req); err != nil {
		return badBody(c, err)
	}

	user, err := h.userService.UpdateUser(c.UserContext(), id, service.UpdateUserDTO{Name: req.Name, Email: req.Email})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return notFound(c, userNotFound)
		}
		return dataAccessError(c, "Error updating user in the database", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "User updated successfully",
		"user":    user,
	})
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, userNotFound)
	}

	user, err := h.userService.DeleteUser(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return notFound(c, userNotFound)
		}
		return dataAccessError(c, "Error deleting user from the database", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "User deleted successfully",
		"user":    user,
	})
}
