package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"todo-service/internal/events"
	"todo-service/internal/model"
	"todo-service/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

type CreateUserDTO struct {
	Name     *string
	Email    *string
	Age      *int
	Phone    *string
	Address  *string
	Password *string
}

type UpdateUserDTO struct {
	Name  *string
	Email *string
}

type UserService interface {
	CreateUser(ctx context.Context, dto CreateUserDTO) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	UpdateUser(ctx context.Context, id int64, dto UpdateUserDTO) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) (*model.User, error)
}

type userService struct {
	userRepo  repository.UserRepository
	publisher events.EventPublisher
}

func NewUserService(userRepo repository.UserRepository, pub events.EventPublisher) UserService {
	return &userService{userRepo: userRepo, publisher: pub}
}

func (s *userService) CreateUser(ctx context.Context, dto CreateUserDTO) (*model.User, error) {
	newUser := model.NewUser{
		Name:    dto.Name,
		Email:   dto.Email,
		Age:     dto.Age,
		Phone:   dto.Phone,
		Address: dto.Address,
	}

	if dto.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*dto.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hash := string(hashed)
		newUser.PasswordHash = &hash
	}

	user, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		return nil, err
	}

	go s.publisher.PublishUser(events.SubjectUserCreated, user)

	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *userService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}

	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id int64, dto UpdateUserDTO) (*model.User, error) {
	user, err := s.userRepo.Update(ctx, id, model.UserUpdate{Name: dto.Name, Email: dto.Email})
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}

	go s.publisher.PublishUser(events.SubjectUserUpdated, user)

	return user, nil
}

// DeleteUser removes the user; the todos foreign key cascades to its todos.
func (s *userService) DeleteUser(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}

	go s.publisher.PublishUser(events.SubjectUserDeleted, user)

	return user, nil
}

func notFound(err error, sentinel error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return sentinel
	}

	return err
}
