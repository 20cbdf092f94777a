package service

import (
	"context"
	"errors"
	"time"

	"todo-service/internal/events"
	"todo-service/internal/model"
	"todo-service/internal/repository"
)

var ErrTodoNotFound = errors.New("todo not found")

type CreateTodoDTO struct {
	UserID      *int64
	Title       *string
	Description *string
	DueDate     *time.Time
}

type UpdateTodoDTO struct {
	Title     *string
	Completed *bool
}

type TodoService interface {
	CreateTodo(ctx context.Context, dto CreateTodoDTO) (*model.Todo, error)
	ListTodos(ctx context.Context) ([]model.Todo, error)
	GetTodo(ctx context.Context, id int64) (*model.Todo, error)
	UpdateTodo(ctx context.Context, id int64, dto UpdateTodoDTO) (*model.Todo, error)
	DeleteTodo(ctx context.Context, id int64) (*model.Todo, error)
}

type todoService struct {
	todoRepo  repository.TodoRepository
	publisher events.EventPublisher
}

func NewTodoService(todoRepo repository.TodoRepository, pub events.EventPublisher) TodoService {
	return &todoService{todoRepo: todoRepo, publisher: pub}
}

func (s *todoService) CreateTodo(ctx context.Context, dto CreateTodoDTO) (*model.Todo, error) {
	todo, err := s.todoRepo.Create(ctx, model.NewTodo{
		UserID:      dto.UserID,
		Title:       dto.Title,
		Description: dto.Description,
		DueDate:     dto.DueDate,
	})
	if err != nil {
		return nil, err
	}

	go s.publisher.PublishTodo(events.SubjectTodoCreated, todo)

	return todo, nil
}

func (s *todoService) ListTodos(ctx context.Context) ([]model.Todo, error) {
	return s.todoRepo.FindAll(ctx)
}

func (s *todoService) GetTodo(ctx context.Context, id int64) (*model.Todo, error) {
	todo, err := s.todoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrTodoNotFound)
	}

	return todo, nil
}

func (s *todoService) UpdateTodo(ctx context.Context, id int64, dto UpdateTodoDTO) (*model.Todo, error) {
	todo, err := s.todoRepo.Update(ctx, id, model.TodoUpdate{Title: dto.Title, Completed: dto.Completed})
	if err != nil {
		return nil, notFound(err, ErrTodoNotFound)
	}

	go s.publisher.PublishTodo(events.SubjectTodoUpdated, todo)

	return todo, nil
}

func (s *todoService) DeleteTodo(ctx context.Context, id int64) (*model.Todo, error) {
	todo, err := s.todoRepo.Delete(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrTodoNotFound)
	}

	go s.publisher.PublishTodo(events.SubjectTodoDeleted, todo)

	return todo, nil
}
