package api_test

import (
	"context"
	"errors"
	"time"

	"todo-service/internal/model"
	"todo-service/internal/service"
)

type mockUserService struct {
	users  map[int64]*model.User
	nextID int64
	err    error
}

func newMockUserService() *mockUserService {
	return &mockUserService{users: map[int64]*model.User{}, nextID: 1}
}

func (m *mockUserService) CreateUser(ctx context.Context, dto service.CreateUserDTO) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if dto.Name == nil || dto.Email == nil {
		return nil, errors.New(`null value in column "name" violates not-null constraint`)
	}
	for _, u := range m.users {
		if u.Email == *dto.Email {
			return nil, errors.New(`duplicate key value violates unique constraint "users_email_key"`)
		}
	}
	now := time.Now()
	u := &model.User{ID: m.nextID, Name: *dto.Name, Email: *dto.Email, CreatedAt: now, UpdatedAt: now}
	m.users[u.ID] = u
	m.nextID++
	return u, nil
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []model.User{}
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *mockUserService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, service.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserService) UpdateUser(ctx context.Context, id int64, dto service.UpdateUserDTO) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, service.ErrUserNotFound
	}
	u.Name, u.Email, u.UpdatedAt = *dto.Name, *dto.Email, time.Now().Add(time.Second)
	return u, nil
}

func (m *mockUserService) DeleteUser(ctx context.Context, id int64) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, service.ErrUserNotFound
	}
	delete(m.users, id)
	return u, nil
}

type mockTodoService struct {
	todos map[int64]*model.Todo
	users *mockUserService
}

func (m *mockTodoService) CreateTodo(ctx context.Context, dto service.CreateTodoDTO) (*model.Todo, error) {
	if dto.UserID == nil || m.users.users[*dto.UserID] == nil {
		return nil, errors.New(`insert or update on table "todos" violates foreign key constraint "todos_user_id_fkey"`)
	}
	t := &model.Todo{ID: int64(len(m.todos) + 1), UserID: dto.UserID, Title: *dto.Title, DueDate: dto.DueDate}
	m.todos[t.ID] = t
	return t, nil
}

func (m *mockTodoService) ListTodos(ctx context.Context) ([]model.Todo, error) {
	out := []model.Todo{}
	for _, t := range m.todos {
		out = append(out, *t)
	}
	return out, nil
}

func (m *mockTodoService) GetTodo(ctx context.Context, id int64) (*model.Todo, error) {
	t, ok := m.todos[id]
	if !ok {
		return nil, service.ErrTodoNotFound
	}
	return t, nil
}

func (m *mockTodoService) UpdateTodo(ctx context.Context, id int64, dto service.UpdateTodoDTO) (*model.Todo, error) {
	t, ok := m.todos[id]
	if !ok {
		return nil, service.ErrTodoNotFound
	}
	t.Title, t.Completed = *dto.Title, *dto.Completed
	return t, nil
}

func (m *mockTodoService) DeleteTodo(ctx context.Context, id int64) (*model.Todo, error) {
	t, ok := m.todos[id]
	if !ok {
		return nil, service.ErrTodoNotFound
	}
	delete(m.todos, id)
	return t, nil
}

type mockAuthService struct{}

func (mockAuthService) LoginUser(ctx context.Context, email, password string) (string, *model.User, error) {
	if email == "ann@x.com" && password == "hunter22" {
		return "signed.token.value", &model.User{ID: 1, Name: "Ann", Email: email}, nil
	}
	return "", nil, service.ErrInvalidCredentials
}

type mockPinger struct{ err error }

func (p mockPinger) PingContext(context.Context) error { return p.err }
