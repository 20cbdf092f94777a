package service_test

import (
	"context"
	"database/sql"

	"todo-service/internal/model"
)

type mockUserRepo struct {
	users  map[int64]*model.User
	nextID int64
	err    error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[int64]*model.User{}, nextID: 1}
}

func (m *mockUserRepo) Create(ctx context.Context, u model.NewUser) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user := &model.User{ID: m.nextID, Name: *u.Name, Email: *u.Email, PasswordHash: u.PasswordHash}
	m.users[user.ID] = user
	m.nextID++
	return user, nil
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]model.User, error) {
	out := []model.User{}
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, m.err
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return u, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) Update(ctx context.Context, id int64, upd model.UserUpdate) (*model.User, error) {
	u, err := m.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Name, u.Email = *upd.Name, *upd.Email
	return u, nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) (*model.User, error) {
	u, err := m.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	delete(m.users, id)
	return u, nil
}

type mockTodoRepo struct {
	todos map[int64]*model.Todo
	err   error
}

func (m *mockTodoRepo) Create(ctx context.Context, t model.NewTodo) (*model.Todo, error) {
	if m.err != nil {
		return nil, m.err
	}
	todo := &model.Todo{ID: int64(len(m.todos) + 1), UserID: t.UserID, Title: *t.Title}
	m.todos[todo.ID] = todo
	return todo, nil
}

func (m *mockTodoRepo) FindAll(ctx context.Context) ([]model.Todo, error) {
	out := []model.Todo{}
	for _, t := range m.todos {
		out = append(out, *t)
	}
	return out, nil
}

func (m *mockTodoRepo) FindByID(ctx context.Context, id int64) (*model.Todo, error) {
	t, ok := m.todos[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return t, nil
}

func (m *mockTodoRepo) Update(ctx context.Context, id int64, upd model.TodoUpdate) (*model.Todo, error) {
	t, err := m.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Title, t.Completed = *upd.Title, *upd.Completed
	return t, nil
}

func (m *mockTodoRepo) Delete(ctx context.Context, id int64) (*model.Todo, error) {
	t, err := m.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	delete(m.todos, id)
	return t, nil
}

// recordingPublisher forwards subjects to a buffered channel because services
// publish from a separate goroutine.
type recordingPublisher struct {
	subjects chan string
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{subjects: make(chan string, 16)}
}

func (p *recordingPublisher) PublishUser(subject string, _ *model.User) error {
	p.subjects <- subject
	return nil
}

func (p *recordingPublisher) PublishTodo(subject string, _ *model.Todo) error {
	p.subjects <- subject
	return nil
}

func (p *recordingPublisher) Close() {}
