package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"todo-service/internal/model"
)

const todoColumns = `id, user_id, title, description, completed, due_date, created_at, updated_at`

type TodoRepository interface {
	Create(ctx context.Context, todo model.NewTodo) (*model.Todo, error)
	FindAll(ctx context.Context) ([]model.Todo, error)
	FindByID(ctx context.Context, id int64) (*model.Todo, error)
	Update(ctx context.Context, id int64, update model.TodoUpdate) (*model.Todo, error)
	Delete(ctx context.Context, id int64) (*model.Todo, error)
}

type postgresTodoRepository struct {
	db *sqlx.DB
}

func NewPostgresTodoRepository(db *sqlx.DB) TodoRepository {
	return &postgresTodoRepository{db: db}
}

// Create does not look the owner up first; the user_id foreign key rejects
// unknown users.
func (r *postgresTodoRepository) Create(ctx context.Context, todo model.NewTodo) (*model.Todo, error) {
	query := `INSERT INTO todos (user_id, title, description, due_date) VALUES ($1, $2, $3, $4) RETURNING ` + todoColumns
	var created model.Todo
	err := r.db.QueryRowxContext(ctx, query, todo.UserID, todo.Title, todo.Description, todo.DueDate).StructScan(&created)

	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *postgresTodoRepository) FindAll(ctx context.Context) ([]model.Todo, error) {
	todos := []model.Todo{}
	err := r.db.SelectContext(ctx, &todos, `SELECT `+todoColumns+` FROM todos`)

	if err != nil {
		return nil, err
	}

	return todos, nil
}

func (r *postgresTodoRepository) FindByID(ctx context.Context, id int64) (*model.Todo, error) {
	var todo model.Todo
	err := r.db.GetContext(ctx, &todo, `SELECT `+todoColumns+` FROM todos WHERE id = $1`, id)

	if err != nil {
		return nil, err
	}

	return &todo, nil
}

func (r *postgresTodoRepository) Update(ctx context.Context, id int64, update model.TodoUpdate) (*model.Todo, error) {
	query := `
		UPDATE todos
		SET title = $1, completed = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + todoColumns
	var todo model.Todo
	err := r.db.GetContext(ctx, &todo, query, update.Title, update.Completed, id)

	if err != nil {
		return nil, err
	}

	return &todo, nil
}

func (r *postgresTodoRepository) Delete(ctx context.Context, id int64) (*model.Todo, error) {
	var todo model.Todo
	err := r.db.GetContext(ctx, &todo, `DELETE FROM todos WHERE id = $1 RETURNING `+todoColumns, id)

	if err != nil {
		return nil, err
	}

	return &todo, nil
}
