package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"todo-service/internal/model"
	repo "todo-service/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

var todoRowColumns = []string{"id", "user_id", "title", "description", "completed", "due_date", "created_at", "updated_at"}

func newTodoRepo(t *testing.T) (repo.TodoRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return repo.NewPostgresTodoRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestPostgresTodoRepository_Create(t *testing.T) {
	r, mock := newTodoRepo(t)

	now := time.Now()
	userID := int64(3)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO todos (user_id, title, description, due_date) VALUES ($1, $2, $3, $4) RETURNING id, user_id`)).
		WithArgs(int64(3), "Write tests", nil, nil).
		WillReturnRows(sqlmock.NewRows(todoRowColumns).AddRow(10, 3, "Write tests", nil, false, nil, now, now))

	todo, err := r.Create(context.Background(), model.NewTodo{UserID: &userID, Title: strPtr("Write tests")})
	require.NoError(t, err)
	require.Equal(t, int64(10), todo.ID)
	require.Equal(t, int64(3), *todo.UserID)
	require.False(t, todo.Completed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTodoRepository_Create_ForeignKeyViolation(t *testing.T) {
	r, mock := newTodoRepo(t)

	fkErr := errors.New(`insert or update on table "todos" violates foreign key constraint "todos_user_id_fkey"`)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO todos`)).WillReturnError(fkErr)

	userID := int64(999)
	_, err := r.Create(context.Background(), model.NewTodo{UserID: &userID, Title: strPtr("orphan")})
	require.ErrorIs(t, err, fkErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTodoRepository_FindAll(t *testing.T) {
	r, mock := newTodoRepo(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, title, description, completed, due_date, created_at, updated_at FROM todos`)).
		WillReturnRows(sqlmock.NewRows(todoRowColumns).
			AddRow(1, 1, "a", nil, false, nil, now, now).
			AddRow(2, 1, "b", "details", true, now, now, now))

	todos, err := r.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, todos, 2)
	require.Equal(t, "details", *todos[1].Description)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTodoRepository_FindByID_NoRows(t *testing.T) {
	r, mock := newTodoRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM todos WHERE id = $1`)).WithArgs(int64(5)).WillReturnError(sql.ErrNoRows)

	_, err := r.FindByID(context.Background(), 5)
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTodoRepository_UpdateAndDelete(t *testing.T) {
	r, mock := newTodoRepo(t)

	now := time.Now()
	done := true
	mock.ExpectQuery(`UPDATE todos\s+SET title = \$1, completed = \$2, updated_at = NOW\(\)\s+WHERE id = \$3`).
		WithArgs("renamed", true, int64(1)).
		WillReturnRows(sqlmock.NewRows(todoRowColumns).AddRow(1, 1, "renamed", nil, true, nil, now, now))
	mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM todos WHERE id = $1 RETURNING`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(todoRowColumns).AddRow(1, 1, "renamed", nil, true, nil, now, now))

	todo, err := r.Update(context.Background(), 1, model.TodoUpdate{Title: strPtr("renamed"), Completed: &done})
	require.NoError(t, err)
	require.True(t, todo.Completed)

	deleted, err := r.Delete(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "renamed", deleted.Title)
	require.NoError(t, mock.ExpectationsWereMet())
}
