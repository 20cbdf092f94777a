package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"todo-service/internal/model"
)

const userColumns = `id, name, email, age, phone, address, created_at, updated_at`

type UserRepository interface {
	Create(ctx context.Context, user model.NewUser) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, id int64, update model.UserUpdate) (*model.User, error)
	Delete(ctx context.Context, id int64) (*model.User, error)
}

type postgresUserRepository struct {
	db *sqlx.DB
}

func NewPostgresUserRepository(db *sqlx.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

func (r *postgresUserRepository) Create(ctx context.Context, user model.NewUser) (*model.User, error) {
	query := `INSERT INTO users (name, email, age, phone, address, password_hash) VALUES ($1, $2, $3, $4, $5, $6) RETURNING ` + userColumns
	var created model.User
	err := r.db.QueryRowxContext(ctx, query, user.Name, user.Email, user.Age, user.Phone, user.Address, user.PasswordHash).StructScan(&created)

	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *postgresUserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	err := r.db.SelectContext(ctx, &users, `SELECT `+userColumns+` FROM users`)

	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *postgresUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// FindByEmail also loads password_hash for credential checks.
func (r *postgresUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	query := `SELECT ` + userColumns + `, password_hash FROM users WHERE email = $1`
	err := r.db.GetContext(ctx, &user, query, email)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *postgresUserRepository) Update(ctx context.Context, id int64, update model.UserUpdate) (*model.User, error) {
	query := `
		UPDATE users
		SET name = $1, email = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + userColumns
	var user model.User
	err := r.db.GetContext(ctx, &user, query, update.Name, update.Email, id)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *postgresUserRepository) Delete(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, `DELETE FROM users WHERE id = $1 RETURNING `+userColumns, id)

	if err != nil {
		return nil, err
	}

	return &user, nil
}
