package database

import (
	"context"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	_ "todo-service/migrations"
)

// Connect opens the shared pool and verifies it with a ping.
func Connect(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return db, nil
}

// Migrator applies the Go migrations registered by package migrations.
type Migrator struct {
	provider *goose.Provider
}

func NewMigrator(db *sqlx.DB) (*Migrator, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db.DB, nil)
	if err != nil {
		return nil, fmt.Errorf("create migration provider: %w", err)
	}

	return &Migrator{provider: provider}, nil
}

func (m *Migrator) Up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, r := range results {
		slog.InfoContext(ctx, "Migration applied", slog.Int64("version", r.Source.Version), slog.String("source", r.Source.Path), slog.Duration("duration", r.Duration))
	}

	return nil
}

func (m *Migrator) Down(ctx context.Context) error {
	result, err := m.provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("roll back migration: %w", err)
	}

	slog.InfoContext(ctx, "Migration rolled back", slog.Int64("version", result.Source.Version))

	return nil
}

func (m *Migrator) Status(ctx context.Context) ([]*goose.MigrationStatus, error) {
	return m.provider.Status(ctx)
}

// Migrate creates the schema if it is missing. Safe to run on every start.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	m, err := NewMigrator(db)
	if err != nil {
		return err
	}

	return m.Up(ctx)
}
