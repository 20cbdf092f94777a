package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"todo-service/internal/config"
	"todo-service/internal/database"
	"todo-service/internal/logging"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		migrateSubCmd("up", "Apply all pending migrations", func(m *database.Migrator, cmd *cobra.Command) error {
			return m.Up(cmd.Context())
		}),
		migrateSubCmd("down", "Roll back the most recent migration", func(m *database.Migrator, cmd *cobra.Command) error {
			return m.Down(cmd.Context())
		}),
		migrateSubCmd("status", "Show status of all migrations", func(m *database.Migrator, cmd *cobra.Command) error {
			statuses, err := m.Status(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-8s  %-40s  %-8s\n", "Version", "Source", "Status")
			for _, s := range statuses {
				fmt.Fprintf(out, "%-8d  %-40s  %-8s\n", s.Source.Version, s.Source.Path, s.State)
			}

			return nil
		}),
	)

	return cmd
}

func migrateSubCmd(use, short string, fn func(*database.Migrator, *cobra.Command) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".env", ".env.dev")
			if err != nil {
				return err
			}
			logging.SetupGlobalHandler(serviceName, cfg.LogLevel)

			db, err := database.Connect(cmd.Context(), cfg.DSN())
			if err != nil {
				return err
			}
			defer db.Close()

			m, err := database.NewMigrator(db)
			if err != nil {
				return err
			}

			return fn(m, cmd)
		},
	}
}
