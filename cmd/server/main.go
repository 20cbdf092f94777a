package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const serviceName = "todo-service"

func main() {
	serve := serveCmd()

	rootCmd := &cobra.Command{
		Use:          serviceName,
		Short:        "Users and todos HTTP API",
		SilenceUsage: true,
		RunE:         serve.RunE,
	}

	rootCmd.AddCommand(
		serve,
		migrateCmd(),
		tokenCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
