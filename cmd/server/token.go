package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"todo-service/internal/config"
	"todo-service/internal/jwt"
)

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a signed bearer token for the given user",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetInt64("user-id")
			email, _ := cmd.Flags().GetString("email")

			cfg, err := config.Load(".env", ".env.dev")
			if err != nil {
				return err
			}

			token, err := jwt.NewManager(cfg.JWTSecret, cfg.JWTTTL).GenerateToken(userID, email)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)

			return nil
		},
	}

	cmd.Flags().Int64("user-id", 0, "Value of the sub claim")
	cmd.Flags().String("email", "", "Value of the email claim")

	return cmd
}
