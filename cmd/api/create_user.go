package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/one-on-one-manager/internal/adapter/repository"
	"github.com/johnquangdev/one-on-one-manager/internal/infrastructure/database"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/auth"
	"github.com/johnquangdev/one-on-one-manager/pkg/jwt"
)

func newCreateUserCmd() *cobra.Command {
	var (
		username    string
		password    string
		displayName string
	)

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			db, err := database.Open(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer database.CloseDB(db) //nolint:errcheck

			jwtManager := jwt.NewManager(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)
			authService := auth.NewAuthService(repository.NewUserRepository(db), jwtManager)

			input := auth.RegisterInput{Username: username, Password: password}
			if displayName != "" {
				input.DisplayName = &displayName
			}

			var result *auth.AuthResult
			err = database.Transaction(cmd.Context(), db, func(ctx context.Context) error {
				var err error
				result, err = authService.Register(ctx, input)
				return err
			})
			if err != nil {
				return fmt.Errorf("failed to create user %q: %w", username, err)
			}

			logger.Info("user created",
				zap.Uint("id", result.User.ID),
				zap.String("username", result.User.Username),
			)
			fmt.Fprintln(cmd.OutOrStdout(), result.AccessToken)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "login name")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password")
	cmd.Flags().StringVar(&displayName, "display-name", "", "name shown to other users")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
