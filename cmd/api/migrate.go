package main

import (
	"github.com/spf13/cobra"

	"github.com/johnquangdev/one-on-one-manager/internal/infrastructure/database"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Bring the database schema up to date",
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

			dialect, err := cfg.Database.Dialect()
			if err != nil {
				return err
			}
			return database.Migrate(db, dialect, logger)
		},
	}
}
