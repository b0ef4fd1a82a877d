package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/levy-tracker/backend/internal/infra/db"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Bring the database schema up to date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig()

			database, err := db.NewConnection(&cfg.Database)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := database.Migrate(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "schema is up to date (%s)\n", database.Driver())
			return nil
		},
	}
}
