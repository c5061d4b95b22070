package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"parcours/internal/platform/postgres"
)

var rollbackSteps int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the PostgreSQL schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply every pending migration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cfg.Database.Driver != "postgres" {
			return errors.New("migrate: database.driver is not postgres")
		}
		db, err := postgres.Open(cmd.Context(), cfg.Database.DSN, postgres.Options{MaxOpenConns: 2})
		if err != nil {
			return err
		}
		defer db.Close()
		return postgres.Migrate(db, log)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the last migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cfg.Database.Driver != "postgres" {
			return errors.New("migrate: database.driver is not postgres")
		}
		if rollbackSteps <= 0 {
			return fmt.Errorf("migrate: --steps must be positive, got %d", rollbackSteps)
		}
		db, err := postgres.Open(cmd.Context(), cfg.Database.DSN, postgres.Options{MaxOpenConns: 2})
		if err != nil {
			return err
		}
		defer db.Close()
		return postgres.Rollback(db, rollbackSteps, log)
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&rollbackSteps, "steps", 1, "number of migrations to roll back")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
}
