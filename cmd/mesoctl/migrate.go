package main

import (
	"github.com/spf13/cobra"

	"github.com/2beens/mesocycle/internal/db"
)

var migrateDownSteps int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run the embedded database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := dbParams()
		if err != nil {
			return err
		}
		if err := db.MigrateUp(params.ConnString()); err != nil {
			return err
		}
		printOK(cmd.OutOrStdout(), "migrations applied")
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := dbParams()
		if err != nil {
			return err
		}
		if err := db.MigrateDown(params.ConnString(), migrateDownSteps); err != nil {
			return err
		}
		printOK(cmd.OutOrStdout(), "rolled back %d migration(s)", migrateDownSteps)
		return nil
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&migrateDownSteps, "steps", 1, "number of migrations to roll back")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)
}
