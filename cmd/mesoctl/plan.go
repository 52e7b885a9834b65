package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/2beens/mesocycle/internal/mesocycle/plan"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Validate and import plan files (YAML, or JSON by extension)",
}

var planValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Parse a plan file and show what would be imported",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPlanFile(cmd, args[0])
		if err != nil {
			return err
		}
		printPlan(cmd.OutOrStdout(), p)
		return nil
	},
}

var planImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Store a plan file as a new workout plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPlanFile(cmd, args[0])
		if err != nil {
			return err
		}

		pool, err := openPool(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		added, err := plan.NewRepo(pool).Add(cmd.Context(), p)
		if err != nil {
			return fmt.Errorf("add plan: %w", err)
		}
		printOK(cmd.OutOrStdout(), "plan [%s] imported with id %d", added.Name, added.ID)
		return nil
	},
}

func loadPlanFile(cmd *cobra.Command, path string) (*plan.Plan, error) {
	p, warnings, err := plan.LoadFile(path)
	for _, w := range warnings {
		printWarning(cmd.ErrOrStderr(), "skipped: %s", w)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func init() {
	planCmd.AddCommand(planValidateCmd, planImportCmd)
	rootCmd.AddCommand(planCmd)
}
