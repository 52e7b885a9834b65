package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/2beens/mesocycle/internal/mesocycle/progression"
)

var (
	scheduleWeeks int
	scheduleSets  int
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show the target RPE of every set, week by week",
	RunE: func(cmd *cobra.Command, args []string) error {
		if scheduleWeeks < 1 {
			return fmt.Errorf("--weeks must be positive, got %d", scheduleWeeks)
		}
		if scheduleSets < 1 {
			return fmt.Errorf("--sets must be positive, got %d", scheduleSets)
		}
		printSchedule(cmd.OutOrStdout(), progression.NewSchedule(scheduleWeeks).Overview(scheduleSets))
		return nil
	},
}

func init() {
	scheduleCmd.Flags().IntVar(&scheduleWeeks, "weeks", 5, "duration of the mesocycle in weeks, deload included")
	scheduleCmd.Flags().IntVar(&scheduleSets, "sets", 3, "number of sets of the exercise")
	rootCmd.AddCommand(scheduleCmd)
}
