package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/2beens/mesocycle/internal/mesocycle/plan"
	"github.com/2beens/mesocycle/internal/mesocycle/progression"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

func printOK(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", green("ok"), fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", yellow("warning"), fmt.Sprintf(format, args...))
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %s\n", red("error"), err)
}

func printPlan(w io.Writer, p *plan.Plan) {
	fmt.Fprintf(w, "\n%s\n", green(strings.ToUpper(p.Name)))
	fmt.Fprintf(w, "%s: %d (last one is the deload)\n", cyan("Weeks"), p.DurationWeeks)
	fmt.Fprintf(w, "%s: %d\n", cyan("Days per week"), p.DaysPerWeek)
	fmt.Fprintln(w, strings.Repeat("=", 60))

	for _, day := range plan.SortedDays(p.Days) {
		fmt.Fprintf(w, "\n%s %d\n", yellow("Day"), day)
		fmt.Fprintln(w, strings.Repeat("-", 60))
		for _, block := range p.Days[day].Blocks {
			fmt.Fprintf(w, "  %s\n", cyan(block.MuscleGroup))
			for _, ex := range block.Exercises {
				fmt.Fprintf(w, "    %-30s %d x %d\n", ex.ExerciseName, ex.DefaultSets, ex.DefaultReps)
			}
		}
	}
	fmt.Fprintln(w)
}

func printSchedule(w io.Writer, weeks []progression.WeekTargets) {
	for _, wt := range weeks {
		targets := make([]string, len(wt.Targets))
		for i, t := range wt.Targets {
			targets[i] = strconv.Itoa(t)
		}
		label := fmt.Sprintf("week %d", wt.Week)
		if wt.Deload {
			label += " (deload)"
		}
		fmt.Fprintf(w, "%-18s RPE %s\n", label, strings.Join(targets, " / "))
	}
}
