package performance

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/mesocycle/internal/mesocycle/progression"
)

var ErrNoHistory = errors.New("no performance history")

// Record is one logged exercise occurrence. Records are append only.
type Record struct {
	ID           int                   `json:"id"`
	UserID       int                   `json:"userId"`
	PlanID       int                   `json:"planId"`
	Week         int                   `json:"weekNumber"`
	Day          int                   `json:"dayNumber"`
	ExerciseName string                `json:"exerciseName"`
	MuscleGroup  string                `json:"muscleGroup"`
	PlannedSets  int                   `json:"plannedSets"`
	PlannedReps  int                   `json:"plannedReps"`
	ActualSets   int                   `json:"actualSets"`
	ActualReps   []int                 `json:"actualReps"`
	WeightUsed   []float64             `json:"weightUsed"`
	Intensity    []int                 `json:"intensity"`
	PumpLevel    progression.PumpLevel `json:"pumpLevel"`
	IsSore       bool                  `json:"isSore"`
	CanAddSets   bool                  `json:"canAddSets"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// Validate checks the per set slices are aligned with ActualSets.
func (r Record) Validate() error {
	if r.ExerciseName == "" || r.MuscleGroup == "" {
		return errors.New("exercise name or muscle group empty")
	}
	if r.Week < 1 || r.Day < 1 {
		return fmt.Errorf("invalid week/day: %d/%d", r.Week, r.Day)
	}
	if r.ActualSets < 1 {
		return fmt.Errorf("%s: no sets performed", r.ExerciseName)
	}
	if len(r.ActualReps) != r.ActualSets || len(r.WeightUsed) != r.ActualSets || len(r.Intensity) != r.ActualSets {
		return fmt.Errorf(
			"%s: per set values not aligned (sets: %d, reps: %d, weights: %d, intensity: %d)",
			r.ExerciseName, r.ActualSets, len(r.ActualReps), len(r.WeightUsed), len(r.Intensity),
		)
	}
	for _, rpe := range r.Intensity {
		if !progression.ValidIntensity(rpe) {
			return fmt.Errorf("%s: invalid intensity %d", r.ExerciseName, rpe)
		}
	}
	return nil
}

// Previous converts the record into the input of the rep progression.
func (r Record) Previous() *progression.Previous {
	return &progression.Previous{
		ActualSets: r.ActualSets,
		ActualReps: r.ActualReps,
		WeightUsed: r.WeightUsed,
		Intensity:  r.Intensity,
	}
}

// Before reports whether the record was logged on an earlier (week, day) than the given one.
func (r Record) Before(week, day int) bool {
	return r.Week < week || (r.Week == week && r.Day < day)
}

// RecordParams carries the context of a finished exercise that is not part of the log entry.
type RecordParams struct {
	UserID     int
	PlanID     int
	Week       int
	Day        int
	Pump       progression.PumpLevel
	IsSore     bool
	// CanAddSets is true when the group's volume was allowed to grow today.
	CanAddSets bool
	CreatedAt  time.Time
}

// FromLogEntry folds the final values of an in-session entry into a record.
func FromLogEntry(e *progression.LogEntry, params RecordParams) Record {
	e.EnsureArrayIntegrity()
	c := e.Clone()
	return Record{
		UserID:       params.UserID,
		PlanID:       params.PlanID,
		Week:         params.Week,
		Day:          params.Day,
		ExerciseName: c.ExerciseName,
		MuscleGroup:  c.MuscleGroup,
		PlannedSets:  c.PlannedSets,
		PlannedReps:  c.PlannedReps,
		ActualSets:   c.CurrentSets,
		ActualReps:   c.ActualReps,
		WeightUsed:   c.Weights,
		Intensity:    c.Intensity,
		PumpLevel:    params.Pump,
		IsSore:       params.IsSore,
		CanAddSets:   params.CanAddSets,
		CreatedAt:    params.CreatedAt,
	}
}
