package plan

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrPlanNotFound = errors.New("plan not found")
	ErrDayNotFound  = errors.New("day not found in plan")
)

type ExerciseTemplate struct {
	ExerciseName string `json:"exerciseName" yaml:"exerciseName"`
	MuscleGroup  string `json:"muscleGroup" yaml:"muscleGroup"`
	DefaultSets  int    `json:"defaultSets" yaml:"defaultSets"`
	DefaultReps  int    `json:"defaultReps" yaml:"defaultReps"`
}

// MuscleGroupBlock is one muscle group of a training day and the exercises that train it, in order.
type MuscleGroupBlock struct {
	MuscleGroup string             `json:"muscleGroup" yaml:"muscleGroup"`
	Exercises   []ExerciseTemplate `json:"exercises" yaml:"exercises"`
}

// DayTemplate is the ordered template of a single day index within the cycle.
type DayTemplate struct {
	Day    int                `json:"day"`
	Blocks []MuscleGroupBlock `json:"blocks"`
}

// MuscleGroups returns the distinct muscle groups of the day in template order.
func (d DayTemplate) MuscleGroups() []string {
	seen := make(map[string]bool)
	groups := make([]string, 0, len(d.Blocks))
	for _, b := range d.Blocks {
		if seen[b.MuscleGroup] {
			continue
		}
		seen[b.MuscleGroup] = true
		groups = append(groups, b.MuscleGroup)
	}
	return groups
}

// Exercises flattens the day into its exercises in template order.
func (d DayTemplate) Exercises() []ExerciseTemplate {
	var exercises []ExerciseTemplate
	for _, b := range d.Blocks {
		exercises = append(exercises, b.Exercises...)
	}
	return exercises
}

type Plan struct {
	ID            int                 `json:"id"`
	Name          string              `json:"name"`
	DurationWeeks int                 `json:"durationWeeks"`
	DaysPerWeek   int                 `json:"daysPerWeek"`
	Days          map[int]DayTemplate `json:"days"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// Day returns the template of the given day index.
func (p *Plan) Day(day int) (DayTemplate, error) {
	d, ok := p.Days[day]
	if !ok {
		return DayTemplate{}, fmt.Errorf("%w: plan %d, day %d", ErrDayNotFound, p.ID, day)
	}
	return d, nil
}

// IsDeloadWeek reports whether week is the final (deload) week of the plan.
func (p *Plan) IsDeloadWeek(week int) bool {
	return week == p.DurationWeeks
}

func (p *Plan) Validate() error {
	if p.Name == "" {
		return errors.New("plan name empty")
	}
	if p.DurationWeeks < 1 {
		return fmt.Errorf("duration weeks must be at least 1, got %d", p.DurationWeeks)
	}
	if p.DaysPerWeek < 1 {
		return fmt.Errorf("days per week must be at least 1, got %d", p.DaysPerWeek)
	}
	if len(p.Days) == 0 {
		return errors.New("plan has no valid training day")
	}
	for day := 1; day <= p.DaysPerWeek; day++ {
		if _, ok := p.Days[day]; !ok {
			return fmt.Errorf("missing template for day %d", day)
		}
	}
	return nil
}
