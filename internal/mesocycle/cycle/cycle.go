package cycle

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/2beens/mesocycle/internal/mesocycle/progression"
)

var (
	ErrNoActiveCycle = errors.New("no active cycle")
	ErrCycleExists   = errors.New("user already has an active cycle")
	ErrUnknownPlan   = errors.New("plan does not exist")
	// ErrCycleMoved is returned when the cycle advanced since the day was started.
	ErrCycleMoved = errors.New("active cycle moved on")
)

const (
	DayStatusCompleted = "completed"
)

// ActiveCycle is the position of a user within the plan they are currently running.
type ActiveCycle struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	PlanID      int       `json:"planId"`
	CurrentWeek int       `json:"currentWeek"`
	CurrentDay  int       `json:"currentDay"`
	StartedAt   time.Time `json:"startedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Position is a (week, day) of a cycle.
type Position struct {
	Week int `json:"week"`
	Day  int `json:"day"`
}

// Next returns the position after the current day. The day wraps to 1 after the last
// day of the week. completed is true when the next week is past the plan duration.
func (c ActiveCycle) Next(daysPerWeek, durationWeeks int) (next Position, completed bool) {
	next = Position{Week: c.CurrentWeek, Day: c.CurrentDay + 1}
	if next.Day > daysPerWeek {
		next.Day = 1
		next.Week++
	}
	return next, next.Week > durationWeeks
}

// DaySummary is the structured summary stored with every completed day.
type DaySummary struct {
	Exercises   []*progression.LogEntry              `json:"exercises"`
	Soreness    map[string]progression.SorenessLevel `json:"soreness,omitempty"`
	Pump        map[string]progression.PumpLevel     `json:"pump,omitempty"`
	Adjustments []progression.VolumeAdjustment       `json:"adjustments,omitempty"`
	Notices     []string                             `json:"notices,omitempty"`
}

// DayCompletion is the input of advancing a cycle by one day.
type DayCompletion struct {
	UserID        int
	PlanID        int
	Week          int
	Day           int
	DaysPerWeek   int
	DurationWeeks int
	Date          time.Time
	Summary       DaySummary
}

// DayAdvance is the outcome of completing a day.
type DayAdvance struct {
	Next           Position `json:"next"`
	CycleCompleted bool     `json:"cycleCompleted"`
}

type DayLog struct {
	ID          int             `json:"id"`
	UserID      int             `json:"userId"`
	PlanID      int             `json:"planId"`
	Week        int             `json:"weekNumber"`
	Day         int             `json:"dayNumber"`
	WorkoutDate time.Time       `json:"workoutDate"`
	Status      string          `json:"status"`
	Summary     json.RawMessage `json:"summary"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// CompletedCycle is the archive of a finished mesocycle.
type CompletedCycle struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	PlanID      int       `json:"planId"`
	StartedAt   time.Time `json:"startedAt"`
	CompletedAt time.Time `json:"completedAt"`
	TotalWeeks  int       `json:"totalWeeks"`
	TotalDays   int       `json:"totalDays"`
	// all performance records of the cycle
	Snapshot json.RawMessage `json:"snapshot"`
}
