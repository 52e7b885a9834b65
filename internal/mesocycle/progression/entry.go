package progression

import (
	"errors"
	"fmt"
	"math"
)

// WeightChangeEpsilon is how far a logged weight may drift from the prefilled one
// before it counts as a manual override.
const WeightChangeEpsilon = 0.1

var ErrSetOutOfRange = errors.New("set index out of range")

// LogEntry is the in-session prescription and log of a single exercise for one training day.
// All per-set slices are index aligned and always exactly CurrentSets long.
type LogEntry struct {
	ExerciseName     string    `json:"exerciseName"`
	MuscleGroup      string    `json:"muscleGroup"`
	PlannedSets      int       `json:"plannedSets"`
	PlannedReps      int       `json:"plannedReps"`
	ExpectedReps     []int     `json:"expectedReps"`
	ActualReps       []int     `json:"actualReps"`
	Weights          []float64 `json:"weights"`
	PrefilledWeights []float64 `json:"prefilledWeights"`
	Intensity        []int     `json:"intensity"`
	CurrentSets      int       `json:"currentSets"`
	Completed        bool      `json:"completed"`
}

// NewLogEntry builds an entry with sets sets, every slice zeroed
// except expected reps (planned reps) and intensity (baseline).
func NewLogEntry(exerciseName, muscleGroup string, plannedSets, plannedReps, sets int) *LogEntry {
	if sets < 1 {
		sets = 1
	}
	e := &LogEntry{
		ExerciseName:     exerciseName,
		MuscleGroup:      muscleGroup,
		PlannedSets:      plannedSets,
		PlannedReps:      plannedReps,
		ExpectedReps:     make([]int, sets),
		ActualReps:       make([]int, sets),
		Weights:          make([]float64, sets),
		PrefilledWeights: make([]float64, sets),
		Intensity:        make([]int, sets),
		CurrentSets:      sets,
	}
	for i := 0; i < sets; i++ {
		e.ExpectedReps[i] = plannedReps
		e.Intensity[i] = BaselineIntensity
	}
	return e
}

// EnsureArrayIntegrity pads or truncates every per-set slice to CurrentSets.
// Padding repeats the last known weight, expected reps and intensity; reps start at 0.
func (e *LogEntry) EnsureArrayIntegrity() {
	if e.CurrentSets < 1 {
		e.CurrentSets = 1
	}
	n := e.CurrentSets

	e.ActualReps = fitInts(e.ActualReps, n, 0)
	e.ExpectedReps = fitInts(e.ExpectedReps, n, lastIntOr(e.ExpectedReps, e.PlannedReps))
	e.Intensity = fitInts(e.Intensity, n, lastIntOr(e.Intensity, BaselineIntensity))
	e.Weights = fitFloats(e.Weights, n, lastFloatOr(e.Weights, 0))
	e.PrefilledWeights = fitFloats(e.PrefilledWeights, n, lastFloatOr(e.PrefilledWeights, 0))
}

// AddSets appends n sets. Expected reps of new sets are derived from the best set the
// exercise already has in this session, so a new set follows demonstrated capability
// rather than the template default.
// Only the new sets get a target RPE; targets of existing sets are left unchanged, so the
// former last set keeps its last-set target.
func (e *LogEntry) AddSets(n int, schedule Schedule, week int) {
	if n <= 0 {
		return
	}
	e.EnsureArrayIntegrity()

	best, ok := BestSet(e.ExpectedReps, e.Intensity)
	if !ok {
		best = SetPerformance{Reps: e.PlannedReps, Intensity: BaselineIntensity}
	}

	newTotal := e.CurrentSets + n
	lastWeight := lastFloatOr(e.Weights, 0)
	lastPrefilled := lastFloatOr(e.PrefilledWeights, 0)
	for i := e.CurrentSets; i < newTotal; i++ {
		target := schedule.TargetIntensity(week, i, newTotal)
		e.ActualReps = append(e.ActualReps, 0)
		e.Weights = append(e.Weights, lastWeight)
		e.PrefilledWeights = append(e.PrefilledWeights, lastPrefilled)
		e.Intensity = append(e.Intensity, target)
		e.ExpectedReps = append(e.ExpectedReps, NextReps(best.Reps, best.Intensity, target))
	}
	e.CurrentSets = newTotal
	e.Completed = false
	e.EnsureArrayIntegrity()
}

// RemoveSets drops up to n sets from the tail, never going below one set.
// The targets of the remaining sets are left unchanged.
// Returns the number of sets actually removed.
func (e *LogEntry) RemoveSets(n int) int {
	e.EnsureArrayIntegrity()
	if n <= 0 {
		return 0
	}
	removed := min(n, e.CurrentSets-1)
	if removed <= 0 {
		return 0
	}
	e.CurrentSets -= removed
	e.ActualReps = e.ActualReps[:e.CurrentSets]
	e.ExpectedReps = e.ExpectedReps[:e.CurrentSets]
	e.Weights = e.Weights[:e.CurrentSets]
	e.PrefilledWeights = e.PrefilledWeights[:e.CurrentSets]
	e.Intensity = e.Intensity[:e.CurrentSets]
	return removed
}

func (e *LogEntry) SetReps(set, reps int) error {
	if err := e.checkSet(set); err != nil {
		return err
	}
	if reps < 0 {
		return fmt.Errorf("reps must not be negative: %d", reps)
	}
	e.ActualReps[set] = reps
	return nil
}

func (e *LogEntry) SetWeight(set int, weight float64) error {
	if err := e.checkSet(set); err != nil {
		return err
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("invalid weight: %v", weight)
	}
	e.Weights[set] = weight
	return nil
}

func (e *LogEntry) SetIntensity(set, intensity int) error {
	if err := e.checkSet(set); err != nil {
		return err
	}
	if !ValidIntensity(intensity) {
		return fmt.Errorf("intensity must be between %d and %d: %d", MinIntensity, MaxIntensity, intensity)
	}
	e.Intensity[set] = intensity
	return nil
}

// WeightOverridden reports whether the weight logged for set drifted from the prefilled one.
func (e *LogEntry) WeightOverridden(set int) bool {
	if e.checkSet(set) != nil {
		return false
	}
	return math.Abs(e.Weights[set]-e.PrefilledWeights[set]) > WeightChangeEpsilon
}

// IsComplete reports whether every set has reps and, when requireIntensity is set, a valid RPE.
func (e *LogEntry) IsComplete(requireIntensity bool) bool {
	if len(e.ActualReps) != e.CurrentSets || len(e.Weights) != e.CurrentSets {
		return false
	}
	for i := 0; i < e.CurrentSets; i++ {
		if e.ActualReps[i] <= 0 {
			return false
		}
		if e.Weights[i] < 0 {
			return false
		}
		if requireIntensity && (i >= len(e.Intensity) || !ValidIntensity(e.Intensity[i])) {
			return false
		}
	}
	return true
}

// Aligned reports whether every per-set slice has exactly CurrentSets elements.
func (e *LogEntry) Aligned() bool {
	n := e.CurrentSets
	return len(e.ActualReps) == n &&
		len(e.ExpectedReps) == n &&
		len(e.Weights) == n &&
		len(e.PrefilledWeights) == n &&
		len(e.Intensity) == n
}

func (e *LogEntry) Clone() *LogEntry {
	c := *e
	c.ExpectedReps = append([]int(nil), e.ExpectedReps...)
	c.ActualReps = append([]int(nil), e.ActualReps...)
	c.Weights = append([]float64(nil), e.Weights...)
	c.PrefilledWeights = append([]float64(nil), e.PrefilledWeights...)
	c.Intensity = append([]int(nil), e.Intensity...)
	return &c
}

func (e *LogEntry) checkSet(set int) error {
	if set < 0 || set >= e.CurrentSets || set >= len(e.ActualReps) {
		return fmt.Errorf("%w: %d (sets: %d)", ErrSetOutOfRange, set, e.CurrentSets)
	}
	return nil
}

func fitInts(s []int, n, pad int) []int {
	if len(s) > n {
		return s[:n]
	}
	for len(s) < n {
		s = append(s, pad)
	}
	return s
}

func fitFloats(s []float64, n int, pad float64) []float64 {
	if len(s) > n {
		return s[:n]
	}
	for len(s) < n {
		s = append(s, pad)
	}
	return s
}

func lastIntOr(s []int, fallback int) int {
	if len(s) == 0 {
		return fallback
	}
	return s[len(s)-1]
}

func lastFloatOr(s []float64, fallback float64) float64 {
	if len(s) == 0 {
		return fallback
	}
	return s[len(s)-1]
}
