package progression

import "fmt"

// WeeklySetCeiling is the maximum number of sets a muscle group may get in one week.
// Increases that would cross it are skipped.
const WeeklySetCeiling = 21

// SetDelta converts the soreness answer and the last pump report of a muscle group
// into a signed set count change. answered is false when no soreness answer was
// obtained, which never changes volume.
//
//	soreness \ pump   none  medium  amazing
//	none               +3     +2      +1
//	medium             +1     +1      +1
//	very_sore           0      0       0
//	extremely_sore     -1     -1      -1
func SetDelta(soreness SorenessLevel, answered bool, pump PumpLevel) int {
	if !answered {
		return 0
	}
	if !pump.IsValid() {
		pump = DefaultPump
	}

	switch soreness {
	case SorenessNone:
		switch pump {
		case PumpNone:
			return 3
		case PumpMedium:
			return 2
		default:
			return 1
		}
	case SorenessMedium:
		return 1
	case SorenessExtremelySore:
		return -1
	default:
		return 0
	}
}

type AdjustmentOutcome string

const (
	AdjustmentNone           AdjustmentOutcome = "none"
	AdjustmentGrow           AdjustmentOutcome = "grow"
	AdjustmentShrink         AdjustmentOutcome = "shrink"
	AdjustmentCeilingSkipped AdjustmentOutcome = "ceiling_skipped"
)

// VolumeAdjustment describes what happened to one muscle group's volume today.
type VolumeAdjustment struct {
	MuscleGroup   string            `json:"muscleGroup"`
	Delta         int               `json:"delta"`
	Applied       int               `json:"applied"`
	Exercise      string            `json:"exercise,omitempty"`
	Outcome       AdjustmentOutcome `json:"outcome"`
	ProjectedSets int               `json:"projectedSets,omitempty"`
	Notice        string            `json:"notice,omitempty"`
}

// Adjuster applies per muscle group set deltas to today's entries.
type Adjuster struct {
	Schedule Schedule
	Week     int
	Ceiling  int
}

func NewAdjuster(schedule Schedule, week int) Adjuster {
	return Adjuster{
		Schedule: schedule,
		Week:     week,
		Ceiling:  WeeklySetCeiling,
	}
}

// Apply changes the set count of one exercise in the group. entries must be today's
// entries of that muscle group in template order; weeklySetsLogged is the number of sets
// already performed for the group earlier in the current week.
//
// A positive delta grows the exercise with the fewest sets (first one wins a tie), unless
// the projected weekly volume would cross the ceiling. A negative delta shrinks the exercise
// with the most sets, never below one set.
func (a Adjuster) Apply(muscleGroup string, entries []*LogEntry, delta, weeklySetsLogged int) VolumeAdjustment {
	adj := VolumeAdjustment{
		MuscleGroup: muscleGroup,
		Delta:       delta,
		Outcome:     AdjustmentNone,
	}
	if delta == 0 || len(entries) == 0 {
		return adj
	}

	ceiling := a.Ceiling
	if ceiling <= 0 {
		ceiling = WeeklySetCeiling
	}

	if delta > 0 {
		todaysSets := 0
		for _, e := range entries {
			todaysSets += e.CurrentSets
		}
		projected := weeklySetsLogged + todaysSets + delta
		adj.ProjectedSets = projected
		if projected > ceiling {
			adj.Outcome = AdjustmentCeilingSkipped
			adj.Notice = fmt.Sprintf(
				"%s: adding %d sets would bring this week to %d sets (max %d), keeping volume as is",
				muscleGroup, delta, projected, ceiling,
			)
			return adj
		}

		target := entries[0]
		for _, e := range entries[1:] {
			if e.CurrentSets < target.CurrentSets {
				target = e
			}
		}
		target.AddSets(delta, a.Schedule, a.Week)
		adj.Applied = delta
		adj.Exercise = target.ExerciseName
		adj.Outcome = AdjustmentGrow
		return adj
	}

	target := entries[0]
	for _, e := range entries[1:] {
		if e.CurrentSets > target.CurrentSets {
			target = e
		}
	}
	removed := target.RemoveSets(-delta)
	adj.Applied = -removed
	adj.Exercise = target.ExerciseName
	if removed > 0 {
		adj.Outcome = AdjustmentShrink
	}
	return adj
}
