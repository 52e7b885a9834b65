package progression

const (
	// BaselineIntensity is the RPE prescribed in the first week, in the deload week,
	// and whenever the week does not map to a known progression step.
	BaselineIntensity = 7
	MinIntensity      = 1
	MaxIntensity      = 10
)

// Schedule maps a position within the mesocycle to a target RPE.
// The deload week is always the final week of the cycle.
type Schedule struct {
	DurationWeeks int
}

func NewSchedule(durationWeeks int) Schedule {
	return Schedule{DurationWeeks: durationWeeks}
}

func (s Schedule) IsDeload(week int) bool {
	return s.DurationWeeks > 0 && week == s.DurationWeeks
}

// TargetIntensity returns the RPE a set should be trained to.
// setIndex is zero based; "last set" is relative to totalSets of that exercise,
// so it has to be evaluated again whenever the exercise's set count changes.
func (s Schedule) TargetIntensity(week, setIndex, totalSets int) int {
	if week == 1 || s.IsDeload(week) {
		return BaselineIntensity
	}

	lastSet := setIndex == totalSets-1
	switch week {
	case 2, 3:
		if lastSet {
			return 9
		}
		return 8
	case 4, 5:
		if lastSet {
			return 10
		}
		return 9
	case 6:
		return 10
	default:
		return BaselineIntensity
	}
}

// Targets returns the target intensity of every set in an exercise with totalSets sets.
func (s Schedule) Targets(week, totalSets int) []int {
	targets := make([]int, totalSets)
	for i := range targets {
		targets[i] = s.TargetIntensity(week, i, totalSets)
	}
	return targets
}

// WeekTargets are the target intensities of an exercise with a fixed set count in one week.
type WeekTargets struct {
	Week    int   `json:"week"`
	Deload  bool  `json:"deload"`
	Targets []int `json:"targets"`
}

// Overview lists the targets of every week of the cycle for an exercise with totalSets sets.
func (s Schedule) Overview(totalSets int) []WeekTargets {
	weeks := make([]WeekTargets, 0, s.DurationWeeks)
	for week := 1; week <= s.DurationWeeks; week++ {
		weeks = append(weeks, WeekTargets{
			Week:    week,
			Deload:  s.IsDeload(week),
			Targets: s.Targets(week, totalSets),
		})
	}
	return weeks
}

func ValidIntensity(intensity int) bool {
	return intensity >= MinIntensity && intensity <= MaxIntensity
}
