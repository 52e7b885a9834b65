package progression

import "math"

// NextReps derives this week's expected reps for a set from last week's reps and RPE.
// Every point of RPE left in the tank last week (relative to this week's target) is one more rep,
// overshooting costs one rep per point. Never prescribes less than a single rep.
func NextReps(previousReps, previousIntensity, targetIntensity int) int {
	reps := previousReps + (targetIntensity - previousIntensity)
	if reps < 1 {
		return 1
	}
	return reps
}

// SetPerformance is a (reps, intensity) pair of a single set.
type SetPerformance struct {
	Reps      int `json:"reps"`
	Intensity int `json:"intensity"`
}

// BestSet picks the set with the most reps, ties broken by the lowest intensity.
// reps and intensities are index aligned; a missing intensity counts as BaselineIntensity.
func BestSet(reps, intensities []int) (SetPerformance, bool) {
	if len(reps) == 0 {
		return SetPerformance{}, false
	}

	best := SetPerformance{Reps: reps[0], Intensity: intensityAt(intensities, 0)}
	for i := 1; i < len(reps); i++ {
		candidate := SetPerformance{Reps: reps[i], Intensity: intensityAt(intensities, i)}
		if candidate.Reps > best.Reps ||
			(candidate.Reps == best.Reps && candidate.Intensity < best.Intensity) {
			best = candidate
		}
	}
	return best, true
}

// DeloadSets scales a set count down to roughly a third, keeping at least one set.
func DeloadSets(sets int) int {
	return deloadScale(sets)
}

// DeloadReps scales a rep count down to roughly a third, keeping at least one rep.
func DeloadReps(reps int) int {
	return deloadScale(reps)
}

func deloadScale(n int) int {
	scaled := int(math.Round(float64(n) / 3))
	if scaled < 1 {
		return 1
	}
	return scaled
}

func intensityAt(intensities []int, i int) int {
	if i < len(intensities) && intensities[i] > 0 {
		return intensities[i]
	}
	return BaselineIntensity
}
