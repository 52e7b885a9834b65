package progression

// Previous is the most recent logged performance of an exercise.
type Previous struct {
	ActualSets int
	ActualReps []int
	WeightUsed []float64
	Intensity  []int
}

// Prescription describes the exercise to prescribe for a given week.
type Prescription struct {
	ExerciseName string
	MuscleGroup  string
	PlannedSets  int
	PlannedReps  int
	Week         int
	Schedule     Schedule
}

// Prescribe builds today's entry for one exercise from its previous performance.
//
//   - week 1: template defaults, no history is consulted
//   - deload week: a third of the sets and a third of the best previous reps, at baseline RPE
//   - any other week: previous sets and weights, reps progressed by NextReps towards the target RPE
//
// A nil prev means the exercise has no history (e.g. it was added mid plan); it is
// prescribed like week 1, with template defaults at baseline RPE, scaled down when it
// is the deload week.
func Prescribe(p Prescription, prev *Previous) *LogEntry {
	if p.Week <= 1 {
		return NewLogEntry(p.ExerciseName, p.MuscleGroup, p.PlannedSets, p.PlannedReps, p.PlannedSets)
	}

	deload := p.Schedule.IsDeload(p.Week)
	if prev == nil {
		if deload {
			return deloadEntry(p, DeloadSets(p.PlannedSets), DeloadReps(p.PlannedReps), nil)
		}
		return NewLogEntry(p.ExerciseName, p.MuscleGroup, p.PlannedSets, p.PlannedReps, p.PlannedSets)
	}

	if deload {
		baseSets := prev.ActualSets
		if baseSets < 1 {
			baseSets = p.PlannedSets
		}
		bestReps := p.PlannedReps
		if best, ok := BestSet(prev.ActualReps, prev.Intensity); ok && best.Reps > 0 {
			bestReps = best.Reps
		}
		return deloadEntry(p, DeloadSets(baseSets), DeloadReps(bestReps), prev.WeightUsed)
	}

	sets := max(1, prev.ActualSets)
	e := NewLogEntry(p.ExerciseName, p.MuscleGroup, p.PlannedSets, p.PlannedReps, sets)
	for i := 0; i < sets; i++ {
		target := p.Schedule.TargetIntensity(p.Week, i, sets)

		prevReps := p.PlannedReps
		if i < len(prev.ActualReps) && prev.ActualReps[i] > 0 {
			prevReps = prev.ActualReps[i]
		}
		prevIntensity := BaselineIntensity
		if i < len(prev.Intensity) && prev.Intensity[i] > 0 {
			prevIntensity = prev.Intensity[i]
		}

		e.Weights[i] = previousWeight(prev.WeightUsed, i)
		e.ExpectedReps[i] = NextReps(prevReps, prevIntensity, target)
		e.Intensity[i] = target
	}
	copy(e.PrefilledWeights, e.Weights)
	e.EnsureArrayIntegrity()
	return e
}

func deloadEntry(p Prescription, sets, reps int, weights []float64) *LogEntry {
	e := NewLogEntry(p.ExerciseName, p.MuscleGroup, p.PlannedSets, p.PlannedReps, sets)
	for i := 0; i < sets; i++ {
		e.ExpectedReps[i] = reps
		e.Intensity[i] = p.Schedule.TargetIntensity(p.Week, i, sets)
		if len(weights) > 0 {
			e.Weights[i] = previousWeight(weights, i)
		}
	}
	copy(e.PrefilledWeights, e.Weights)
	return e
}

// previousWeight falls back to the first logged weight, then to 0.
func previousWeight(weights []float64, i int) float64 {
	if i < len(weights) {
		return weights[i]
	}
	if len(weights) > 0 {
		return weights[0]
	}
	return 0
}
