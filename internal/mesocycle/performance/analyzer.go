package performance

import (
	"context"
	"sort"

	"github.com/2beens/mesocycle/internal/mesocycle/progression"
	"github.com/2beens/mesocycle/internal/telemetry/tracing"
)

// ExerciseHistory is the history of an exercise, one stats entry per logged (week, day).
type ExerciseHistory struct {
	ExerciseName string          `json:"exerciseName"`
	MuscleGroup  string          `json:"muscleGroup"`
	Records      []Record        `json:"records"`
	Stats        []ExerciseStats `json:"stats"`
}

type ExerciseStats struct {
	Week       int     `json:"week"`
	Day        int     `json:"day"`
	Sets       int     `json:"sets"`
	TotalReps  int     `json:"totalReps"`
	TopWeight  float64 `json:"topWeight"`
	VolumeLoad float64 `json:"volumeLoad"`
	BestReps   int     `json:"bestReps"`
	BestRPE    int     `json:"bestRpe"`
}

// WeeklyVolume is the number of sets per muscle group per week.
type WeeklyVolume map[int]map[string]int

type Analyzer struct {
	repo historyRepo
}

func NewAnalyzer(repo historyRepo) *Analyzer {
	return &Analyzer{
		repo: repo,
	}
}

func (a *Analyzer) ExerciseHistory(ctx context.Context, params HistoryParams) (_ *ExerciseHistory, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.performance.exercise-history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	records, err := a.repo.History(ctx, params)
	if err != nil {
		return nil, err
	}

	history := &ExerciseHistory{
		ExerciseName: params.ExerciseName,
		MuscleGroup:  params.MuscleGroup,
		Records:      records,
		Stats:        make([]ExerciseStats, 0, len(records)),
	}

	for _, rec := range records {
		stats := ExerciseStats{
			Week: rec.Week,
			Day:  rec.Day,
			Sets: rec.ActualSets,
		}
		for i, reps := range rec.ActualReps {
			stats.TotalReps += reps
			if i < len(rec.WeightUsed) {
				stats.VolumeLoad += float64(reps) * rec.WeightUsed[i]
				stats.TopWeight = max(stats.TopWeight, rec.WeightUsed[i])
			}
		}
		if best, ok := progression.BestSet(rec.ActualReps, rec.Intensity); ok {
			stats.BestReps = best.Reps
			stats.BestRPE = best.Intensity
		}
		history.Stats = append(history.Stats, stats)
	}

	return history, nil
}

// WeeklyVolume sums the performed sets per week and muscle group.
func (a *Analyzer) WeeklyVolume(ctx context.Context, userID, planID int) (_ WeeklyVolume, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.performance.weekly-volume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	records, err := a.repo.History(ctx, HistoryParams{
		UserID: userID,
		PlanID: planID,
	})
	if err != nil {
		return nil, err
	}

	volume := make(WeeklyVolume)
	for _, rec := range records {
		if volume[rec.Week] == nil {
			volume[rec.Week] = make(map[string]int)
		}
		volume[rec.Week][rec.MuscleGroup] += rec.ActualSets
	}
	return volume, nil
}

// Weeks returns the weeks with logged volume in ascending order.
func (v WeeklyVolume) Weeks() []int {
	weeks := make([]int, 0, len(v))
	for week := range v {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)
	return weeks
}
