package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/mesocycle/internal/mesocycle/cycle"
	"github.com/2beens/mesocycle/internal/mesocycle/feedback"
	"github.com/2beens/mesocycle/internal/mesocycle/performance"
	"github.com/2beens/mesocycle/internal/mesocycle/plan"
	"github.com/2beens/mesocycle/internal/mesocycle/progression"
	"github.com/2beens/mesocycle/internal/telemetry/metrics"
	"github.com/2beens/mesocycle/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=session_mocks_test.go -package=session_test

type planGetter interface {
	Get(ctx context.Context, id int) (*plan.Plan, error)
}

type cycleStore interface {
	GetActive(ctx context.Context, userID int) (*cycle.ActiveCycle, error)
	CompleteDay(ctx context.Context, dc cycle.DayCompletion) (*cycle.DayAdvance, error)
}

type performanceStore interface {
	Latest(ctx context.Context, params performance.HistoryParams) (*performance.Record, error)
	TrainedGroups(ctx context.Context, userID, planID, week, day int) ([]string, error)
	WeeklySets(ctx context.Context, userID, planID, week, day int, muscleGroup string) (int, error)
	Add(ctx context.Context, records []performance.Record) error
}

type feedbackStore interface {
	AddSoreness(ctx context.Context, rec feedback.SorenessRecord) error
	AddPump(ctx context.Context, rec feedback.PumpRecord) error
	LatestPump(ctx context.Context, userID int, muscleGroup string) (progression.PumpLevel, error)
}

// Initializer prepares the prescriptions of a training day.
type Initializer struct {
	plans          planGetter
	performance    performanceStore
	feedback       feedbackStore
	promptTimeout  time.Duration
	metricsManager *metrics.Manager
}

func NewInitializer(
	plans planGetter,
	performance performanceStore,
	feedback feedbackStore,
	promptTimeout time.Duration,
	metricsManager *metrics.Manager,
) *Initializer {
	return &Initializer{
		plans:          plans,
		performance:    performance,
		feedback:       feedback,
		promptTimeout:  promptTimeout,
		metricsManager: metricsManager,
	}
}

// Run takes the session from idle to ready. Soreness prompts are published on the
// session's broker and Run blocks until each of them is answered, times out, or ctx is done.
// Lookup failures degrade the affected exercise to template defaults, they never fail the session.
func (i *Initializer) Run(ctx context.Context, s *Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.initialize")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	start := time.Now()
	userID, active := s.UserID, s.cycle
	week, day := active.CurrentWeek, active.CurrentDay
	span.SetAttributes(
		attribute.Int("user_id", userID),
		attribute.Int("plan_id", active.PlanID),
		attribute.Int("week", week),
		attribute.Int("day", day),
	)

	s.setState(StateLoadingTemplate)
	p, err := i.plans.Get(ctx, active.PlanID)
	if err != nil {
		return fmt.Errorf("load plan %d: %w", active.PlanID, err)
	}
	dayTemplate, err := p.Day(day)
	if err != nil {
		return err
	}
	templates := usableExercises(dayTemplate)
	if len(templates) == 0 {
		return fmt.Errorf("plan %d has no exercises on day %d", p.ID, day)
	}
	groups := groupsOf(templates)

	s.setState(StateLoadingCycleState)
	schedule := progression.NewSchedule(p.DurationWeeks)
	deload := schedule.IsDeload(week)

	s.mu.Lock()
	s.plan = p
	s.schedule = schedule
	s.groups = groups
	s.mu.Unlock()

	var trained []string
	if week > 1 || day > 1 {
		trained, err = i.performance.TrainedGroups(ctx, userID, p.ID, week, day)
		if err != nil {
			// no history, no prompts
			log.Errorf("session %s: get trained groups: %s", s.ID, err)
			trained = nil
		}
	}

	s.setState(StateAwaitingSoreness)
	answers := make(feedback.Answers)
	if toAsk := feedback.GroupsNeedingPrompt(week, day, groups, trained); len(toAsk) > 0 {
		elicitor := feedback.NewElicitor(s.broker, i.feedback, i.promptTimeout, i.metricsManager)
		answers, err = elicitor.Elicit(ctx, userID, toAsk)
		if err != nil {
			return err
		}
	}

	s.setState(StateComputingPrescriptions)
	entries := make([]*progression.LogEntry, 0, len(templates))
	for _, t := range templates {
		entries = append(entries, i.prescribe(ctx, s, p, schedule, t))
	}

	var (
		adjustments []progression.VolumeAdjustment
		notices     []string
		canAddSets  = make(map[string]bool)
	)
	if week >= 2 && !deload {
		adjuster := progression.NewAdjuster(schedule, week)
		for _, group := range groups {
			adj := i.adjust(ctx, s, adjuster, group, entriesOf(entries, group), answers)
			if adj.Outcome != progression.AdjustmentNone {
				adjustments = append(adjustments, adj)
				i.observeAdjustment(adj.Outcome)
			}
			if adj.Notice != "" {
				notices = append(notices, adj.Notice)
			}
			canAddSets[group] = adj.Outcome == progression.AdjustmentGrow
		}
	}

	for _, e := range entries {
		e.EnsureArrayIntegrity()
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.entries = entries
	s.soreness = answers
	s.adjustments = adjustments
	s.notices = notices
	s.canAddSets = canAddSets
	s.state = StateReady
	s.mu.Unlock()

	if i.metricsManager != nil {
		i.metricsManager.HistogramDayInitializationDuration.Observe(time.Since(start).Seconds())
	}
	log.Debugf(
		"session %s ready: user %d, plan %d, week %d, day %d, %d exercises, %d adjustments",
		s.ID, userID, p.ID, week, day, len(entries), len(adjustments),
	)
	return nil
}

func (i *Initializer) prescribe(
	ctx context.Context,
	s *Session,
	p *plan.Plan,
	schedule progression.Schedule,
	t plan.ExerciseTemplate,
) *progression.LogEntry {
	week, day := s.cycle.CurrentWeek, s.cycle.CurrentDay
	prescription := progression.Prescription{
		ExerciseName: t.ExerciseName,
		MuscleGroup:  t.MuscleGroup,
		PlannedSets:  t.DefaultSets,
		PlannedReps:  t.DefaultReps,
		Week:         week,
		Schedule:     schedule,
	}
	if week <= 1 {
		return progression.Prescribe(prescription, nil)
	}

	var prev *progression.Previous
	rec, err := i.performance.Latest(ctx, performance.HistoryParams{
		UserID:       s.UserID,
		PlanID:       p.ID,
		ExerciseName: t.ExerciseName,
		MuscleGroup:  t.MuscleGroup,
		BeforeWeek:   week,
		BeforeDay:    day,
	})
	switch {
	case errors.Is(err, performance.ErrNoHistory):
		log.Debugf("session %s: no history for [%s], template defaults", s.ID, t.ExerciseName)
	case err != nil:
		log.Warnf("session %s: history of [%s] unavailable, template defaults: %s", s.ID, t.ExerciseName, err)
	default:
		prev = rec.Previous()
	}

	return progression.Prescribe(prescription, prev)
}

func (i *Initializer) adjust(
	ctx context.Context,
	s *Session,
	adjuster progression.Adjuster,
	group string,
	entries []*progression.LogEntry,
	answers feedback.Answers,
) progression.VolumeAdjustment {
	soreness, answered := answers.Get(group)
	if !answered {
		return progression.VolumeAdjustment{MuscleGroup: group, Outcome: progression.AdjustmentNone}
	}

	pump, err := i.feedback.LatestPump(ctx, s.UserID, group)
	if err != nil {
		log.Warnf("session %s: last pump of [%s] unavailable, using %s: %s", s.ID, group, progression.DefaultPump, err)
		pump = progression.DefaultPump
	}

	delta := progression.SetDelta(soreness, true, pump)
	weeklySets := 0
	if delta > 0 {
		weeklySets, err = i.performance.WeeklySets(ctx, s.UserID, s.cycle.PlanID, s.cycle.CurrentWeek, s.cycle.CurrentDay, group)
		if err != nil {
			log.Errorf("session %s: weekly sets of [%s]: %s", s.ID, group, err)
			return progression.VolumeAdjustment{
				MuscleGroup: group,
				Delta:       delta,
				Outcome:     progression.AdjustmentNone,
				Notice:      fmt.Sprintf("%s: could not check this week's volume, keeping volume as is", group),
			}
		}
	}

	return adjuster.Apply(group, entries, delta, weeklySets)
}

func (i *Initializer) observeAdjustment(outcome progression.AdjustmentOutcome) {
	if i.metricsManager == nil {
		return
	}
	i.metricsManager.CounterVolumeAdjustments.WithLabelValues(string(outcome)).Inc()
}

// usableExercises flattens the day, skipping entries that cannot be prescribed.
func usableExercises(d plan.DayTemplate) []plan.ExerciseTemplate {
	var usable []plan.ExerciseTemplate
	for _, block := range d.Blocks {
		for _, t := range block.Exercises {
			if t.MuscleGroup == "" {
				t.MuscleGroup = block.MuscleGroup
			}
			if t.ExerciseName == "" || t.MuscleGroup == "" || t.DefaultSets < 1 || t.DefaultReps < 1 {
				log.Warnf("day %d: skipping malformed exercise %+v", d.Day, t)
				continue
			}
			usable = append(usable, t)
		}
	}
	return usable
}

func groupsOf(templates []plan.ExerciseTemplate) []string {
	seen := make(map[string]bool)
	var groups []string
	for _, t := range templates {
		if !seen[t.MuscleGroup] {
			seen[t.MuscleGroup] = true
			groups = append(groups, t.MuscleGroup)
		}
	}
	return groups
}

func entriesOf(entries []*progression.LogEntry, group string) []*progression.LogEntry {
	var res []*progression.LogEntry
	for _, e := range entries {
		if e.MuscleGroup == group {
			res = append(res, e)
		}
	}
	return res
}
