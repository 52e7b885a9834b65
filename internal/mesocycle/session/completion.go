package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/mesocycle/internal/mesocycle/cycle"
	"github.com/2beens/mesocycle/internal/mesocycle/feedback"
	"github.com/2beens/mesocycle/internal/mesocycle/performance"
	"github.com/2beens/mesocycle/internal/mesocycle/progression"
	"github.com/2beens/mesocycle/internal/telemetry/metrics"
	"github.com/2beens/mesocycle/internal/telemetry/tracing"
)

const (
	completionKeyPrefix = "mesocycle-day-completion"
	CompletionGuardTTL  = 24 * time.Hour
)

var ErrInvalidPumpLevel = errors.New("invalid pump level")

// Completer writes finished muscle groups and days back to the stores.
type Completer struct {
	performance    performanceStore
	feedback       feedbackStore
	cycles         cycleStore
	redisClient    *redis.Client
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewCompleter(
	performance performanceStore,
	feedback feedbackStore,
	cycles cycleStore,
	redisClient *redis.Client,
	metricsManager *metrics.Manager,
) *Completer {
	return &Completer{
		performance:    performance,
		feedback:       feedback,
		cycles:         cycles,
		redisClient:    redisClient,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func completionKey(userID, planID, week, day int) string {
	return fmt.Sprintf("%s:%d:%d:%d:%d", completionKeyPrefix, userID, planID, week, day)
}

// CompleteGroup folds the final values of the group's exercises into performance records
// and stores the pump answer. The group stays open when the records cannot be written.
func (c *Completer) CompleteGroup(ctx context.Context, s *Session, group string, pump progression.PumpLevel) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.complete-group")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("muscle_group", group))

	if !pump.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidPumpLevel, pump)
	}

	s.mu.Lock()
	if err := s.checkGroupCompletable(group); err != nil {
		s.mu.Unlock()
		return err
	}

	now := c.now()
	soreness, answered := s.soreness.Get(group)
	params := performance.RecordParams{
		UserID:     s.UserID,
		PlanID:     s.cycle.PlanID,
		Week:       s.cycle.CurrentWeek,
		Day:        s.cycle.CurrentDay,
		Pump:       pump,
		IsSore:     answered && !soreness.Healed(),
		CanAddSets: s.canAddSets[group],
		CreatedAt:  now,
	}

	_, entries := s.groupEntries(group)
	records := make([]performance.Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, performance.FromLogEntry(e, params))
	}
	// the group's entries stay frozen while the records are written
	s.completing[group] = true
	s.mu.Unlock()

	writeErr := c.performance.Add(ctx, records)
	if writeErr == nil {
		if err := c.feedback.AddPump(ctx, feedback.PumpRecord{
			UserID:      s.UserID,
			WorkoutDate: feedback.WorkoutDate(now),
			MuscleGroup: group,
			PumpLevel:   pump,
			CreatedAt:   now,
		}); err != nil {
			log.Errorf("session %s: store pump of [%s]: %s", s.ID, group, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.completing, group)
	s.lastActivity = c.now()
	if writeErr != nil {
		return fmt.Errorf("store performance of %s: %w", group, writeErr)
	}

	for _, e := range entries {
		e.Completed = true
	}
	s.completed[group] = true
	s.pump[group] = pump
	log.Debugf("session %s: [%s] completed, %d records", s.ID, group, len(records))
	return nil
}

// CompleteDay stores the day summary and advances the cycle. A completion guard in redis
// keyed by (user, plan, week, day) makes sure a day is written once: it is released when
// the write fails, so the day can be submitted again, and kept otherwise.
func (c *Completer) CompleteDay(ctx context.Context, s *Session) (_ *cycle.DayAdvance, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.complete-day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mu.Lock()
	switch {
	case s.state == StateSubmitting:
		s.mu.Unlock()
		return nil, ErrAlreadySubmitting
	case s.state != StateReady:
		s.mu.Unlock()
		return nil, ErrSessionNotReady
	case !s.allGroupsCompleted():
		s.mu.Unlock()
		return nil, ErrDayNotComplete
	}
	s.state = StateSubmitting
	dc := cycle.DayCompletion{
		UserID:        s.UserID,
		PlanID:        s.cycle.PlanID,
		Week:          s.cycle.CurrentWeek,
		Day:           s.cycle.CurrentDay,
		DaysPerWeek:   s.plan.DaysPerWeek,
		DurationWeeks: s.plan.DurationWeeks,
		Date:          feedback.WorkoutDate(c.now()),
		Summary:       s.summary(),
	}
	s.mu.Unlock()

	span.SetAttributes(attribute.Int("week", dc.Week), attribute.Int("day", dc.Day))
	advance, err := c.completeDay(ctx, s.ID, dc)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActivity = c.now()
	if err != nil {
		s.state = StateReady
		return nil, err
	}

	s.advance = advance
	s.state = StateIdle
	if advance.CycleCompleted {
		s.state = StateCycleComplete
	}

	if c.metricsManager != nil {
		c.metricsManager.CounterDaysCompleted.Inc()
		if advance.CycleCompleted {
			c.metricsManager.CounterCyclesCompleted.Inc()
		}
	}
	log.Infof("user %d completed week %d day %d, next: %+v", dc.UserID, dc.Week, dc.Day, advance.Next)
	return advance, nil
}

func (c *Completer) completeDay(ctx context.Context, sessionID uuid.UUID, dc cycle.DayCompletion) (*cycle.DayAdvance, error) {
	key := completionKey(dc.UserID, dc.PlanID, dc.Week, dc.Day)
	acquired, err := c.redisClient.SetNX(ctx, key, sessionID.String(), CompletionGuardTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire completion guard: %w", err)
	}
	if !acquired {
		return nil, ErrDayAlreadyCompleted
	}

	advance, err := c.cycles.CompleteDay(ctx, dc)
	if errors.Is(err, cycle.ErrCycleMoved) {
		// written by an earlier submit, keep the guard
		return nil, fmt.Errorf("%w: %w", ErrDayAlreadyCompleted, err)
	} else if err != nil {
		if delErr := c.redisClient.Del(context.WithoutCancel(ctx), key).Err(); delErr != nil {
			log.Errorf("release completion guard [%s]: %s", key, delErr)
		}
		return nil, err
	}

	return advance, nil
}
