package feedback

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/mesocycle/internal/mesocycle/progression"
	"github.com/2beens/mesocycle/internal/telemetry/metrics"
	"github.com/2beens/mesocycle/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=feedback_mocks_test.go -package=feedback_test

const DefaultPromptTimeout = time.Minute

const (
	OutcomeAnswered  = "answered"
	OutcomeTimeout   = "timeout"
	OutcomeCancelled = "cancelled"
	OutcomeInvalid   = "invalid"
)

// Prompter presents a soreness prompt to the user and blocks until it is answered,
// or ctx is done.
type Prompter interface {
	Ask(ctx context.Context, p Prompt) (progression.SorenessLevel, error)
}

type sorenessStore interface {
	AddSoreness(ctx context.Context, rec SorenessRecord) error
}

// Answers holds the soreness answers received, by muscle group. Groups that were
// not answered are missing.
type Answers map[string]progression.SorenessLevel

// Get returns the answer for the group, and whether there was one.
func (a Answers) Get(muscleGroup string) (progression.SorenessLevel, bool) {
	level, ok := a[muscleGroup]
	return level, ok
}

// Elicitor asks the soreness checks of a training day one after another.
type Elicitor struct {
	prompter       Prompter
	store          sorenessStore
	timeout        time.Duration
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewElicitor(prompter Prompter, store sorenessStore, timeout time.Duration, metricsManager *metrics.Manager) *Elicitor {
	if timeout <= 0 {
		timeout = DefaultPromptTimeout
	}
	return &Elicitor{
		prompter:       prompter,
		store:          store,
		timeout:        timeout,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// Elicit asks about every group in order, never two at a time. Each answer is stored as
// soon as it arrives; failing to store it is only logged. A prompt that times out is
// left unanswered and the next one is asked. When ctx is cancelled the remaining prompts
// are dropped and the answers received so far are returned with ctx's error.
func (e *Elicitor) Elicit(ctx context.Context, userID int, groups []string) (_ Answers, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "feedback.elicit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("prompts", len(groups)))

	answers := make(Answers, len(groups))
	for i, group := range groups {
		if err := ctx.Err(); err != nil {
			e.observe(OutcomeCancelled)
			return answers, err
		}

		prompt := Prompt{
			ID:          uuid.New(),
			MuscleGroup: group,
			Position:    i + 1,
			Total:       len(groups),
		}

		promptCtx, cancel := context.WithTimeout(ctx, e.timeout)
		level, askErr := e.prompter.Ask(promptCtx, prompt)
		cancel()

		switch {
		case askErr == nil && level.IsValid():
			e.observe(OutcomeAnswered)
			answers[group] = level
			e.persist(ctx, userID, group, level)
		case askErr == nil:
			log.Warnf("soreness prompt [%s]: invalid answer [%s], no adjustment", group, level)
			e.observe(OutcomeInvalid)
		case ctx.Err() != nil:
			e.observe(OutcomeCancelled)
			log.Debugf("soreness elicitation for user %d abandoned at [%s]", userID, group)
			return answers, ctx.Err()
		case errors.Is(askErr, context.DeadlineExceeded):
			log.Warnf("soreness prompt [%s] for user %d timed out, no adjustment", group, userID)
			e.observe(OutcomeTimeout)
		default:
			log.Errorf("soreness prompt [%s] for user %d: %s", group, userID, askErr)
			e.observe(OutcomeInvalid)
		}
	}

	return answers, nil
}

// persist stores an answer even when the session is abandoned meanwhile.
func (e *Elicitor) persist(ctx context.Context, userID int, group string, level progression.SorenessLevel) {
	now := e.now()
	if err := e.store.AddSoreness(context.WithoutCancel(ctx), SorenessRecord{
		UserID:        userID,
		WorkoutDate:   WorkoutDate(now),
		MuscleGroup:   group,
		SorenessLevel: level,
		Healed:        level.Healed(),
		CreatedAt:     now,
	}); err != nil {
		log.Errorf("store soreness of [%s] for user %d: %s", group, userID, err)
	}
}

func (e *Elicitor) observe(outcome string) {
	if e.metricsManager == nil {
		return
	}
	e.metricsManager.CounterSorenessPrompts.WithLabelValues(outcome).Inc()
}
