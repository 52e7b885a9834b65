package session

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/2beens/mesocycle/internal/mesocycle/cycle"
	"github.com/2beens/mesocycle/internal/mesocycle/feedback"
	"github.com/2beens/mesocycle/internal/mesocycle/plan"
	"github.com/2beens/mesocycle/internal/mesocycle/progression"
)

var (
	ErrSessionNotFound      = errors.New("no training session")
	ErrSessionActive        = errors.New("a training session is already running")
	ErrSessionNotReady      = errors.New("training session not ready")
	ErrAlreadySubmitting    = errors.New("day completion already in progress")
	ErrExerciseNotFound     = errors.New("exercise not found in session")
	ErrGroupNotFound        = errors.New("muscle group not trained today")
	ErrGroupNotComplete     = errors.New("muscle group has incomplete exercises")
	ErrGroupAlreadyComplete = errors.New("muscle group already completed")
	ErrGroupCompleting      = errors.New("muscle group completion in progress")
	ErrDayNotComplete       = errors.New("not all muscle groups are completed")
	ErrDayAlreadyCompleted  = errors.New("day already completed")
	ErrIntensityLocked      = errors.New("intensity is only entered in the first week")
	ErrNoPendingWeightCheck = errors.New("no weight change waiting for confirmation")
	ErrInvalidSetValue      = errors.New("invalid set value")
)

type State string

const (
	StateIdle                   State = "idle"
	StateLoadingTemplate        State = "loading_template"
	StateLoadingCycleState      State = "loading_cycle_state"
	StateAwaitingSoreness       State = "awaiting_soreness"
	StateComputingPrescriptions State = "computing_prescriptions"
	StateReady                  State = "ready"
	StateSubmitting             State = "submitting"
	StateCycleComplete          State = "cycle_complete"
	StateFailed                 State = "failed"
	StateAbandoned              State = "abandoned"
)

// Active reports whether the session is still initializing or being trained.
func (s State) Active() bool {
	switch s {
	case StateIdle, StateCycleComplete, StateFailed, StateAbandoned:
		return false
	default:
		return true
	}
}

// WeightConfirmation is a manual weight change that waits for the user to either
// keep it or go back to the prefilled weight.
type WeightConfirmation struct {
	Exercise  int     `json:"exercise"`
	Set       int     `json:"set"`
	Prefilled float64 `json:"prefilled"`
	Entered   float64 `json:"entered"`
}

// Session is a single training day of a user. It owns the day's log entries and is
// their only writer; every access goes through its methods.
type Session struct {
	ID     uuid.UUID
	UserID int

	mu       sync.Mutex
	state    State
	cycle    cycle.ActiveCycle
	plan     *plan.Plan
	schedule progression.Schedule
	groups   []string
	entries  []*progression.LogEntry

	soreness      feedback.Answers
	pump          map[string]progression.PumpLevel
	canAddSets    map[string]bool
	adjustments   []progression.VolumeAdjustment
	notices       []string
	completed     map[string]bool
	completing    map[string]bool
	confirmations []WeightConfirmation
	advance       *cycle.DayAdvance
	failure       string

	broker       *feedback.Broker
	cancel       func()
	done         chan struct{}
	lastActivity time.Time
	startedAt    time.Time
}

func newSession(userID int, active cycle.ActiveCycle, now time.Time) *Session {
	return &Session{
		ID:           uuid.New(),
		UserID:       userID,
		state:        StateIdle,
		cycle:        active,
		soreness:     make(feedback.Answers),
		pump:         make(map[string]progression.PumpLevel),
		canAddSets:   make(map[string]bool),
		completed:    make(map[string]bool),
		completing:   make(map[string]bool),
		broker:       feedback.NewBroker(),
		cancel:       func() {},
		done:         make(chan struct{}),
		lastActivity: now,
		startedAt:    now,
	}
}

// Snapshot is a point in time copy of a session, safe to hand out.
type Snapshot struct {
	ID                   uuid.UUID                      `json:"id"`
	State                State                          `json:"state"`
	PlanID               int                            `json:"planId"`
	Week                 int                            `json:"week"`
	Day                  int                            `json:"day"`
	Deload               bool                           `json:"deload"`
	PendingPrompt        *feedback.Prompt               `json:"pendingPrompt,omitempty"`
	MuscleGroups         []string                       `json:"muscleGroups"`
	CompletedGroups      []string                       `json:"completedGroups"`
	Entries              []*progression.LogEntry        `json:"entries"`
	Soreness             feedback.Answers               `json:"soreness"`
	Adjustments          []progression.VolumeAdjustment `json:"adjustments"`
	Notices              []string                       `json:"notices"`
	PendingConfirmations []WeightConfirmation           `json:"pendingConfirmations"`
	Advance              *cycle.DayAdvance              `json:"advance,omitempty"`
	Error                string                         `json:"error,omitempty"`
	StartedAt            time.Time                      `json:"startedAt"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:                   s.ID,
		State:                s.state,
		PlanID:               s.cycle.PlanID,
		Week:                 s.cycle.CurrentWeek,
		Day:                  s.cycle.CurrentDay,
		Deload:               s.plan != nil && s.schedule.IsDeload(s.cycle.CurrentWeek),
		MuscleGroups:         slices.Clone(s.groups),
		CompletedGroups:      make([]string, 0, len(s.completed)),
		Entries:              make([]*progression.LogEntry, 0, len(s.entries)),
		Soreness:             make(feedback.Answers, len(s.soreness)),
		Adjustments:          slices.Clone(s.adjustments),
		Notices:              slices.Clone(s.notices),
		PendingConfirmations: slices.Clone(s.confirmations),
		Advance:              s.advance,
		Error:                s.failure,
		StartedAt:            s.startedAt,
	}
	if prompt, ok := s.broker.Pending(); ok {
		snap.PendingPrompt = &prompt
	}
	for _, group := range s.groups {
		if s.completed[group] {
			snap.CompletedGroups = append(snap.CompletedGroups, group)
		}
	}
	for _, e := range s.entries {
		snap.Entries = append(snap.Entries, e.Clone())
	}
	for group, level := range s.soreness {
		snap.Soreness[group] = level
	}
	return snap
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Broker is where the soreness prompts of the session are answered.
func (s *Session) Broker() *feedback.Broker {
	return s.broker
}

// Done is closed once the initialization of the session has finished.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

func (s *Session) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateFailed
	s.failure = err.Error()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActivity = now
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

func (s *Session) week() int {
	return s.cycle.CurrentWeek
}

// entry returns the entry at idx; the caller holds the lock and the session is ready.
func (s *Session) entry(idx int) (*progression.LogEntry, error) {
	if s.state != StateReady {
		return nil, ErrSessionNotReady
	}
	if idx < 0 || idx >= len(s.entries) {
		return nil, fmt.Errorf("%w: %d", ErrExerciseNotFound, idx)
	}
	e := s.entries[idx]
	if s.completed[e.MuscleGroup] {
		return nil, fmt.Errorf("%w: %s", ErrGroupAlreadyComplete, e.MuscleGroup)
	}
	if s.completing[e.MuscleGroup] {
		return nil, fmt.Errorf("%w: %s", ErrGroupCompleting, e.MuscleGroup)
	}
	return e, nil
}

func (s *Session) SetReps(idx, set, reps int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.entry(idx)
	if err != nil {
		return err
	}
	return invalidValue(e.SetReps(set, reps))
}

// SetWeight logs the weight of a set. From the second week on, a weight that drifts from
// the prefilled one waits for a confirmation; the returned value is non nil in that case.
func (s *Session) SetWeight(idx, set int, weight float64) (*WeightConfirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.entry(idx)
	if err != nil {
		return nil, err
	}
	if err := e.SetWeight(set, weight); err != nil {
		return nil, invalidValue(err)
	}

	s.dropConfirmation(idx, set)
	if s.week() < 2 || !e.WeightOverridden(set) {
		return nil, nil
	}

	wc := WeightConfirmation{
		Exercise:  idx,
		Set:       set,
		Prefilled: e.PrefilledWeights[set],
		Entered:   weight,
	}
	s.confirmations = append(s.confirmations, wc)
	return &wc, nil
}

// ConfirmWeight resolves a pending weight change: accept keeps the entered weight,
// otherwise the prefilled one is restored.
func (s *Session) ConfirmWeight(idx, set int, accept bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.entry(idx)
	if err != nil {
		return err
	}
	if !s.dropConfirmation(idx, set) {
		return ErrNoPendingWeightCheck
	}
	if !accept {
		return e.SetWeight(set, e.PrefilledWeights[set])
	}
	return nil
}

// SetIntensity logs the RPE of a set. Only the first week collects it, later weeks
// keep the computed target.
func (s *Session) SetIntensity(idx, set, intensity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.entry(idx)
	if err != nil {
		return err
	}
	if s.week() >= 2 {
		return ErrIntensityLocked
	}
	return invalidValue(e.SetIntensity(set, intensity))
}

func (s *Session) AddSet(idx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.entry(idx)
	if err != nil {
		return err
	}
	e.AddSets(1, s.schedule, s.week())
	return nil
}

// RemoveSet drops the last set of the exercise. An exercise keeps at least one set.
func (s *Session) RemoveSet(idx int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.entry(idx)
	if err != nil {
		return false, err
	}
	if e.RemoveSets(1) == 0 {
		return false, nil
	}
	s.dropConfirmation(idx, e.CurrentSets)
	return true, nil
}

func invalidValue(err error) error {
	if err == nil || errors.Is(err, progression.ErrSetOutOfRange) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidSetValue, err)
}

func (s *Session) dropConfirmation(idx, set int) bool {
	for i, wc := range s.confirmations {
		if wc.Exercise == idx && wc.Set == set {
			s.confirmations = slices.Delete(s.confirmations, i, i+1)
			return true
		}
	}
	return false
}

func (s *Session) hasGroup(group string) bool {
	return slices.Contains(s.groups, group)
}

// groupEntries returns the group's entries in template order, with their indexes.
func (s *Session) groupEntries(group string) ([]int, []*progression.LogEntry) {
	var (
		idxs    []int
		entries []*progression.LogEntry
	)
	for i, e := range s.entries {
		if e.MuscleGroup == group {
			idxs = append(idxs, i)
			entries = append(entries, e)
		}
	}
	return idxs, entries
}

// checkGroupCompletable is called with the lock held.
func (s *Session) checkGroupCompletable(group string) error {
	if s.state != StateReady {
		return ErrSessionNotReady
	}
	if !s.hasGroup(group) {
		return fmt.Errorf("%w: %s", ErrGroupNotFound, group)
	}
	if s.completed[group] {
		return fmt.Errorf("%w: %s", ErrGroupAlreadyComplete, group)
	}
	if s.completing[group] {
		return fmt.Errorf("%w: %s", ErrGroupCompleting, group)
	}

	requireIntensity := s.week() == 1
	idxs, entries := s.groupEntries(group)
	for i, e := range entries {
		e.EnsureArrayIntegrity()
		if !e.IsComplete(requireIntensity) {
			return fmt.Errorf("%w: %s", ErrGroupNotComplete, e.ExerciseName)
		}
		for _, wc := range s.confirmations {
			if wc.Exercise == idxs[i] {
				return fmt.Errorf("%w: %s has an unconfirmed weight", ErrGroupNotComplete, e.ExerciseName)
			}
		}
	}
	return nil
}

func (s *Session) allGroupsCompleted() bool {
	for _, group := range s.groups {
		if !s.completed[group] {
			return false
		}
	}
	return true
}

func (s *Session) summary() cycle.DaySummary {
	exercises := make([]*progression.LogEntry, 0, len(s.entries))
	for _, e := range s.entries {
		exercises = append(exercises, e.Clone())
	}
	soreness := make(map[string]progression.SorenessLevel, len(s.soreness))
	for group, level := range s.soreness {
		soreness[group] = level
	}
	pump := make(map[string]progression.PumpLevel, len(s.pump))
	for group, level := range s.pump {
		pump[group] = level
	}
	return cycle.DaySummary{
		Exercises:   exercises,
		Soreness:    soreness,
		Pump:        pump,
		Adjustments: slices.Clone(s.adjustments),
		Notices:     slices.Clone(s.notices),
	}
}
