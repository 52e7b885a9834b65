package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/mesocycle/internal/mesocycle/cycle"
	"github.com/2beens/mesocycle/internal/mesocycle/progression"
	"github.com/2beens/mesocycle/internal/telemetry/metrics"
)

const DefaultIdleTimeout = 3 * time.Hour

// Manager keeps one training session per user and runs their initialization.
type Manager struct {
	cycles         cycleStore
	initializer    *Initializer
	completer      *Completer
	idleTimeout    time.Duration
	metricsManager *metrics.Manager
	now            func() time.Time

	mu       sync.Mutex
	sessions map[int]*Session
}

func NewManager(
	cycles cycleStore,
	initializer *Initializer,
	completer *Completer,
	idleTimeout time.Duration,
	metricsManager *metrics.Manager,
) *Manager {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	return &Manager{
		cycles:         cycles,
		initializer:    initializer,
		completer:      completer,
		idleTimeout:    idleTimeout,
		metricsManager: metricsManager,
		now:            time.Now,
		sessions:       make(map[int]*Session),
	}
}

// Start opens today's session of the user and initializes it in the background.
// A running session of the same user is an error; a finished one is replaced.
func (m *Manager) Start(ctx context.Context, userID int) (*Session, error) {
	active, err := m.cycles.GetActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.sessions[userID]; ok && existing.State().Active() {
		return nil, ErrSessionActive
	}

	s := newSession(userID, *active, m.now())
	s.state = StateLoadingTemplate
	initCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	m.sessions[userID] = s

	if m.metricsManager != nil {
		m.metricsManager.CounterSessionsStarted.Inc()
		m.metricsManager.GaugeActiveSessions.Set(float64(len(m.sessions)))
	}

	go func() {
		defer close(s.done)
		defer cancel()

		err := m.initializer.Run(initCtx, s)
		switch {
		case err == nil:
		case errors.Is(err, context.Canceled):
			log.Debugf("session %s of user %d abandoned during initialization", s.ID, userID)
		default:
			log.Errorf("session %s of user %d failed: %s", s.ID, userID, err)
			s.fail(err)
		}
	}()

	log.Debugf("user %d started session %s: plan %d, week %d, day %d",
		userID, s.ID, active.PlanID, active.CurrentWeek, active.CurrentDay)
	return s, nil
}

// Get returns the session of the user and marks it as used.
func (m *Manager) Get(userID int) (*Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[userID]
	m.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.touch(m.now())
	return s, nil
}

// Abandon discards the session of the user. A pending soreness prompt is dropped,
// answers already given stay stored.
func (m *Manager) Abandon(userID int) error {
	m.mu.Lock()
	s, ok := m.sessions[userID]
	if ok {
		delete(m.sessions, userID)
		m.setActiveGauge()
	}
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	m.discard(s)
	return nil
}

func (m *Manager) CompleteGroup(ctx context.Context, userID int, group string, pump progression.PumpLevel) error {
	s, err := m.Get(userID)
	if err != nil {
		return err
	}
	return m.completer.CompleteGroup(ctx, s, group, pump)
}

func (m *Manager) CompleteDay(ctx context.Context, userID int) (*cycle.DayAdvance, error) {
	s, err := m.Get(userID)
	if err != nil {
		return nil, err
	}
	return m.completer.CompleteDay(ctx, s)
}

// SweepIdle discards the sessions not used for longer than the idle timeout.
func (m *Manager) SweepIdle() int {
	deadline := m.now().Add(-m.idleTimeout)

	var stale []*Session
	m.mu.Lock()
	for userID, s := range m.sessions {
		if s.State() == StateSubmitting {
			continue
		}
		if s.idleSince().Before(deadline) {
			stale = append(stale, s)
			delete(m.sessions, userID)
		}
	}
	m.setActiveGauge()
	m.mu.Unlock()

	for _, s := range stale {
		log.Debugf("discarding idle session %s of user %d", s.ID, s.UserID)
		m.discard(s)
	}
	return len(stale)
}

// ScheduleIdleSweep registers the idle sweep on the cron runner.
func (m *Manager) ScheduleIdleSweep(c *cron.Cron, spec string) error {
	return c.AddFunc(spec, func() {
		if swept := m.SweepIdle(); swept > 0 {
			log.Infof("idle sweep discarded %d training sessions", swept)
		}
	})
}

// Stop discards every session and waits for their initialization to end.
func (m *Manager) Stop() {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for userID, s := range m.sessions {
		sessions = append(sessions, s)
		delete(m.sessions, userID)
	}
	m.setActiveGauge()
	m.mu.Unlock()

	for _, s := range sessions {
		m.discard(s)
	}
}

func (m *Manager) discard(s *Session) {
	s.cancel()
	<-s.done

	s.mu.Lock()
	if s.state.Active() {
		s.state = StateAbandoned
	}
	s.mu.Unlock()
}

// setActiveGauge is called with m.mu held.
func (m *Manager) setActiveGauge() {
	if m.metricsManager == nil {
		return
	}
	m.metricsManager.GaugeActiveSessions.Set(float64(len(m.sessions)))
}
