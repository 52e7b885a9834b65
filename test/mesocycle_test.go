package test

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/mesocycle/internal/mesocycle/cycle"
	"github.com/2beens/mesocycle/internal/mesocycle/feedback"
	"github.com/2beens/mesocycle/internal/mesocycle/plan"
	"github.com/2beens/mesocycle/internal/mesocycle/progression"
	"github.com/2beens/mesocycle/internal/mesocycle/session"
)

func (s *IntegrationTestSuite) TestMesocycleFlow() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	token := s.doLogin(ctx, t)

	planFile, err := os.Open("../plans/upper_lower.yaml")
	require.NoError(t, err)
	defer planFile.Close()

	resp := s.doRequest(ctx, t, http.MethodPost, "/plans", token, "application/yaml", planFile)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var added plan.AddPlanResponse
	require.NoError(t, decodeBody(resp, &added))
	require.NotNil(t, added.Plan)
	require.Greater(t, added.Plan.ID, 0)
	assert.Equal(t, 5, added.Plan.DurationWeeks)

	// no session before a cycle is started
	s.doJSON(ctx, t, http.MethodPost, "/session", token, nil, http.StatusNotFound, nil)

	var active cycle.ActiveCycle
	s.doJSON(ctx, t, http.MethodPost, "/cycle/start", token, map[string]int{"planId": added.Plan.ID}, http.StatusCreated, &active)
	assert.Equal(t, s.userID, active.UserID)
	assert.Equal(t, added.Plan.ID, active.PlanID)
	assert.Equal(t, 1, active.CurrentWeek)
	assert.Equal(t, 1, active.CurrentDay)

	s.doJSON(ctx, t, http.MethodPost, "/cycle/start", token, map[string]int{"planId": added.Plan.ID}, http.StatusConflict, nil)

	var snap session.Snapshot
	s.doJSON(ctx, t, http.MethodPost, "/session", token, nil, http.StatusAccepted, &snap)
	assert.Equal(t, 1, snap.Week)
	assert.Equal(t, 1, snap.Day)

	snap = s.waitForSessionState(ctx, token, session.StateReady)
	require.Len(t, snap.Entries, 4)
	assert.ElementsMatch(t, []string{"chest", "back"}, snap.MuscleGroups)

	for idx, e := range snap.Entries {
		for set := 0; set < e.CurrentSets; set++ {
			s.doJSON(
				ctx, t, http.MethodPut,
				fmt.Sprintf("/session/exercises/%d/sets/%d", idx, set),
				token,
				map[string]any{"reps": 10, "weight": 40.0, "intensity": 8},
				http.StatusOK, nil,
			)
		}
	}

	// the day is not done before every group is
	s.doJSON(ctx, t, http.MethodPost, "/session/complete", token, nil, http.StatusBadRequest, nil)

	for _, group := range snap.MuscleGroups {
		s.doJSON(
			ctx, t, http.MethodPost,
			fmt.Sprintf("/session/groups/%s/complete", group),
			token,
			map[string]string{"pumpLevel": "medium"},
			http.StatusOK, nil,
		)
	}

	var advance cycle.DayAdvance
	s.doJSON(ctx, t, http.MethodPost, "/session/complete", token, nil, http.StatusOK, &advance)
	assert.Equal(t, cycle.Position{Week: 1, Day: 2}, advance.Next)
	assert.False(t, advance.CycleCompleted)

	s.doJSON(ctx, t, http.MethodPost, "/session/complete", token, nil, http.StatusConflict, nil)

	var recordsCount int
	require.NoError(t, s.DB.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM performance_record WHERE user_id = $1 AND plan_id = $2 AND week_number = 1 AND day_number = 1;`,
		s.userID, added.Plan.ID,
	).Scan(&recordsCount))
	assert.Equal(t, 4, recordsCount)

	var pumps []feedback.PumpRecord
	s.doJSON(ctx, t, http.MethodGet, "/feedback/pump", token, nil, http.StatusOK, &pumps)
	require.Len(t, pumps, 2)
	for _, p := range pumps {
		assert.Equal(t, progression.PumpMedium, p.PumpLevel)
	}

	s.doJSON(ctx, t, http.MethodGet, "/cycle", token, nil, http.StatusOK, &active)
	assert.Equal(t, 1, active.CurrentWeek)
	assert.Equal(t, 2, active.CurrentDay)

	// next day can be started and walked away from
	s.doJSON(ctx, t, http.MethodPost, "/session", token, nil, http.StatusAccepted, &snap)
	assert.Equal(t, 2, snap.Day)
	resp = s.doRequest(ctx, t, http.MethodDelete, "/session", token, "", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	s.doJSON(ctx, t, http.MethodGet, "/session", token, nil, http.StatusNotFound, nil)
}

func (s *IntegrationTestSuite) waitForSessionState(ctx context.Context, token string, want session.State) session.Snapshot {
	t := s.T()

	var snap session.Snapshot
	require.Eventually(t, func() bool {
		s.doJSON(ctx, t, http.MethodGet, "/session", token, nil, http.StatusOK, &snap)
		return snap.State == want
	}, 10*time.Second, 50*time.Millisecond, "session never reached state %s", want)

	return snap
}
