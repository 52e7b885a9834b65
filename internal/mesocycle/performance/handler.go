package performance

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/mesocycle/internal/auth"
	"github.com/2beens/mesocycle/internal/mesocycle/cycle"
	"github.com/2beens/mesocycle/internal/telemetry/tracing"
	"github.com/2beens/mesocycle/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=performance_mocks_test.go -package=performance_test

type historyRepo interface {
	History(ctx context.Context, params HistoryParams) ([]Record, error)
}

type activeCycleGetter interface {
	GetActive(ctx context.Context, userID int) (*cycle.ActiveCycle, error)
}

const maxHistoryLimit = 500

type Handler struct {
	analyzer *Analyzer
	cycles   activeCycleGetter
}

func NewHandler(analyzer *Analyzer, cycles activeCycleGetter) *Handler {
	return &Handler{
		analyzer: analyzer,
		cycles:   cycles,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/history", h.HandleHistory).Methods("GET", "OPTIONS").Name("history")
	r.HandleFunc("/history/volume", h.HandleWeeklyVolume).Methods("GET", "OPTIONS").Name("history-volume")
}

// HandleHistory returns the performance records of the current user on the active plan,
// most recent first, optionally filtered by exercise and muscle group.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "performanceHandler.history")
	defer span.End()

	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l <= 0 {
			http.Error(w, "error, limit must be a positive number", http.StatusBadRequest)
			return
		}
		limit = min(l, maxHistoryLimit)
	}

	planID, ok := h.activePlan(ctx, w, userID)
	if !ok {
		return
	}

	history, err := h.analyzer.ExerciseHistory(ctx, HistoryParams{
		UserID:       userID,
		PlanID:       planID,
		ExerciseName: r.URL.Query().Get("exercise"),
		MuscleGroup:  r.URL.Query().Get("group"),
		Limit:        limit,
	})
	if err != nil {
		log.Errorf("get history for user %d: %s", userID, err)
		http.Error(w, "failed to get history, try again", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, history, http.StatusOK)
}

func (h *Handler) HandleWeeklyVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "performanceHandler.weeklyVolume")
	defer span.End()

	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	planID, ok := h.activePlan(ctx, w, userID)
	if !ok {
		return
	}

	volume, err := h.analyzer.WeeklyVolume(ctx, userID, planID)
	if err != nil {
		log.Errorf("get weekly volume for user %d: %s", userID, err)
		http.Error(w, "failed to get weekly volume, try again", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, volume, http.StatusOK)
}

func (h *Handler) activePlan(ctx context.Context, w http.ResponseWriter, userID int) (int, bool) {
	c, err := h.cycles.GetActive(ctx, userID)
	if errors.Is(err, cycle.ErrNoActiveCycle) {
		http.Error(w, "no active cycle", http.StatusNotFound)
		return 0, false
	} else if err != nil {
		log.Errorf("history, get active cycle for user %d: %s", userID, err)
		http.Error(w, "failed to get history, try again", http.StatusInternalServerError)
		return 0, false
	}
	return c.PlanID, true
}
