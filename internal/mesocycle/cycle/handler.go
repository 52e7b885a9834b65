package cycle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/mesocycle/internal/auth"
	"github.com/2beens/mesocycle/internal/mesocycle/plan"
	"github.com/2beens/mesocycle/internal/telemetry/tracing"
	"github.com/2beens/mesocycle/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=cycle_mocks_test.go -package=cycle_test

type cycleStore interface {
	GetActive(ctx context.Context, userID int) (*ActiveCycle, error)
	Start(ctx context.Context, userID, planID int) (*ActiveCycle, error)
	DayLogs(ctx context.Context, userID, planID int) ([]DayLog, error)
	Completed(ctx context.Context, userID int) ([]CompletedCycle, error)
}

type planGetter interface {
	Get(ctx context.Context, id int) (*plan.Plan, error)
}

type StartCycleRequest struct {
	PlanID int `json:"planId"`
}

type Handler struct {
	repo  cycleStore
	plans planGetter
}

func NewHandler(repo cycleStore, plans planGetter) *Handler {
	return &Handler{
		repo:  repo,
		plans: plans,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/cycle", h.HandleGetActive).Methods("GET", "OPTIONS").Name("get-cycle")
	r.HandleFunc("/cycle/start", h.HandleStart).Methods("POST", "OPTIONS").Name("start-cycle")
	r.HandleFunc("/cycle/days", h.HandleDayLogs).Methods("GET", "OPTIONS").Name("cycle-days")
	r.HandleFunc("/cycle/completed", h.HandleCompleted).Methods("GET", "OPTIONS").Name("completed-cycles")
}

func (h *Handler) HandleGetActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "cycleHandler.getActive")
	defer span.End()

	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	c, err := h.repo.GetActive(ctx, userID)
	if errors.Is(err, ErrNoActiveCycle) {
		http.Error(w, "no active cycle", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("get active cycle for user %d: %s", userID, err)
		http.Error(w, "failed to get active cycle, try again", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, c, http.StatusOK)
}

func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "cycleHandler.start")
	defer span.End()

	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req StartCycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.PlanID <= 0 {
		http.Error(w, "plan id missing", http.StatusBadRequest)
		return
	}

	if _, err := h.plans.Get(ctx, req.PlanID); errors.Is(err, plan.ErrPlanNotFound) {
		http.Error(w, "plan not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("start cycle, get plan %d: %s", req.PlanID, err)
		http.Error(w, "failed to start cycle, try again", http.StatusInternalServerError)
		return
	}

	c, err := h.repo.Start(ctx, userID, req.PlanID)
	if errors.Is(err, ErrCycleExists) {
		http.Error(w, "a cycle is already running", http.StatusConflict)
		return
	} else if errors.Is(err, ErrUnknownPlan) {
		http.Error(w, "plan not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("start cycle for user %d: %s", userID, err)
		http.Error(w, "failed to start cycle, try again", http.StatusInternalServerError)
		return
	}

	log.Debugf("user %d started a cycle on plan %d", userID, req.PlanID)
	pkg.WriteJSON(w, c, http.StatusCreated)
}

func (h *Handler) HandleDayLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "cycleHandler.dayLogs")
	defer span.End()

	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	c, err := h.repo.GetActive(ctx, userID)
	if errors.Is(err, ErrNoActiveCycle) {
		http.Error(w, "no active cycle", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("day logs, get active cycle for user %d: %s", userID, err)
		http.Error(w, "failed to get day logs, try again", http.StatusInternalServerError)
		return
	}

	logs, err := h.repo.DayLogs(ctx, userID, c.PlanID)
	if err != nil {
		log.Errorf("get day logs for user %d: %s", userID, err)
		http.Error(w, "failed to get day logs, try again", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, logs, http.StatusOK)
}

func (h *Handler) HandleCompleted(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "cycleHandler.completed")
	defer span.End()

	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	cycles, err := h.repo.Completed(ctx, userID)
	if err != nil {
		log.Errorf("get completed cycles for user %d: %s", userID, err)
		http.Error(w, "failed to get completed cycles, try again", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, cycles, http.StatusOK)
}
