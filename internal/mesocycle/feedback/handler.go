package feedback

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/mesocycle/internal/auth"
	"github.com/2beens/mesocycle/internal/telemetry/tracing"
	"github.com/2beens/mesocycle/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=feedback_test

type historyRepo interface {
	SorenessHistory(ctx context.Context, userID int, muscleGroup string, limit int) ([]SorenessRecord, error)
	PumpHistory(ctx context.Context, userID int, muscleGroup string, limit int) ([]PumpRecord, error)
}

const maxHistoryLimit = 500

type Handler struct {
	repo historyRepo
}

func NewHandler(repo historyRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/feedback/soreness", h.HandleSorenessHistory).Methods("GET", "OPTIONS").Name("soreness-history")
	r.HandleFunc("/feedback/pump", h.HandlePumpHistory).Methods("GET", "OPTIONS").Name("pump-history")
}

// HandleSorenessHistory returns the soreness answers of the current user, most recent first,
// optionally filtered by muscle group.
func (h *Handler) HandleSorenessHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "feedbackHandler.sorenessHistory")
	defer span.End()

	userID, group, limit, ok := historyQuery(w, r)
	if !ok {
		return
	}

	records, err := h.repo.SorenessHistory(ctx, userID, group, limit)
	if err != nil {
		log.Errorf("get soreness history for user %d: %s", userID, err)
		http.Error(w, "failed to get soreness history, try again", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) HandlePumpHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "feedbackHandler.pumpHistory")
	defer span.End()

	userID, group, limit, ok := historyQuery(w, r)
	if !ok {
		return
	}

	records, err := h.repo.PumpHistory(ctx, userID, group, limit)
	if err != nil {
		log.Errorf("get pump history for user %d: %s", userID, err)
		http.Error(w, "failed to get pump history, try again", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, records, http.StatusOK)
}

func historyQuery(w http.ResponseWriter, r *http.Request) (userID int, group string, limit int, ok bool) {
	userID, ok = auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return 0, "", 0, false
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l <= 0 {
			http.Error(w, "error, limit must be a positive number", http.StatusBadRequest)
			return 0, "", 0, false
		}
		limit = min(l, maxHistoryLimit)
	}

	return userID, r.URL.Query().Get("group"), limit, true
}
