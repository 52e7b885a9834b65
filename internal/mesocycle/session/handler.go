package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/mesocycle/internal/auth"
	"github.com/2beens/mesocycle/internal/mesocycle/cycle"
	"github.com/2beens/mesocycle/internal/mesocycle/feedback"
	"github.com/2beens/mesocycle/internal/mesocycle/progression"
	"github.com/2beens/mesocycle/internal/telemetry/tracing"
	"github.com/2beens/mesocycle/pkg"
)

type AnswerPromptRequest struct {
	Soreness progression.SorenessLevel `json:"soreness"`
}

// UpdateSetRequest carries the values to change, missing ones stay as they are.
type UpdateSetRequest struct {
	Reps      *int     `json:"reps,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
	Intensity *int     `json:"intensity,omitempty"`
}

type UpdateSetResponse struct {
	Entry        *progression.LogEntry `json:"entry"`
	Confirmation *WeightConfirmation   `json:"confirmation,omitempty"`
}

type ConfirmWeightRequest struct {
	Accept bool `json:"accept"`
}

type RemoveSetResponse struct {
	Entry   *progression.LogEntry `json:"entry"`
	Removed bool                  `json:"removed"`
}

type CompleteGroupRequest struct {
	PumpLevel progression.PumpLevel `json:"pumpLevel"`
}

type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{
		manager: manager,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/session", h.HandleStart).Methods("POST", "OPTIONS").Name("start-session")
	r.HandleFunc("/session", h.HandleGet).Methods("GET").Name("get-session")
	r.HandleFunc("/session", h.HandleAbandon).Methods("DELETE").Name("abandon-session")
	r.HandleFunc("/session/prompts/{promptId}", h.HandleAnswerPrompt).Methods("POST", "OPTIONS").Name("answer-prompt")
	r.HandleFunc("/session/exercises/{idx:[0-9]+}/sets/{set:[0-9]+}", h.HandleUpdateSet).Methods("PUT", "OPTIONS").Name("update-set")
	r.HandleFunc("/session/exercises/{idx:[0-9]+}/sets/{set:[0-9]+}/weight-confirmation", h.HandleConfirmWeight).Methods("POST", "OPTIONS").Name("confirm-weight")
	r.HandleFunc("/session/exercises/{idx:[0-9]+}/sets", h.HandleAddSet).Methods("POST", "OPTIONS").Name("add-set")
	r.HandleFunc("/session/exercises/{idx:[0-9]+}/sets", h.HandleRemoveSet).Methods("DELETE").Name("remove-set")
	r.HandleFunc("/session/groups/{group}/complete", h.HandleCompleteGroup).Methods("POST", "OPTIONS").Name("complete-group")
	r.HandleFunc("/session/complete", h.HandleCompleteDay).Methods("POST", "OPTIONS").Name("complete-day")
}

func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "sessionHandler.start")
	defer span.End()

	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	s, err := h.manager.Start(ctx, userID)
	if err != nil {
		writeError(w, err, "start training session")
		return
	}

	pkg.WriteJSON(w, s.Snapshot(), http.StatusAccepted)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	pkg.WriteJSON(w, s.Snapshot(), http.StatusOK)
}

func (h *Handler) HandleAbandon(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := h.manager.Abandon(userID); err != nil {
		writeError(w, err, "abandon training session")
		return
	}

	log.Debugf("user %d abandoned the training session", userID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleAnswerPrompt(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	promptID, err := uuid.Parse(mux.Vars(r)["promptId"])
	if err != nil {
		http.Error(w, "error, invalid prompt id", http.StatusBadRequest)
		return
	}

	var req AnswerPromptRequest
	if !decode(w, r, &req) {
		return
	}
	if !req.Soreness.IsValid() {
		http.Error(w, "error, soreness must be one of: none, medium, very_sore, extremely_sore", http.StatusBadRequest)
		return
	}

	if err := s.Broker().Answer(promptID, req.Soreness); errors.Is(err, feedback.ErrNoPendingPrompt) {
		http.Error(w, "prompt not pending anymore", http.StatusNotFound)
		return
	} else if err != nil {
		writeError(w, err, "answer prompt")
		return
	}

	pkg.WriteJSON(w, s.Snapshot(), http.StatusOK)
}

func (h *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	idx, set, ok := exerciseAndSet(w, r)
	if !ok {
		return
	}

	var req UpdateSetRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Reps == nil && req.Weight == nil && req.Intensity == nil {
		http.Error(w, "error, nothing to update", http.StatusBadRequest)
		return
	}

	resp := UpdateSetResponse{}
	if req.Reps != nil {
		if err := s.SetReps(idx, set, *req.Reps); err != nil {
			writeError(w, err, "update set")
			return
		}
	}
	if req.Intensity != nil {
		if err := s.SetIntensity(idx, set, *req.Intensity); err != nil {
			writeError(w, err, "update set")
			return
		}
	}
	if req.Weight != nil {
		wc, err := s.SetWeight(idx, set, *req.Weight)
		if err != nil {
			writeError(w, err, "update set")
			return
		}
		resp.Confirmation = wc
	}

	resp.Entry = s.Snapshot().Entries[idx]
	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) HandleConfirmWeight(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	idx, set, ok := exerciseAndSet(w, r)
	if !ok {
		return
	}

	var req ConfirmWeightRequest
	if !decode(w, r, &req) {
		return
	}

	if err := s.ConfirmWeight(idx, set, req.Accept); err != nil {
		writeError(w, err, "confirm weight")
		return
	}

	pkg.WriteJSON(w, s.Snapshot().Entries[idx], http.StatusOK)
}

func (h *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	idx, ok := exercise(w, r)
	if !ok {
		return
	}

	if err := s.AddSet(idx); err != nil {
		writeError(w, err, "add set")
		return
	}

	pkg.WriteJSON(w, s.Snapshot().Entries[idx], http.StatusOK)
}

func (h *Handler) HandleRemoveSet(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	idx, ok := exercise(w, r)
	if !ok {
		return
	}

	removed, err := s.RemoveSet(idx)
	if err != nil {
		writeError(w, err, "remove set")
		return
	}

	pkg.WriteJSON(w, RemoveSetResponse{
		Entry:   s.Snapshot().Entries[idx],
		Removed: removed,
	}, http.StatusOK)
}

func (h *Handler) HandleCompleteGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "sessionHandler.completeGroup")
	defer span.End()

	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req CompleteGroupRequest
	if !decode(w, r, &req) {
		return
	}
	if !req.PumpLevel.IsValid() {
		http.Error(w, "error, pump level must be one of: none, medium, amazing", http.StatusBadRequest)
		return
	}

	group := mux.Vars(r)["group"]
	if err := h.manager.CompleteGroup(ctx, userID, group, req.PumpLevel); err != nil {
		writeError(w, err, "complete muscle group")
		return
	}

	s, err := h.manager.Get(userID)
	if err != nil {
		writeError(w, err, "complete muscle group")
		return
	}
	pkg.WriteJSON(w, s.Snapshot(), http.StatusOK)
}

func (h *Handler) HandleCompleteDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "sessionHandler.completeDay")
	defer span.End()

	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	advance, err := h.manager.CompleteDay(ctx, userID)
	if err != nil {
		writeError(w, err, "complete day")
		return
	}

	pkg.WriteJSON(w, advance, http.StatusOK)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return nil, false
	}
	s, err := h.manager.Get(userID)
	if err != nil {
		writeError(w, err, "get training session")
		return nil, false
	}
	return s, true
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func exercise(w http.ResponseWriter, r *http.Request) (int, bool) {
	idx, err := strconv.Atoi(mux.Vars(r)["idx"])
	if err != nil {
		http.Error(w, "error, exercise index NaN", http.StatusBadRequest)
		return 0, false
	}
	return idx, true
}

func exerciseAndSet(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	idx, ok := exercise(w, r)
	if !ok {
		return 0, 0, false
	}
	set, err := strconv.Atoi(mux.Vars(r)["set"])
	if err != nil {
		http.Error(w, "error, set index NaN", http.StatusBadRequest)
		return 0, 0, false
	}
	return idx, set, true
}

// writeError maps session errors to short messages; unexpected ones are logged
// and reported as retryable.
func writeError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, "no training session, start one first", http.StatusNotFound)
	case errors.Is(err, cycle.ErrNoActiveCycle):
		http.Error(w, "no active cycle, start one first", http.StatusNotFound)
	case errors.Is(err, ErrExerciseNotFound),
		errors.Is(err, ErrGroupNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrSessionActive),
		errors.Is(err, ErrSessionNotReady),
		errors.Is(err, ErrAlreadySubmitting),
		errors.Is(err, ErrDayAlreadyCompleted),
		errors.Is(err, ErrGroupAlreadyComplete),
		errors.Is(err, ErrGroupCompleting):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrGroupNotComplete),
		errors.Is(err, ErrDayNotComplete),
		errors.Is(err, ErrIntensityLocked),
		errors.Is(err, ErrNoPendingWeightCheck),
		errors.Is(err, ErrInvalidSetValue),
		errors.Is(err, ErrInvalidPumpLevel),
		errors.Is(err, progression.ErrSetOutOfRange):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("failed to %s: %s", action, err)
		http.Error(w, "failed to "+action+", try again", http.StatusInternalServerError)
	}
}
