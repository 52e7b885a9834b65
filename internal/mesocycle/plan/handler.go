package plan

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/mesocycle/internal/telemetry/tracing"
	"github.com/2beens/mesocycle/pkg"
)

const maxPlanBodyBytes = 1 << 20

type AddPlanResponse struct {
	Plan     *Plan    `json:"plan"`
	Warnings []string `json:"warnings,omitempty"`
}

type Handler struct {
	repo planStore
}

func NewHandler(repo planStore) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/plans", handler.HandleList).Methods("GET", "OPTIONS").Name("list-plans")
	r.HandleFunc("/plans", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-plan")
	r.HandleFunc("/plans/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-plan")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.add")
	defer span.End()

	body := io.LimitReader(r.Body, maxPlanBodyBytes)

	var (
		p        *Plan
		warnings []error
		err      error
	)
	contentType := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(contentType, "application/json"):
		p, warnings, err = DecodeJSON(body)
	case strings.HasPrefix(contentType, "application/yaml"),
		strings.HasPrefix(contentType, "application/x-yaml"),
		strings.HasPrefix(contentType, "text/yaml"):
		p, warnings, err = DecodeYAML(body)
	default:
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Debugf("new plan, decode: %s", err)
		http.Error(w, "error, invalid plan: "+err.Error(), http.StatusBadRequest)
		return
	}

	resp := AddPlanResponse{}
	for _, warning := range warnings {
		log.Warnf("new plan [%s]: skipping malformed entry: %s", p.Name, warning)
		resp.Warnings = append(resp.Warnings, warning.Error())
	}

	resp.Plan, err = handler.repo.Add(ctx, p)
	if err != nil {
		log.Errorf("failed to add new plan [%s]: %s", p.Name, err)
		http.Error(w, "error, failed to add new plan", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal new plan: %s", err)
		http.Error(w, "error, failed to add new plan", http.StatusInternalServerError)
		return
	}

	log.Debugf("new plan added: %d [%s]", resp.Plan.ID, resp.Plan.Name)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.get")
	defer span.End()

	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	p, err := handler.repo.Get(ctx, id)
	if errors.Is(err, ErrPlanNotFound) {
		http.Error(w, "plan not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("failed to get plan %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	planJson, err := json.Marshal(p)
	if err != nil {
		log.Errorf("failed to marshal plan: %s", err)
		http.Error(w, "failed to marshal plan", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, planJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.list")
	defer span.End()

	plans, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("failed to list plans: %s", err)
		http.Error(w, "failed to get plans", http.StatusInternalServerError)
		return
	}

	plansJson, err := json.Marshal(plans)
	if err != nil {
		log.Errorf("failed to marshal plans: %s", err)
		http.Error(w, "failed to marshal plans", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, plansJson, http.StatusOK)
}
