package plans

import (
	"encoding/json"
	"net/http"

	"github.com/mdjurovic/kratos/internal/telemetry/metrics"
	"github.com/mdjurovic/kratos/internal/telemetry/tracing"
	"github.com/mdjurovic/kratos/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type DeletePlanResponse struct {
	DeletedID string `json:"deletedId"`
}

type ListResponse struct {
	Plans []Plan `json:"plans"`
	Total int    `json:"total"`
}

type Handler struct {
	store   *Store
	metrics *metrics.Manager
}

func NewHandler(store *Store, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		store:   store,
		metrics: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/plans", handler.HandleList).Methods("GET", "OPTIONS").Name("list-plans")
	r.HandleFunc("/plans", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-plan")
	r.HandleFunc("/plans/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-plan")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var plan Plan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		log.Tracef("new plan, unmarshal json params: %s", err)
		http.Error(w, "add plan failed", http.StatusBadRequest)
		return
	}

	if plan.Name == "" {
		http.Error(w, "error, plan name empty", http.StatusBadRequest)
		return
	}
	if len(plan.Exercises) == 0 {
		http.Error(w, "error, plan must have at least one exercise", http.StatusBadRequest)
		return
	}
	if plan.Type != "" && !plan.Type.Valid() {
		http.Error(w, "error, invalid plan type", http.StatusBadRequest)
		return
	}
	for _, pe := range plan.Exercises {
		if pe.Sets < 1 {
			http.Error(w, "error, exercise must have at least one set", http.StatusBadRequest)
			return
		}
		if pe.TargetReps < 1 {
			http.Error(w, "error, exercise must target at least one rep", http.StatusBadRequest)
			return
		}
		if !RestSecondsValid(pe.RestSeconds) {
			http.Error(w, "error, invalid rest seconds", http.StatusBadRequest)
			return
		}
	}

	if plan.ID == "" {
		plan.ID = "custom-" + uuid.NewString()
	}
	if plan.EstimatedMinutes == 0 {
		plan.EstimatedMinutes = EstimateMinutes(plan.Exercises)
	}

	if err := handler.store.Add(ctx, plan); err != nil {
		log.Errorf("failed to add plan [%s]: %s", plan.Name, err)
		http.Error(w, "error, failed to add plan", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterPlansCreated.Inc()

	planJson, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("failed to marshal added plan: %s", err)
		http.Error(w, "error, failed to add plan", http.StatusInternalServerError)
		return
	}

	log.Debugf("new plan created: %s [%s]", plan.ID, plan.Name)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, planJson, http.StatusCreated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.delete")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.store.Delete(ctx, id); err != nil {
		log.Errorf("failed to delete plan %s: %s", id, err)
		http.Error(w, "error, failed to delete plan", http.StatusInternalServerError)
		return
	}

	deleteResponse, err := json.Marshal(DeletePlanResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete plan response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, deleteResponse, http.StatusOK)
}

// HandleList returns the stock plans followed by the user-authored ones.
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.list")
	defer span.End()

	plans := append(BuiltinPlans(), handler.store.List(ctx)...)

	listJson, err := json.Marshal(ListResponse{
		Plans: plans,
		Total: len(plans),
	})
	if err != nil {
		log.Errorf("failed to marshal plans: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listJson, http.StatusOK)
}
