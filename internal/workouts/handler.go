package workouts

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mdjurovic/kratos/internal/telemetry/metrics"
	"github.com/mdjurovic/kratos/internal/telemetry/tracing"
	"github.com/mdjurovic/kratos/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type DeleteLogResponse struct {
	DeletedID string `json:"deletedId"`
}

type UpdateLogResponse struct {
	UpdatedID string `json:"updatedId"`
}

type ListResponse struct {
	Logs  []Log `json:"logs"`
	Total int   `json:"total"`
}

type LoggedDatesResponse struct {
	Dates []string `json:"dates"`
}

type Handler struct {
	store    *Store
	analyzer *Analyzer
	metrics  *metrics.Manager
}

func NewHandler(store *Store, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		store:    store,
		analyzer: NewAnalyzer(store),
		metrics:  metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/workouts", handler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/workouts", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout")
	r.HandleFunc("/workouts/stats", handler.HandleStats).Methods("GET", "OPTIONS").Name("workout-stats")
	r.HandleFunc("/workouts/dates", handler.HandleLoggedDates).Methods("GET", "OPTIONS").Name("workout-dates")
	r.HandleFunc("/workouts/date/{date}", handler.HandleLogsForDate).Methods("GET", "OPTIONS").Name("workouts-for-date")
	r.HandleFunc("/workouts/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
}

// HandleAdd saves a complete workout session. The authoring client
// builds the session up locally and hands it over in one piece; a
// missing id means "create" and gets one assigned here, a present id
// is kept as-is (that is how editing preserves identity).
func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var workoutLog Log
	if err := json.NewDecoder(r.Body).Decode(&workoutLog); err != nil {
		log.Tracef("new workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	if len(workoutLog.Exercises) == 0 {
		http.Error(w, "error, workout must have at least one exercise", http.StatusBadRequest)
		return
	}
	if workoutLog.Type != "" && !workoutLog.Type.Valid() {
		http.Error(w, "error, invalid workout type", http.StatusBadRequest)
		return
	}

	if workoutLog.ID == "" {
		workoutLog.ID = uuid.NewString()
	}
	if workoutLog.Date == "" {
		workoutLog.Date = time.Now().Format(DateLayout)
	} else if _, err := time.Parse(DateLayout, workoutLog.Date); err != nil {
		http.Error(w, "error, invalid date, want YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	if err := handler.store.Add(ctx, workoutLog); err != nil {
		log.Errorf("failed to add workout [%s] [%s]: %s", workoutLog.Date, workoutLog.Type, err)
		http.Error(w, "error, failed to add workout", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWorkoutsLogged.Inc()

	logJson, err := json.Marshal(workoutLog)
	if err != nil {
		log.Errorf("failed to marshal added workout: %s", err)
		http.Error(w, "error, failed to add workout", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout logged: %s [%s]", workoutLog.ID, workoutLog.Date)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, logJson, http.StatusCreated)
}

// HandleUpdate replaces the stored session with the same id. An unknown
// id leaves the collection unchanged (no insert).
func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var workoutLog Log
	if err := json.NewDecoder(r.Body).Decode(&workoutLog); err != nil {
		log.Tracef("update workout, unmarshal json params: %s", err)
		http.Error(w, "update workout failed", http.StatusBadRequest)
		return
	}

	if workoutLog.ID == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	if len(workoutLog.Exercises) == 0 {
		http.Error(w, "error, workout must have at least one exercise", http.StatusBadRequest)
		return
	}

	if err := handler.store.Update(ctx, workoutLog); err != nil {
		log.Errorf("failed to update workout [%s]: %s", workoutLog.ID, err)
		http.Error(w, "error, failed to update workout", http.StatusInternalServerError)
		return
	}

	updateResponse, err := json.Marshal(UpdateLogResponse{UpdatedID: workoutLog.ID})
	if err != nil {
		log.Errorf("failed to marshal update workout response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, updateResponse, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.store.Delete(ctx, id); err != nil {
		log.Errorf("failed to delete workout %s: %s", id, err)
		http.Error(w, "error, failed to delete workout", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWorkoutsDeleted.Inc()

	deleteResponse, err := json.Marshal(DeleteLogResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete workout response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, deleteResponse, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	logs := handler.store.ListSorted(ctx)
	handler.writeListResponse(w, logs)
}

func (handler *Handler) HandleLogsForDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.logsForDate")
	defer span.End()

	vars := mux.Vars(r)
	date := vars["date"]
	if _, err := time.Parse(DateLayout, date); err != nil {
		http.Error(w, "error, invalid date, want YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	logs := handler.store.LogsForDate(ctx, date)
	handler.writeListResponse(w, logs)
}

func (handler *Handler) HandleLoggedDates(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.loggedDates")
	defer span.End()

	dates := handler.store.LoggedDates(ctx)
	datesJson, err := json.Marshal(LoggedDatesResponse{Dates: dates})
	if err != nil {
		log.Errorf("failed to marshal logged dates: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, datesJson, http.StatusOK)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.stats")
	defer span.End()

	statsJson, err := json.Marshal(handler.analyzer.Stats(ctx))
	if err != nil {
		log.Errorf("failed to marshal workout stats: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statsJson, http.StatusOK)
}

func (handler *Handler) writeListResponse(w http.ResponseWriter, logs []Log) {
	if logs == nil {
		logs = []Log{}
	}
	listJson, err := json.Marshal(ListResponse{
		Logs:  logs,
		Total: len(logs),
	})
	if err != nil {
		log.Errorf("failed to marshal workout logs: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listJson, http.StatusOK)
}
