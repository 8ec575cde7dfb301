package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/mdjurovic/kratos/internal/telemetry/tracing"
	"github.com/mdjurovic/kratos/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type ListResponse struct {
	Exercises []Exercise `json:"exercises"`
	Total     int        `json:"total"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/catalog", handler.HandleList).Methods("GET", "OPTIONS").Name("list-catalog")
	r.HandleFunc("/catalog/category/{category}", handler.HandleByCategory).Methods("GET", "OPTIONS").Name("catalog-by-category")
	r.HandleFunc("/catalog/exercise/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-catalog-exercise")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.list")
	defer span.End()

	handler.writeExercises(w, All())
}

func (handler *Handler) HandleByCategory(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.byCategory")
	defer span.End()

	category := DayType(mux.Vars(r)["category"])
	if !category.Valid() {
		http.Error(w, "error, invalid category", http.StatusBadRequest)
		return
	}

	handler.writeExercises(w, ByCategory(category))
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.get")
	defer span.End()

	exercise, ok := Find(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}

	exerciseJson, err := json.Marshal(exercise)
	if err != nil {
		log.Errorf("failed to marshal catalog exercise: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exerciseJson, http.StatusOK)
}

func (handler *Handler) writeExercises(w http.ResponseWriter, exercises []Exercise) {
	listJson, err := json.Marshal(ListResponse{
		Exercises: exercises,
		Total:     len(exercises),
	})
	if err != nil {
		log.Errorf("failed to marshal catalog exercises: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listJson, http.StatusOK)
}
