package plans_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mdjurovic/kratos/internal/catalog"
	"github.com/mdjurovic/kratos/internal/keeper"
	"github.com/mdjurovic/kratos/internal/plans"
	"github.com/mdjurovic/kratos/internal/telemetry/metrics"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerTestSetup struct {
	router *mux.Router
	store  *plans.Store
	keeper *keeper.TestKeeper
}

func newHandlerTestSetup(t *testing.T) *handlerTestSetup {
	t.Helper()
	k := keeper.NewTestKeeper()
	store := plans.NewStore(context.Background(), k)
	handler := plans.NewHandler(store, metrics.NewTestManager())

	router := mux.NewRouter()
	handler.SetupRoutes(router)

	return &handlerTestSetup{
		router: router,
		store:  store,
		keeper: k,
	}
}

func (s *handlerTestSetup) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func postJSON(path string, payload any) *http.Request {
	b, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func randomPlan() plans.Plan {
	ex, _ := catalog.Find("db-shoulder-press")
	return plans.Plan{
		Name:         gofakeit.Sentence(3),
		Type:         catalog.Push,
		ScheduledDay: "Tuesday",
		Exercises: []plans.PlanExercise{
			{Exercise: ex, Sets: 3, TargetReps: 10, RestSeconds: 90},
		},
	}
}

func TestHandler_Add(t *testing.T) {
	setup := newHandlerTestSetup(t)

	rr := setup.do(postJSON("/plans", randomPlan()))
	require.Equal(t, http.StatusCreated, rr.Code)

	var added plans.Plan
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &added))
	assert.Contains(t, added.ID, "custom-", "handler assigns a custom id")
	// 3 sets x (45s + 90s) = 405s ~ 7min, +5 warmup
	assert.Equal(t, 12, added.EstimatedMinutes, "estimate filled in at creation")

	stored := setup.store.List(context.Background())
	require.Len(t, stored, 1)
	assert.Equal(t, added.ID, stored[0].ID)
}

func TestHandler_Add_KeepsClientEstimate(t *testing.T) {
	setup := newHandlerTestSetup(t)

	p := randomPlan()
	p.EstimatedMinutes = 42
	rr := setup.do(postJSON("/plans", p))
	require.Equal(t, http.StatusCreated, rr.Code)

	var added plans.Plan
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &added))
	assert.Equal(t, 42, added.EstimatedMinutes)
}

func TestHandler_Add_Validation(t *testing.T) {
	setup := newHandlerTestSetup(t)

	t.Run("empty name", func(t *testing.T) {
		p := randomPlan()
		p.Name = ""
		assert.Equal(t, http.StatusBadRequest, setup.do(postJSON("/plans", p)).Code)
	})

	t.Run("no exercises", func(t *testing.T) {
		p := randomPlan()
		p.Exercises = nil
		assert.Equal(t, http.StatusBadRequest, setup.do(postJSON("/plans", p)).Code)
	})

	t.Run("bad plan type", func(t *testing.T) {
		p := randomPlan()
		p.Type = "mobility"
		assert.Equal(t, http.StatusBadRequest, setup.do(postJSON("/plans", p)).Code)
	})

	t.Run("zero sets", func(t *testing.T) {
		p := randomPlan()
		p.Exercises[0].Sets = 0
		assert.Equal(t, http.StatusBadRequest, setup.do(postJSON("/plans", p)).Code)
	})

	t.Run("zero target reps", func(t *testing.T) {
		p := randomPlan()
		p.Exercises[0].TargetReps = 0
		assert.Equal(t, http.StatusBadRequest, setup.do(postJSON("/plans", p)).Code)
	})

	t.Run("off-menu rest seconds", func(t *testing.T) {
		p := randomPlan()
		p.Exercises[0].RestSeconds = 75
		assert.Equal(t, http.StatusBadRequest, setup.do(postJSON("/plans", p)).Code)
	})

	t.Run("wrong content type", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/plans", bytes.NewReader([]byte("{}")))
		assert.Equal(t, http.StatusBadRequest, setup.do(req).Code)
	})
}

func TestHandler_List(t *testing.T) {
	setup := newHandlerTestSetup(t)

	rr := setup.do(httptest.NewRequest("GET", "/plans", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var list plans.ListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Equal(t, 3, list.Total, "stock plans are always served")

	require.Equal(t, http.StatusCreated, setup.do(postJSON("/plans", randomPlan())).Code)

	rr = setup.do(httptest.NewRequest("GET", "/plans", nil))
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Equal(t, 4, list.Total)
	assert.Equal(t, "beginner-push", list.Plans[0].ID, "stock plans come first")
	assert.Contains(t, list.Plans[3].ID, "custom-")
}

func TestHandler_Delete(t *testing.T) {
	setup := newHandlerTestSetup(t)

	rr := setup.do(postJSON("/plans", randomPlan()))
	require.Equal(t, http.StatusCreated, rr.Code)
	var added plans.Plan
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &added))

	rr = setup.do(httptest.NewRequest("DELETE", "/plans/"+added.ID, nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var deleted plans.DeletePlanResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &deleted))
	assert.Equal(t, added.ID, deleted.DeletedID)
	assert.Empty(t, setup.store.List(context.Background()))

	// deleting again stays a 200, absent id is a no-op
	rr = setup.do(httptest.NewRequest("DELETE", "/plans/"+added.ID, nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
