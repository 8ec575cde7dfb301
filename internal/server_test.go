package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mdjurovic/kratos/internal/config"
	"github.com/mdjurovic/kratos/internal/plans"
	"github.com/mdjurovic/kratos/internal/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{
		Host:                 "localhost",
		Port:                 8080,
		Environment:          "development",
		StorageBackend:       config.StorageBackendFile,
		DataDirPath:          t.TempDir(),
		WorkoutLogsNamespace: "test_workout_log",
		PlansNamespace:       "test_custom_plans",
	}
	require.NoError(t, cfg.Validate())

	server, err := NewServer(context.Background(), NewServerParams{
		Config:      cfg,
		VersionInfo: "test-version",
	})
	require.NoError(t, err)
	return server
}

func TestServer_Router(t *testing.T) {
	server := newTestServer(t)
	router := server.routerSetup()

	do := func(req *http.Request) *httptest.ResponseRecorder {
		req.Header.Set("Origin", "test")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	t.Run("version", func(t *testing.T) {
		rr := do(httptest.NewRequest("GET", "/version", nil))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "test-version", rr.Body.String())
	})

	t.Run("unknown path", func(t *testing.T) {
		rr := do(httptest.NewRequest("GET", "/nonexistent", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("workout roundtrip", func(t *testing.T) {
		workoutJson, err := json.Marshal(workouts.Log{
			Date: "2025-06-09",
			Type: "Push",
			Exercises: []workouts.LoggedExercise{
				{
					ExerciseID:   "bench-press",
					ExerciseName: "Barbell Bench Press",
					Sets:         []workouts.Set{{Reps: 8, Weight: 135, Unit: workouts.UnitLbs}},
				},
			},
		})
		require.NoError(t, err)

		req := httptest.NewRequest("POST", "/workouts", bytes.NewReader(workoutJson))
		req.Header.Set("Content-Type", "application/json")
		require.Equal(t, http.StatusCreated, do(req).Code)

		rr := do(httptest.NewRequest("GET", "/workouts", nil))
		require.Equal(t, http.StatusOK, rr.Code)
		var list workouts.ListResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
		assert.Equal(t, 1, list.Total)

		rr = do(httptest.NewRequest("GET", "/workouts/stats", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("plans include builtins", func(t *testing.T) {
		rr := do(httptest.NewRequest("GET", "/plans", nil))
		require.Equal(t, http.StatusOK, rr.Code)
		var list plans.ListResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
		assert.Equal(t, 3, list.Total)
	})

	t.Run("catalog", func(t *testing.T) {
		rr := do(httptest.NewRequest("GET", "/catalog", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestServer_FilePersistenceAcrossRestarts(t *testing.T) {
	dataDir := t.TempDir()
	cfg := &config.Config{
		Environment:          "development",
		StorageBackend:       config.StorageBackendFile,
		DataDirPath:          dataDir,
		WorkoutLogsNamespace: "test_workout_log",
		PlansNamespace:       "test_custom_plans",
	}

	ctx := context.Background()
	server, err := NewServer(ctx, NewServerParams{Config: cfg})
	require.NoError(t, err)

	require.NoError(t, server.workoutStore.Add(ctx, workouts.Log{
		ID:   "w1",
		Date: "2025-06-09",
		Type: "Push",
		Exercises: []workouts.LoggedExercise{
			{ExerciseID: "bench-press", Sets: []workouts.Set{{Reps: 5, Weight: 100, Unit: workouts.UnitLbs}}},
		},
	}))

	// a second server over the same data dir sees the same logs
	restarted, err := NewServer(ctx, NewServerParams{Config: cfg})
	require.NoError(t, err)
	logs := restarted.workoutStore.ListSorted(ctx)
	require.Len(t, logs, 1)
	assert.Equal(t, "w1", logs[0].ID)
}
