package workouts_test

import (
	"context"
	"testing"
	"time"

	"github.com/mdjurovic/kratos/internal/keeper"
	"github.com/mdjurovic/kratos/internal/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func storeWithDates(t *testing.T, dates ...string) *workouts.Store {
	t.Helper()
	ctx := context.Background()
	store := workouts.NewStore(ctx, keeper.NewTestKeeper())
	for i, d := range dates {
		l := testLog("", d)
		l.ID = d + "-" + string(rune('a'+i))
		require.NoError(t, store.Add(ctx, l))
	}
	return store
}

func TestAnalyzer_WeekRange(t *testing.T) {
	testCases := []struct {
		name       string
		now        time.Time
		wantMonday string
		wantSunday string
	}{
		{
			name:       "midweek wednesday",
			now:        time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC),
			wantMonday: "2025-06-09",
			wantSunday: "2025-06-15",
		},
		{
			name:       "monday is its own week start",
			now:        time.Date(2025, 6, 9, 0, 5, 0, 0, time.UTC),
			wantMonday: "2025-06-09",
			wantSunday: "2025-06-15",
		},
		{
			name:       "sunday belongs to the week that started six days back",
			now:        time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
			wantMonday: "2025-06-09",
			wantSunday: "2025-06-15",
		},
		{
			name:       "week spanning a month boundary",
			now:        time.Date(2025, 7, 2, 8, 0, 0, 0, time.UTC),
			wantMonday: "2025-06-30",
			wantSunday: "2025-07-06",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := workouts.NewAnalyzerWithClock(storeWithDates(t), fixedClock(tc.now))
			monday, sunday := a.WeekRange()
			assert.Equal(t, tc.wantMonday, monday.Format(workouts.DateLayout))
			assert.Equal(t, tc.wantSunday, sunday.Format(workouts.DateLayout))
			assert.Equal(t, 23, sunday.Hour(), "sunday bound covers the whole day")
		})
	}
}

func TestAnalyzer_ThisWeekLogs(t *testing.T) {
	ctx := context.Background()
	// now is Wednesday 2025-06-11; the week runs Mon 06-09 to Sun 06-15
	now := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)

	store := storeWithDates(t,
		"2025-06-08", // previous week's sunday, out
		"2025-06-09", // monday, in
		"2025-06-11", // today, in
		"2025-06-15", // this week's sunday, in
		"2025-06-16", // next monday, out
	)
	a := workouts.NewAnalyzerWithClock(store, fixedClock(now))

	logs := a.ThisWeekLogs(ctx)
	require.Len(t, logs, 3)
	for _, l := range logs {
		assert.GreaterOrEqual(t, l.Date, "2025-06-09")
		assert.LessOrEqual(t, l.Date, "2025-06-15")
	}

	assert.Equal(t, 3, a.Stats(ctx).WorkoutsThisWeek)
}

func TestAnalyzer_ThisWeekLogs_Empty(t *testing.T) {
	a := workouts.NewAnalyzerWithClock(
		storeWithDates(t),
		fixedClock(time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)),
	)
	assert.Empty(t, a.ThisWeekLogs(context.Background()))
}

func TestAnalyzer_Streak(t *testing.T) {
	now := time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC) // today: 2025-06-10

	testCases := []struct {
		name  string
		dates []string
		want  int
	}{
		{
			name:  "no logs",
			dates: nil,
			want:  0,
		},
		{
			name:  "three consecutive days ending today",
			dates: []string{"2025-06-08", "2025-06-09", "2025-06-10"},
			want:  3,
		},
		{
			name:  "run ending yesterday still counts",
			dates: []string{"2025-06-07", "2025-06-08", "2025-06-09"},
			want:  3,
		},
		{
			name:  "most recent log two days ago breaks the streak",
			dates: []string{"2025-06-06", "2025-06-07", "2025-06-08"},
			want:  0,
		},
		{
			name:  "single stale log",
			dates: []string{"2025-06-08"},
			want:  0,
		},
		{
			name:  "gap ends the count",
			dates: []string{"2025-06-05", "2025-06-06", "2025-06-09", "2025-06-10"},
			want:  2,
		},
		{
			name:  "two sessions on one day count once",
			dates: []string{"2025-06-09", "2025-06-10", "2025-06-10"},
			want:  2,
		},
		{
			name:  "only today",
			dates: []string{"2025-06-10"},
			want:  1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := storeWithDates(t, tc.dates...)
			a := workouts.NewAnalyzerWithClock(store, fixedClock(now))
			assert.Equal(t, tc.want, a.Streak(context.Background()))
		})
	}
}

func TestAnalyzer_TotalVolume(t *testing.T) {
	ctx := context.Background()
	store := workouts.NewStore(ctx, keeper.NewTestKeeper())

	lbsLog := testLog("w-lbs", "2025-06-09")
	lbsLog.Exercises[0].Sets = []workouts.Set{
		{Reps: 10, Weight: 100, Unit: workouts.UnitLbs},
	}
	require.NoError(t, store.Add(ctx, lbsLog))

	kgLog := testLog("w-kg", "2025-06-10")
	kgLog.Exercises[0].Sets = []workouts.Set{
		{Reps: 10, Weight: 45.36, Unit: workouts.UnitKg},
	}
	require.NoError(t, store.Add(ctx, kgLog))

	a := workouts.NewAnalyzerWithClock(
		store,
		fixedClock(time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)),
	)

	// 100kg-class set logged in kg ends up nearly identical to the same
	// load logged in lbs: 45.36kg x 2.205 ~ 100lbs
	total := a.TotalVolume(ctx)
	assert.InDelta(t, 2000, total, 1)
	assert.InDelta(t, total, a.Stats(ctx).TotalVolumeLbs, 0.0001)
}

func TestAnalyzer_Stats_Empty(t *testing.T) {
	a := workouts.NewAnalyzerWithClock(
		storeWithDates(t),
		fixedClock(time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)),
	)

	stats := a.Stats(context.Background())
	assert.Zero(t, stats.WorkoutsThisWeek)
	assert.Zero(t, stats.StreakDays)
	assert.Zero(t, stats.TotalVolumeLbs)
}
