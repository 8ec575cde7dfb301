package workouts

import (
	"context"
	"sort"
	"time"

	"github.com/mdjurovic/kratos/internal/telemetry/tracing"
)

type logSource interface {
	ListSorted(ctx context.Context) []Log
}

// Analyzer derives rollup stats from the current log collection. All
// results are pure functions of the collection, recomputed on every
// read - no caching, no incremental maintenance.
type Analyzer struct {
	logs logSource
	now  func() time.Time
}

func NewAnalyzer(logs logSource) *Analyzer {
	return NewAnalyzerWithClock(logs, time.Now)
}

func NewAnalyzerWithClock(logs logSource, now func() time.Time) *Analyzer {
	return &Analyzer{
		logs: logs,
		now:  now,
	}
}

type Stats struct {
	WorkoutsThisWeek int     `json:"workoutsThisWeek"`
	StreakDays       int     `json:"streakDays"`
	TotalVolumeLbs   float64 `json:"totalVolumeLbs"`
}

func (a *Analyzer) Stats(ctx context.Context) Stats {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.stats")
	defer span.End()

	return Stats{
		WorkoutsThisWeek: len(a.ThisWeekLogs(ctx)),
		StreakDays:       a.Streak(ctx),
		TotalVolumeLbs:   a.TotalVolume(ctx),
	}
}

// WeekRange returns the current calendar week: Monday 00:00:00 to
// Sunday 23:59:59, both UTC calendar days.
func (a *Analyzer) WeekRange() (monday, sunday time.Time) {
	now := a.now()
	shift := int(now.Weekday()) - 1
	if now.Weekday() == time.Sunday {
		shift = 6
	}
	year, month, day := now.Date()
	monday = time.Date(year, month, day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -shift)
	sunday = monday.AddDate(0, 0, 6).Add(24*time.Hour - time.Second)
	return monday, sunday
}

// ThisWeekLogs returns all logs whose date falls within the current
// Monday-Sunday week, bounds inclusive.
func (a *Analyzer) ThisWeekLogs(ctx context.Context) []Log {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.thisWeekLogs")
	defer span.End()

	monday, sunday := a.WeekRange()

	var out []Log
	for _, l := range a.logs.ListSorted(ctx) {
		day, err := l.Day()
		if err != nil {
			continue
		}
		if !day.Before(monday) && !day.After(sunday) {
			out = append(out, l)
		}
	}
	if out == nil {
		out = make([]Log, 0)
	}
	return out
}

// Streak counts the current run of consecutive calendar days with at
// least one logged session. If the most recent logged day is neither
// today nor yesterday the streak is 0 - a missed day breaks it
// immediately, regardless of history. Otherwise the run is walked from
// the most recent day backwards and stops at the first gap larger than
// one day; this is the length of the current run, not the longest ever.
func (a *Analyzer) Streak(ctx context.Context) int {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.streak")
	defer span.End()

	logs := a.logs.ListSorted(ctx)
	if len(logs) == 0 {
		return 0
	}

	seen := make(map[string]bool)
	var dates []string
	for _, l := range logs {
		if !seen[l.Date] {
			seen[l.Date] = true
			dates = append(dates, l.Date)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	today := a.now().Format(DateLayout)
	yesterday := a.now().AddDate(0, 0, -1).Format(DateLayout)
	if dates[0] != today && dates[0] != yesterday {
		return 0
	}

	streak := 1
	for i := 1; i < len(dates); i++ {
		prev, errPrev := time.Parse(DateLayout, dates[i-1])
		curr, errCurr := time.Parse(DateLayout, dates[i])
		if errPrev != nil || errCurr != nil {
			break
		}
		if !prev.AddDate(0, 0, -1).Equal(curr) {
			break
		}
		streak++
	}
	return streak
}

// TotalVolume sums weight x reps across every set in every log, with kg
// weights converted to lbs first. The result is always in lbs; no
// kg-denominated rollup is offered.
func (a *Analyzer) TotalVolume(ctx context.Context) float64 {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.totalVolume")
	defer span.End()

	var total float64
	for _, l := range a.logs.ListSorted(ctx) {
		total += l.Volume()
	}
	return total
}
