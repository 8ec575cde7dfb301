package workouts

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/mdjurovic/kratos/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=store_mocks_test.go -package=workouts_test

type snapshotKeeper interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, snapshot []byte) error
}

// Store owns the collection of completed workout sessions. The whole
// collection is loaded from the keeper once at construction and written
// back through it after every mutation.
//
// Reference-not-found on delete/update is a silent no-op, not an error:
// the caller cannot distinguish "already gone" from "never existed" and
// neither matters. Business validation (e.g. a session must have at
// least one exercise) belongs to the caller, not here.
type Store struct {
	keeper snapshotKeeper

	mu   sync.Mutex
	logs []Log
}

func NewStore(ctx context.Context, keeper snapshotKeeper) *Store {
	return &Store{
		keeper: keeper,
		logs:   loadLogs(ctx, keeper),
	}
}

// loadLogs never fails: absent or corrupt stored data yields an empty
// collection instead of an error.
func loadLogs(ctx context.Context, keeper snapshotKeeper) []Log {
	snapshot, err := keeper.Load(ctx)
	if err != nil {
		log.Errorf("load workout logs, starting with empty collection: %s", err)
		return nil
	}
	if len(snapshot) == 0 {
		return nil
	}

	var logs []Log
	if err := json.Unmarshal(snapshot, &logs); err != nil {
		log.Errorf("corrupt workout logs snapshot, starting with empty collection: %s", err)
		return nil
	}
	return logs
}

// Add inserts the log at the head of the collection (newest first).
func (s *Store) Add(ctx context.Context, l Log) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("log.id", l.ID))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs = append([]Log{l}, s.logs...)
	return s.persistLocked(ctx)
}

// Delete removes the log with the given id. Absent id is a no-op.
func (s *Store) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("log.id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.logs[:0]
	for _, l := range s.logs {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	s.logs = kept
	return s.persistLocked(ctx)
}

// Update replaces the log whose id matches. An unknown id is a silent
// no-op - it does NOT insert. The id of an updated entry never changes.
func (s *Store) Update(ctx context.Context, l Log) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("log.id", l.ID))

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.logs {
		if s.logs[i].ID == l.ID {
			s.logs[i] = l
			break
		}
	}
	return s.persistLocked(ctx)
}

// ListSorted returns all logs ordered by date descending, computed fresh
// on every call. Entries with equal dates keep their relative order.
func (s *Store) ListSorted(ctx context.Context) []Log {
	_, span := tracing.GlobalTracer.Start(ctx, "store.workouts.listSorted")
	defer span.End()

	logs := s.snapshot()
	// ISO dates sort chronologically as plain strings
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Date > logs[j].Date
	})
	return logs
}

// LogsForDate returns all logs with the exact calendar date (YYYY-MM-DD).
func (s *Store) LogsForDate(ctx context.Context, date string) []Log {
	_, span := tracing.GlobalTracer.Start(ctx, "store.workouts.logsForDate")
	defer span.End()
	span.SetAttributes(attribute.String("date", date))

	var out []Log
	for _, l := range s.snapshot() {
		if l.Date == date {
			out = append(out, l)
		}
	}
	if out == nil {
		out = make([]Log, 0)
	}
	return out
}

// LoggedDates returns the distinct calendar dates with at least one log,
// sorted ascending.
func (s *Store) LoggedDates(ctx context.Context) []string {
	_, span := tracing.GlobalTracer.Start(ctx, "store.workouts.loggedDates")
	defer span.End()

	seen := make(map[string]bool)
	var dates []string
	for _, l := range s.snapshot() {
		if !seen[l.Date] {
			seen[l.Date] = true
			dates = append(dates, l.Date)
		}
	}
	sort.Strings(dates)
	if dates == nil {
		dates = make([]string, 0)
	}
	return dates
}

func (s *Store) snapshot() []Log {
	s.mu.Lock()
	defer s.mu.Unlock()
	logs := make([]Log, len(s.logs))
	copy(logs, s.logs)
	return logs
}

// persistLocked writes the whole post-mutation collection through the
// keeper. Callers must hold s.mu.
func (s *Store) persistLocked(ctx context.Context) error {
	logs := s.logs
	if logs == nil {
		logs = make([]Log, 0)
	}
	snapshot, err := json.Marshal(logs)
	if err != nil {
		return fmt.Errorf("marshal workout logs: %w", err)
	}
	if err := s.keeper.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("save workout logs: %w", err)
	}
	return nil
}
