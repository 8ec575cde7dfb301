package plans

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mdjurovic/kratos/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type snapshotKeeper interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, snapshot []byte) error
}

// Store owns the user-authored plans. Same persistence shape as the
// workout log store: whole collection loaded once at construction,
// written back through the keeper after every mutation. Plans are only
// added and deleted, never edited in place.
type Store struct {
	keeper snapshotKeeper

	mu    sync.Mutex
	plans []Plan
}

func NewStore(ctx context.Context, keeper snapshotKeeper) *Store {
	return &Store{
		keeper: keeper,
		plans:  loadPlans(ctx, keeper),
	}
}

func loadPlans(ctx context.Context, keeper snapshotKeeper) []Plan {
	snapshot, err := keeper.Load(ctx)
	if err != nil {
		log.Errorf("load plans, starting with empty collection: %s", err)
		return nil
	}
	if len(snapshot) == 0 {
		return nil
	}

	var plans []Plan
	if err := json.Unmarshal(snapshot, &plans); err != nil {
		log.Errorf("corrupt plans snapshot, starting with empty collection: %s", err)
		return nil
	}
	return plans
}

// Add inserts the plan at the head of the collection (newest first).
func (s *Store) Add(ctx context.Context, p Plan) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.plans.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.id", p.ID))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.plans = append([]Plan{p}, s.plans...)
	return s.persistLocked(ctx)
}

// Delete removes the plan with the given id. Absent id is a no-op.
func (s *Store) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.plans.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.plans[:0]
	for _, p := range s.plans {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.plans = kept
	return s.persistLocked(ctx)
}

// List returns the stored plans in insertion order, newest first.
func (s *Store) List(ctx context.Context) []Plan {
	_, span := tracing.GlobalTracer.Start(ctx, "store.plans.list")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	plans := make([]Plan, len(s.plans))
	copy(plans, s.plans)
	return plans
}

func (s *Store) persistLocked(ctx context.Context) error {
	plans := s.plans
	if plans == nil {
		plans = make([]Plan, 0)
	}
	snapshot, err := json.Marshal(plans)
	if err != nil {
		return fmt.Errorf("marshal plans: %w", err)
	}
	if err := s.keeper.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("save plans: %w", err)
	}
	return nil
}
