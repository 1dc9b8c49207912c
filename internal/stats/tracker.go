package stats

import (
	"context"
	"log"
	"sync"
	"time"

	domain "github.com/aquareyes/carwash-admin/internal/domain/appointment"
)

// SnapshotStore mirrors the current statistics somewhere cheap to read,
// e.g. redis. Mirror failures are logged, never surfaced: the in-memory
// snapshot is authoritative.
type SnapshotStore interface {
	StoreStatistics(ctx context.Context, s Statistics) error
	LoadStatistics(ctx context.Context) (Statistics, bool, error)
}

// Tracker holds the current statistics for the session and recomputes
// them from the full appointment set after every relevant mutation.
type Tracker struct {
	repo  domain.Repository
	loc   *time.Location
	store SnapshotStore // may be nil

	mu      sync.RWMutex
	current Statistics
}

func NewTracker(
	repo domain.Repository,
	loc *time.Location,
	store SnapshotStore,
) *Tracker {
	return &Tracker{
		repo:  repo,
		loc:   loc,
		store: store,
		current: Statistics{
			DailyStats: make(map[string]DayStat),
		},
	}
}

// Recompute re-reads the whole appointment set and replaces the
// snapshot. It is invoked synchronously after each mutation resolves.
func (t *Tracker) Recompute(ctx context.Context) (Statistics, error) {
	apps, err := t.repo.ListAppointments(ctx)
	if err != nil {
		return Statistics{}, err
	}

	s := Compute(apps, time.Now().In(t.loc), t.loc)

	t.mu.Lock()
	t.current = s
	t.mu.Unlock()

	if t.store != nil {
		if err := t.store.StoreStatistics(ctx, s); err != nil {
			log.Println("stats snapshot store:", err)
		}
	}

	return s, nil
}

// WarmFromStore seeds the snapshot from the mirror. Used at startup
// when the database is not yet reachable; the next successful
// Recompute replaces it.
func (t *Tracker) WarmFromStore(ctx context.Context) bool {
	if t.store == nil {
		return false
	}

	s, ok, err := t.store.LoadStatistics(ctx)
	if err != nil || !ok {
		return false
	}

	t.mu.Lock()
	t.current = s
	t.mu.Unlock()
	return true
}

func (t *Tracker) Current() Statistics {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

// Today returns the today rollup of the current snapshot.
func (t *Tracker) Today() (float64, int) {
	s := t.Current()
	return s.TodayEarnings, s.TodayCompletedAppointments
}

// AllTime returns the all-time rollup of the current snapshot.
func (t *Tracker) AllTime() (float64, int) {
	s := t.Current()
	return s.TotalEarnings, s.CompletedAppointments
}
