package session

import (
	"context"
	"maps"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/factdrill/internal/store"
)

// Persistence loads and saves completed units. Implementations never
// return errors: unreadable data loads as empty and failed writes are
// dropped.
type Persistence interface {
	LoadCompletedUnits(ctx context.Context) map[string]CompletionRecord
	SaveCompletedUnits(ctx context.Context, units map[string]CompletionRecord)
}

// MemoryPersistence keeps completed units in process memory.
type MemoryPersistence struct {
	mu    sync.Mutex
	units map[string]CompletionRecord
	saves int
}

// NewMemoryPersistence returns an empty in-memory store.
func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{units: make(map[string]CompletionRecord)}
}

func (m *MemoryPersistence) LoadCompletedUnits(context.Context) map[string]CompletionRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.units)
}

func (m *MemoryPersistence) SaveCompletedUnits(_ context.Context, units map[string]CompletionRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.units = maps.Clone(units)
	m.saves++
}

// Saves returns how many times SaveCompletedUnits was called.
func (m *MemoryPersistence) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// RepoPersistence adapts a store.CompletedUnitRepo, logging and swallowing
// failures.
type RepoPersistence struct {
	repo   store.CompletedUnitRepo
	logger *zap.Logger
}

// NewRepoPersistence wraps repo. A nil logger discards warnings.
func NewRepoPersistence(repo store.CompletedUnitRepo, logger *zap.Logger) *RepoPersistence {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RepoPersistence{repo: repo, logger: logger}
}

func (p *RepoPersistence) LoadCompletedUnits(ctx context.Context) map[string]CompletionRecord {
	out := make(map[string]CompletionRecord)
	rows, err := p.repo.List(ctx)
	if err != nil {
		p.logger.Warn("load completed units", zap.Error(err))
		return out
	}
	for _, r := range rows {
		if r.UnitID == "" || r.CompletedAt.IsZero() {
			p.logger.Warn("dropping corrupt completed unit row",
				zap.String("unit_id", r.UnitID),
				zap.String("curriculum", r.Curriculum))
			continue
		}
		if _, dup := out[r.UnitID]; dup {
			continue
		}
		out[r.UnitID] = CompletionRecord{
			UnitID:      r.UnitID,
			Curriculum:  r.Curriculum,
			FactCount:   r.FactCount,
			CompletedAt: r.CompletedAt,
		}
	}
	return out
}

func (p *RepoPersistence) SaveCompletedUnits(ctx context.Context, units map[string]CompletionRecord) {
	for _, id := range slices.Sorted(maps.Keys(units)) {
		rec := units[id]
		inserted, err := p.repo.Record(ctx, store.CompletedUnit{
			UnitID:      id,
			Curriculum:  rec.Curriculum,
			FactCount:   rec.FactCount,
			CompletedAt: rec.CompletedAt,
		})
		if err != nil {
			p.logger.Warn("save completed unit", zap.String("unit_id", id), zap.Error(err))
			continue
		}
		if inserted {
			p.logger.Debug("completed unit saved", zap.String("unit_id", id))
		}
	}
}
