package store

import (
	"context"
	"time"
)

// CompletedUnit records the first time a learner mastered every fact of a
// unit.
type CompletedUnit struct {
	UnitID      string
	Curriculum  string
	FactCount   int
	CompletedAt time.Time
}

// CompletedUnitRepo persists completed units.
type CompletedUnitRepo interface {
	// Record stores u unless the unit is already recorded. The first
	// completion is kept; it reports whether a row was inserted.
	Record(ctx context.Context, u CompletedUnit) (bool, error)

	// List returns all completed units ordered by completion time.
	List(ctx context.Context) ([]CompletedUnit, error)

	// Reset deletes every completed unit and returns how many were removed.
	Reset(ctx context.Context) (int64, error)
}
