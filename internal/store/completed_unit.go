package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// completedUnitRepo implements CompletedUnitRepo with the ent SQL builder.
type completedUnitRepo struct {
	drv *entsql.Driver
}

func (r *completedUnitRepo) Record(ctx context.Context, u CompletedUnit) (bool, error) {
	if u.UnitID == "" {
		return false, fmt.Errorf("record completed unit: empty unit id")
	}
	completedAt := u.CompletedAt
	if completedAt.IsZero() {
		completedAt = time.Now()
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(completedUnitsTable).
		Columns(colUnitID, colCurriculum, colFactCount, colCompletedAt).
		Values(u.UnitID, u.Curriculum, u.FactCount, completedAt.UTC()).
		OnConflict(entsql.ConflictColumns(colUnitID), entsql.DoNothing()).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return false, fmt.Errorf("record completed unit %s: %w", u.UnitID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("record completed unit %s: %w", u.UnitID, err)
	}
	return n > 0, nil
}

func (r *completedUnitRepo) List(ctx context.Context) ([]CompletedUnit, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(colUnitID, colCurriculum, colFactCount, colCompletedAt).
		From(entsql.Table(completedUnitsTable)).
		OrderBy(entsql.Asc(colCompletedAt), entsql.Asc(colID)).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query completed units: %w", err)
	}
	defer rows.Close()

	var out []CompletedUnit
	for rows.Next() {
		var u CompletedUnit
		if err := rows.Scan(&u.UnitID, &u.Curriculum, &u.FactCount, &u.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan completed unit: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate completed units: %w", err)
	}
	return out, nil
}

func (r *completedUnitRepo) Reset(ctx context.Context) (int64, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(completedUnitsTable).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return 0, fmt.Errorf("reset completed units: %w", err)
	}
	return res.RowsAffected()
}
