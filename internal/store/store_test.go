package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entschema "github.com/abhisek/factdrill/ent/schema"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	assert.NotNil(t, s.Driver())
	assert.NotNil(t, s.DB())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.CompletedUnitRepo().Record(ctx, CompletedUnit{UnitID: "add-1", Curriculum: "addition", FactCount: 22})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	units, err := s.CompletedUnitRepo().List(ctx)
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, "add-1", units[0].UnitID)
}

func TestCompletedUnitRecordAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.CompletedUnitRepo()
	ctx := context.Background()

	units, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, units)

	base := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	inserted, err := repo.Record(ctx, CompletedUnit{
		UnitID: "sub-3", Curriculum: "subtraction", FactCount: 22, CompletedAt: base.Add(time.Minute),
	})
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.Record(ctx, CompletedUnit{
		UnitID: "add-2", Curriculum: "addition", FactCount: 11, CompletedAt: base,
	})
	require.NoError(t, err)
	assert.True(t, inserted)

	units, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, units, 2)

	assert.Equal(t, "add-2", units[0].UnitID)
	assert.Equal(t, "addition", units[0].Curriculum)
	assert.Equal(t, 11, units[0].FactCount)
	assert.True(t, base.Equal(units[0].CompletedAt), "completed_at = %v, want %v", units[0].CompletedAt, base)
	assert.Equal(t, "sub-3", units[1].UnitID)
}

func TestCompletedUnitKeepsFirstCompletion(t *testing.T) {
	s := openTestStore(t)
	repo := s.CompletedUnitRepo()
	ctx := context.Background()

	first := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	_, err := repo.Record(ctx, CompletedUnit{UnitID: "add-1", Curriculum: "addition", FactCount: 22, CompletedAt: first})
	require.NoError(t, err)

	inserted, err := repo.Record(ctx, CompletedUnit{UnitID: "add-1", Curriculum: "addition", FactCount: 22, CompletedAt: first.Add(48 * time.Hour)})
	require.NoError(t, err)
	assert.False(t, inserted)

	units, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.True(t, first.Equal(units[0].CompletedAt))
}

func TestCompletedUnitRejectsEmptyID(t *testing.T) {
	s := openTestStore(t)
	_, err := s.CompletedUnitRepo().Record(context.Background(), CompletedUnit{Curriculum: "addition"})
	assert.Error(t, err)
}

func TestCompletedUnitReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.CompletedUnitRepo()
	ctx := context.Background()

	for _, id := range []string{"add-1", "add-2", "sub-1"} {
		_, err := repo.Record(ctx, CompletedUnit{UnitID: id, Curriculum: "addition"})
		require.NoError(t, err)
	}

	n, err := repo.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	units, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, units)
}

func TestEnsureDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "deeper", "x.db")
	require.NoError(t, EnsureDir(p))
	info, err := os.Stat(filepath.Dir(p))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDSNAppendsPragmas(t *testing.T) {
	assert.Equal(t,
		"x.db?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=synchronous(NORMAL)",
		dsn("x.db"))
	assert.Contains(t, dsn("file:x.db?mode=rwc"), "mode=rwc&_pragma=")
}

func TestCompletedUnitsTableFromSchema(t *testing.T) {
	tbl, err := tableFor(completedUnitsTable, "CompletedUnit", entschema.CompletedUnit{})
	require.NoError(t, err)

	names := make([]string, 0, len(tbl.Columns))
	for _, c := range tbl.Columns {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{colID, colUnitID, colCurriculum, colFactCount, colCompletedAt}, names)
	assert.True(t, tbl.Columns[0].Increment)
	assert.True(t, tbl.Columns[1].Unique)
	assert.Equal(t, 0, tbl.Columns[3].Default)
	assert.Nil(t, tbl.Columns[4].Default, "time.Now default stays in Go")

	require.Len(t, tbl.Indexes, 1)
	assert.Equal(t, "completedunit_curriculum", tbl.Indexes[0].Name)
	assert.Equal(t, colCurriculum, tbl.Indexes[0].Columns[0].Name)
}
