package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/factdrill/internal/config"
	"github.com/abhisek/factdrill/internal/curriculum"
	"github.com/abhisek/factdrill/internal/session"
	"github.com/abhisek/factdrill/internal/store"
)

// isolate points every XDG directory and FACTDRILL_* variable away from
// the real user environment.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	for _, k := range []string{"FACTDRILL_CURRICULUM", "FACTDRILL_TIMER", "FACTDRILL_DB", "FACTDRILL_LOG_FILE", "FACTDRILL_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func seedCompleted(t *testing.T, dbPath string, units ...store.CompletedUnit) {
	t.Helper()
	require.NoError(t, store.EnsureDir(dbPath))
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()
	for _, u := range units {
		_, err := st.CompletedUnitRepo().Record(context.Background(), u)
		require.NoError(t, err)
	}
}

func TestFactsCommand(t *testing.T) {
	isolate(t)

	out, err := run(t, "facts", "add-2")
	require.NoError(t, err)
	assert.Contains(t, out, "Unit 2 - Pairs That Make Ten")
	assert.Contains(t, out, "5 + 5 = 10")
	assert.Contains(t, out, "11 facts")
}

func TestFactsCommandUnknownUnit(t *testing.T) {
	isolate(t)

	_, err := run(t, "facts", "add-99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "add-99")
}

func TestUnitsCommandMarksCompleted(t *testing.T) {
	dir := isolate(t)
	db := filepath.Join(dir, "units.db")
	seedCompleted(t, db, store.CompletedUnit{UnitID: "add-1", Curriculum: "addition", FactCount: 36, CompletedAt: time.Now()})

	out, err := run(t, "units", "--db", db, "--curriculum", "addition")
	require.NoError(t, err)
	assert.Contains(t, out, "Addition")
	assert.NotContains(t, out, "sub-1")

	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.HasPrefix(line, "add-1 "):
			assert.Contains(t, line, "✓")
		case strings.HasPrefix(line, "add-2 "):
			assert.NotContains(t, line, "✓")
		}
	}
}

func TestListingCommandsLeaveMissingDatabaseUncreated(t *testing.T) {
	dir := isolate(t)
	db := filepath.Join(dir, "fresh", "progress.db")

	out, err := run(t, "units", "--db", db)
	require.NoError(t, err)
	assert.NotContains(t, out, "✓")

	_, err = run(t, "progress", "--db", db)
	require.NoError(t, err)

	_, err = os.Stat(db)
	assert.True(t, os.IsNotExist(err), "listing should not create %s", db)
	_, err = os.Stat(filepath.Join(dir, "fresh"))
	assert.True(t, os.IsNotExist(err), "listing should not create the data dir")
}

func TestProgressCommandTOML(t *testing.T) {
	dir := isolate(t)
	db := filepath.Join(dir, "progress.db")
	seedCompleted(t, db, store.CompletedUnit{
		UnitID:      "sub-2",
		Curriculum:  "subtraction",
		FactCount:   12,
		CompletedAt: time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC),
	})

	out, err := run(t, "progress", "--db", db, "--toml")
	require.NoError(t, err)
	assert.Contains(t, out, "[[curriculum]]")
	assert.Contains(t, out, "sub-2")
	assert.Contains(t, out, "2026-04-02T09:30:00Z")
}

func TestResetCommand(t *testing.T) {
	dir := isolate(t)
	db := filepath.Join(dir, "reset.db")
	seedCompleted(t, db,
		store.CompletedUnit{UnitID: "add-1", Curriculum: "addition", FactCount: 36, CompletedAt: time.Now()},
		store.CompletedUnit{UnitID: "add-2", Curriculum: "addition", FactCount: 11, CompletedAt: time.Now()},
	)

	out, err := run(t, "reset", "--db", db, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 2 completed units.")

	st, err := store.Open(db)
	require.NoError(t, err)
	defer st.Close()
	rows, err := st.CompletedUnitRepo().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestConfigCommand(t *testing.T) {
	dir := isolate(t)
	db := filepath.Join(dir, "config.db")

	out, err := run(t, "config", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "timer = 10")
	assert.Contains(t, out, "config.db")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "factdrill "))
}

func TestBuildProgressSkipsUnknownUnits(t *testing.T) {
	report := buildProgress(curriculum.Default(), []store.CompletedUnit{
		{UnitID: "add-3", FactCount: 10, CompletedAt: time.Now()},
		{UnitID: "retired-unit", FactCount: 4, CompletedAt: time.Now()},
	})

	require.Len(t, report.Curricula, 2)
	require.Len(t, report.Curricula[0].Completed, 1)
	assert.Equal(t, "add-3", report.Curricula[0].Completed[0].UnitID)
	assert.Empty(t, report.Curricula[1].Completed)
}

func TestOpenPersistenceFallsBackToMemory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	var stderr bytes.Buffer
	cfg := &config.Config{DBPath: filepath.Join(blocker, "factdrill.db")}
	p, closeFn := openPersistence(cfg, &stderr, zap.NewNop())
	defer closeFn()

	_, ok := p.(*session.MemoryPersistence)
	assert.True(t, ok, "expected in-memory fallback, got %T", p)
	assert.Contains(t, stderr.String(), "warning:")
}

func TestOpenPersistenceUsesStore(t *testing.T) {
	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "ok.db")}
	p, closeFn := openPersistence(cfg, &bytes.Buffer{}, zap.NewNop())
	defer closeFn()

	_, ok := p.(*session.RepoPersistence)
	assert.True(t, ok, "expected store-backed persistence, got %T", p)
}
