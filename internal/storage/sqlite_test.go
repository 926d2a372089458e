package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/hopper/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func run(steps int, elapsed time.Duration, outcome core.Outcome) core.RunResult {
	return core.RunResult{Steps: steps, Elapsed: elapsed, Outcome: outcome}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runID, err := store.SaveRun("road", run(7, 2350*time.Millisecond, core.OutcomeFell))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(runID); err != nil {
		t.Errorf("run ID %q is not a uuid: %v", runID, err)
	}

	got, err := store.RunByID(runID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if got.GameID != "road" || got.Steps != 7 || got.Outcome != core.OutcomeFell {
		t.Errorf("RunByID() = %+v", got)
	}
	if got.Elapsed != 2350*time.Millisecond {
		t.Errorf("Elapsed = %v, expected 2.35s", got.Elapsed)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID(uuid.NewString())
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("RunByID() = %+v, expected nil", got)
	}
}

func TestStoreTopRunsOrdering(t *testing.T) {
	store := openTestStore(t)

	saves := []core.RunResult{
		run(10, 5*time.Second, core.OutcomeFell),
		run(30, 9*time.Second, core.OutcomeCleared),
		run(10, 3*time.Second, core.OutcomeFell),
		run(2, time.Second, core.OutcomeFell),
	}
	for _, r := range saves {
		if _, err := store.SaveRun("road", r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	// Different game
	if _, err := store.SaveRun("other", run(99, time.Second, core.OutcomeFell)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	top, err := store.TopRuns("road", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 4 {
		t.Fatalf("Expected 4 runs, got %d", len(top))
	}

	want := []struct {
		steps   int
		elapsed time.Duration
	}{
		{30, 9 * time.Second},
		{10, 3 * time.Second},
		{10, 5 * time.Second},
		{2, time.Second},
	}
	for i, w := range want {
		if top[i].Steps != w.steps || top[i].Elapsed != w.elapsed {
			t.Errorf("top[%d] = %d steps in %v, expected %d in %v", i, top[i].Steps, top[i].Elapsed, w.steps, w.elapsed)
		}
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveRun("road", run(i, time.Second, core.OutcomeFell)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	tests := []struct {
		limit int
		want  int
	}{
		{5, 5},
		{0, 10}, // default
		{-1, 10},
		{50, 15},
	}
	for _, tt := range tests {
		runs, err := store.TopRuns("road", tt.limit)
		if err != nil {
			t.Fatalf("TopRuns(%d) failed: %v", tt.limit, err)
		}
		if len(runs) != tt.want {
			t.Errorf("TopRuns(%d) returned %d runs, expected %d", tt.limit, len(runs), tt.want)
		}
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for _, steps := range []int{4, 8, 1} {
		if _, err := store.SaveRun("road", run(steps, time.Second, core.OutcomeFell)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns("road", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Steps != 1 || recent[1].Steps != 8 {
		t.Errorf("RecentRuns() = %+v, expected the last two saves newest first", recent)
	}
}

func TestStoreBestSteps(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestSteps("road")
	if err != nil {
		t.Fatalf("BestSteps() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for no runs, got %d", best)
	}

	for _, steps := range []int{12, 40, 3} {
		if _, err := store.SaveRun("road", run(steps, time.Second, core.OutcomeFell)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	best, err = store.BestSteps("road")
	if err != nil {
		t.Fatalf("BestSteps() failed: %v", err)
	}
	if best != 40 {
		t.Errorf("Expected best 40, got %d", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("road", run(5, time.Second, core.OutcomeFell))
	store.SaveRun("other", run(6, time.Second, core.OutcomeFell))

	if err := store.ClearRuns("road"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns("road", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	runs, _ = store.TopRuns("other", 10)
	if len(runs) != 1 {
		t.Errorf("Expected other game's run to survive, got %d", len(runs))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
