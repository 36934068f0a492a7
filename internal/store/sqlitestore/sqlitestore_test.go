// ABOUTME: Tests for the SQLite store backend: save/query/delete semantics,
// ABOUTME: predicate boundaries, sorting, limits, and closed-store behavior.
package sqlitestore

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Kayz-mann/healthbridge/internal/store"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func saveWorkout(t *testing.T, s store.Store, w store.WorkoutWrite) string {
	t.Helper()
	idCh := make(chan string, 1)
	errCh := make(chan error, 1)
	s.SaveWorkout(w, func(id string, err error) {
		idCh <- id
		errCh <- err
	})
	if err := <-errCh; err != nil {
		t.Fatalf("SaveWorkout failed: %v", err)
	}
	return <-idCh
}

func saveQuantity(t *testing.T, s store.Store, w store.QuantityWrite) string {
	t.Helper()
	idCh := make(chan string, 1)
	errCh := make(chan error, 1)
	s.SaveQuantity(w, func(id string, err error) {
		idCh <- id
		errCh <- err
	})
	if err := <-errCh; err != nil {
		t.Fatalf("SaveQuantity failed: %v", err)
	}
	return <-idCh
}

func runQuery(t *testing.T, s store.Store, q store.Query) []store.RawSample {
	t.Helper()
	resCh := make(chan []store.RawSample, 1)
	errCh := make(chan error, 1)
	s.ExecuteQuery(q, func(results []store.RawSample, err error) {
		resCh <- results
		errCh <- err
	})
	if err := <-errCh; err != nil {
		t.Fatalf("ExecuteQuery failed: %v", err)
	}
	return <-resCh
}

func deleteObject(s store.Store, h store.TypeHandle, id string) error {
	errCh := make(chan error, 1)
	s.DeleteObject(h, id, func(err error) { errCh <- err })
	return <-errCh
}

var stepType = store.TypeHandle{Kind: store.KindQuantity, Code: "step_count"}

func TestSaveAndQueryWorkout(t *testing.T) {
	s := setupTestStore(t)

	distance := 5000.0
	energy := 350.0
	start := time.Unix(1_700_000_000, 0).UTC()
	id := saveWorkout(t, s, store.WorkoutWrite{
		Activity:      store.ActivityRunning,
		Start:         start,
		End:           start.Add(time.Hour),
		Duration:      time.Hour,
		TotalDistance: &distance,
		TotalEnergy:   &energy,
		Metadata:      map[string]string{"source": "test"},
	})
	if id == "" {
		t.Fatal("store assigned an empty ID")
	}

	results := runQuery(t, s, store.Query{Type: store.WorkoutType})
	if len(results) != 1 {
		t.Fatalf("query returned %d results, want 1", len(results))
	}

	raw := results[0]
	if raw.ID != id {
		t.Errorf("ID = %q, want %q", raw.ID, id)
	}
	if !raw.Start.Equal(start) {
		t.Errorf("start = %v, want %v", raw.Start, start)
	}
	if raw.Activity != store.ActivityRunning {
		t.Errorf("activity = %v, want running", raw.Activity)
	}
	if raw.Duration != time.Hour {
		t.Errorf("duration = %v, want 1h", raw.Duration)
	}
	if raw.TotalDistance == nil || *raw.TotalDistance != 5000 {
		t.Errorf("distance = %v, want 5000", raw.TotalDistance)
	}
	if raw.TotalEnergy == nil || *raw.TotalEnergy != 350 {
		t.Errorf("energy = %v, want 350", raw.TotalEnergy)
	}
	if raw.Metadata["source"] != "test" {
		t.Errorf("metadata = %v", raw.Metadata)
	}
}

func TestWorkoutAbsentTotalsStayAbsent(t *testing.T) {
	s := setupTestStore(t)

	start := time.Unix(1_700_000_000, 0).UTC()
	saveWorkout(t, s, store.WorkoutWrite{
		Activity: store.ActivityYoga,
		Start:    start,
		End:      start.Add(30 * time.Minute),
		Duration: 30 * time.Minute,
	})

	results := runQuery(t, s, store.Query{Type: store.WorkoutType})
	if len(results) != 1 {
		t.Fatalf("query returned %d results, want 1", len(results))
	}
	if results[0].TotalDistance != nil || results[0].TotalEnergy != nil {
		t.Error("absent totals should come back as nil raw fields")
	}
}

func TestPredicateBoundaries(t *testing.T) {
	s := setupTestStore(t)

	t0 := time.Unix(1_700_000_000, 0).UTC()
	for _, offset := range []time.Duration{-time.Second, 0, 30 * time.Minute, time.Hour} {
		saveQuantity(t, s, store.QuantityWrite{
			Type:  stepType,
			Value: 100,
			Start: t0.Add(offset),
			End:   t0.Add(offset),
		})
	}

	// [t0, t0+1h): the -1s sample and the exact-end sample fall outside.
	results := runQuery(t, s, store.Query{
		Type:      stepType,
		Predicate: store.Predicate{Start: t0, End: t0.Add(time.Hour)},
	})
	if len(results) != 2 {
		t.Fatalf("query returned %d results, want 2 (start inclusive, end exclusive)", len(results))
	}
	for _, raw := range results {
		if raw.Start.Before(t0) || !raw.Start.Before(t0.Add(time.Hour)) {
			t.Errorf("sample at %v escapes [t0, t0+1h)", raw.Start)
		}
	}
}

func TestSortAndLimit(t *testing.T) {
	s := setupTestStore(t)

	t0 := time.Unix(1_700_000_000, 0).UTC()
	for i := 0; i < 5; i++ {
		start := t0.Add(time.Duration(i) * time.Hour)
		saveWorkout(t, s, store.WorkoutWrite{
			Activity: store.ActivityRunning,
			Start:    start,
			End:      start.Add(30 * time.Minute),
			Duration: 30 * time.Minute,
		})
	}

	results := runQuery(t, s, store.Query{
		Type: store.WorkoutType,
		Sort: store.SortSpec{Field: store.SortEndTime, Ascending: false},
	})
	if len(results) != 5 {
		t.Fatalf("query returned %d results, want 5", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].End.After(results[i-1].End) {
			t.Errorf("results not in end-time descending order at %d", i)
		}
	}

	capped := runQuery(t, s, store.Query{
		Type:  store.WorkoutType,
		Sort:  store.SortSpec{Field: store.SortEndTime, Ascending: false},
		Limit: 2,
	})
	if len(capped) != 2 {
		t.Errorf("limited query returned %d results, want 2", len(capped))
	}

	// NoLimit means no cap, never zero results.
	uncapped := runQuery(t, s, store.Query{Type: store.WorkoutType, Limit: store.NoLimit})
	if len(uncapped) != 5 {
		t.Errorf("NoLimit query returned %d results, want 5", len(uncapped))
	}
}

func TestDeleteSemantics(t *testing.T) {
	s := setupTestStore(t)

	start := time.Unix(1_700_000_000, 0).UTC()
	id := saveWorkout(t, s, store.WorkoutWrite{
		Activity: store.ActivityRunning,
		Start:    start,
		End:      start.Add(time.Hour),
		Duration: time.Hour,
	})

	if err := deleteObject(s, store.WorkoutType, "no-such-id"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("deleting a missing record = %v, want ErrNotFound", err)
	}

	if err := deleteObject(s, store.WorkoutType, id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if results := runQuery(t, s, store.Query{Type: store.WorkoutType}); len(results) != 0 {
		t.Errorf("deleted workout still returned by query")
	}

	if err := deleteObject(s, store.WorkoutType, id); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}

func TestClosedStoreIsUnavailable(t *testing.T) {
	s := setupTestStore(t)
	if !s.Available() {
		t.Fatal("fresh store should be available")
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if s.Available() {
		t.Error("closed store should report unavailable")
	}

	errCh := make(chan error, 1)
	s.SaveQuantity(store.QuantityWrite{Type: stepType, Value: 1,
		Start: time.Now(), End: time.Now()},
		func(id string, err error) { errCh <- err })
	if err := <-errCh; err == nil {
		t.Error("save on a closed store should fail")
	}
}
