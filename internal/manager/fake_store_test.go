// ABOUTME: Scripted in-memory store for manager failure-path tests.
// ABOUTME: Captures requests and can fail, go unavailable, or double-call.
package manager

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Kayz-mann/healthbridge/internal/store"
)

// fakeStore is a hand-rolled store double. Real read/write behavior is
// covered by the backend packages; this one exists to script failures.
type fakeStore struct {
	mu sync.Mutex

	available  bool
	failWith   error
	doubleCall bool

	authRequests []store.AuthRequest
	saved        []store.RawSample
	deleted      []string
	queryCount   int
	results      []store.RawSample
	nextID       int
}

func newFakeStore() *fakeStore {
	return &fakeStore{available: true}
}

func (f *fakeStore) Available() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.available
}

func (f *fakeStore) Close() error { return nil }

func (f *fakeStore) RequestAuthorization(req store.AuthRequest, done func(error)) {
	f.mu.Lock()
	f.authRequests = append(f.authRequests, req)
	fail := f.failWith
	double := f.doubleCall
	f.mu.Unlock()

	done(fail)
	if double {
		done(errors.New("spurious second invocation"))
	}
}

func (f *fakeStore) SaveQuantity(w store.QuantityWrite, done func(string, error)) {
	f.save(store.RawSample{Type: w.Type, Quantity: w.Value, Start: w.Start, End: w.End}, done)
}

func (f *fakeStore) SaveCategory(w store.CategoryWrite, done func(string, error)) {
	f.save(store.RawSample{Type: w.Type, Category: w.Value, Start: w.Start, End: w.End}, done)
}

func (f *fakeStore) SaveWorkout(w store.WorkoutWrite, done func(string, error)) {
	f.save(store.RawSample{
		Type:          store.WorkoutType,
		Activity:      w.Activity,
		Start:         w.Start,
		End:           w.End,
		Duration:      w.Duration,
		TotalDistance: w.TotalDistance,
		TotalEnergy:   w.TotalEnergy,
		Metadata:      w.Metadata,
	}, done)
}

func (f *fakeStore) save(raw store.RawSample, done func(string, error)) {
	f.mu.Lock()
	fail := f.failWith
	double := f.doubleCall
	if fail == nil {
		f.nextID++
		raw.ID = fmt.Sprintf("fake-%d", f.nextID)
		f.saved = append(f.saved, raw)
	}
	id := raw.ID
	f.mu.Unlock()

	if fail != nil {
		done("", fail)
	} else {
		done(id, nil)
	}
	if double {
		done("", errors.New("spurious second invocation"))
	}
}

func (f *fakeStore) ExecuteQuery(q store.Query, done func([]store.RawSample, error)) {
	f.mu.Lock()
	f.queryCount++
	fail := f.failWith
	results := f.results
	f.mu.Unlock()

	if fail != nil {
		done(nil, fail)
		return
	}
	done(results, nil)
}

func (f *fakeStore) DeleteObject(t store.TypeHandle, id string, done func(error)) {
	f.mu.Lock()
	f.deleted = append(f.deleted, id)
	fail := f.failWith
	f.mu.Unlock()
	done(fail)
}

var _ store.Store = (*fakeStore)(nil)
