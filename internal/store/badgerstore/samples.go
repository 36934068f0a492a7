// ABOUTME: Callback-based store operations over Badger key prefixes.
// ABOUTME: Query results are filtered, sorted, and capped in memory.
package badgerstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"

	"github.com/Kayz-mann/healthbridge/internal/store"
)

var errClosed = errors.New("store is closed")

// record is the persisted JSON shape of one sample.
type record struct {
	ID            string            `json:"id"`
	TypeCode      string            `json:"type_code"`
	Kind          int               `json:"kind"`
	StartNs       int64             `json:"start_ns"`
	EndNs         int64             `json:"end_ns"`
	Quantity      float64           `json:"quantity,omitempty"`
	Category      int               `json:"category,omitempty"`
	Activity      int               `json:"activity,omitempty"`
	DurationNs    int64             `json:"duration_ns,omitempty"`
	TotalDistance *float64          `json:"total_distance,omitempty"`
	TotalEnergy   *float64          `json:"total_energy,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// RequestAuthorization records a consent request. Grant state is owned by
// the platform and is not queryable afterward.
func (s *Store) RequestAuthorization(req store.AuthRequest, done func(error)) {
	go func() {
		if !s.Available() {
			done(errClosed)
			return
		}
		done(nil)
	}()
}

// SaveQuantity stores one scalar sample and reports the assigned ID.
func (s *Store) SaveQuantity(w store.QuantityWrite, done func(string, error)) {
	go func() {
		done(s.put(record{
			TypeCode: w.Type.Code,
			Kind:     int(w.Type.Kind),
			StartNs:  w.Start.UnixNano(),
			EndNs:    w.End.UnixNano(),
			Quantity: w.Value,
			Metadata: w.Metadata,
		}, w.Type))
	}()
}

// SaveCategory stores one category sample and reports the assigned ID.
func (s *Store) SaveCategory(w store.CategoryWrite, done func(string, error)) {
	go func() {
		done(s.put(record{
			TypeCode: w.Type.Code,
			Kind:     int(w.Type.Kind),
			StartNs:  w.Start.UnixNano(),
			EndNs:    w.End.UnixNano(),
			Category: w.Value,
		}, w.Type))
	}()
}

// SaveWorkout stores one workout sample and reports the assigned ID.
func (s *Store) SaveWorkout(w store.WorkoutWrite, done func(string, error)) {
	go func() {
		done(s.put(record{
			TypeCode:      store.WorkoutType.Code,
			Kind:          int(store.WorkoutType.Kind),
			StartNs:       w.Start.UnixNano(),
			EndNs:         w.End.UnixNano(),
			Activity:      int(w.Activity),
			DurationNs:    int64(w.Duration),
			TotalDistance: w.TotalDistance,
			TotalEnergy:   w.TotalEnergy,
			Metadata:      w.Metadata,
		}, store.WorkoutType))
	}()
}

// ExecuteQuery reads samples of one type, applying the predicate to sample
// start times, the sort spec, and the limit (store.NoLimit means no cap).
func (s *Store) ExecuteQuery(q store.Query, done func([]store.RawSample, error)) {
	go func() {
		done(s.scan(q))
	}()
}

// DeleteObject removes one sample by ID. A missing record reports
// store.ErrNotFound.
func (s *Store) DeleteObject(t store.TypeHandle, id string, done func(error)) {
	go func() {
		done(s.remove(t, id))
	}()
}

func (s *Store) put(r record, t store.TypeHandle) (string, error) {
	if !s.Available() {
		return "", errClosed
	}

	r.ID = uuid.New().String()
	data, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("marshal sample: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(sampleKey(t, r.ID), data)
	})
	if err != nil {
		return "", fmt.Errorf("put sample: %w", err)
	}
	return r.ID, nil
}

func (s *Store) scan(q store.Query) ([]store.RawSample, error) {
	if !s.Available() {
		return nil, errClosed
	}

	var samples []store.RawSample
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		prefix := typePrefix(q.Type)
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var r record
				if err := json.Unmarshal(val, &r); err != nil {
					return fmt.Errorf("unmarshal sample: %w", err)
				}
				raw := toRaw(r)
				if !q.Predicate.Contains(raw.Start) {
					return nil
				}
				samples = append(samples, raw)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan samples: %w", err)
	}

	sortSamples(samples, q.Sort)

	if q.Limit != store.NoLimit && len(samples) > q.Limit {
		samples = samples[:q.Limit]
	}
	return samples, nil
}

func (s *Store) remove(t store.TypeHandle, id string) error {
	if !s.Available() {
		return errClosed
	}

	key := sampleKey(t, id)
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err != nil {
			return err
		}
		return txn.Delete(key)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return store.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete sample: %w", err)
	}
	return nil
}

func toRaw(r record) store.RawSample {
	return store.RawSample{
		ID:            r.ID,
		Type:          store.TypeHandle{Kind: store.SampleKind(r.Kind), Code: r.TypeCode},
		Start:         time.Unix(0, r.StartNs).UTC(),
		End:           time.Unix(0, r.EndNs).UTC(),
		Quantity:      r.Quantity,
		Category:      r.Category,
		Activity:      store.ActivityType(r.Activity),
		Duration:      time.Duration(r.DurationNs),
		TotalDistance: r.TotalDistance,
		TotalEnergy:   r.TotalEnergy,
		Metadata:      r.Metadata,
	}
}

func sortSamples(samples []store.RawSample, spec store.SortSpec) {
	key := func(raw store.RawSample) time.Time {
		if spec.Field == store.SortEndTime {
			return raw.End
		}
		return raw.Start
	}
	sort.SliceStable(samples, func(i, j int) bool {
		if spec.Ascending {
			return key(samples[i]).Before(key(samples[j]))
		}
		return key(samples[i]).After(key(samples[j]))
	})
}
