// ABOUTME: Callback-based store operations over the SQLite samples table.
// ABOUTME: Each operation runs on its own goroutine and settles exactly once.
package sqlitestore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Kayz-mann/healthbridge/internal/store"
)

var errClosed = errors.New("store is closed")

// RequestAuthorization records a consent request. Grant state is owned by
// the platform and is not queryable afterward; only call failure is
// observable.
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
		done(s.insert(row{
			typ:      w.Type,
			start:    w.Start,
			end:      w.End,
			quantity: sql.NullFloat64{Float64: w.Value, Valid: true},
			metadata: w.Metadata,
		}))
	}()
}

// SaveCategory stores one category sample and reports the assigned ID.
func (s *Store) SaveCategory(w store.CategoryWrite, done func(string, error)) {
	go func() {
		done(s.insert(row{
			typ:      w.Type,
			start:    w.Start,
			end:      w.End,
			category: sql.NullInt64{Int64: int64(w.Value), Valid: true},
		}))
	}()
}

// SaveWorkout stores one workout sample and reports the assigned ID.
func (s *Store) SaveWorkout(w store.WorkoutWrite, done func(string, error)) {
	go func() {
		done(s.insert(row{
			typ:      store.WorkoutType,
			start:    w.Start,
			end:      w.End,
			activity: sql.NullInt64{Int64: int64(w.Activity), Valid: true},
			duration: sql.NullInt64{Int64: int64(w.Duration), Valid: true},
			distance: nullFloat(w.TotalDistance),
			energy:   nullFloat(w.TotalEnergy),
			metadata: w.Metadata,
		}))
	}()
}

// ExecuteQuery reads samples of one type, applying the predicate to sample
// start times, the sort spec, and the limit (store.NoLimit means no cap).
func (s *Store) ExecuteQuery(q store.Query, done func([]store.RawSample, error)) {
	go func() {
		done(s.query(q))
	}()
}

// DeleteObject removes one sample by ID. A missing record reports
// store.ErrNotFound.
func (s *Store) DeleteObject(t store.TypeHandle, id string, done func(error)) {
	go func() {
		done(s.delete(t, id))
	}()
}

type row struct {
	typ      store.TypeHandle
	start    time.Time
	end      time.Time
	quantity sql.NullFloat64
	category sql.NullInt64
	activity sql.NullInt64
	duration sql.NullInt64
	distance sql.NullFloat64
	energy   sql.NullFloat64
	metadata map[string]string
}

func (s *Store) insert(r row) (string, error) {
	if !s.Available() {
		return "", errClosed
	}

	var meta sql.NullString
	if len(r.metadata) > 0 {
		data, err := json.Marshal(r.metadata)
		if err != nil {
			return "", fmt.Errorf("marshal metadata: %w", err)
		}
		meta = sql.NullString{String: string(data), Valid: true}
	}

	id := uuid.New().String()
	query := `
		INSERT INTO samples (id, type_code, kind, start_at, end_at, quantity,
			category, activity, duration_ns, total_distance, total_energy,
			metadata, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.Exec(query,
		id,
		r.typ.Code,
		int(r.typ.Kind),
		r.start.UnixNano(),
		r.end.UnixNano(),
		r.quantity,
		r.category,
		r.activity,
		r.duration,
		r.distance,
		r.energy,
		meta,
		time.Now().UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("insert sample: %w", err)
	}
	return id, nil
}

func (s *Store) query(q store.Query) ([]store.RawSample, error) {
	if !s.Available() {
		return nil, errClosed
	}

	sqlQuery := `
		SELECT id, type_code, kind, start_at, end_at, quantity, category,
			activity, duration_ns, total_distance, total_energy, metadata
		FROM samples
		WHERE type_code = ?
	`
	args := []interface{}{q.Type.Code}

	// [start, end) on the sample start time
	if !q.Predicate.Start.IsZero() {
		sqlQuery += " AND start_at >= ?"
		args = append(args, q.Predicate.Start.UnixNano())
	}
	if !q.Predicate.End.IsZero() {
		sqlQuery += " AND start_at < ?"
		args = append(args, q.Predicate.End.UnixNano())
	}

	field := "start_at"
	if q.Sort.Field == store.SortEndTime {
		field = "end_at"
	}
	dir := "DESC"
	if q.Sort.Ascending {
		dir = "ASC"
	}
	sqlQuery += fmt.Sprintf(" ORDER BY %s %s", field, dir)

	if q.Limit != store.NoLimit {
		sqlQuery += " LIMIT ?"
		args = append(args, q.Limit)
	}

	rows, err := s.db.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("query samples: %w", err)
	}
	defer rows.Close()

	var samples []store.RawSample
	for rows.Next() {
		raw, err := scanSample(rows)
		if err != nil {
			return nil, err
		}
		samples = append(samples, raw)
	}
	return samples, rows.Err()
}

func (s *Store) delete(t store.TypeHandle, id string) error {
	if !s.Available() {
		return errClosed
	}

	result, err := s.db.Exec(
		"DELETE FROM samples WHERE id = ? AND type_code = ?", id, t.Code)
	if err != nil {
		return fmt.Errorf("delete sample: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete sample: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanSample(rows *sql.Rows) (store.RawSample, error) {
	var raw store.RawSample
	var kind int
	var startNs, endNs int64
	var quantity, distance, energy sql.NullFloat64
	var category, activity, duration sql.NullInt64
	var meta sql.NullString

	err := rows.Scan(&raw.ID, &raw.Type.Code, &kind, &startNs, &endNs,
		&quantity, &category, &activity, &duration, &distance, &energy, &meta)
	if err != nil {
		return raw, fmt.Errorf("scan sample: %w", err)
	}

	raw.Type.Kind = store.SampleKind(kind)
	raw.Start = time.Unix(0, startNs).UTC()
	raw.End = time.Unix(0, endNs).UTC()
	if quantity.Valid {
		raw.Quantity = quantity.Float64
	}
	if category.Valid {
		raw.Category = int(category.Int64)
	}
	if activity.Valid {
		raw.Activity = store.ActivityType(activity.Int64)
	}
	if duration.Valid {
		raw.Duration = time.Duration(duration.Int64)
	}
	if distance.Valid {
		v := distance.Float64
		raw.TotalDistance = &v
	}
	if energy.Valid {
		v := energy.Float64
		raw.TotalEnergy = &v
	}
	if meta.Valid {
		if err := json.Unmarshal([]byte(meta.String), &raw.Metadata); err != nil {
			return raw, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}
	return raw, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
