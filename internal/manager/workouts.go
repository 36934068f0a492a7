// ABOUTME: Workout operations: save, query, delete, and the client-side
// ABOUTME: distance and calorie aggregates.
package manager

import (
	"context"
	"time"

	"github.com/Kayz-mann/healthbridge/internal/bridge"
	"github.com/Kayz-mann/healthbridge/internal/models"
	"github.com/Kayz-mann/healthbridge/internal/normalize"
	"github.com/Kayz-mann/healthbridge/internal/query"
	"github.com/Kayz-mann/healthbridge/internal/registry"
	"github.com/Kayz-mann/healthbridge/internal/store"
)

// QueryOptions bounds a workout query. Zero Start or End leaves that side
// of the range open; Limit <= 0 means no cap.
type QueryOptions struct {
	Start float64
	End   float64
	Limit int
}

// SaveWorkout persists one workout and returns the store-assigned ID.
// The save is atomic: validation failures or a store error leave nothing
// persisted. An unrecognized activity type falls back to
// registry.DefaultSaveActivity.
func (m *Manager) SaveWorkout(ctx context.Context, in models.WorkoutInput) (string, error) {
	const op = "saveWorkout"
	if err := m.ensureAvailable(op); err != nil {
		return "", err
	}
	if fields := validateWorkout(in); len(fields) > 0 {
		return "", missingData(op, fields)
	}

	distance := in.Distance
	calories := in.Calories
	write := store.WorkoutWrite{
		Activity:      registry.SaveActivity(in.ActivityType),
		Start:         models.EpochToTime(in.StartTime),
		End:           models.EpochToTime(in.EndTime),
		Duration:      time.Duration(in.Duration * float64(time.Second)),
		TotalDistance: &distance,
		TotalEnergy:   &calories,
		Metadata:      in.Metadata,
	}

	c := bridge.New[string](m.log)
	m.store.SaveWorkout(write, c.Callback())

	id, err := c.Await(ctx)
	if err != nil {
		return "", opErr(KindSaveFailed, op, err)
	}
	return id, nil
}

// QueryWorkouts reads workouts in the given range, sorted by end time
// descending. That ordering is the fixed convention of this layer.
func (m *Manager) QueryWorkouts(ctx context.Context, opts QueryOptions) ([]models.WorkoutRecord, error) {
	const op = "queryWorkouts"
	raws, err := m.querySamples(ctx, op, store.Query{
		Type:      registry.Workout,
		Predicate: query.Range(opts.Start, opts.End),
		Sort:      query.ByEndTime(false),
		Limit:     query.Limit(opts.Limit),
	})
	if err != nil {
		return nil, err
	}

	records := make([]models.WorkoutRecord, 0, len(raws))
	for _, raw := range raws {
		records = append(records, normalize.Workout(raw))
	}
	return records, nil
}

// DeleteWorkout removes one workout by ID. A missing record reports
// KindRecordNotFound; any other store failure reports KindSaveFailed,
// the closed taxonomy's write-path kind, with the deleteWorkout
// operation named in the error.
func (m *Manager) DeleteWorkout(ctx context.Context, id string) error {
	return m.deleteObject(ctx, "deleteWorkout", registry.Workout, id)
}

// TotalDistance sums workout distances (meters) over [start, end) as a
// plain floating-point reduction of the full query result.
func (m *Manager) TotalDistance(ctx context.Context, startSec, endSec float64) (float64, error) {
	return m.sumWorkouts(ctx, "getTotalDistance", startSec, endSec,
		func(w models.WorkoutRecord) float64 { return w.Distance })
}

// TotalCalories sums workout energy (kilocalories) over [start, end) as a
// plain floating-point reduction of the full query result.
func (m *Manager) TotalCalories(ctx context.Context, startSec, endSec float64) (float64, error) {
	return m.sumWorkouts(ctx, "getTotalCalories", startSec, endSec,
		func(w models.WorkoutRecord) float64 { return w.Calories })
}

func (m *Manager) sumWorkouts(ctx context.Context, op string, startSec, endSec float64, field func(models.WorkoutRecord) float64) (float64, error) {
	raws, err := m.querySamples(ctx, op, store.Query{
		Type:      registry.Workout,
		Predicate: query.Range(startSec, endSec),
		Sort:      query.ByEndTime(false),
		Limit:     store.NoLimit,
	})
	if err != nil {
		return 0, err
	}

	var total float64
	for _, raw := range raws {
		total += field(normalize.Workout(raw))
	}
	return total, nil
}

// validateWorkout returns the malformed required fields, empty when the
// input is well-formed.
func validateWorkout(in models.WorkoutInput) []string {
	var fields []string
	if in.StartTime <= 0 {
		fields = append(fields, "startTime")
	}
	if in.EndTime <= 0 || in.EndTime <= in.StartTime {
		fields = append(fields, "endTime")
	}
	if in.Duration < 0 {
		fields = append(fields, "durationSeconds")
	}
	if in.Distance < 0 {
		fields = append(fields, "distanceMeters")
	}
	if in.Calories < 0 {
		fields = append(fields, "caloriesKcal")
	}
	return fields
}
