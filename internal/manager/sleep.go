// ABOUTME: Sleep analysis operations over category samples.
package manager

import (
	"context"

	"github.com/Kayz-mann/healthbridge/internal/bridge"
	"github.com/Kayz-mann/healthbridge/internal/models"
	"github.com/Kayz-mann/healthbridge/internal/normalize"
	"github.com/Kayz-mann/healthbridge/internal/query"
	"github.com/Kayz-mann/healthbridge/internal/registry"
	"github.com/Kayz-mann/healthbridge/internal/store"
)

// SleepSamples reads sleep analysis intervals in range, most recent
// first. Stage classification handles both store schema generations.
func (m *Manager) SleepSamples(ctx context.Context, startSec, endSec float64, limit int) ([]models.SleepSample, error) {
	const op = "getSleepSamples"
	raws, err := m.querySamples(ctx, op, store.Query{
		Type:      registry.SleepAnalysis,
		Predicate: query.Range(startSec, endSec),
		Sort:      query.ByStartTime(false),
		Limit:     query.Limit(limit),
	})
	if err != nil {
		return nil, err
	}

	samples := make([]models.SleepSample, 0, len(raws))
	for _, raw := range raws {
		samples = append(samples, normalize.Sleep(raw))
	}
	return samples, nil
}

// SaveSleep records a sleep analysis interval with the given native stage
// value covering [startSec, endSec].
func (m *Manager) SaveSleep(ctx context.Context, stageValue int, startSec, endSec float64) (string, error) {
	const op = "saveSleep"
	if err := m.ensureAvailable(op); err != nil {
		return "", err
	}
	var fields []string
	if startSec <= 0 {
		fields = append(fields, "startTime")
	}
	if endSec <= startSec {
		fields = append(fields, "endTime")
	}
	if len(fields) > 0 {
		return "", missingData(op, fields)
	}

	c := bridge.New[string](m.log)
	m.store.SaveCategory(store.CategoryWrite{
		Type:  registry.SleepAnalysis,
		Value: stageValue,
		Start: models.EpochToTime(startSec),
		End:   models.EpochToTime(endSec),
	}, c.Callback())

	id, err := c.Await(ctx)
	if err != nil {
		return "", opErr(KindSaveFailed, op, err)
	}
	return id, nil
}
