// ABOUTME: Activity convenience operations: step counts and flights climbed.
package manager

import (
	"context"

	"github.com/Kayz-mann/healthbridge/internal/models"
	"github.com/Kayz-mann/healthbridge/internal/registry"
)

// StepCount sums step samples over [start, end).
func (m *Manager) StepCount(ctx context.Context, startSec, endSec float64) (float64, error) {
	return m.sumQuantity(ctx, "getStepCount", registry.StepCount, startSec, endSec)
}

// StepSamples reads individual step samples in range, most recent first.
func (m *Manager) StepSamples(ctx context.Context, startSec, endSec float64, limit int) ([]models.QuantitySample, error) {
	return m.quantitySamples(ctx, "getStepSamples", registry.StepCount, startSec, endSec, limit)
}

// FlightsClimbed sums flights-climbed samples over [start, end).
func (m *Manager) FlightsClimbed(ctx context.Context, startSec, endSec float64) (float64, error) {
	return m.sumQuantity(ctx, "getFlightsClimbed", registry.FlightsClimbed, startSec, endSec)
}

// SaveSteps records a step count covering [startSec, endSec].
func (m *Manager) SaveSteps(ctx context.Context, count, startSec, endSec float64) (string, error) {
	if err := requirePositive("saveSteps", count); err != nil {
		return "", err
	}
	return m.saveQuantity(ctx, "saveSteps", registry.StepCount, count, startSec, endSec)
}

func requirePositive(op string, v float64) error {
	if v < 0 {
		return missingData(op, []string{"value"})
	}
	return nil
}
