// ABOUTME: Body measurement operations: height, weight, body fat, and BMI.
// ABOUTME: Values cross the boundary in canonical units (cm, kg, percent).
package manager

import (
	"context"

	"github.com/Kayz-mann/healthbridge/internal/models"
	"github.com/Kayz-mann/healthbridge/internal/registry"
)

// SaveHeight records a height in centimeters at the given time.
func (m *Manager) SaveHeight(ctx context.Context, centimeters, atSec float64) (string, error) {
	const op = "saveHeight"
	if err := requirePositive(op, centimeters); err != nil {
		return "", err
	}
	return m.saveQuantity(ctx, op, registry.Height, centimeters, atSec, atSec)
}

// LatestHeight reads the most recent height in centimeters.
func (m *Manager) LatestHeight(ctx context.Context) (models.QuantitySample, error) {
	return m.latestQuantity(ctx, "getLatestHeight", registry.Height)
}

// SaveWeight records a body mass in kilograms at the given time.
func (m *Manager) SaveWeight(ctx context.Context, kilograms, atSec float64) (string, error) {
	const op = "saveWeight"
	if err := requirePositive(op, kilograms); err != nil {
		return "", err
	}
	return m.saveQuantity(ctx, op, registry.BodyMass, kilograms, atSec, atSec)
}

// LatestWeight reads the most recent body mass in kilograms.
func (m *Manager) LatestWeight(ctx context.Context) (models.QuantitySample, error) {
	return m.latestQuantity(ctx, "getLatestWeight", registry.BodyMass)
}

// SaveBodyFat records a body fat percentage (0-100) at the given time.
// The store keeps a 0-1 fraction; the unit table handles the conversion.
func (m *Manager) SaveBodyFat(ctx context.Context, percent, atSec float64) (string, error) {
	const op = "saveBodyFat"
	if err := requirePositive(op, percent); err != nil {
		return "", err
	}
	return m.saveQuantity(ctx, op, registry.BodyFatPercentage, percent, atSec, atSec)
}

// LatestBodyFat reads the most recent body fat percentage (0-100).
func (m *Manager) LatestBodyFat(ctx context.Context) (models.QuantitySample, error) {
	return m.latestQuantity(ctx, "getLatestBodyFat", registry.BodyFatPercentage)
}

// LatestBMI reads the most recent body mass index. BMI is store-computed
// and read-only through this layer.
func (m *Manager) LatestBMI(ctx context.Context) (models.QuantitySample, error) {
	return m.latestQuantity(ctx, "getLatestBMI", registry.BodyMassIndex)
}
