// ABOUTME: Nutrition operations: water, caffeine, and macronutrient saves
// ABOUTME: plus the water-intake aggregate.
package manager

import (
	"context"

	"github.com/Kayz-mann/healthbridge/internal/registry"
)

// SaveWater records a water intake in milliliters at the given time.
// The store keeps liters; the unit table handles the conversion.
func (m *Manager) SaveWater(ctx context.Context, milliliters, atSec float64) (string, error) {
	const op = "saveWater"
	if err := requirePositive(op, milliliters); err != nil {
		return "", err
	}
	return m.saveQuantity(ctx, op, registry.Water, milliliters, atSec, atSec)
}

// WaterIntake sums water samples over [start, end) in milliliters.
func (m *Manager) WaterIntake(ctx context.Context, startSec, endSec float64) (float64, error) {
	return m.sumQuantity(ctx, "getWaterIntake", registry.Water, startSec, endSec)
}

// SaveCaffeine records a caffeine intake in milligrams at the given time.
// The store keeps grams; the unit table handles the conversion.
func (m *Manager) SaveCaffeine(ctx context.Context, milligrams, atSec float64) (string, error) {
	const op = "saveCaffeine"
	if err := requirePositive(op, milligrams); err != nil {
		return "", err
	}
	return m.saveQuantity(ctx, op, registry.Caffeine, milligrams, atSec, atSec)
}

// SaveProtein records a protein intake in grams at the given time.
func (m *Manager) SaveProtein(ctx context.Context, grams, atSec float64) (string, error) {
	const op = "saveProtein"
	if err := requirePositive(op, grams); err != nil {
		return "", err
	}
	return m.saveQuantity(ctx, op, registry.Protein, grams, atSec, atSec)
}

// SaveCarbs records a carbohydrate intake in grams at the given time.
func (m *Manager) SaveCarbs(ctx context.Context, grams, atSec float64) (string, error) {
	const op = "saveCarbs"
	if err := requirePositive(op, grams); err != nil {
		return "", err
	}
	return m.saveQuantity(ctx, op, registry.Carbohydrates, grams, atSec, atSec)
}

// SaveFat records a fat intake in grams at the given time.
func (m *Manager) SaveFat(ctx context.Context, grams, atSec float64) (string, error) {
	const op = "saveFat"
	if err := requirePositive(op, grams); err != nil {
		return "", err
	}
	return m.saveQuantity(ctx, op, registry.FatTotal, grams, atSec, atSec)
}
