// ABOUTME: Vitals operations: heart rate, oxygen saturation, blood pressure.
package manager

import (
	"context"

	"go.uber.org/zap"

	"github.com/Kayz-mann/healthbridge/internal/models"
	"github.com/Kayz-mann/healthbridge/internal/registry"
)

// HeartRateSamples reads heart rate samples (bpm) in range, most recent
// first.
func (m *Manager) HeartRateSamples(ctx context.Context, startSec, endSec float64, limit int) ([]models.QuantitySample, error) {
	return m.quantitySamples(ctx, "getHeartRateSamples", registry.HeartRate, startSec, endSec, limit)
}

// LatestHeartRate reads the most recent heart rate sample in bpm.
func (m *Manager) LatestHeartRate(ctx context.Context) (models.QuantitySample, error) {
	return m.latestQuantity(ctx, "getLatestHeartRate", registry.HeartRate)
}

// RestingHeartRate reads the most recent resting heart rate in bpm.
func (m *Manager) RestingHeartRate(ctx context.Context) (models.QuantitySample, error) {
	return m.latestQuantity(ctx, "getRestingHeartRate", registry.RestingHeartRate)
}

// SaveHeartRate records a heart rate reading in bpm at the given time.
func (m *Manager) SaveHeartRate(ctx context.Context, bpm, atSec float64) (string, error) {
	const op = "saveHeartRate"
	if err := requirePositive(op, bpm); err != nil {
		return "", err
	}
	return m.saveQuantity(ctx, op, registry.HeartRate, bpm, atSec, atSec)
}

// OxygenSaturationSamples reads blood oxygen samples (percent) in range,
// most recent first.
func (m *Manager) OxygenSaturationSamples(ctx context.Context, startSec, endSec float64, limit int) ([]models.QuantitySample, error) {
	return m.quantitySamples(ctx, "getOxygenSaturationSamples", registry.OxygenSaturation, startSec, endSec, limit)
}

// SaveBloodPressure records a blood pressure reading as two independent
// samples (systolic and diastolic, both mmHg) sharing the same window.
// The save is atomic: if the diastolic write fails after the systolic one
// succeeded, the systolic sample is rolled back before the error is
// reported, so no partial reading is ever persisted.
func (m *Manager) SaveBloodPressure(ctx context.Context, systolic, diastolic, startSec, endSec float64) error {
	const op = "saveBloodPressure"
	if systolic <= 0 || diastolic <= 0 {
		var fields []string
		if systolic <= 0 {
			fields = append(fields, "systolic")
		}
		if diastolic <= 0 {
			fields = append(fields, "diastolic")
		}
		return missingData(op, fields)
	}

	sysID, err := m.saveQuantity(ctx, op, registry.BloodPressureSystolic, systolic, startSec, endSec)
	if err != nil {
		return err
	}

	if _, err := m.saveQuantity(ctx, op, registry.BloodPressureDiastolic, diastolic, startSec, endSec); err != nil {
		// Best-effort rollback of the half-written reading.
		if delErr := m.deleteObject(ctx, op, registry.BloodPressureSystolic, sysID); delErr != nil {
			m.log.Warn("blood pressure rollback failed",
				zap.String("id", sysID), zap.Error(delErr))
		}
		return err
	}
	return nil
}
