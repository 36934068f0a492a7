// ABOUTME: Converts raw native store samples into canonical flat records.
// ABOUTME: Handles absent workout totals and both sleep schema generations.
package normalize

import (
	"github.com/Kayz-mann/healthbridge/internal/models"
	"github.com/Kayz-mann/healthbridge/internal/registry"
	"github.com/Kayz-mann/healthbridge/internal/store"
	"github.com/Kayz-mann/healthbridge/internal/units"
)

// Workout flattens a raw workout sample. Absent distance or energy
// normalizes to 0.0, never to a missing value, so client-side aggregation
// stays total-safe.
func Workout(raw store.RawSample) models.WorkoutRecord {
	var distance, calories float64
	if raw.TotalDistance != nil {
		distance = *raw.TotalDistance
	}
	if raw.TotalEnergy != nil {
		calories = *raw.TotalEnergy
	}
	return models.WorkoutRecord{
		ID:           raw.ID,
		StartTime:    models.TimeToEpoch(raw.Start),
		EndTime:      models.TimeToEpoch(raw.End),
		Duration:     raw.Duration.Seconds(),
		Distance:     distance,
		Calories:     calories,
		ActivityType: registry.ActivityIdentifier(raw.Activity),
		Metadata:     raw.Metadata,
	}
}

// Quantity flattens a raw quantity sample of the given kind, converting
// the stored native-unit value into the kind's canonical external unit.
func Quantity(h store.TypeHandle, raw store.RawSample) models.QuantitySample {
	return models.QuantitySample{
		ID:        raw.ID,
		Value:     units.FromNative(h, raw.Quantity),
		StartTime: models.TimeToEpoch(raw.Start),
		EndTime:   models.TimeToEpoch(raw.End),
	}
}

// Sleep flattens a raw sleep analysis sample. The raw category value
// itself identifies the schema generation: values 0-2 belong to the legacy
// three-stage scheme, 3-5 to the five-stage scheme. A legacy value is
// never interpreted against five-stage logic or vice versa; anything
// outside both schemes maps to StageUnknown.
func Sleep(raw store.RawSample) models.SleepSample {
	start := models.TimeToEpoch(raw.Start)
	end := models.TimeToEpoch(raw.End)
	return models.SleepSample{
		ID:        raw.ID,
		Stage:     sleepStage(raw.Category),
		StartTime: start,
		EndTime:   end,
		Duration:  end - start,
	}
}

func sleepStage(value int) models.SleepStage {
	switch value {
	// Legacy three-stage scheme.
	case store.SleepValueInBed:
		return models.StageInBed
	case store.SleepValueAsleep:
		return models.StageAsleep
	case store.SleepValueAwake:
		return models.StageAwake
	// Five-stage scheme.
	case store.SleepValueCore:
		return models.StageCore
	case store.SleepValueDeep:
		return models.StageDeep
	case store.SleepValueREM:
		return models.StageREM
	default:
		return models.StageUnknown
	}
}
