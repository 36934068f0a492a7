// ABOUTME: Per-kind unit conversion between canonical external units and
// ABOUTME: the store's native units, with exact round-trip factors.
package units

import (
	"github.com/Kayz-mann/healthbridge/internal/registry"
	"github.com/Kayz-mann/healthbridge/internal/store"
)

// Conversion describes one kind's unit pairing. Native value = external
// value * Factor, so FromNative divides by the same factor and round trips
// are exact to floating-point rounding.
type Conversion struct {
	Canonical string
	Native    string
	Factor    float64
}

const (
	percentToFraction = 0.01
	milliToBase       = 0.001
	microToBase       = 0.000001
)

// conversions holds every kind with a non-trivial unit story. Kinds absent
// from the table convert with the identity factor.
var conversions = map[store.TypeHandle]Conversion{
	registry.DistanceWalkingRunning:     {Canonical: "m", Native: "m", Factor: 1},
	registry.DistanceCycling:            {Canonical: "m", Native: "m", Factor: 1},
	registry.DistanceSwimming:           {Canonical: "m", Native: "m", Factor: 1},
	registry.DistanceDownhillSnowSports: {Canonical: "m", Native: "m", Factor: 1},
	registry.WalkingSpeed:               {Canonical: "m/s", Native: "m/s", Factor: 1},
	registry.ActiveEnergyBurned:         {Canonical: "kcal", Native: "kcal", Factor: 1},
	registry.BasalEnergyBurned:          {Canonical: "kcal", Native: "kcal", Factor: 1},
	registry.EnergyConsumed:             {Canonical: "kcal", Native: "kcal", Factor: 1},
	registry.Vo2Max:                     {Canonical: "ml/kg/min", Native: "ml/kg/min", Factor: 1},
	registry.Height:                     {Canonical: "cm", Native: "cm", Factor: 1},
	registry.BodyMass:                   {Canonical: "kg", Native: "kg", Factor: 1},
	registry.LeanBodyMass:               {Canonical: "kg", Native: "kg", Factor: 1},
	registry.WaistCircumference:         {Canonical: "cm", Native: "cm", Factor: 1},

	// Percent kinds: external 0-100, store expects a 0-1 fraction.
	registry.BodyFatPercentage:   {Canonical: "%", Native: "fraction", Factor: percentToFraction},
	registry.BloodAlcoholContent: {Canonical: "%", Native: "fraction", Factor: percentToFraction},

	// Volume and mass kinds where the store keeps the base unit.
	registry.Water:     {Canonical: "ml", Native: "l", Factor: milliToBase},
	registry.Caffeine:  {Canonical: "mg", Native: "g", Factor: milliToBase},
	registry.Calcium:   {Canonical: "mg", Native: "g", Factor: milliToBase},
	registry.Iron:      {Canonical: "mg", Native: "g", Factor: milliToBase},
	registry.Potassium: {Canonical: "mg", Native: "g", Factor: milliToBase},
	registry.Magnesium: {Canonical: "mg", Native: "g", Factor: milliToBase},
	registry.Zinc:      {Canonical: "mg", Native: "g", Factor: milliToBase},
	registry.VitaminC:  {Canonical: "mg", Native: "g", Factor: milliToBase},
	registry.VitaminD:  {Canonical: "ug", Native: "g", Factor: microToBase},

	registry.Protein:       {Canonical: "g", Native: "g", Factor: 1},
	registry.Carbohydrates: {Canonical: "g", Native: "g", Factor: 1},
	registry.FatTotal:      {Canonical: "g", Native: "g", Factor: 1},
	registry.Fiber:         {Canonical: "g", Native: "g", Factor: 1},
	registry.Sugar:         {Canonical: "g", Native: "g", Factor: 1},
	registry.Sodium:        {Canonical: "mg", Native: "mg", Factor: 1},
	registry.Cholesterol:   {Canonical: "mg", Native: "mg", Factor: 1},

	registry.HeartRate:               {Canonical: "bpm", Native: "count/min", Factor: 1},
	registry.RestingHeartRate:        {Canonical: "bpm", Native: "count/min", Factor: 1},
	registry.WalkingHeartRateAverage: {Canonical: "bpm", Native: "count/min", Factor: 1},
	registry.HeartRateVariability:    {Canonical: "ms", Native: "ms", Factor: 1},
	registry.OxygenSaturation:        {Canonical: "%", Native: "%", Factor: 1},
	registry.BloodPressureSystolic:   {Canonical: "mmHg", Native: "mmHg", Factor: 1},
	registry.BloodPressureDiastolic:  {Canonical: "mmHg", Native: "mmHg", Factor: 1},
	registry.RespiratoryRate:         {Canonical: "count/min", Native: "count/min", Factor: 1},
	registry.BodyTemperature:         {Canonical: "degC", Native: "degC", Factor: 1},
	registry.BloodGlucose:            {Canonical: "mg/dL", Native: "mg/dL", Factor: 1},

	registry.StepCount:           {Canonical: "count", Native: "count", Factor: 1},
	registry.FlightsClimbed:      {Canonical: "count", Native: "count", Factor: 1},
	registry.SwimmingStrokeCount: {Canonical: "count", Native: "count", Factor: 1},
	registry.PushCount:           {Canonical: "count", Native: "count", Factor: 1},
	registry.BodyMassIndex:       {Canonical: "count", Native: "count", Factor: 1},
}

// ToNative converts an external canonical-unit value into the store's
// native unit for the kind. Unknown kinds pass through unchanged.
func ToNative(h store.TypeHandle, v float64) float64 {
	if c, ok := conversions[h]; ok {
		return v * c.Factor
	}
	return v
}

// FromNative converts a native-unit value back to the kind's canonical
// external unit. Unknown kinds pass through unchanged.
func FromNative(h store.TypeHandle, v float64) float64 {
	if c, ok := conversions[h]; ok {
		return v / c.Factor
	}
	return v
}

// CanonicalUnit returns the external unit label for display, or "" when
// the kind carries no unit entry.
func CanonicalUnit(h store.TypeHandle) string {
	return conversions[h].Canonical
}

// NativeUnit returns the store-internal unit label.
func NativeUnit(h store.TypeHandle) string {
	return conversions[h].Native
}
