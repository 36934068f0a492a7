// ABOUTME: Bidirectional registry mapping canonical identifier strings to
// ABOUTME: native store type handles, with alias and default-activity policy.
package registry

import (
	"strings"

	"github.com/Kayz-mann/healthbridge/internal/store"
)

// Native type handles, one per supported measurement kind. These are the
// only handles the rest of the layer ever passes to the store.
var (
	// Activity and fitness
	StepCount                  = quantity("step_count")
	FlightsClimbed             = quantity("flights_climbed")
	DistanceWalkingRunning     = quantity("distance_walking_running")
	DistanceCycling            = quantity("distance_cycling")
	DistanceSwimming           = quantity("distance_swimming")
	DistanceDownhillSnowSports = quantity("distance_downhill_snow_sports")
	SwimmingStrokeCount        = quantity("swimming_stroke_count")
	PushCount                  = quantity("push_count")
	WalkingSpeed               = quantity("walking_speed")
	ActiveEnergyBurned         = quantity("active_energy_burned")
	BasalEnergyBurned          = quantity("basal_energy_burned")
	ExerciseTime               = quantity("exercise_time")
	StandTime                  = quantity("stand_time")
	Vo2Max                     = quantity("vo2_max")

	// Vitals
	HeartRate               = quantity("heart_rate")
	RestingHeartRate        = quantity("resting_heart_rate")
	WalkingHeartRateAverage = quantity("walking_heart_rate_average")
	HeartRateVariability    = quantity("heart_rate_variability")
	OxygenSaturation        = quantity("oxygen_saturation")
	BloodPressureSystolic   = quantity("blood_pressure_systolic")
	BloodPressureDiastolic  = quantity("blood_pressure_diastolic")
	RespiratoryRate         = quantity("respiratory_rate")
	BodyTemperature         = quantity("body_temperature")
	BloodGlucose            = quantity("blood_glucose")
	BloodAlcoholContent     = quantity("blood_alcohol_content")

	// Body measurements
	Height             = quantity("height")
	BodyMass           = quantity("body_mass")
	BodyFatPercentage  = quantity("body_fat_percentage")
	BodyMassIndex      = quantity("body_mass_index")
	LeanBodyMass       = quantity("lean_body_mass")
	WaistCircumference = quantity("waist_circumference")

	// Nutrition
	Water          = quantity("dietary_water")
	Caffeine       = quantity("dietary_caffeine")
	Protein        = quantity("dietary_protein")
	Carbohydrates  = quantity("dietary_carbohydrates")
	FatTotal       = quantity("dietary_fat_total")
	Fiber          = quantity("dietary_fiber")
	Sugar          = quantity("dietary_sugar")
	Sodium         = quantity("dietary_sodium")
	Cholesterol    = quantity("dietary_cholesterol")
	EnergyConsumed = quantity("dietary_energy_consumed")
	Calcium        = quantity("dietary_calcium")
	Iron           = quantity("dietary_iron")
	Potassium      = quantity("dietary_potassium")
	Magnesium      = quantity("dietary_magnesium")
	Zinc           = quantity("dietary_zinc")
	VitaminC       = quantity("dietary_vitamin_c")
	VitaminD       = quantity("dietary_vitamin_d")

	// Sleep and mindfulness
	SleepAnalysis  = category("sleep_analysis")
	MindfulSession = category("mindful_session")

	// Workouts
	Workout = store.WorkoutType
)

func quantity(code string) store.TypeHandle {
	return store.TypeHandle{Kind: store.KindQuantity, Code: code}
}

func category(code string) store.TypeHandle {
	return store.TypeHandle{Kind: store.KindCategory, Code: code}
}

// identifiers maps lowercased canonical identifiers and their aliases to
// handles. Built once at init; the registry tests validate every entry.
var identifiers = map[string]store.TypeHandle{
	// Activity and fitness
	"steps":                      StepCount,
	"stepcount":                  StepCount,
	"flights":                    FlightsClimbed,
	"flightsclimbed":             FlightsClimbed,
	"distance":                   DistanceWalkingRunning,
	"distancewalkingrunning":     DistanceWalkingRunning,
	"distancecycling":            DistanceCycling,
	"cyclingdistance":            DistanceCycling,
	"distanceswimming":           DistanceSwimming,
	"distancedownhillsnowsports": DistanceDownhillSnowSports,
	"snowsportsdistance":         DistanceDownhillSnowSports,
	"swimmingstrokecount":        SwimmingStrokeCount,
	"strokecount":                SwimmingStrokeCount,
	"pushcount":                  PushCount,
	"walkingspeed":               WalkingSpeed,
	"calories":                   ActiveEnergyBurned,
	"activecalories":             ActiveEnergyBurned,
	"activeenergyburned":         ActiveEnergyBurned,
	"basalenergyburned":          BasalEnergyBurned,
	"restingcalories":            BasalEnergyBurned,
	"exercisetime":               ExerciseTime,
	"exerciseminutes":            ExerciseTime,
	"standtime":                  StandTime,
	"vo2max":                     Vo2Max,

	// Vitals
	"heartrate":               HeartRate,
	"restingheartrate":        RestingHeartRate,
	"walkingheartrateaverage": WalkingHeartRateAverage,
	"heartratevariability":    HeartRateVariability,
	"hrv":                     HeartRateVariability,
	"oxygensaturation":        OxygenSaturation,
	"spo2":                    OxygenSaturation,
	"bloodpressuresystolic":   BloodPressureSystolic,
	"systolic":                BloodPressureSystolic,
	"bloodpressurediastolic":  BloodPressureDiastolic,
	"diastolic":               BloodPressureDiastolic,
	"respiratoryrate":         RespiratoryRate,
	"bodytemperature":         BodyTemperature,
	"temperature":             BodyTemperature,
	"bloodglucose":            BloodGlucose,
	"glucose":                 BloodGlucose,
	"bloodalcoholcontent":     BloodAlcoholContent,
	"bac":                     BloodAlcoholContent,

	// Body measurements
	"height":             Height,
	"weight":             BodyMass,
	"bodymass":           BodyMass,
	"bodyfat":            BodyFatPercentage,
	"bodyfatpercentage":  BodyFatPercentage,
	"bmi":                BodyMassIndex,
	"bodymassindex":      BodyMassIndex,
	"leanbodymass":       LeanBodyMass,
	"waistcircumference": WaistCircumference,

	// Nutrition
	"water":          Water,
	"caffeine":       Caffeine,
	"protein":        Protein,
	"carbs":          Carbohydrates,
	"carbohydrates":  Carbohydrates,
	"fat":            FatTotal,
	"totalfat":       FatTotal,
	"fiber":          Fiber,
	"sugar":          Sugar,
	"sodium":         Sodium,
	"cholesterol":    Cholesterol,
	"energyconsumed": EnergyConsumed,
	"dietaryenergy":  EnergyConsumed,
	"calcium":        Calcium,
	"iron":           Iron,
	"potassium":      Potassium,
	"magnesium":      Magnesium,
	"zinc":           Zinc,
	"vitaminc":       VitaminC,
	"vitamind":       VitaminD,

	// Sleep and mindfulness
	"sleep":          SleepAnalysis,
	"sleepanalysis":  SleepAnalysis,
	"mindfulness":    MindfulSession,
	"mindfulsession": MindfulSession,

	// Workouts
	"workout":     Workout,
	"workouts":    Workout,
	"workouttype": Workout,
}

// readOnly lists handles the store computes or derives; they are excluded
// from write authorization sets and rejected as save targets.
var readOnly = map[store.TypeHandle]bool{
	BodyMassIndex:           true,
	ExerciseTime:            true,
	StandTime:               true,
	WalkingHeartRateAverage: true,
}

// Resolve maps a canonical identifier or alias to its native handle.
// Lookup is case-insensitive. Unknown identifiers resolve to absent
// (ok == false), never to an error.
func Resolve(identifier string) (store.TypeHandle, bool) {
	h, ok := identifiers[strings.ToLower(strings.TrimSpace(identifier))]
	return h, ok
}

// ResolveAll resolves a set of identifiers, silently dropping entries that
// do not resolve. Duplicate identifiers collapse to one handle.
func ResolveAll(ids []string) []store.TypeHandle {
	seen := make(map[store.TypeHandle]bool, len(ids))
	var handles []store.TypeHandle
	for _, id := range ids {
		h, ok := Resolve(id)
		if !ok || seen[h] {
			continue
		}
		seen[h] = true
		handles = append(handles, h)
	}
	return handles
}

// ResolveWritable resolves a set of identifiers for write authorization,
// dropping both unknown identifiers and read-only kinds.
func ResolveWritable(ids []string) []store.TypeHandle {
	var handles []store.TypeHandle
	for _, h := range ResolveAll(ids) {
		if Writable(h) {
			handles = append(handles, h)
		}
	}
	return handles
}

// Writable reports whether the store accepts the handle as a save target.
func Writable(h store.TypeHandle) bool {
	return !h.Zero() && !readOnly[h]
}

// AllIdentifiers returns every registered identifier, aliases included.
func AllIdentifiers() []string {
	ids := make([]string, 0, len(identifiers))
	for id := range identifiers {
		ids = append(ids, id)
	}
	return ids
}
