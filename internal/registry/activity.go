// ABOUTME: Activity type mapping between canonical strings and native values.
// ABOUTME: Holds the named default policies for unrecognized activity input.
package registry

import (
	"strings"

	"github.com/Kayz-mann/healthbridge/internal/store"
)

// Default activity policies. These are deliberate, documented choices, not
// fallthrough behavior:
//
//   - DefaultSaveActivity applies when a workout is saved with an
//     unrecognized (or empty) activity string.
//   - Formatting an unrecognized native value yields ActivityOtherName.
const (
	DefaultSaveActivity = store.ActivityRunning
	ActivityOtherName   = "other"
)

// activityNames maps lowercased activity identifiers to native values.
var activityNames = map[string]store.ActivityType{
	"running":                      store.ActivityRunning,
	"run":                          store.ActivityRunning,
	"walking":                      store.ActivityWalking,
	"walk":                         store.ActivityWalking,
	"cycling":                      store.ActivityCycling,
	"biking":                       store.ActivityCycling,
	"swimming":                     store.ActivitySwimming,
	"hiking":                       store.ActivityHiking,
	"yoga":                         store.ActivityYoga,
	"strengthtraining":             store.ActivityStrengthTraining,
	"traditionalstrengthtraining":  store.ActivityStrengthTraining,
	"weights":                      store.ActivityStrengthTraining,
	"functionalstrengthtraining":   store.ActivityFunctionalStrengthTraining,
	"elliptical":                   store.ActivityElliptical,
	"rowing":                       store.ActivityRowing,
	"other":                        store.ActivityOther,
}

// canonicalActivity maps native values back to the canonical identifier,
// the reverse direction of activityNames for result records.
var canonicalActivity = map[store.ActivityType]string{
	store.ActivityRunning:                    "running",
	store.ActivityWalking:                    "walking",
	store.ActivityCycling:                    "cycling",
	store.ActivitySwimming:                   "swimming",
	store.ActivityHiking:                     "hiking",
	store.ActivityYoga:                       "yoga",
	store.ActivityStrengthTraining:           "strengthTraining",
	store.ActivityFunctionalStrengthTraining: "functionalStrengthTraining",
	store.ActivityElliptical:                 "elliptical",
	store.ActivityRowing:                     "rowing",
	store.ActivityOther:                      ActivityOtherName,
}

// ResolveActivity maps an activity identifier to its native value.
// Lookup is case-insensitive; unknown input returns ok == false.
func ResolveActivity(identifier string) (store.ActivityType, bool) {
	a, ok := activityNames[strings.ToLower(strings.TrimSpace(identifier))]
	return a, ok
}

// SaveActivity resolves an activity identifier for a workout save,
// falling back to DefaultSaveActivity when the input is unrecognized.
func SaveActivity(identifier string) store.ActivityType {
	if a, ok := ResolveActivity(identifier); ok {
		return a
	}
	return DefaultSaveActivity
}

// ActivityIdentifier formats a native activity value as its canonical
// string. Unrecognized values format as ActivityOtherName.
func ActivityIdentifier(a store.ActivityType) string {
	if name, ok := canonicalActivity[a]; ok {
		return name
	}
	return ActivityOtherName
}
