// ABOUTME: Contract for the native health store: typed handles, raw samples,
// ABOUTME: and the callback-based operation set that backends implement.
package store

import (
	"errors"
	"time"
)

// SampleKind discriminates the native sample families.
type SampleKind int

const (
	KindQuantity SampleKind = iota
	KindCategory
	KindWorkout
)

// TypeHandle identifies one native store type. Handles are produced by the
// registry; backends treat Code as an opaque key.
type TypeHandle struct {
	Kind SampleKind
	Code string
}

// Zero reports whether the handle is the absent handle.
func (h TypeHandle) Zero() bool {
	return h.Code == ""
}

// ActivityType enumerates native workout activity kinds.
// WARNING: Only append to this list. The values are persisted by backends.
type ActivityType int

const (
	ActivityOther ActivityType = iota
	ActivityRunning
	ActivityWalking
	ActivityCycling
	ActivitySwimming
	ActivityHiking
	ActivityYoga
	ActivityStrengthTraining
	ActivityFunctionalStrengthTraining
	ActivityElliptical
	ActivityRowing
)

// Native category values for sleep analysis samples. 0-2 are the legacy
// three-stage scheme; 3-5 are the five-stage scheme.
const (
	SleepValueInBed  = 0
	SleepValueAsleep = 1
	SleepValueAwake  = 2
	SleepValueCore   = 3
	SleepValueDeep   = 4
	SleepValueREM    = 5
)

// WorkoutType is the single native workout type handle.
var WorkoutType = TypeHandle{Kind: KindWorkout, Code: "workout"}

// NoLimit is the explicit "no cap" sentinel for Query.Limit.
const NoLimit = 0

// Predicate bounds a query to samples whose start time falls in
// [Start, End). A zero Start or End leaves that side unbounded.
type Predicate struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether a sample starting at t satisfies the predicate.
func (p Predicate) Contains(t time.Time) bool {
	if !p.Start.IsZero() && t.Before(p.Start) {
		return false
	}
	if !p.End.IsZero() && !t.Before(p.End) {
		return false
	}
	return true
}

// SortField selects the sample field a query sorts on.
type SortField int

const (
	SortStartTime SortField = iota
	SortEndTime
)

// SortSpec orders query results.
type SortSpec struct {
	Field     SortField
	Ascending bool
}

// Query describes one read against the store.
type Query struct {
	Type      TypeHandle
	Predicate Predicate
	Sort      SortSpec
	Limit     int
}

// AuthRequest asks for user consent on the given type sets. The outcome per
// type is not queryable afterward; only failure of the call is observable.
type AuthRequest struct {
	Read  []TypeHandle
	Write []TypeHandle
}

// QuantityWrite saves one scalar sample. Value is in the store's native unit.
type QuantityWrite struct {
	Type     TypeHandle
	Value    float64
	Start    time.Time
	End      time.Time
	Metadata map[string]string
}

// CategoryWrite saves one category sample.
type CategoryWrite struct {
	Type  TypeHandle
	Value int
	Start time.Time
	End   time.Time
}

// WorkoutWrite saves one workout sample. TotalDistance (meters) and
// TotalEnergy (kilocalories) are optional in the store.
type WorkoutWrite struct {
	Activity      ActivityType
	Start         time.Time
	End           time.Time
	Duration      time.Duration
	TotalDistance *float64
	TotalEnergy   *float64
	Metadata      map[string]string
}

// RawSample is one record as the store returns it. Which fields are
// populated depends on Type.Kind.
type RawSample struct {
	ID    string
	Type  TypeHandle
	Start time.Time
	End   time.Time

	// Quantity kinds, in the store's native unit.
	Quantity float64

	// Category kinds.
	Category int

	// Workout kinds.
	Activity      ActivityType
	Duration      time.Duration
	TotalDistance *float64
	TotalEnergy   *float64
	Metadata      map[string]string
}

// ErrNotFound indicates the addressed record does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the native health store. Every callback-taking operation invokes
// its callback exactly once, possibly from a store-owned goroutine. None of
// the operations support cancellation once issued.
type Store interface {
	// Available reports whether the store can serve requests.
	Available() bool

	RequestAuthorization(req AuthRequest, done func(err error))
	SaveQuantity(w QuantityWrite, done func(id string, err error))
	SaveCategory(w CategoryWrite, done func(id string, err error))
	SaveWorkout(w WorkoutWrite, done func(id string, err error))
	ExecuteQuery(q Query, done func(results []RawSample, err error))
	DeleteObject(t TypeHandle, id string, done func(err error))

	Close() error
}
