// ABOUTME: Builders for time-range predicates, sort specs, and limits used
// ABOUTME: by read operations against the store.
package query

import (
	"github.com/Kayz-mann/healthbridge/internal/models"
	"github.com/Kayz-mann/healthbridge/internal/store"
)

// Range builds a predicate matching samples whose start time falls in
// [startSec, endSec), both bounds in epoch seconds. A zero bound leaves
// that side of the range open.
func Range(startSec, endSec float64) store.Predicate {
	return store.Predicate{
		Start: models.EpochToTime(startSec),
		End:   models.EpochToTime(endSec),
	}
}

// ByStartTime sorts results on sample start time.
func ByStartTime(ascending bool) store.SortSpec {
	return store.SortSpec{Field: store.SortStartTime, Ascending: ascending}
}

// ByEndTime sorts results on sample end time.
func ByEndTime(ascending bool) store.SortSpec {
	return store.SortSpec{Field: store.SortEndTime, Ascending: ascending}
}

// Limit normalizes a caller-supplied cap. Values <= 0 mean "no cap" and
// map to the store's explicit NoLimit sentinel rather than a zero-result
// limit.
func Limit(n int) int {
	if n <= 0 {
		return store.NoLimit
	}
	return n
}
