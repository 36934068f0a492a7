// ABOUTME: Tests for range predicate boundaries, sort specs, and limits.
package query

import (
	"testing"
	"time"

	"github.com/Kayz-mann/healthbridge/internal/models"
	"github.com/Kayz-mann/healthbridge/internal/store"
)

func TestRangeBoundaries(t *testing.T) {
	const t0 = 1_700_000_000.0
	const t1 = t0 + 3600

	p := Range(t0, t1)

	cases := []struct {
		name string
		at   float64
		want bool
	}{
		{"before range", t0 - 1, false},
		{"at start (inclusive)", t0, true},
		{"inside range", t0 + 1800, true},
		{"at end (exclusive)", t1, false},
		{"after range", t1 + 1, false},
	}

	for _, tc := range cases {
		got := p.Contains(models.EpochToTime(tc.at))
		if got != tc.want {
			t.Errorf("%s: Contains(%v) = %v, want %v", tc.name, tc.at, got, tc.want)
		}
	}
}

func TestRangeOpenBounds(t *testing.T) {
	longAgo := models.EpochToTime(1)
	farFuture := time.Now().Add(100 * 365 * 24 * time.Hour)

	p := Range(0, 0)
	if !p.Contains(longAgo) || !p.Contains(farFuture) {
		t.Error("fully open range should contain everything")
	}

	p = Range(0, 1_700_000_000)
	if !p.Contains(longAgo) {
		t.Error("open start should contain the distant past")
	}
	if p.Contains(farFuture) {
		t.Error("bounded end should exclude the future")
	}
}

func TestRangeFractionalSeconds(t *testing.T) {
	p := Range(100.5, 101.5)
	if p.Contains(models.EpochToTime(100.25)) {
		t.Error("100.25 should fall before a 100.5 start")
	}
	if !p.Contains(models.EpochToTime(100.75)) {
		t.Error("100.75 should fall inside [100.5, 101.5)")
	}
}

func TestSortSpecs(t *testing.T) {
	if s := ByStartTime(true); s.Field != store.SortStartTime || !s.Ascending {
		t.Errorf("ByStartTime(true) = %+v", s)
	}
	if s := ByEndTime(false); s.Field != store.SortEndTime || s.Ascending {
		t.Errorf("ByEndTime(false) = %+v", s)
	}
}

func TestLimitMapsToNoLimitSentinel(t *testing.T) {
	// An absent limit must become the store's explicit no-cap sentinel,
	// never a zero-results limit.
	for _, n := range []int{0, -1, -100} {
		if got := Limit(n); got != store.NoLimit {
			t.Errorf("Limit(%d) = %d, want NoLimit", n, got)
		}
	}
	if got := Limit(25); got != 25 {
		t.Errorf("Limit(25) = %d, want 25", got)
	}
}
