// ABOUTME: Tests for CLI helper functions.
// ABOUTME: Covers parseWhen, formatEpoch, padRight, and splitTypes.
package main

import (
	"math"
	"testing"
	"time"
)

func TestParseWhen(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "epoch seconds", input: "1700000000"},
		{name: "fractional epoch", input: "1700000000.5"},
		{name: "RFC3339", input: "2025-01-31T08:30:00Z"},
		{name: "RFC3339 with offset", input: "2025-01-31T08:30:00+05:00"},
		{name: "date and time with space", input: "2025-01-31 08:30"},
		{name: "date only", input: "2025-01-31"},
		{name: "invalid format", input: "31-01-2025", wantErr: true},
		{name: "invalid random string", input: "not a date", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWhen(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseWhen(%q) expected error, got nil", tt.input)
				}
				return
			}

			if err != nil {
				t.Errorf("parseWhen(%q) unexpected error: %v", tt.input, err)
				return
			}
			if got <= 0 {
				t.Errorf("parseWhen(%q) = %v, want positive epoch seconds", tt.input, got)
			}
		})
	}
}

func TestParseWhenEmptyMeansNow(t *testing.T) {
	before := float64(time.Now().Unix())
	got, err := parseWhen("")
	if err != nil {
		t.Fatalf("parseWhen(\"\") unexpected error: %v", err)
	}
	after := float64(time.Now().Unix()) + 1
	if got < before || got > after {
		t.Errorf("parseWhen(\"\") = %v, want within [%v, %v]", got, before, after)
	}
}

func TestParseWhenEpochRoundTrip(t *testing.T) {
	got, err := parseWhen("1700000000.25")
	if err != nil {
		t.Fatalf("parseWhen unexpected error: %v", err)
	}
	if math.Abs(got-1700000000.25) > 1e-9 {
		t.Errorf("parseWhen preserved %v, want 1700000000.25", got)
	}
}

func TestFormatEpochZero(t *testing.T) {
	if got := formatEpoch(0); got != "-" {
		t.Errorf("formatEpoch(0) = %q, want %q", got, "-")
	}
}

func TestFormatEpochRendersLocalTime(t *testing.T) {
	at := time.Date(2025, 1, 31, 8, 30, 0, 0, time.Local)
	got := formatEpoch(float64(at.Unix()))
	if got != "2025-01-31 08:30" {
		t.Errorf("formatEpoch = %q, want %q", got, "2025-01-31 08:30")
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"abc", 5, "abc  "},
		{"abc", 3, "abc"},
		{"abcdef", 3, "abcdef"},
		{"", 2, "  "},
	}

	for _, tt := range tests {
		if got := padRight(tt.input, tt.width); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestSplitTypes(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"steps,heartRate", []string{"steps", "heartRate"}},
		{" steps , heartRate ", []string{"steps", "heartRate"}},
		{"steps,,heartRate,", []string{"steps", "heartRate"}},
		{"", nil},
		{" , ", nil},
	}

	for _, tt := range tests {
		got := splitTypes(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitTypes(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitTypes(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}
