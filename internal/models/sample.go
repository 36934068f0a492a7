// ABOUTME: Canonical flat record types returned by the access layer.
// ABOUTME: All boundary timestamps are Unix epoch seconds as float64.
package models

import (
	"math"
	"time"
)

// WorkoutRecord is the canonical shape of a stored workout. Distance and
// calories are 0 when the underlying sample carries no value, never
// missing, so aggregate arithmetic stays total.
type WorkoutRecord struct {
	ID           string            `json:"id"`
	StartTime    float64           `json:"startTime"`
	EndTime      float64           `json:"endTime"`
	Duration     float64           `json:"durationSeconds"`
	Distance     float64           `json:"distanceMeters"`
	Calories     float64           `json:"caloriesKilocalories"`
	ActivityType string            `json:"activityType"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// QuantitySample is a generic time-stamped scalar reading in the kind's
// canonical unit (bpm, percent, milliliters, ...).
type QuantitySample struct {
	ID        string  `json:"id"`
	Value     float64 `json:"value"`
	StartTime float64 `json:"startTime"`
	EndTime   float64 `json:"endTime"`
}

// SleepStage classifies one sleep analysis sample.
type SleepStage string

const (
	StageInBed   SleepStage = "inBed"
	StageAsleep  SleepStage = "asleep"
	StageAwake   SleepStage = "awake"
	StageCore    SleepStage = "core"
	StageDeep    SleepStage = "deep"
	StageREM     SleepStage = "rem"
	StageUnknown SleepStage = "unknown"
)

// SleepSample is one sleep analysis interval. Duration is always
// EndTime - StartTime in seconds.
type SleepSample struct {
	ID        string     `json:"id"`
	Stage     SleepStage `json:"stage"`
	StartTime float64    `json:"startTime"`
	EndTime   float64    `json:"endTime"`
	Duration  float64    `json:"durationSeconds"`
}

// WorkoutInput is the caller-supplied payload for saving a workout. The
// store assigns the record ID on save.
type WorkoutInput struct {
	StartTime    float64           `json:"startTime"`
	EndTime      float64           `json:"endTime"`
	Duration     float64           `json:"durationSeconds"`
	Distance     float64           `json:"distanceMeters"`
	Calories     float64           `json:"caloriesKcal"`
	ActivityType string            `json:"activityType,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// EpochToTime converts boundary epoch seconds to a time.Time.
// Zero converts to the zero time, which predicates treat as unbounded.
func EpochToTime(sec float64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(frac*float64(time.Second))).UTC()
}

// TimeToEpoch converts a time.Time back to boundary epoch seconds.
func TimeToEpoch(t time.Time) float64 {
	if t.IsZero() {
		return 0
	}
	return float64(t.UnixNano()) / float64(time.Second)
}
