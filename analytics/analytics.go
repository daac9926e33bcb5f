// Package analytics derives risk indicators and trend statistics from a
// glucose reading history. All functions are pure: they take a read-only
// snapshot of the history and hold no state between calls.
package analytics

import (
	"errors"
)

type RiskLevel string

const (
	RiskUnknown  RiskLevel = "unknown"
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// AnalysisResult is the outcome of a pattern analysis. Mean and StdDev are
// nil when no readings were considered, which is also the only case in
// which RiskLevel is RiskUnknown. Callers must branch on nil instead of
// reading absent statistics as zero.
type AnalysisResult struct {
	RiskLevel       RiskLevel
	Mean            *float64
	StdDev          *float64
	Recommendations []string
}

type Window string

const (
	WindowLast7Days  Window = "last_7_days"
	WindowLast30Days Window = "last_30_days"
	WindowAllTime    Window = "all_time"
)

var ErrInvalidWindow = errors.New("invalid trend window")

// ParseWindow rejects unrecognized values instead of defaulting, so an
// ambiguous window can never silently degrade to all-time.
func ParseWindow(raw string) (Window, error) {
	switch w := Window(raw); w {
	case WindowLast7Days, WindowLast30Days, WindowAllTime:
		return w, nil
	}
	return "", ErrInvalidWindow
}

// TrendSummary describes the filtered reading set of a single window.
// The statistics are nil when the window contains no readings.
type TrendSummary struct {
	Window      Window
	Count       int
	Mean        *float64
	StdDev      *float64
	Min         *float64
	Max         *float64
	HourlyMeans map[int]float64
}

// Bucket is a single histogram bucket of the glucose distribution,
// covering values in [Lo, Hi).
type Bucket struct {
	Lo    int
	Hi    int
	Count int
}
