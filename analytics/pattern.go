package analytics

import (
	"github.com/montanaflynn/stats"
	"github.com/tidepool-org/glucolog/readings"
)

// Only the most recent readings are considered when classifying risk.
const patternWindowSize = 10

const (
	MessageInsufficientData = "Not enough data for analysis"
	MessageHighAverage      = "Your blood sugar is running high. Consider reviewing your meal plan."
	MessageHighVariability  = "Your blood sugar shows high variability. Try to maintain consistent meal times."
	MessageLowAverage       = "Your blood sugar is running low. Consider adjusting your medication."
	MessageControlGood      = "Your blood sugar control looks good! Keep up the good work."
)

// Analyze classifies the glucose pattern of the most recent readings.
// The history must be ordered oldest to newest; the store's natural
// insertion order satisfies this and no re-sorting is performed here.
func Analyze(history []*readings.Reading) AnalysisResult {
	tail := history
	if len(tail) > patternWindowSize {
		tail = tail[len(tail)-patternWindowSize:]
	}

	if len(tail) == 0 {
		return AnalysisResult{
			RiskLevel:       RiskUnknown,
			Recommendations: []string{MessageInsufficientData},
		}
	}

	values := toValues(tail)
	mean, _ := stats.Mean(values)
	std, _ := stats.StandardDeviationPopulation(values)

	risk := RiskLow
	switch {
	case mean > 180:
		risk = RiskHigh
	case mean > 140:
		risk = RiskModerate
	}

	// The rules are not exclusive and fire in a fixed order. They evaluate
	// on the unrounded statistics.
	var recommendations []string
	if mean > 180 {
		recommendations = append(recommendations, MessageHighAverage)
	}
	if std > 40 {
		recommendations = append(recommendations, MessageHighVariability)
	}
	if mean < 70 {
		recommendations = append(recommendations, MessageLowAverage)
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations, MessageControlGood)
	}

	return AnalysisResult{
		RiskLevel:       risk,
		Mean:            roundToTenth(mean),
		StdDev:          roundToTenth(std),
		Recommendations: recommendations,
	}
}

func toValues(history []*readings.Reading) []float64 {
	values := make([]float64, len(history))
	for i, r := range history {
		values[i] = float64(r.Value)
	}
	return values
}

func roundToTenth(v float64) *float64 {
	rounded, _ := stats.Round(v, 1)
	return &rounded
}
