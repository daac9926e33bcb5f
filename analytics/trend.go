package analytics

import (
	"sort"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/tidepool-org/glucolog/readings"
)

// Values are bucketed in 20 mg/dL steps for the distribution histogram.
const distributionBucketWidth = 20

// Summarize computes the summary statistics of the readings that fall
// inside the given window. The window's lower bound is inclusive and
// there is no upper bound, so readings timestamped after now are kept.
func Summarize(history []*readings.Reading, window Window, now time.Time) (TrendSummary, error) {
	filtered, err := FilterWindow(history, window, now)
	if err != nil {
		return TrendSummary{}, err
	}

	summary := TrendSummary{
		Window: window,
		Count:  len(filtered),
	}
	if len(filtered) == 0 {
		return summary, nil
	}

	values := toValues(filtered)
	mean, _ := stats.Mean(values)
	std, _ := stats.StandardDeviationPopulation(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)

	summary.Mean = &mean
	summary.StdDev = &std
	summary.Min = &min
	summary.Max = &max
	summary.HourlyMeans = HourlyAverages(filtered)

	return summary, nil
}

// HourlyAverages groups readings by local hour of day and averages the
// values per hour. Hours without readings have no entry in the result.
func HourlyAverages(history []*readings.Reading) map[int]float64 {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, r := range history {
		hour := r.Timestamp.Hour()
		sums[hour] += float64(r.Value)
		counts[hour]++
	}

	means := make(map[int]float64, len(sums))
	for hour, sum := range sums {
		means[hour] = sum / float64(counts[hour])
	}
	return means
}

// Distribution builds a histogram of the reading values. Empty buckets
// are omitted and the result is ordered by ascending bucket bound.
func Distribution(history []*readings.Reading) []Bucket {
	counts := make(map[int]int)
	for _, r := range history {
		counts[r.Value/distributionBucketWidth]++
	}

	indexes := make([]int, 0, len(counts))
	for idx := range counts {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	buckets := make([]Bucket, 0, len(indexes))
	for _, idx := range indexes {
		buckets = append(buckets, Bucket{
			Lo:    idx * distributionBucketWidth,
			Hi:    (idx + 1) * distributionBucketWidth,
			Count: counts[idx],
		})
	}
	return buckets
}

// FilterWindow returns the readings that fall inside the window. The
// lower bound is inclusive; readings timestamped after now are retained.
func FilterWindow(history []*readings.Reading, window Window, now time.Time) ([]*readings.Reading, error) {
	var cutoff time.Time
	switch window {
	case WindowAllTime:
		return history, nil
	case WindowLast7Days:
		cutoff = now.AddDate(0, 0, -7)
	case WindowLast30Days:
		cutoff = now.AddDate(0, 0, -30)
	default:
		return nil, ErrInvalidWindow
	}

	filtered := make([]*readings.Reading, 0, len(history))
	for _, r := range history {
		if !r.Timestamp.Before(cutoff) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}
