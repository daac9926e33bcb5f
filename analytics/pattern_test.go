package analytics_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gstruct"

	"github.com/tidepool-org/glucolog/analytics"
	"github.com/tidepool-org/glucolog/readings"
)

func history(values ...int) []*readings.Reading {
	base := time.Date(2023, 4, 1, 8, 0, 0, 0, time.UTC)
	result := make([]*readings.Reading, len(values))
	for i, value := range values {
		result[i] = &readings.Reading{
			Value:     value,
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		}
	}
	return result
}

var _ = Describe("Analyze", func() {
	It("reports unknown risk when there are no readings", func() {
		result := analytics.Analyze(nil)

		Expect(result.RiskLevel).To(Equal(analytics.RiskUnknown))
		Expect(result.Mean).To(BeNil())
		Expect(result.StdDev).To(BeNil())
		Expect(result.Recommendations).To(Equal([]string{analytics.MessageInsufficientData}))
	})

	It("classifies a stable moderate pattern", func() {
		result := analytics.Analyze(history(150, 160, 155))

		Expect(result.RiskLevel).To(Equal(analytics.RiskModerate))
		Expect(result.Mean).To(PointTo(Equal(155.0)))
		Expect(result.StdDev).To(PointTo(BeNumerically("~", 4.1, 0.01)))
		Expect(result.Recommendations).To(Equal([]string{analytics.MessageControlGood}))
	})

	It("classifies a high pattern and recommends a meal plan review", func() {
		result := analytics.Analyze(history(200, 210, 190))

		Expect(result.RiskLevel).To(Equal(analytics.RiskHigh))
		Expect(result.Mean).To(PointTo(Equal(200.0)))
		Expect(result.Recommendations).To(Equal([]string{analytics.MessageHighAverage}))
	})

	It("classifies a low mean as low risk", func() {
		result := analytics.Analyze(history(100, 110, 105))

		Expect(result.RiskLevel).To(Equal(analytics.RiskLow))
		Expect(result.Recommendations).To(Equal([]string{analytics.MessageControlGood}))
	})

	It("treats a mean of exactly 180 as moderate", func() {
		result := analytics.Analyze(history(180, 180))

		Expect(result.RiskLevel).To(Equal(analytics.RiskModerate))
	})

	It("treats a mean of exactly 140 as low", func() {
		result := analytics.Analyze(history(140, 140))

		Expect(result.RiskLevel).To(Equal(analytics.RiskLow))
	})

	It("only considers the last ten readings", func() {
		values := []int{400, 400}
		for i := 0; i < 10; i++ {
			values = append(values, 100)
		}
		result := analytics.Analyze(history(values...))

		Expect(result.RiskLevel).To(Equal(analytics.RiskLow))
		Expect(result.Mean).To(PointTo(Equal(100.0)))
	})

	It("flags high variability", func() {
		result := analytics.Analyze(history(100, 200, 100, 200))

		Expect(result.RiskLevel).To(Equal(analytics.RiskModerate))
		Expect(result.StdDev).To(PointTo(Equal(50.0)))
		Expect(result.Recommendations).To(Equal([]string{analytics.MessageHighVariability}))
	})

	It("flags a low average", func() {
		result := analytics.Analyze(history(60, 60, 60))

		Expect(result.RiskLevel).To(Equal(analytics.RiskLow))
		Expect(result.Recommendations).To(Equal([]string{analytics.MessageLowAverage}))
	})

	It("emits multiple recommendations in rule order", func() {
		result := analytics.Analyze(history(10, 120, 10, 120))

		Expect(result.Recommendations).To(Equal([]string{
			analytics.MessageHighVariability,
			analytics.MessageLowAverage,
		}))
	})

	It("rounds the reported statistics to one decimal place", func() {
		result := analytics.Analyze(history(100, 101, 101))

		Expect(result.Mean).To(PointTo(Equal(100.7)))
	})

	It("is deterministic for identical snapshots", func() {
		snapshot := history(150, 87, 210, 95, 132)

		first := analytics.Analyze(snapshot)
		second := analytics.Analyze(snapshot)

		Expect(first).To(Equal(second))
	})

	It("does not reorder or mutate the snapshot", func() {
		snapshot := history(150, 87, 210)
		analytics.Analyze(snapshot)

		Expect(snapshot[0].Value).To(Equal(150))
		Expect(snapshot[1].Value).To(Equal(87))
		Expect(snapshot[2].Value).To(Equal(210))
	})
})
