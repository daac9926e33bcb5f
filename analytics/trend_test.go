package analytics_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gstruct"

	"github.com/tidepool-org/glucolog/analytics"
	"github.com/tidepool-org/glucolog/readings"
)

func readingAt(timestamp time.Time, value int) *readings.Reading {
	return &readings.Reading{
		Value:     value,
		Timestamp: timestamp,
	}
}

var _ = Describe("ParseWindow", func() {
	It("accepts the known windows", func() {
		for _, raw := range []string{"last_7_days", "last_30_days", "all_time"} {
			window, err := analytics.ParseWindow(raw)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(window)).To(Equal(raw))
		}
	})

	It("rejects unrecognized windows instead of defaulting", func() {
		_, err := analytics.ParseWindow("last_90_days")
		Expect(err).To(MatchError(analytics.ErrInvalidWindow))
	})
})

var _ = Describe("Summarize", func() {
	now := time.Date(2023, 4, 15, 12, 0, 0, 0, time.UTC)

	var snapshot []*readings.Reading

	BeforeEach(func() {
		snapshot = []*readings.Reading{
			readingAt(now.AddDate(0, 0, -40), 250),
			readingAt(now.AddDate(0, 0, -10), 200),
			readingAt(now.AddDate(0, 0, -3), 100),
			readingAt(now.Add(-time.Hour), 150),
		}
	})

	It("rejects an unrecognized window", func() {
		_, err := analytics.Summarize(snapshot, analytics.Window("yesterday"), now)
		Expect(err).To(MatchError(analytics.ErrInvalidWindow))
	})

	It("keeps all readings for the all time window", func() {
		summary, err := analytics.Summarize(snapshot, analytics.WindowAllTime, now)

		Expect(err).ToNot(HaveOccurred())
		Expect(summary.Count).To(Equal(4))
		Expect(summary.Mean).To(PointTo(Equal(175.0)))
		Expect(summary.Min).To(PointTo(Equal(100.0)))
		Expect(summary.Max).To(PointTo(Equal(250.0)))
	})

	It("filters the last seven days", func() {
		summary, err := analytics.Summarize(snapshot, analytics.WindowLast7Days, now)

		Expect(err).ToNot(HaveOccurred())
		Expect(summary.Count).To(Equal(2))
		Expect(summary.Mean).To(PointTo(Equal(125.0)))
		Expect(summary.Min).To(PointTo(Equal(100.0)))
		Expect(summary.Max).To(PointTo(Equal(150.0)))
	})

	It("filters the last thirty days", func() {
		summary, err := analytics.Summarize(snapshot, analytics.WindowLast30Days, now)

		Expect(err).ToNot(HaveOccurred())
		Expect(summary.Count).To(Equal(3))
	})

	It("nests the windows", func() {
		week, err := analytics.Summarize(snapshot, analytics.WindowLast7Days, now)
		Expect(err).ToNot(HaveOccurred())
		month, err := analytics.Summarize(snapshot, analytics.WindowLast30Days, now)
		Expect(err).ToNot(HaveOccurred())
		all, err := analytics.Summarize(snapshot, analytics.WindowAllTime, now)
		Expect(err).ToNot(HaveOccurred())

		Expect(week.Count).To(BeNumerically("<=", month.Count))
		Expect(month.Count).To(BeNumerically("<=", all.Count))
	})

	It("includes a reading exactly on the window boundary", func() {
		boundary := []*readings.Reading{
			readingAt(now.AddDate(0, 0, -7), 120),
		}
		summary, err := analytics.Summarize(boundary, analytics.WindowLast7Days, now)

		Expect(err).ToNot(HaveOccurred())
		Expect(summary.Count).To(Equal(1))
	})

	It("retains readings timestamped in the future", func() {
		future := append(snapshot, readingAt(now.Add(time.Hour), 90))
		summary, err := analytics.Summarize(future, analytics.WindowLast7Days, now)

		Expect(err).ToNot(HaveOccurred())
		Expect(summary.Count).To(Equal(3))
		Expect(summary.Min).To(PointTo(Equal(90.0)))
	})

	It("reports absent statistics for an empty window", func() {
		summary, err := analytics.Summarize(nil, analytics.WindowLast7Days, now)

		Expect(err).ToNot(HaveOccurred())
		Expect(summary.Count).To(Equal(0))
		Expect(summary.Mean).To(BeNil())
		Expect(summary.StdDev).To(BeNil())
		Expect(summary.Min).To(BeNil())
		Expect(summary.Max).To(BeNil())
		Expect(summary.HourlyMeans).To(BeEmpty())
	})

	It("uses the population standard deviation", func() {
		pair := []*readings.Reading{
			readingAt(now.Add(-time.Hour), 100),
			readingAt(now.Add(-2*time.Hour), 200),
		}
		summary, err := analytics.Summarize(pair, analytics.WindowAllTime, now)

		Expect(err).ToNot(HaveOccurred())
		Expect(summary.StdDev).To(PointTo(Equal(50.0)))
	})
})

var _ = Describe("HourlyAverages", func() {
	It("averages readings per hour of day and omits empty hours", func() {
		day := time.Date(2023, 4, 14, 0, 0, 0, 0, time.UTC)
		snapshot := []*readings.Reading{
			readingAt(day.Add(8*time.Hour), 100),
			readingAt(day.Add(8*time.Hour+30*time.Minute), 100),
			readingAt(day.Add(20*time.Hour), 200),
		}

		means := analytics.HourlyAverages(snapshot)

		Expect(means).To(HaveLen(2))
		Expect(means).To(HaveKeyWithValue(8, 100.0))
		Expect(means).To(HaveKeyWithValue(20, 200.0))
	})

	It("groups the same hour across different days", func() {
		first := time.Date(2023, 4, 13, 8, 0, 0, 0, time.UTC)
		second := time.Date(2023, 4, 14, 8, 0, 0, 0, time.UTC)
		snapshot := []*readings.Reading{
			readingAt(first, 100),
			readingAt(second, 200),
		}

		means := analytics.HourlyAverages(snapshot)

		Expect(means).To(Equal(map[int]float64{8: 150.0}))
	})
})

var _ = Describe("Distribution", func() {
	It("buckets values in ascending order and omits empty buckets", func() {
		base := time.Date(2023, 4, 14, 8, 0, 0, 0, time.UTC)
		snapshot := []*readings.Reading{
			readingAt(base, 95),
			readingAt(base.Add(time.Hour), 100),
			readingAt(base.Add(2*time.Hour), 119),
			readingAt(base.Add(3*time.Hour), 200),
		}

		buckets := analytics.Distribution(snapshot)

		Expect(buckets).To(Equal([]analytics.Bucket{
			{Lo: 80, Hi: 100, Count: 1},
			{Lo: 100, Hi: 120, Count: 2},
			{Lo: 200, Hi: 220, Count: 1},
		}))
	})

	It("returns no buckets for an empty history", func() {
		Expect(analytics.Distribution(nil)).To(BeEmpty())
	})
})
