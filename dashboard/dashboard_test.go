package dashboard_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/tidepool-org/glucolog/analytics"
	"github.com/tidepool-org/glucolog/dashboard"
	"github.com/tidepool-org/glucolog/journal"
	journalTest "github.com/tidepool-org/glucolog/journal/test"
	"github.com/tidepool-org/glucolog/readings"
	readingsTest "github.com/tidepool-org/glucolog/readings/test"
	"github.com/tidepool-org/glucolog/store"
)

var _ = Describe("Dashboard Service", func() {
	var ctrl *gomock.Controller
	var readingsService *readingsTest.MockService
	var journalService *journalTest.MockService
	var service dashboard.Service

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		readingsService = readingsTest.NewMockService(ctrl)
		journalService = journalTest.NewMockService(ctrl)

		var err error
		service, err = dashboard.NewService(readingsService, journalService)
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("GetOverview", func() {
		It("combines recent entries with the pattern analysis", func() {
			base := time.Date(2023, 4, 1, 8, 0, 0, 0, time.UTC)
			history := []*readings.Reading{
				{Value: 200, Timestamp: base},
				{Value: 210, Timestamp: base.Add(time.Hour)},
				{Value: 190, Timestamp: base.Add(2 * time.Hour)},
			}
			recent := store.Pagination{Limit: 3}
			medication := journalTest.RandomMedication()
			meal := journalTest.RandomMeal()

			readingsService.EXPECT().
				GetAll(gomock.Any()).
				Return(history, nil)
			readingsService.EXPECT().
				List(gomock.Any(), recent).
				Return([]*readings.Reading{history[2], history[1], history[0]}, nil)
			journalService.EXPECT().
				ListMedications(gomock.Any(), recent).
				Return([]*journal.Medication{&medication}, nil)
			journalService.EXPECT().
				ListMeals(gomock.Any(), recent).
				Return([]*journal.Meal{&meal}, nil)

			overview, err := service.GetOverview(context.Background())

			Expect(err).ToNot(HaveOccurred())
			Expect(overview.RecentReadings).To(HaveLen(3))
			Expect(overview.RecentMedications).To(HaveLen(1))
			Expect(overview.RecentMeals).To(HaveLen(1))
			Expect(overview.Analysis.RiskLevel).To(Equal(analytics.RiskHigh))
		})

		It("analyzes the full history, not just the recent slice", func() {
			history := make([]*readings.Reading, 0, 12)
			base := time.Date(2023, 4, 1, 8, 0, 0, 0, time.UTC)
			for i := 0; i < 12; i++ {
				history = append(history, &readings.Reading{
					Value:     100,
					Timestamp: base.Add(time.Duration(i) * time.Hour),
				})
			}
			recent := store.Pagination{Limit: 3}

			readingsService.EXPECT().
				GetAll(gomock.Any()).
				Return(history, nil)
			readingsService.EXPECT().
				List(gomock.Any(), recent).
				Return(history[9:], nil)
			journalService.EXPECT().
				ListMedications(gomock.Any(), recent).
				Return(nil, nil)
			journalService.EXPECT().
				ListMeals(gomock.Any(), recent).
				Return(nil, nil)

			overview, err := service.GetOverview(context.Background())

			Expect(err).ToNot(HaveOccurred())
			Expect(overview.Analysis.RiskLevel).To(Equal(analytics.RiskLow))
		})

		It("reports unknown risk for an empty journal", func() {
			recent := store.Pagination{Limit: 3}

			readingsService.EXPECT().
				GetAll(gomock.Any()).
				Return(nil, nil)
			readingsService.EXPECT().
				List(gomock.Any(), recent).
				Return(nil, nil)
			journalService.EXPECT().
				ListMedications(gomock.Any(), recent).
				Return(nil, nil)
			journalService.EXPECT().
				ListMeals(gomock.Any(), recent).
				Return(nil, nil)

			overview, err := service.GetOverview(context.Background())

			Expect(err).ToNot(HaveOccurred())
			Expect(overview.Analysis.RiskLevel).To(Equal(analytics.RiskUnknown))
			Expect(overview.RecentReadings).To(BeEmpty())
		})

		It("propagates repository errors", func() {
			readingsService.EXPECT().
				GetAll(gomock.Any()).
				Return(nil, context.DeadlineExceeded)

			_, err := service.GetOverview(context.Background())
			Expect(err).To(MatchError(context.DeadlineExceeded))
		})
	})
})
