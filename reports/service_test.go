package reports_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/tidepool-org/glucolog/analytics"
	"github.com/tidepool-org/glucolog/readings"
	readingsTest "github.com/tidepool-org/glucolog/readings/test"
	"github.com/tidepool-org/glucolog/reports"
)

var _ = Describe("Reports Service", func() {
	var ctrl *gomock.Controller
	var readingsService *readingsTest.MockService
	var service reports.Service

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		readingsService = readingsTest.NewMockService(ctrl)

		var err error
		service, err = reports.NewService(readingsService)
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("GenerateTrendReport", func() {
		It("rejects an unknown window", func() {
			readingsService.EXPECT().
				GetAll(gomock.Any()).
				Return(nil, nil)

			_, _, err := service.GenerateTrendReport(context.Background(), "yesterday", time.Now())
			Expect(err).To(MatchError(analytics.ErrInvalidWindow))
		})

		It("only includes readings inside the window", func() {
			now := time.Date(2023, 4, 30, 12, 0, 0, 0, time.UTC)
			history := []*readings.Reading{
				{Value: 100, Timestamp: now.AddDate(0, 0, -20)},
				{Value: 200, Timestamp: now.AddDate(0, 0, -1)},
			}
			readingsService.EXPECT().
				GetAll(gomock.Any()).
				Return(history, nil)

			file, filename, err := service.GenerateTrendReport(context.Background(), analytics.WindowLast7Days, now)

			Expect(err).ToNot(HaveOccurred())
			Expect(filename).To(HavePrefix("glucose-trends-last_7_days-"))

			sh := file.Sheet[reports.ReportSheetNameReadings]
			Expect(sh.MaxRow).To(Equal(2))
		})
	})
})
