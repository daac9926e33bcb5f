package reports

import (
	"context"
	"time"

	"github.com/tealeg/xlsx/v3"
	"github.com/tidepool-org/glucolog/analytics"
	"github.com/tidepool-org/glucolog/readings"
)

type Service interface {
	GenerateTrendReport(ctx context.Context, window analytics.Window, now time.Time) (*xlsx.File, string, error)
}

type service struct {
	readings readings.Service
}

var _ Service = &service{}

func NewService(readings readings.Service) (Service, error) {
	return &service{
		readings: readings,
	}, nil
}

// GenerateTrendReport builds a workbook for the given window and returns
// it together with the suggested filename.
func (s *service) GenerateTrendReport(ctx context.Context, window analytics.Window, now time.Time) (*xlsx.File, string, error) {
	history, err := s.readings.GetAll(ctx)
	if err != nil {
		return nil, "", err
	}

	filtered, err := analytics.FilterWindow(history, window, now)
	if err != nil {
		return nil, "", err
	}
	summary, err := analytics.Summarize(filtered, window, now)
	if err != nil {
		return nil, "", err
	}

	report := NewReport(window, summary, filtered)
	file, err := report.Generate()
	if err != nil {
		return nil, "", err
	}
	return file, report.Filename(), nil
}
