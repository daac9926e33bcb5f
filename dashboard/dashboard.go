// Package dashboard assembles the overview shown on the landing page:
// the latest journal activity together with the current pattern analysis.
package dashboard

import (
	"context"

	"github.com/tidepool-org/glucolog/analytics"
	"github.com/tidepool-org/glucolog/journal"
	"github.com/tidepool-org/glucolog/readings"
	"github.com/tidepool-org/glucolog/store"
)

// The landing page lists the three most recent entries of each record type.
const recentCount = 3

type Overview struct {
	RecentReadings    []*readings.Reading
	RecentMedications []*journal.Medication
	RecentMeals       []*journal.Meal
	Analysis          analytics.AnalysisResult
}

type Service interface {
	GetOverview(ctx context.Context) (*Overview, error)
}

type service struct {
	readings readings.Service
	journal  journal.Service
}

var _ Service = &service{}

func NewService(readings readings.Service, journal journal.Service) (Service, error) {
	return &service{
		readings: readings,
		journal:  journal,
	}, nil
}

func (s *service) GetOverview(ctx context.Context) (*Overview, error) {
	history, err := s.readings.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	recent := store.Pagination{Limit: recentCount}
	recentReadings, err := s.readings.List(ctx, recent)
	if err != nil {
		return nil, err
	}
	medications, err := s.journal.ListMedications(ctx, recent)
	if err != nil {
		return nil, err
	}
	meals, err := s.journal.ListMeals(ctx, recent)
	if err != nil {
		return nil, err
	}

	return &Overview{
		RecentReadings:    recentReadings,
		RecentMedications: medications,
		RecentMeals:       meals,
		Analysis:          analytics.Analyze(history),
	}, nil
}
