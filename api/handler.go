package api

import (
	stderrs "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tidepool-org/glucolog/analytics"
	"github.com/tidepool-org/glucolog/dashboard"
	"github.com/tidepool-org/glucolog/errors"
	"github.com/tidepool-org/glucolog/journal"
	"github.com/tidepool-org/glucolog/readings"
	"github.com/tidepool-org/glucolog/reports"
	"github.com/tidepool-org/glucolog/store"
	"go.uber.org/fx"
)

type Handler struct {
	readings  readings.Service
	journal   journal.Service
	dashboard dashboard.Service
	reports   reports.Service
}

type Params struct {
	fx.In

	Readings  readings.Service
	Journal   journal.Service
	Dashboard dashboard.Service
	Reports   reports.Service
}

func NewHandler(p Params) *Handler {
	return &Handler{
		readings:  p.Readings,
		journal:   p.Journal,
		dashboard: p.Dashboard,
		reports:   p.Reports,
	}
}

func RegisterHandlers(e *echo.Echo, h *Handler) {
	v1 := e.Group("/v1")

	v1.POST("/readings", h.CreateReading)
	v1.GET("/readings", h.ListReadings)

	v1.GET("/analysis", h.GetAnalysis)
	v1.GET("/trends", h.GetTrends)
	v1.GET("/trends/distribution", h.GetDistribution)
	v1.GET("/trends/hourly", h.GetHourlyAverages)

	v1.POST("/medications", h.CreateMedication)
	v1.GET("/medications", h.ListMedications)
	v1.POST("/meals", h.CreateMeal)
	v1.GET("/meals", h.ListMeals)
	v1.POST("/exercise", h.CreateExercise)
	v1.GET("/exercise", h.ListExercises)

	v1.GET("/dashboard", h.GetDashboard)
	v1.GET("/reports/trends", h.GetTrendReport)
}

func pagination(c echo.Context) store.Pagination {
	page := store.DefaultPagination()
	if err := echo.QueryParamsBinder(c).
		Int("offset", &page.Offset).
		Int("limit", &page.Limit).
		BindError(); err != nil {
		return store.DefaultPagination()
	}
	return page
}

// domainError translates store-boundary validation failures and other
// domain errors into the http error taxonomy.
func domainError(err error) error {
	switch {
	case stderrs.Is(err, readings.ErrInvalidReading),
		stderrs.Is(err, journal.ErrInvalidMedication),
		stderrs.Is(err, journal.ErrInvalidMeal),
		stderrs.Is(err, journal.ErrInvalidExercise):
		return errors.HttpError{Code: http.StatusUnprocessableEntity, Err: err}
	case stderrs.Is(err, analytics.ErrInvalidWindow):
		return errors.HttpError{Code: http.StatusBadRequest, Err: err}
	case stderrs.Is(err, readings.ErrNotFound):
		return errors.NotFound
	}
	return err
}
