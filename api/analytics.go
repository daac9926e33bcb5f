package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tidepool-org/glucolog/analytics"
)

// AnalyzeGlucosePattern
// (GET /v1/analysis)
func (h *Handler) GetAnalysis(c echo.Context) error {
	history, err := h.readings.GetAll(c.Request().Context())
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, NewAnalysisDto(analytics.Analyze(history)))
}

// GetTrendSummary
// (GET /v1/trends)
func (h *Handler) GetTrends(c echo.Context) error {
	window, err := windowParam(c)
	if err != nil {
		return domainError(err)
	}

	history, err := h.readings.GetAll(c.Request().Context())
	if err != nil {
		return domainError(err)
	}

	summary, err := analytics.Summarize(history, window, time.Now())
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, NewTrendSummaryDto(summary))
}

// GetGlucoseDistribution
// (GET /v1/trends/distribution)
func (h *Handler) GetDistribution(c echo.Context) error {
	window, err := windowParam(c)
	if err != nil {
		return domainError(err)
	}

	history, err := h.readings.GetAll(c.Request().Context())
	if err != nil {
		return domainError(err)
	}

	filtered, err := analytics.FilterWindow(history, window, time.Now())
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, NewDistributionDto(analytics.Distribution(filtered)))
}

// GetHourlyAverages
// (GET /v1/trends/hourly)
func (h *Handler) GetHourlyAverages(c echo.Context) error {
	window, err := windowParam(c)
	if err != nil {
		return domainError(err)
	}

	history, err := h.readings.GetAll(c.Request().Context())
	if err != nil {
		return domainError(err)
	}

	filtered, err := analytics.FilterWindow(history, window, time.Now())
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, analytics.HourlyAverages(filtered))
}

// The window defaults to all time only when the parameter is absent;
// present but unrecognized values are rejected.
func windowParam(c echo.Context) (analytics.Window, error) {
	raw := c.QueryParam("window")
	if raw == "" {
		return analytics.WindowAllTime, nil
	}
	return analytics.ParseWindow(raw)
}
