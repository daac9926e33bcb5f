package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tidepool-org/glucolog/readings"
)

// LogGlucoseReading
// (POST /v1/readings)
func (h *Handler) CreateReading(c echo.Context) error {
	dto := CreateReading{}
	if err := c.Bind(&dto); err != nil {
		return err
	}

	timestamp := time.Now()
	if dto.Timestamp != nil {
		timestamp = *dto.Timestamp
	}

	created, err := h.readings.Create(c.Request().Context(), readings.Reading{
		Value:     dto.Value,
		Notes:     dto.Notes,
		Timestamp: timestamp,
	})
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, NewReadingDto(created))
}

// ListGlucoseReadings
// (GET /v1/readings)
func (h *Handler) ListReadings(c echo.Context) error {
	list, err := h.readings.List(c.Request().Context(), pagination(c))
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, NewReadingsDto(list))
}
