package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ExportTrendReport
// (GET /v1/reports/trends)
func (h *Handler) GetTrendReport(c echo.Context) error {
	window, err := windowParam(c)
	if err != nil {
		return domainError(err)
	}

	report, filename, err := h.reports.GenerateTrendReport(c.Request().Context(), window, time.Now())
	if err != nil {
		return domainError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)

	return report.Write(c.Response())
}
