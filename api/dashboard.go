package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetDashboard
// (GET /v1/dashboard)
func (h *Handler) GetDashboard(c echo.Context) error {
	overview, err := h.dashboard.GetOverview(c.Request().Context())
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, NewDashboardDto(overview))
}
