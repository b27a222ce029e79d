package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mimarfolio/internal/service"
)

// StatsHandler serves admin dashboard statistics.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Dashboard godoc
// @Summary Entity counts for the admin dashboard
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.DashboardStats
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/stats [get]
func (h *StatsHandler) Dashboard(c echo.Context) error {
	stats, err := h.statsService.Dashboard(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
