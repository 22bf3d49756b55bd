package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/netandpro/booking-api/internal/repository"
)

// The dashboard shows the five most requested services.
const topServicesLimit = 5

// StatsHandler serves the admin dashboard aggregates.
type StatsHandler struct {
	Stats *repository.StatsRepo
}

// NewStatsHandler constructs a StatsHandler.
func NewStatsHandler(stats *repository.StatsRepo) *StatsHandler {
	return &StatsHandler{Stats: stats}
}

// GetStats handles GET /api/stats and returns the full dashboard payload:
// total event count, breakdown by status, per-month counts for the current
// year and the most requested services.
func (h *StatsHandler) GetStats(c echo.Context) error {
	ctx := c.Request().Context()

	total, err := h.Stats.TotalCount(ctx)
	if err != nil {
		c.Logger().Errorf("stats total: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	byStatus, err := h.Stats.CountByStatus(ctx)
	if err != nil {
		c.Logger().Errorf("stats by status: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	byMonth, err := h.Stats.CountByMonthThisYear(ctx)
	if err != nil {
		c.Logger().Errorf("stats by month: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	topServices, err := h.Stats.TopServices(ctx, topServicesLimit)
	if err != nil {
		c.Logger().Errorf("stats top services: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total":       total,
		"byStatus":    byStatus,
		"byMonth":     byMonth,
		"topServices": topServices,
	})
}
