package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aretelab/arete-api/internal/core/ports"
)

type InsightsHandler struct {
	service ports.InsightsService
}

func NewInsightsHandler(service ports.InsightsService) *InsightsHandler {
	return &InsightsHandler{service: service}
}

// DashboardStats returns the dashboard scores and history.
//
// @Summary      Get dashboard stats
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Router       /dashboard/stats [get]
func (h *InsightsHandler) DashboardStats(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	stats, err := h.service.DashboardStats(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}

// WeeklyReflection returns the weekly summary, insights, and focus areas.
//
// @Summary      Get the weekly reflection
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.WeeklyReflection
// @Router       /reflection/weekly [get]
func (h *InsightsHandler) WeeklyReflection(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	reflection, err := h.service.WeeklyReflection(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reflection)
}
