package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"subtrack/internal/service"
)

// AnalyticsHandler handles the aggregated analytics endpoint.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Overview godoc
// @Summary Spending overview
// @Description Category breakdown, monthly/annual totals and upcoming renewals.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Overview
// @Failure 401 {object} errors.ErrorResponse
// @Router /analytics/overview [get]
func (h *AnalyticsHandler) Overview(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	overview, err := h.analyticsService.Overview(c.Request().Context(), userID, time.Now())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, overview)
}
