package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"subtrack/internal/service"
)

// PreferencesHandler handles the preferences singleton endpoints.
type PreferencesHandler struct {
	preferencesService service.PreferencesService
}

// NewPreferencesHandler creates a new preferences handler.
func NewPreferencesHandler(preferencesService service.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{preferencesService: preferencesService}
}

// PreferencesRequest represents a preferences update. Omitted fields are
// unchanged.
type PreferencesRequest struct {
	EmailNotifications *bool `json:"email_notifications"`
	RenewalReminders   *bool `json:"renewal_reminders"`
	BudgetAlerts       *bool `json:"budget_alerts"`
	WeeklySummary      *bool `json:"weekly_summary"`
}

// Get returns the user's preferences, creating defaults on first access.
func (h *PreferencesHandler) Get(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	prefs, err := h.preferencesService.Get(c.Request().Context(), userID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, prefs)
}

// Update applies partial changes to the preferences.
func (h *PreferencesHandler) Update(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req PreferencesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	prefs, err := h.preferencesService.Update(c.Request().Context(), userID, service.PreferencesInput{
		EmailNotifications: req.EmailNotifications,
		RenewalReminders:   req.RenewalReminders,
		BudgetAlerts:       req.BudgetAlerts,
		WeeklySummary:      req.WeeklySummary,
	})
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, prefs)
}
