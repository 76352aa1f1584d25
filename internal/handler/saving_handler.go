package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"subtrack/internal/service"
)

// SavingHandler handles savings-goal endpoints.
type SavingHandler struct {
	savingService service.SavingService
}

// NewSavingHandler creates a new saving handler.
func NewSavingHandler(savingService service.SavingService) *SavingHandler {
	return &SavingHandler{savingService: savingService}
}

// SavingRequest represents a savings-goal create/update request.
type SavingRequest struct {
	Name          string          `json:"name" validate:"required,max=255"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      string          `json:"deadline" validate:"omitempty"`
}

func (r SavingRequest) toInput() (service.SavingInput, error) {
	var deadline *time.Time
	if r.Deadline != "" {
		d, err := parseDate(r.Deadline)
		if err != nil {
			return service.SavingInput{}, err
		}
		deadline = &d
	}
	return service.SavingInput{
		Name:          r.Name,
		TargetAmount:  r.TargetAmount,
		CurrentAmount: r.CurrentAmount,
		Deadline:      deadline,
	}, nil
}

// Create records a new savings goal for the authenticated user.
func (h *SavingHandler) Create(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req SavingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	in, err := req.toInput()
	if err != nil {
		return mapError(err)
	}

	saving, err := h.savingService.Create(c.Request().Context(), userID, in)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, saving)
}

// List returns the user's savings goals, newest first.
func (h *SavingHandler) List(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	savings, err := h.savingService.List(c.Request().Context(), userID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, savings)
}

// Update replaces a savings goal's fields, scoped to the owning user.
func (h *SavingHandler) Update(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req SavingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	in, err := req.toInput()
	if err != nil {
		return mapError(err)
	}

	saving, err := h.savingService.Update(c.Request().Context(), userID, id, in)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, saving)
}

// Delete removes a savings goal, scoped to the owning user.
func (h *SavingHandler) Delete(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.savingService.Delete(c.Request().Context(), userID, id); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "savings goal deleted"})
}
