package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"subtrack/internal/service"
)

// IncomeHandler handles income endpoints.
type IncomeHandler struct {
	incomeService service.IncomeService
}

// NewIncomeHandler creates a new income handler.
func NewIncomeHandler(incomeService service.IncomeService) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// IncomeRequest represents an income create/update request.
type IncomeRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Source      string          `json:"source" validate:"required,max=255"`
	Date        string          `json:"date" validate:"required"`
	Description string          `json:"description" validate:"omitempty,max=1024"`
}

func (r IncomeRequest) toInput() (service.IncomeInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return service.IncomeInput{}, err
	}
	return service.IncomeInput{
		Amount:      r.Amount,
		Source:      r.Source,
		Date:        date,
		Description: r.Description,
	}, nil
}

// Create records a new income entry for the authenticated user.
func (h *IncomeHandler) Create(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req IncomeRequest
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

	income, err := h.incomeService.Create(c.Request().Context(), userID, in)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, income)
}

// List returns the user's income entries, newest first.
func (h *IncomeHandler) List(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	entries, err := h.incomeService.List(c.Request().Context(), userID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, entries)
}

// Update replaces an income entry's fields, scoped to the owning user.
func (h *IncomeHandler) Update(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req IncomeRequest
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

	income, err := h.incomeService.Update(c.Request().Context(), userID, id, in)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, income)
}

// Delete removes an income entry, scoped to the owning user.
func (h *IncomeHandler) Delete(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.incomeService.Delete(c.Request().Context(), userID, id); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "income entry deleted"})
}
