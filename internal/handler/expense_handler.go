package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"subtrack/internal/service"
)

// ExpenseHandler handles expense endpoints.
type ExpenseHandler struct {
	expenseService service.ExpenseService
}

// NewExpenseHandler creates a new expense handler.
func NewExpenseHandler(expenseService service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ExpenseRequest represents an expense create/update request.
type ExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category" validate:"required,max=255"`
	Date        string          `json:"date" validate:"required"`
	Description string          `json:"description" validate:"omitempty,max=1024"`
}

func (r ExpenseRequest) toInput() (service.ExpenseInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return service.ExpenseInput{}, err
	}
	return service.ExpenseInput{
		Amount:      r.Amount,
		Category:    r.Category,
		Date:        date,
		Description: r.Description,
	}, nil
}

// Create records a new expense for the authenticated user.
func (h *ExpenseHandler) Create(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req ExpenseRequest
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

	expense, err := h.expenseService.Create(c.Request().Context(), userID, in)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, expense)
}

// List returns the user's expenses, newest first.
func (h *ExpenseHandler) List(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	expenses, err := h.expenseService.List(c.Request().Context(), userID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, expenses)
}

// Update replaces an expense's fields, scoped to the owning user.
func (h *ExpenseHandler) Update(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req ExpenseRequest
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

	expense, err := h.expenseService.Update(c.Request().Context(), userID, id, in)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, expense)
}

// Delete removes an expense, scoped to the owning user.
func (h *ExpenseHandler) Delete(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.expenseService.Delete(c.Request().Context(), userID, id); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "expense deleted"})
}
