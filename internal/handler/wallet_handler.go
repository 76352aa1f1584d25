package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"subtrack/internal/service"
)

// WalletHandler handles the wallet singleton endpoints.
type WalletHandler struct {
	walletService service.WalletService
}

// NewWalletHandler creates a new wallet handler.
func NewWalletHandler(walletService service.WalletService) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

// WalletRequest represents a wallet update. Omitted fields are unchanged.
type WalletRequest struct {
	Balance       *decimal.Decimal `json:"balance"`
	MonthlyBudget *decimal.Decimal `json:"monthly_budget"`
	Currency      *string          `json:"currency" validate:"omitempty,len=3"`
}

// Get returns the user's wallet, creating it with defaults on first access.
func (h *WalletHandler) Get(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	wallet, err := h.walletService.Get(c.Request().Context(), userID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, wallet)
}

// Update applies partial changes to the wallet.
func (h *WalletHandler) Update(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req WalletRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	wallet, err := h.walletService.Update(c.Request().Context(), userID, service.WalletInput{
		Balance:       req.Balance,
		MonthlyBudget: req.MonthlyBudget,
		Currency:      req.Currency,
	})
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, wallet)
}
