package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"subtrack/internal/service"
)

// SubscriptionHandler handles subscription endpoints.
type SubscriptionHandler struct {
	subscriptionService service.SubscriptionService
}

// NewSubscriptionHandler creates a new subscription handler.
func NewSubscriptionHandler(subscriptionService service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// SubscriptionRequest represents a subscription create/update request.
type SubscriptionRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Price       decimal.Decimal `json:"price"`
	BillingDate string          `json:"billing_date" validate:"required"`
	Categories  []string        `json:"categories" validate:"required,min=1,dive,required"`
	Description string          `json:"description" validate:"omitempty,max=1024"`
}

func (r SubscriptionRequest) toInput() (service.SubscriptionInput, error) {
	billingDate, err := parseDate(r.BillingDate)
	if err != nil {
		return service.SubscriptionInput{}, err
	}
	return service.SubscriptionInput{
		Name:        r.Name,
		Price:       r.Price,
		BillingDate: billingDate,
		Categories:  r.Categories,
		Description: r.Description,
	}, nil
}

// Create godoc
// @Summary Create a subscription
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SubscriptionRequest true "Subscription data"
// @Success 201 {object} model.Subscription
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /subscriptions [post]
func (h *SubscriptionHandler) Create(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req SubscriptionRequest
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

	sub, err := h.subscriptionService.Create(c.Request().Context(), userID, in)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, sub)
}

// List godoc
// @Summary List subscriptions, newest billing date first
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Subscription
// @Failure 401 {object} errors.ErrorResponse
// @Router /subscriptions [get]
func (h *SubscriptionHandler) List(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	subs, err := h.subscriptionService.List(c.Request().Context(), userID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, subs)
}

// Update godoc
// @Summary Update a subscription
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subscription ID"
// @Param request body SubscriptionRequest true "Subscription data"
// @Success 200 {object} model.Subscription
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /subscriptions/{id} [put]
func (h *SubscriptionHandler) Update(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req SubscriptionRequest
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

	sub, err := h.subscriptionService.Update(c.Request().Context(), userID, id, in)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, sub)
}

// Delete godoc
// @Summary Delete a subscription
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subscription ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /subscriptions/{id} [delete]
func (h *SubscriptionHandler) Delete(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.subscriptionService.Delete(c.Request().Context(), userID, id); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "subscription deleted"})
}
