package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the minimal page shells the request gate protects. The
// real UI is a separate frontend; these exist so unauthenticated navigation
// lands somewhere sensible.
type PageHandler struct{}

// NewPageHandler creates a new page handler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Login renders the login page shell.
func (h *PageHandler) Login(c echo.Context) error {
	return c.HTML(http.StatusOK, `<html><body><h1>Log in</h1></body></html>`)
}

// Signup renders the signup page shell.
func (h *PageHandler) Signup(c echo.Context) error {
	return c.HTML(http.StatusOK, `<html><body><h1>Sign up</h1></body></html>`)
}

// Dashboard renders the dashboard shell; the gate guarantees an identity.
func (h *PageHandler) Dashboard(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.HTML(http.StatusOK, `<html><body><h1>Dashboard</h1><p>`+userID.String()+`</p></body></html>`)
}
