package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"subtrack/internal/auth"
	"subtrack/internal/config"
	apperrors "subtrack/internal/errors"
	"subtrack/internal/handler"
	"subtrack/internal/middleware"
)

// Handlers bundles everything Register wires up.
type Handlers struct {
	Auth          *handler.AuthHandler
	Subscriptions *handler.SubscriptionHandler
	Expenses      *handler.ExpenseHandler
	Savings       *handler.SavingHandler
	Income        *handler.IncomeHandler
	Wallet        *handler.WalletHandler
	Preferences   *handler.PreferencesHandler
	Notifications *handler.NotificationHandler
	Analytics     *handler.AnalyticsHandler
	Health        *handler.HealthHandler
	Pages         *handler.PageHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, edgeVerifier auth.TokenVerifier, h Handlers) {
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", h.Health.Check)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Page routes behind the gate. Anything that is not /api, /healthz or
	// /swagger gets classified here.
	e.Use(middleware.Gate(edgeVerifier))
	e.GET("/login", h.Pages.Login)
	e.GET("/signup", h.Pages.Signup)
	e.GET("/dashboard", h.Pages.Dashboard)

	api := e.Group("/api")

	// Public auth routes
	api.POST("/auth/signup", h.Auth.Signup)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/logout", h.Auth.Logout)
	api.POST("/auth/reset/request", h.Auth.RequestReset)
	api.POST("/auth/reset/confirm", h.Auth.ConfirmReset)

	// Secured routes: token from the session cookie or a bearer header.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "cookie:" + auth.SessionCookieName + ",header:" + echo.HeaderAuthorization,
		ErrorHandler: func(c echo.Context, err error) error {
			// Generic body regardless of which check failed.
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "unauthorized",
				Code:  "UNAUTHORIZED",
			})
		},
	}), middleware.InjectSubject())

	secured.GET("/me", h.Auth.Me)

	secured.POST("/subscriptions", h.Subscriptions.Create)
	secured.GET("/subscriptions", h.Subscriptions.List)
	secured.PUT("/subscriptions/:id", h.Subscriptions.Update)
	secured.DELETE("/subscriptions/:id", h.Subscriptions.Delete)

	secured.POST("/expenses", h.Expenses.Create)
	secured.GET("/expenses", h.Expenses.List)
	secured.PUT("/expenses/:id", h.Expenses.Update)
	secured.DELETE("/expenses/:id", h.Expenses.Delete)

	secured.POST("/savings", h.Savings.Create)
	secured.GET("/savings", h.Savings.List)
	secured.PUT("/savings/:id", h.Savings.Update)
	secured.DELETE("/savings/:id", h.Savings.Delete)

	secured.POST("/income", h.Income.Create)
	secured.GET("/income", h.Income.List)
	secured.PUT("/income/:id", h.Income.Update)
	secured.DELETE("/income/:id", h.Income.Delete)

	secured.GET("/wallet", h.Wallet.Get)
	secured.PUT("/wallet", h.Wallet.Update)

	secured.GET("/preferences", h.Preferences.Get)
	secured.PUT("/preferences", h.Preferences.Update)

	secured.GET("/notifications", h.Notifications.List)
	secured.PUT("/notifications/:id/read", h.Notifications.MarkRead)
	secured.DELETE("/notifications/:id", h.Notifications.Delete)

	secured.GET("/analytics/overview", h.Analytics.Overview)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
