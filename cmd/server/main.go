package main

import (
	"net/http"

	_ "subtrack/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"subtrack/internal/auth"
	"subtrack/internal/cache"
	"subtrack/internal/config"
	"subtrack/internal/db"
	"subtrack/internal/handler"
	"subtrack/internal/logger"
	"subtrack/internal/model"
	"subtrack/internal/repository"
	"subtrack/internal/router"
	"subtrack/internal/service"
)

// @title Subtrack API
// @version 1.0
// @description Subscription and personal finance tracker with JWT cookie authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load")
	}
	logger.Init(cfg.IsProduction())

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Subscription{},
		&model.Expense{},
		&model.Saving{},
		&model.Income{},
		&model.Wallet{},
		&model.UserPreferences{},
		&model.Notification{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	subscriptionRepo := repository.NewOwnedRepository[model.Subscription](gormDB, "billing_date DESC")
	expenseRepo := repository.NewOwnedRepository[model.Expense](gormDB, "date DESC")
	savingRepo := repository.NewOwnedRepository[model.Saving](gormDB, "created_at DESC")
	incomeRepo := repository.NewOwnedRepository[model.Income](gormDB, "date DESC")
	notificationRepo := repository.NewOwnedRepository[model.Notification](gormDB, "created_at DESC")
	walletRepo := repository.NewSingletonRepository[model.Wallet](gormDB)
	preferencesRepo := repository.NewSingletonRepository[model.UserPreferences](gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	edgeVerifier := auth.NewEdgeVerifier(cfg.JWTSecret)
	resetStore := auth.NewResetStore(cacheClient)

	// Services
	authService := service.NewAuthService(userRepo, jwtService, resetStore)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo)
	expenseService := service.NewExpenseService(expenseRepo)
	savingService := service.NewSavingService(savingRepo)
	incomeService := service.NewIncomeService(incomeRepo)
	walletService := service.NewWalletService(walletRepo)
	preferencesService := service.NewPreferencesService(preferencesRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	analyticsService := service.NewAnalyticsService(subscriptionRepo, expenseRepo)

	// Handlers
	handlers := router.Handlers{
		Auth:          handler.NewAuthHandler(authService, cfg.IsProduction()),
		Subscriptions: handler.NewSubscriptionHandler(subscriptionService),
		Expenses:      handler.NewExpenseHandler(expenseService),
		Savings:       handler.NewSavingHandler(savingService),
		Income:        handler.NewIncomeHandler(incomeService),
		Wallet:        handler.NewWalletHandler(walletService),
		Preferences:   handler.NewPreferencesHandler(preferencesService),
		Notifications: handler.NewNotificationHandler(notificationService),
		Analytics:     handler.NewAnalyticsHandler(analyticsService),
		Health:        handler.NewHealthHandler(gormDB),
		Pages:         handler.NewPageHandler(),
	}

	router.Register(e, cfg, edgeVerifier, handlers)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Str("env", cfg.AppEnv).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
