package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"subtrack/internal/auth"
	"subtrack/internal/cache"
	"subtrack/internal/config"
	"subtrack/internal/db"
	apperrors "subtrack/internal/errors"
	"subtrack/internal/logger"
	"subtrack/internal/model"
	"subtrack/internal/repository"
	"subtrack/internal/service"
)

const (
	demoEmail    = "demo@subtrack.dev"
	demoPassword = "demo-password"
)

// Seeds a demo user with a few subscriptions and expenses. Goes through the
// service layer so validation and defaults behave exactly like the API.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load")
	}
	logger.Init(cfg.IsProduction())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Subscription{},
		&model.Expense{},
		&model.Wallet{},
		&model.UserPreferences{},
		&model.Notification{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)
	subscriptionRepo := repository.NewOwnedRepository[model.Subscription](gormDB, "billing_date DESC")
	expenseRepo := repository.NewOwnedRepository[model.Expense](gormDB, "date DESC")
	notificationRepo := repository.NewOwnedRepository[model.Notification](gormDB, "created_at DESC")

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	resetStore := auth.NewResetStore(cacheClient)

	authService := service.NewAuthService(userRepo, jwtService, resetStore)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo)
	expenseService := service.NewExpenseService(expenseRepo)
	notificationService := service.NewNotificationService(notificationRepo)

	ctx := context.Background()

	user, _, err := authService.Signup(ctx, demoEmail, demoPassword, "Demo User")
	if err != nil {
		if err == apperrors.ErrUserAlreadyExists {
			log.Info().Str("email", demoEmail).Msg("demo user already seeded")
			return
		}
		log.Fatal().Err(err).Msg("create demo user")
	}

	now := time.Now()
	subs := []service.SubscriptionInput{
		{Name: "Netflix", Price: decimal.NewFromFloat(15.99), BillingDate: now.AddDate(0, 0, 20), Categories: []string{"Entertainment"}},
		{Name: "Spotify", Price: decimal.NewFromFloat(9.99), BillingDate: now.AddDate(0, 0, 5), Categories: []string{"Entertainment", "Music"}},
		{Name: "iCloud", Price: decimal.NewFromFloat(2.99), BillingDate: now.AddDate(0, 1, 10), Categories: []string{"Storage"}},
	}
	for _, in := range subs {
		if _, err := subscriptionService.Create(ctx, user.ID, in); err != nil {
			log.Fatal().Err(err).Str("name", in.Name).Msg("seed subscription")
		}
	}

	expenses := []service.ExpenseInput{
		{Amount: decimal.NewFromFloat(42.50), Category: "Groceries", Date: now.AddDate(0, 0, -2)},
		{Amount: decimal.NewFromFloat(18.00), Category: "Transport", Date: now.AddDate(0, 0, -5)},
	}
	for _, in := range expenses {
		if _, err := expenseService.Create(ctx, user.ID, in); err != nil {
			log.Fatal().Err(err).Msg("seed expense")
		}
	}

	if _, err := notificationService.Create(ctx, user.ID, model.NotificationSystem, "Welcome to Subtrack"); err != nil {
		log.Fatal().Err(err).Msg("seed notification")
	}

	log.Info().Str("email", demoEmail).Msg("seed complete")
}
