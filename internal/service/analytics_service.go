package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"subtrack/internal/analytics"
	"subtrack/internal/model"
	"subtrack/internal/repository"
)

// Overview is the aggregated analytics view for one user.
type Overview struct {
	CategoryBreakdown  map[string]decimal.Decimal `json:"category_breakdown"`
	MonthlyTotal       decimal.Decimal            `json:"monthly_total"`
	AnnualTotal        decimal.Decimal            `json:"annual_total"`
	AveragePerItem     decimal.Decimal            `json:"average_per_item"`
	SubscriptionCount  int                        `json:"subscription_count"`
	UpcomingRenewals   []model.Subscription       `json:"upcoming_renewals"`
	MonthExpenseTotals map[string]decimal.Decimal `json:"month_expense_totals"`
}

// AnalyticsService loads a user's records and derives the overview. All
// aggregation itself is pure and lives in the analytics package.
type AnalyticsService interface {
	Overview(ctx context.Context, userID uuid.UUID, now time.Time) (*Overview, error)
}

type analyticsService struct {
	subRepo     repository.OwnedRepository[model.Subscription]
	expenseRepo repository.OwnedRepository[model.Expense]
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(
	subRepo repository.OwnedRepository[model.Subscription],
	expenseRepo repository.OwnedRepository[model.Expense],
) AnalyticsService {
	return &analyticsService{subRepo: subRepo, expenseRepo: expenseRepo}
}

func (s *analyticsService) Overview(ctx context.Context, userID uuid.UUID, now time.Time) (*Overview, error) {
	subs, err := s.subRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	expenses, err := s.expenseRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	monthly := analytics.MonthlyTotal(subs)
	return &Overview{
		CategoryBreakdown:  analytics.CategoryBreakdown(subs),
		MonthlyTotal:       monthly,
		AnnualTotal:        analytics.AnnualTotal(subs),
		AveragePerItem:     analytics.AveragePerItem(monthly, len(subs)),
		SubscriptionCount:  len(subs),
		UpcomingRenewals:   analytics.UpcomingRenewals(subs, now),
		MonthExpenseTotals: analytics.MonthlyExpensesByCategory(expenses, now.Year(), now.Month()),
	}, nil
}
