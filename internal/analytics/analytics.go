// Package analytics holds pure aggregation helpers over a user's records
// already loaded in memory. Nothing here touches the store.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"subtrack/internal/model"
)

// UpcomingWindow is how far ahead renewal lookups reach.
const UpcomingWindow = 30 * 24 * time.Hour

var monthsPerYear = decimal.NewFromInt(12)

// CategoryBreakdown sums subscription prices per category. A subscription in
// N categories contributes its full price to each of the N buckets, so the
// buckets deliberately over-count total spend. Callers presenting a strict
// partition must not use this function.
func CategoryBreakdown(subs []model.Subscription) map[string]decimal.Decimal {
	breakdown := make(map[string]decimal.Decimal)
	for _, sub := range subs {
		for _, cat := range sub.Categories {
			breakdown[cat] = breakdown[cat].Add(sub.Price)
		}
	}
	return breakdown
}

// MonthlyTotal is the sum of all subscription prices.
func MonthlyTotal(subs []model.Subscription) decimal.Decimal {
	total := decimal.Zero
	for _, sub := range subs {
		total = total.Add(sub.Price)
	}
	return total
}

// AnnualTotal is a flat 12x projection of the monthly total. No pro-rating
// for non-monthly cycles.
func AnnualTotal(subs []model.Subscription) decimal.Decimal {
	return MonthlyTotal(subs).Mul(monthsPerYear)
}

// UpcomingRenewals returns subscriptions whose billing date falls within the
// next 30 days from now, ascending by date.
func UpcomingRenewals(subs []model.Subscription, now time.Time) []model.Subscription {
	cutoff := now.Add(UpcomingWindow)
	upcoming := make([]model.Subscription, 0)
	for _, sub := range subs {
		if sub.BillingDate.After(now) && !sub.BillingDate.After(cutoff) {
			upcoming = append(upcoming, sub)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].BillingDate.Before(upcoming[j].BillingDate)
	})
	return upcoming
}

// AveragePerItem divides total by count, guarding against empty sets.
func AveragePerItem(total decimal.Decimal, count int) decimal.Decimal {
	if count < 1 {
		count = 1
	}
	return total.Div(decimal.NewFromInt(int64(count)))
}

// MonthlyExpensesByCategory sums expense amounts per category for one
// calendar month.
func MonthlyExpensesByCategory(expenses []model.Expense, year int, month time.Month) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		if e.Date.Year() == year && e.Date.Month() == month {
			totals[e.Category] = totals[e.Category].Add(e.Amount)
		}
	}
	return totals
}
