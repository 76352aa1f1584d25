package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subtrack/internal/model"
)

func sub(name string, price float64, billingDate time.Time, categories ...string) model.Subscription {
	return model.Subscription{
		Name:        name,
		Price:       decimal.NewFromFloat(price),
		BillingDate: billingDate,
		Categories:  model.StringList(categories),
	}
}

func TestCategoryBreakdown_SingleCategory(t *testing.T) {
	now := time.Now()
	subs := []model.Subscription{
		sub("Netflix", 15.99, now, "Entertainment"),
		sub("Spotify", 9.99, now, "Music"),
		sub("HBO", 10.00, now, "Entertainment"),
	}

	breakdown := CategoryBreakdown(subs)

	require.Len(t, breakdown, 2)
	assert.True(t, decimal.NewFromFloat(25.99).Equal(breakdown["Entertainment"]))
	assert.True(t, decimal.NewFromFloat(9.99).Equal(breakdown["Music"]))

	// When no subscription spans multiple categories, bucket sum equals
	// total monthly spend.
	sum := decimal.Zero
	for _, v := range breakdown {
		sum = sum.Add(v)
	}
	assert.True(t, MonthlyTotal(subs).Equal(sum))
}

// A subscription in N categories contributes its full price to each bucket.
// The bucket total exceeding real spend is expected behaviour, not a bug.
func TestCategoryBreakdown_MultiCategoryDoubleCounts(t *testing.T) {
	subs := []model.Subscription{
		sub("Spotify", 10.00, time.Now(), "Entertainment", "Music"),
	}

	breakdown := CategoryBreakdown(subs)

	assert.True(t, decimal.NewFromFloat(10.00).Equal(breakdown["Entertainment"]))
	assert.True(t, decimal.NewFromFloat(10.00).Equal(breakdown["Music"]))

	sum := decimal.Zero
	for _, v := range breakdown {
		sum = sum.Add(v)
	}
	assert.True(t, decimal.NewFromFloat(20.00).Equal(sum))
	assert.True(t, sum.GreaterThan(MonthlyTotal(subs)))
}

func TestCategoryBreakdown_Idempotent(t *testing.T) {
	subs := []model.Subscription{
		sub("Netflix", 15.99, time.Now(), "Entertainment"),
		sub("Spotify", 9.99, time.Now(), "Entertainment", "Music"),
	}

	first := CategoryBreakdown(subs)
	second := CategoryBreakdown(subs)

	require.Equal(t, len(first), len(second))
	for cat, v := range first {
		assert.True(t, v.Equal(second[cat]), "category %s", cat)
	}
}

func TestMonthlyAndAnnualTotals(t *testing.T) {
	subs := []model.Subscription{
		sub("A", 10.00, time.Now(), "X"),
		sub("B", 5.50, time.Now(), "Y"),
	}

	assert.True(t, decimal.NewFromFloat(15.50).Equal(MonthlyTotal(subs)))
	assert.True(t, decimal.NewFromFloat(186.00).Equal(AnnualTotal(subs)))
	assert.True(t, MonthlyTotal(nil).IsZero())
}

func TestUpcomingRenewals(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	in5 := sub("Soon", 1, now.AddDate(0, 0, 5), "X")
	in20 := sub("Later", 1, now.AddDate(0, 0, 20), "X")
	in45 := sub("Beyond", 1, now.AddDate(0, 0, 45), "X")
	past := sub("Past", 1, now.AddDate(0, 0, -3), "X")

	upcoming := UpcomingRenewals([]model.Subscription{in45, in20, past, in5}, now)

	require.Len(t, upcoming, 2)
	assert.Equal(t, "Soon", upcoming[0].Name)
	assert.Equal(t, "Later", upcoming[1].Name)
}

func TestAveragePerItem_EmptySetGuard(t *testing.T) {
	total := decimal.NewFromFloat(30.00)

	assert.True(t, decimal.NewFromFloat(10.00).Equal(AveragePerItem(total, 3)))
	// total / max(count, 1): no division by zero on empty sets.
	assert.True(t, total.Equal(AveragePerItem(total, 0)))
	assert.True(t, AveragePerItem(decimal.Zero, 0).IsZero())
}

func TestMonthlyExpensesByCategory(t *testing.T) {
	aug := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	jul := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	expenses := []model.Expense{
		{Amount: decimal.NewFromFloat(40), Category: "Groceries", Date: aug},
		{Amount: decimal.NewFromFloat(20), Category: "Groceries", Date: aug},
		{Amount: decimal.NewFromFloat(99), Category: "Groceries", Date: jul},
		{Amount: decimal.NewFromFloat(15), Category: "Transport", Date: aug},
	}

	totals := MonthlyExpensesByCategory(expenses, 2026, time.August)

	require.Len(t, totals, 2)
	assert.True(t, decimal.NewFromFloat(60).Equal(totals["Groceries"]))
	assert.True(t, decimal.NewFromFloat(15).Equal(totals["Transport"]))
}
