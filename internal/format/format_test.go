package format

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sahanav/askledger/internal/model"
)

func projections(n int) []model.ExpenseProjection {
	out := make([]model.ExpenseProjection, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.ExpenseProjection{
			Amount:      float64(100 * (i + 1)),
			Description: "Item",
			CreatedAt:   time.Date(2024, time.February, 20-i, 10, 0, 0, 0, time.UTC),
		})
	}
	return out
}

func TestFormat_CategoryPeriod(t *testing.T) {
	f := New(Options{})
	result := model.CategoryPeriod{
		Category: model.CategoryHouseExpense,
		Month:    "02",
		Year:     "2024",
		Expenses: []model.ExpenseProjection{
			{Amount: 1234.5, Description: "Plumber visit", CreatedAt: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)},
			{Amount: 300, CreatedAt: time.Date(2024, time.February, 3, 0, 0, 0, 0, time.UTC)},
		},
		TotalAmount:  1534.5,
		ExpenseCount: 2,
	}

	report := f.Format(result, model.ParsedQuery{})

	assert.Contains(t, report, "## 🏠 House Expense Expenses for February 2024")
	assert.Contains(t, report, "**Total Amount:** ₹1,534.50")
	assert.Contains(t, report, "**Number of Expenses:** 2")
	assert.Contains(t, report, "₹1,234.50 - Plumber visit (Feb 10, 2024)")
	// A missing description renders a placeholder, never blank.
	assert.Contains(t, report, "No description")
	assert.NotContains(t, report, "more_")
}

func TestFormat_CategoryPeriodWholeYear(t *testing.T) {
	f := New(Options{})
	result := model.CategoryPeriod{
		Category: model.CategoryTransport,
		Year:     "2024",
	}

	report := f.Format(result, model.ParsedQuery{})
	assert.Contains(t, report, "## 🚗 Transport Expenses for 2024")
	assert.Contains(t, report, "No expenses found for this period.")
}

func TestFormat_TruncatesLongLists(t *testing.T) {
	f := New(Options{})
	result := model.CategoryPeriod{
		Category:     model.CategoryFood,
		Month:        "02",
		Year:         "2024",
		Expenses:     projections(8),
		TotalAmount:  3600,
		ExpenseCount: 8,
	}

	report := f.Format(result, model.ParsedQuery{})

	assert.Equal(t, 5, strings.Count(report, "- Item ("))
	assert.Contains(t, report, "_...and 3 more_")
}

func TestFormat_RecentLimitConfigurable(t *testing.T) {
	f := New(Options{RecentLimit: 2})
	result := model.GeneralSummary{
		RecentExpenses: projections(4),
		TotalExpenses:  1000,
		TotalCount:     4,
	}

	report := f.Format(result, model.ParsedQuery{})
	assert.Equal(t, 2, strings.Count(report, "- Item ("))
	assert.Contains(t, report, "_...and 2 more_")
}

func TestFormat_PeriodSummary(t *testing.T) {
	f := New(Options{})
	result := model.PeriodSummary{
		Month: "03",
		Year:  "2024",
		Categories: []model.CategoryAggregate{
			{Category: "food", TotalAmount: 600, ExpenseCount: 2, Percentage: 60},
			{Category: "legacyStuff", TotalAmount: 400, ExpenseCount: 1, Percentage: 40},
		},
		TotalExpenses: 1000,
		TotalCount:    3,
	}

	report := f.Format(result, model.ParsedQuery{})

	assert.Contains(t, report, "## 📊 Expense Summary for March 2024")
	assert.Contains(t, report, "**Total Expenses:** ₹1,000.00")
	assert.Contains(t, report, "🍔 **Food**: ₹600.00 (60.0%) - 2 expenses")
	// An unknown stored code displays as its own label with the
	// catch-all icon.
	assert.Contains(t, report, "📦 **legacyStuff**: ₹400.00 (40.0%) - 1 expenses")
}

func TestFormat_GeneralSummaryEmpty(t *testing.T) {
	f := New(Options{})
	report := f.Format(model.GeneralSummary{}, model.ParsedQuery{})

	assert.Contains(t, report, "## 📊 Expense Summary")
	assert.Contains(t, report, "**Total Count:** 0")
	assert.Contains(t, report, "No expenses recorded yet.")
}

func TestFormat_CurrencyConfigurable(t *testing.T) {
	f := New(Options{CurrencyPrefix: "$"})
	result := model.GeneralSummary{
		RecentExpenses: []model.ExpenseProjection{
			{Amount: 9876543.21, Description: "Big one", CreatedAt: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)},
		},
		TotalExpenses: 9876543.21,
		TotalCount:    1,
	}

	report := f.Format(result, model.ParsedQuery{})
	assert.Contains(t, report, "$9,876,543.21")
	assert.NotContains(t, report, "₹")
}
