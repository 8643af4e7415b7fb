package engine

import (
	"sort"

	"github.com/sahanav/askledger/internal/model"
)

// aggregateByCategory folds fetched rows into per-category totals in a
// single pass, then computes percentage shares of the period total.
// Amounts stay unrounded here; rounding happens once, at render time.
func aggregateByCategory(expenses []model.Expense) model.PeriodSummary {
	totals := make(map[string]*model.CategoryAggregate)
	var periodTotal float64

	for _, expense := range expenses {
		agg, ok := totals[expense.Category]
		if !ok {
			agg = &model.CategoryAggregate{Category: expense.Category}
			totals[expense.Category] = agg
		}
		agg.TotalAmount += expense.Amount
		agg.ExpenseCount++
		periodTotal += expense.Amount
	}

	categories := make([]model.CategoryAggregate, 0, len(totals))
	for _, agg := range totals {
		if periodTotal != 0 {
			agg.Percentage = 100 * agg.TotalAmount / periodTotal
		}
		categories = append(categories, *agg)
	}

	// Descending by amount, category name as tiebreaker so identical
	// inputs always produce identical output.
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].TotalAmount != categories[j].TotalAmount {
			return categories[i].TotalAmount > categories[j].TotalAmount
		}
		return categories[i].Category < categories[j].Category
	})

	return model.PeriodSummary{
		Categories:    categories,
		TotalExpenses: periodTotal,
		TotalCount:    len(expenses),
	}
}
