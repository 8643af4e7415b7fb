package engine

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sahanav/askledger/internal/model"
	"github.com/sahanav/askledger/internal/service"
)

// SearchFilter is the structured-filter surface's input, for callers
// that already know what they want and bypass the language layer.
// Category is matched exactly and passed through verbatim, so legacy
// codes outside the enum remain searchable.
type SearchFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
}

// SearchResult is the structured-filter surface's output.
type SearchResult struct {
	Expenses    []model.ExpenseProjection `json:"expenses"`
	TotalAmount float64                   `json:"total_amount"`
	TotalCount  int                       `json:"total_count"`
}

// SearchExpenses runs a structured filter for one user, capped at the
// configured row limit and ordered descending by creation time.
func (e *Engine) SearchExpenses(ctx context.Context, userID string, filter SearchFilter) (SearchResult, error) {
	if err := requireUserID(userID); err != nil {
		return SearchResult{}, err
	}

	expenses, err := e.list(ctx, service.ExpenseFilter{
		UserID:    userID,
		Category:  filter.Category,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
		Limit:     e.searchLimit,
	})
	if err != nil {
		return SearchResult{}, err
	}

	result := SearchResult{
		Expenses:   project(expenses),
		TotalCount: len(expenses),
	}
	for _, expense := range expenses {
		result.TotalAmount += expense.Amount
	}
	return result, nil
}

// CategorySummary returns the per-category breakdown for a month,
// defaulting month and year to the injected "now" when omitted.
func (e *Engine) CategorySummary(ctx context.Context, userID, month, year string) (model.PeriodSummary, error) {
	if err := requireUserID(userID); err != nil {
		return model.PeriodSummary{}, err
	}

	now := e.clock.Now()
	if month == "" {
		month = fmt.Sprintf("%02d", int(now.Month()))
	}
	if year == "" {
		year = strconv.Itoa(now.Year())
	}

	result, err := e.periodSummary(ctx, month, year, userID, now)
	if err != nil {
		return model.PeriodSummary{}, err
	}
	return result.(model.PeriodSummary), nil
}
