package model

import "time"

// QueryResult is the tagged union of the three result shapes the engine
// can produce. The formatter switches exhaustively over the variants
// instead of probing optional fields.
type QueryResult interface {
	queryResult()
}

// ExpenseProjection is the read-only slice of an expense that reports
// carry: amount, description, and creation time.
type ExpenseProjection struct {
	CreatedAt   time.Time `json:"created_at"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
}

// CategoryPeriod holds the expenses of one category over one period.
// Month is empty when the period is a whole year.
type CategoryPeriod struct {
	Category     CategoryCode        `json:"category"`
	Month        string              `json:"month,omitempty"`
	Year         string              `json:"year"`
	Expenses     []ExpenseProjection `json:"expenses"`
	TotalAmount  float64             `json:"total_amount"`
	ExpenseCount int                 `json:"expense_count"`
}

// CategoryAggregate is one category's share of a period. Category is the
// raw stored code: legacy values outside the enum aggregate like any
// other and display as themselves.
type CategoryAggregate struct {
	Category     string  `json:"category"`
	TotalAmount  float64 `json:"total_amount"`
	ExpenseCount int     `json:"expense_count"`
	Percentage   float64 `json:"percentage"`
}

// PeriodSummary breaks one month down by category, sorted descending by
// total amount. Percentages sum to 100 (within float rounding) whenever
// TotalCount is nonzero.
type PeriodSummary struct {
	Month         string              `json:"month"`
	Year          string              `json:"year"`
	Categories    []CategoryAggregate `json:"categories"`
	TotalExpenses float64             `json:"total_expenses"`
	TotalCount    int                 `json:"total_count"`
}

// GeneralSummary is the unscoped fallback over the most recent records.
type GeneralSummary struct {
	RecentExpenses []ExpenseProjection `json:"recent_expenses"`
	TotalExpenses  float64             `json:"total_expenses"`
	TotalCount     int                 `json:"total_count"`
}

func (CategoryPeriod) queryResult() {}
func (PeriodSummary) queryResult()  {}
func (GeneralSummary) queryResult() {}
