// Package service defines the contracts between the engine and its collaborators.
package service

import (
	"context"
	"time"

	"github.com/sahanav/askledger/internal/model"
)

// ExpenseFilter narrows an expense read. UserID is mandatory: it is the
// tenant-isolation boundary and the store refuses to run without it.
// Date bounds are inclusive.
type ExpenseFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	UserID    string
	Category  string
	Limit     int
}

// ExpenseStore is the read contract the engine needs from the
// persistence layer, plus the batch write used by imports and seeding.
// Reads always come back ordered descending by creation time.
type ExpenseStore interface {
	ListExpenses(ctx context.Context, filter ExpenseFilter) ([]model.Expense, error)
	SaveExpenses(ctx context.Context, expenses []model.Expense) error
	Migrate(ctx context.Context) error
	Close() error
}

// Clock supplies the reference "now" used to resolve relative periods.
// Injecting it keeps phrases like "last month" reproducible in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the ambient wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }
