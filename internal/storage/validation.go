package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sahanav/askledger/internal/model"
	"github.com/sahanav/askledger/internal/service"
)

// Validation errors.
var (
	ErrNilContext       = errors.New("context cannot be nil")
	ErrEmptyString      = errors.New("string parameter cannot be empty")
	ErrEmptySlice       = errors.New("slice cannot be empty")
	ErrInvalidDateRange = errors.New("start date must be before end date")
	ErrInvalidExpense   = errors.New("invalid expense")
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateFilter enforces the tenant-isolation boundary: a filter
// without a user id never reaches the database.
func validateFilter(filter service.ExpenseFilter) error {
	if err := validateString(filter.UserID, "UserID"); err != nil {
		return err
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return ErrInvalidDateRange
	}
	return nil
}

func validateExpenses(expenses []model.Expense) error {
	if len(expenses) == 0 {
		return fmt.Errorf("%w: expenses", ErrEmptySlice)
	}
	for i, expense := range expenses {
		if err := validateExpense(&expense); err != nil {
			return fmt.Errorf("expense at index %d: %w", i, err)
		}
	}
	return nil
}

func validateExpense(expense *model.Expense) error {
	if strings.TrimSpace(expense.UserID) == "" {
		return fmt.Errorf("%w: missing user id", ErrInvalidExpense)
	}
	if strings.TrimSpace(expense.Category) == "" {
		return fmt.Errorf("%w: missing category", ErrInvalidExpense)
	}
	if expense.CreatedAt.IsZero() {
		return fmt.Errorf("%w: missing creation time", ErrInvalidExpense)
	}
	return nil
}
