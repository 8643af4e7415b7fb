package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sahanav/askledger/internal/model"
	"github.com/sahanav/askledger/internal/service"
)

// ListExpenses returns the expenses matching the filter, ordered
// descending by creation time. UserID is always applied; category and
// date bounds are optional and the date bounds are inclusive.
func (s *SQLiteStorage) ListExpenses(ctx context.Context, filter service.ExpenseFilter) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, amount, category, description, created_at
		FROM expenses
		WHERE user_id = ?`
	args := []any{filter.UserID}

	if filter.Category != "" {
		query += ` AND category = ?`
		args = append(args, filter.Category)
	}
	if filter.StartDate != nil {
		query += ` AND created_at >= ?`
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		query += ` AND created_at <= ?`
		args = append(args, *filter.EndDate)
	}

	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		var expense model.Expense
		var description sql.NullString
		if err := rows.Scan(
			&expense.ID,
			&expense.UserID,
			&expense.Amount,
			&expense.Category,
			&description,
			&expense.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expense.Description = description.String
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}

// SaveExpenses inserts a batch of expenses. Records whose id already
// exists are skipped, so re-importing the same file is safe.
func (s *SQLiteStorage) SaveExpenses(ctx context.Context, expenses []model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateExpenses(expenses); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO expenses (
			id, user_id, amount, category, description, created_at
		) VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, expense := range expenses {
		if expense.ID == "" {
			expense.ID = expense.GenerateID()
		}
		if _, err := stmt.ExecContext(ctx,
			expense.ID,
			expense.UserID,
			expense.Amount,
			expense.Category,
			expense.Description,
			expense.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert expense %s: %w", expense.ID, err)
		}
	}

	return tx.Commit()
}
