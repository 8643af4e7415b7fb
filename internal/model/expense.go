// Package model defines the domain types shared across the query engine.
package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// Expense is a single spending record owned by the persistence layer.
// The engine only reads expenses; writes happen through the import path.
type Expense struct {
	CreatedAt   time.Time
	ID          string
	UserID      string
	Category    string // CategoryCode value, preserved verbatim even when unknown
	Description string
	Amount      float64
}

// GenerateID creates a deterministic identifier for duplicate detection
// when importing records that carry no id of their own.
func (e *Expense) GenerateID() string {
	data := fmt.Sprintf("%s:%s:%.2f:%s",
		e.UserID,
		e.CreatedAt.Format("2006-01-02"),
		e.Amount,
		e.Description)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
