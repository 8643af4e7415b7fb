// Package engine executes planned expense queries against the store and
// exposes the natural-language and structured query surfaces. It is
// stateless between calls: every query is parsed, planned, executed, and
// formatted fresh with no cross-request caching.
package engine

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/sahanav/askledger/internal/common"
	"github.com/sahanav/askledger/internal/format"
	"github.com/sahanav/askledger/internal/model"
	"github.com/sahanav/askledger/internal/parser"
	"github.com/sahanav/askledger/internal/service"
)

const (
	defaultStoreTimeout  = 10 * time.Second
	defaultFallbackLimit = 100
	defaultSearchLimit   = 100
)

// Options configures an Engine. Zero values select the defaults.
type Options struct {
	Clock         service.Clock
	Formatter     *format.Formatter
	StoreTimeout  time.Duration
	FallbackLimit int
	SearchLimit   int
	Strict        bool
}

// Engine runs the extract -> plan -> execute -> format pipeline.
type Engine struct {
	store         service.ExpenseStore
	clock         service.Clock
	formatter     *format.Formatter
	storeTimeout  time.Duration
	fallbackLimit int
	searchLimit   int
	strict        bool
}

// New creates an engine over the given store.
func New(store service.ExpenseStore, opts Options) *Engine {
	if opts.Clock == nil {
		opts.Clock = service.SystemClock{}
	}
	if opts.Formatter == nil {
		opts.Formatter = format.New(format.Options{})
	}
	if opts.StoreTimeout <= 0 {
		opts.StoreTimeout = defaultStoreTimeout
	}
	if opts.FallbackLimit <= 0 {
		opts.FallbackLimit = defaultFallbackLimit
	}
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = defaultSearchLimit
	}

	return &Engine{
		store:         store,
		clock:         opts.Clock,
		formatter:     opts.Formatter,
		storeTimeout:  opts.StoreTimeout,
		fallbackLimit: opts.FallbackLimit,
		searchLimit:   opts.SearchLimit,
		strict:        opts.Strict,
	}
}

// Query answers a free-text question about a user's expenses with a
// formatted text report. In strict mode a question yielding neither a
// category nor a period fails with AmbiguousQueryError instead of
// falling back to a general summary.
func (e *Engine) Query(ctx context.Context, text, userID string) (string, error) {
	if err := requireUserID(userID); err != nil {
		return "", err
	}

	now := e.clock.Now()
	parsed := parser.Extract(text, now)

	if e.strict && parsed.Category == "" && parsed.Month == "" {
		return "", &common.AmbiguousQueryError{Query: text}
	}

	shape := parser.Plan(parsed, now)
	slog.Debug("planned query",
		"kind", shape.Kind,
		"category", shape.Category,
		"month", shape.Month,
		"year", shape.Year)

	result, err := e.Execute(ctx, shape, userID)
	if err != nil {
		return "", err
	}
	return e.formatter.Format(result, parsed), nil
}

// Execute runs a planned query shape for one user and returns the
// matching result variant.
func (e *Engine) Execute(ctx context.Context, shape model.QueryShape, userID string) (model.QueryResult, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}

	now := e.clock.Now()

	switch shape.Kind {
	case model.ShapeCategoryAndMonth, model.ShapeCategoryOnly:
		return e.categoryPeriod(ctx, shape, userID, now)
	case model.ShapeMonthOnly:
		return e.periodSummary(ctx, shape.Month, shape.Year, userID, now)
	default:
		return e.generalSummary(ctx, userID)
	}
}

func (e *Engine) categoryPeriod(ctx context.Context, shape model.QueryShape, userID string, now time.Time) (model.QueryResult, error) {
	if err := validatePeriod(shape.Month, shape.Year, now); err != nil {
		return nil, err
	}

	start, end := periodRange(shape.Month, shape.Year)
	expenses, err := e.list(ctx, service.ExpenseFilter{
		UserID:    userID,
		Category:  string(shape.Category),
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, err
	}

	result := model.CategoryPeriod{
		Category: shape.Category,
		Month:    shape.Month,
		Year:     shape.Year,
		Expenses: project(expenses),
	}
	for _, expense := range expenses {
		result.TotalAmount += expense.Amount
	}
	result.ExpenseCount = len(expenses)
	return result, nil
}

func (e *Engine) periodSummary(ctx context.Context, month, year, userID string, now time.Time) (model.QueryResult, error) {
	if err := validatePeriod(month, year, now); err != nil {
		return nil, err
	}

	start, end := periodRange(month, year)
	expenses, err := e.list(ctx, service.ExpenseFilter{
		UserID:    userID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, err
	}

	summary := aggregateByCategory(expenses)
	summary.Month = month
	summary.Year = year
	return summary, nil
}

func (e *Engine) generalSummary(ctx context.Context, userID string) (model.QueryResult, error) {
	// The scanned window is capped: unscoped questions stay cheap no
	// matter how much history a user has.
	expenses, err := e.list(ctx, service.ExpenseFilter{
		UserID: userID,
		Limit:  e.fallbackLimit,
	})
	if err != nil {
		return nil, err
	}

	result := model.GeneralSummary{
		RecentExpenses: project(expenses),
		TotalCount:     len(expenses),
	}
	for _, expense := range expenses {
		result.TotalExpenses += expense.Amount
	}
	return result, nil
}

// list wraps the single store read with the configured timeout and the
// StoreError taxonomy. No retry happens here: reads are idempotent and
// retrying is the caller's call, not something to mask persistent
// failures with.
func (e *Engine) list(ctx context.Context, filter service.ExpenseFilter) ([]model.Expense, error) {
	ctx, cancel := context.WithTimeout(ctx, e.storeTimeout)
	defer cancel()

	expenses, err := e.store.ListExpenses(ctx, filter)
	if err != nil {
		return nil, &common.StoreError{Op: "list expenses", Err: err}
	}
	return expenses, nil
}

func requireUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return &common.AuthorizationError{Reason: "user id is required"}
	}
	return nil
}

func project(expenses []model.Expense) []model.ExpenseProjection {
	projections := make([]model.ExpenseProjection, 0, len(expenses))
	for _, expense := range expenses {
		projections = append(projections, model.ExpenseProjection{
			CreatedAt:   expense.CreatedAt,
			Description: expense.Description,
			Amount:      expense.Amount,
		})
	}
	return projections
}
