// Package format renders query results as markdown-flavored plain-text
// reports. Formatting is only ever invoked on successful results.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/sahanav/askledger/internal/model"
)

const (
	defaultCurrencyPrefix = "₹"
	defaultRecentLimit    = 5
	noDescription         = "No description"
)

// Options configures report rendering. Zero values select the defaults.
type Options struct {
	// CurrencyPrefix is the glyph printed before every amount. The
	// default matches the original application's rupee prefix.
	CurrencyPrefix string
	// RecentLimit caps the transaction lists in every report shape.
	RecentLimit int
}

// Formatter renders QueryResult variants into text reports.
type Formatter struct {
	currency    string
	recentLimit int
}

// New creates a formatter.
func New(opts Options) *Formatter {
	if opts.CurrencyPrefix == "" {
		opts.CurrencyPrefix = defaultCurrencyPrefix
	}
	if opts.RecentLimit <= 0 {
		opts.RecentLimit = defaultRecentLimit
	}
	return &Formatter{
		currency:    opts.CurrencyPrefix,
		recentLimit: opts.RecentLimit,
	}
}

// Format renders a result into a report. The parsed query is available
// for future use by shape-specific wording; the variants themselves
// carry everything the current reports need.
func (f *Formatter) Format(result model.QueryResult, _ model.ParsedQuery) string {
	switch r := result.(type) {
	case model.CategoryPeriod:
		return f.categoryPeriod(r)
	case model.PeriodSummary:
		return f.periodSummary(r)
	case model.GeneralSummary:
		return f.generalSummary(r)
	default:
		return ""
	}
}

func (f *Formatter) categoryPeriod(r model.CategoryPeriod) string {
	label := model.CategoryLabel(string(r.Category))
	icon := model.CategoryIcon(string(r.Category))

	period := r.Year
	if r.Month != "" {
		period = monthName(r.Month) + " " + r.Year
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s %s Expenses for %s\n\n", icon, label, period)
	fmt.Fprintf(&b, "**Total Amount:** %s\n", f.money(r.TotalAmount))
	fmt.Fprintf(&b, "**Number of Expenses:** %d\n", r.ExpenseCount)

	if len(r.Expenses) == 0 {
		b.WriteString("\nNo expenses found for this period.\n")
		return b.String()
	}

	b.WriteString("\n**Recent Transactions:**\n")
	f.writeTransactions(&b, r.Expenses)
	return b.String()
}

func (f *Formatter) periodSummary(r model.PeriodSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## 📊 Expense Summary for %s %s\n\n", monthName(r.Month), r.Year)
	fmt.Fprintf(&b, "**Total Expenses:** %s\n", f.money(r.TotalExpenses))
	fmt.Fprintf(&b, "**Total Count:** %d\n", r.TotalCount)

	if len(r.Categories) == 0 {
		b.WriteString("\nNo expenses found for this period.\n")
		return b.String()
	}

	b.WriteString("\n**Category Breakdown:**\n")
	for _, agg := range r.Categories {
		fmt.Fprintf(&b, "- %s **%s**: %s (%.1f%%) - %d expenses\n",
			model.CategoryIcon(agg.Category),
			model.CategoryLabel(agg.Category),
			f.money(agg.TotalAmount),
			agg.Percentage,
			agg.ExpenseCount)
	}
	return b.String()
}

func (f *Formatter) generalSummary(r model.GeneralSummary) string {
	var b strings.Builder
	b.WriteString("## 📊 Expense Summary\n\n")
	fmt.Fprintf(&b, "**Total Expenses:** %s\n", f.money(r.TotalExpenses))
	fmt.Fprintf(&b, "**Total Count:** %d\n", r.TotalCount)

	if len(r.RecentExpenses) == 0 {
		b.WriteString("\nNo expenses recorded yet.\n")
		return b.String()
	}

	b.WriteString("\n**Recent Transactions:**\n")
	f.writeTransactions(&b, r.RecentExpenses)
	return b.String()
}

func (f *Formatter) writeTransactions(b *strings.Builder, expenses []model.ExpenseProjection) {
	shown := expenses
	if len(shown) > f.recentLimit {
		shown = shown[:f.recentLimit]
	}

	for i, expense := range shown {
		description := strings.TrimSpace(expense.Description)
		if description == "" {
			description = noDescription
		}
		fmt.Fprintf(b, "%d. %s - %s (%s)\n",
			i+1,
			f.money(expense.Amount),
			description,
			expense.CreatedAt.Format("Jan 02, 2006"))
	}

	if remaining := len(expenses) - len(shown); remaining > 0 {
		fmt.Fprintf(b, "_...and %d more_\n", remaining)
	}
}

// money renders an amount with thousands separators, two decimals, and
// the configured currency prefix. This is the single rounding point for
// currency figures.
func (f *Formatter) money(amount float64) string {
	return f.currency + humanize.FormatFloat("#,###.##", amount)
}

func monthName(code string) string {
	m, err := strconv.Atoi(code)
	if err != nil || m < 1 || m > 12 {
		return code
	}
	return time.Month(m).String()
}
