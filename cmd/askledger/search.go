package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/sahanav/askledger/internal/cli"
	"github.com/sahanav/askledger/internal/engine"
)

func searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search expenses with structured filters",
		Long: `Search a user's expenses by category and/or date range, bypassing the
language layer. Results are capped at the most recent 100 records.`,
		RunE: runSearch,
	}

	cmd.Flags().StringP("user", "u", "", "User identifier (required)")
	_ = cmd.MarkFlagRequired("user")
	cmd.Flags().StringP("category", "c", "", "Category code (exact match)")
	cmd.Flags().String("from", "", "Start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().String("to", "", "End date (YYYY-MM-DD, inclusive)")

	return cmd
}

func runSearch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	userID, _ := cmd.Flags().GetString("user")
	category, _ := cmd.Flags().GetString("category")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	filter := engine.SearchFilter{Category: category}
	if from != "" {
		start, err := time.Parse("2006-01-02", from)
		if err != nil {
			return fmt.Errorf("invalid --from date %q: %w", from, err)
		}
		filter.StartDate = &start
	}
	if to != "" {
		end, err := time.Parse("2006-01-02", to)
		if err != nil {
			return fmt.Errorf("invalid --to date %q: %w", to, err)
		}
		end = end.AddDate(0, 0, 1).Add(-time.Second)
		filter.EndDate = &end
	}

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	result, err := newEngine(store).SearchExpenses(ctx, userID, filter)
	if err != nil {
		return err
	}

	if result.TotalCount == 0 {
		fmt.Println(cli.InfoStyle.Render("No expenses matched."))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Date\tAmount\tDescription\n")
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		strings.Repeat("-", 12),
		strings.Repeat("-", 10),
		strings.Repeat("-", 30))
	for _, expense := range result.Expenses {
		description := expense.Description
		if description == "" {
			description = "No description"
		}
		fmt.Fprintf(w, "%s\t%.2f\t%s\n",
			expense.CreatedAt.Format("2006-01-02"),
			expense.Amount,
			description)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("%d expenses, %.2f total", result.TotalCount, result.TotalAmount)))
	return nil
}
