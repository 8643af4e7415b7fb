package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/sahanav/askledger/internal/cli"
	"github.com/sahanav/askledger/internal/model"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import expenses from a CSV file",
		Long: `Import expenses from a CSV file with columns:

  date,amount,category,description

Dates are YYYY-MM-DD. Category strings are stored verbatim, including
values outside the known category set. A header row is skipped when
present. Re-importing the same file is safe: duplicate rows are ignored.`,
		RunE: runImport,
	}

	cmd.Flags().StringP("file", "f", "", "CSV file to import (required)")
	_ = cmd.MarkFlagRequired("file")
	cmd.Flags().StringP("user", "u", "", "User identifier to import for (required)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func runImport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	file, _ := cmd.Flags().GetString("file")
	userID, _ := cmd.Flags().GetString("user")

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}

	var expenses []model.Expense
	for i, record := range records {
		if len(record) < 3 {
			return fmt.Errorf("row %d: expected at least 3 columns, got %d", i+1, len(record))
		}
		if i == 0 && record[0] == "date" {
			continue
		}

		createdAt, err := time.Parse("2006-01-02", record[0])
		if err != nil {
			return fmt.Errorf("row %d: invalid date %q: %w", i+1, record[0], err)
		}
		amount, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return fmt.Errorf("row %d: invalid amount %q: %w", i+1, record[1], err)
		}

		expense := model.Expense{
			CreatedAt: createdAt,
			UserID:    userID,
			Amount:    amount,
			Category:  record[2],
		}
		if len(record) > 3 {
			expense.Description = record[3]
		}
		expense.ID = expense.GenerateID()
		expenses = append(expenses, expense)
	}

	if len(expenses) == 0 {
		fmt.Println(cli.InfoStyle.Render("Nothing to import."))
		return nil
	}

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.SaveExpenses(ctx, expenses); err != nil {
		return fmt.Errorf("failed to save expenses: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d expenses for %s", len(expenses), userID)))
	return nil
}
