package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sahanav/askledger/internal/cli"
	"github.com/sahanav/askledger/internal/format"
	"github.com/sahanav/askledger/internal/model"
)

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show a per-category breakdown for a month",
		Long: `Show total spending and the per-category breakdown for a month,
sorted by amount. Month and year default to now when omitted.`,
		RunE: runSummary,
	}

	cmd.Flags().StringP("user", "u", "", "User identifier (required)")
	_ = cmd.MarkFlagRequired("user")
	cmd.Flags().StringP("month", "m", "", `Month ("01".."12")`)
	cmd.Flags().StringP("year", "y", "", "4-digit year")

	return cmd
}

func runSummary(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	userID, _ := cmd.Flags().GetString("user")
	month, _ := cmd.Flags().GetString("month")
	year, _ := cmd.Flags().GetString("year")

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	summary, err := newEngine(store).CategorySummary(ctx, userID, month, year)
	if err != nil {
		return err
	}

	formatter := format.New(format.Options{
		CurrencyPrefix: viper.GetString("format.currency"),
		RecentLimit:    viper.GetInt("format.recent_limit"),
	})
	fmt.Println(cli.RenderReport(formatter.Format(summary, model.ParsedQuery{})))
	return nil
}
