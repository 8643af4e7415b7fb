package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sahanav/askledger/internal/cli"
)

func askCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a question about your expenses",
		Long: `Answer a free-text question about your expenses with a formatted report.

Examples:
  askledger ask "house expenses for february" --user u1
  askledger ask "show food costs last month" --user u1
  askledger ask "how much did I spend this month" --user u1`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().StringP("user", "u", "", "User identifier (required)")
	_ = cmd.MarkFlagRequired("user")
	cmd.Flags().Bool("strict", false, "Fail on ambiguous questions instead of falling back to a summary")
	_ = viper.BindPFlag("engine.strict", cmd.Flags().Lookup("strict"))

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	userID, _ := cmd.Flags().GetString("user")
	question := strings.Join(args, " ")

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	report, err := newEngine(store).Query(ctx, question, userID)
	if err != nil {
		return err
	}

	fmt.Println(cli.RenderReport(report))
	return nil
}
