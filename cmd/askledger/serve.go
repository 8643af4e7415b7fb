package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sahanav/askledger/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the query engine over HTTP",
		Long: `Expose the engine as an HTTP tool-invocation surface:

  POST /v1/tools/query             {"text": ..., "user_id": ...}
  POST /v1/tools/search_expenses   {"user_id": ..., "category"?, "start_date"?, "end_date"?}
  POST /v1/tools/category_summary  {"user_id": ..., "month"?, "year"?}
  GET  /healthz`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", ":8080", "Listen address")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	srv := server.New(viper.GetString("server.addr"), newEngine(store))

	slog.Info("Starting tool server", "addr", viper.GetString("server.addr"))
	return srv.ListenAndServe(ctx)
}
