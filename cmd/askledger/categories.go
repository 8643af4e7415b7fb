package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sahanav/askledger/internal/model"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the expense categories",
		Long: `Display the authoritative category table: code, display label, icon,
and the keywords the question parser matches against.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				headerStyle.Render("Code"),
				headerStyle.Render("Label"),
				headerStyle.Render("Icon"),
				headerStyle.Render("Keywords"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 12),
				strings.Repeat("-", 14),
				strings.Repeat("-", 4),
				strings.Repeat("-", 40))

			for _, info := range model.Categories() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					info.Code,
					info.Label,
					info.Icon,
					strings.Join(info.Keywords, ", "))
			}
			return nil
		},
	}
}
