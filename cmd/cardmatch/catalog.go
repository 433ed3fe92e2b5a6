package main

import (
	"fmt"

	"cardmatch/internal/report"

	"github.com/spf13/cobra"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Print catalog row counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = catalog.Close() }()

			cardCount, err := catalog.CardCount(cmd.Context())
			if err != nil {
				return err
			}
			setCount, err := catalog.SetCount(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), report.TitleStyle.Render("Catalog"))
			fmt.Fprintf(cmd.OutOrStdout(), "  cards: %d\n  sets:  %d\n", cardCount, setCount)
			return nil
		},
	})

	return cmd
}
