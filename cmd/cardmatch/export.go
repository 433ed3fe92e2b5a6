package main

import (
	"fmt"
	"log/slog"
	"os"

	"cardmatch/internal/report"

	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export catalog contents",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "cards <out.csv>",
		Short: "Dump every card listing to a CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = catalog.Close() }()

			cards, err := catalog.ListCards(cmd.Context())
			if err != nil {
				return err
			}

			out, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("failed to create output: %w", err)
			}
			if err := report.WriteCardsCSV(out, cards); err != nil {
				_ = out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return fmt.Errorf("failed to close output: %w", err)
			}

			slog.Info("Exported cards", "file", args[0], "count", len(cards))
			return nil
		},
	})

	return cmd
}
