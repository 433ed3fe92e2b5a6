package main

import (
	"fmt"
	"log/slog"
	"os"

	"cardmatch/internal/ingest"

	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import scraper exports into the catalog",
	}

	cmd.AddCommand(importCardsCmd())
	cmd.AddCommand(importSetsCmd())

	return cmd
}

func importCardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cards <cards.csv>",
		Short: "Upsert card listings from a cards CSV",
		Long: `Upsert card listings keyed by listing URL. Re-importing a URL
overwrites all of its non-identity fields, so repeated imports of
refreshed scrapes keep prices current without duplicating rows.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open cards CSV: %w", err)
			}
			defer func() { _ = file.Close() }()

			cards, err := ingest.ReadCardsCSV(file)
			if err != nil {
				return err
			}
			if len(cards) == 0 {
				slog.Info("No cards found in file", "file", args[0])
				return nil
			}

			catalog, err := openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = catalog.Close() }()

			if err := catalog.SaveCards(cmd.Context(), cards); err != nil {
				return fmt.Errorf("failed to import cards: %w", err)
			}

			slog.Info("Imported cards", "file", args[0], "count", len(cards))
			return nil
		},
	}
}

func importSetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sets <sets.csv>",
		Short: "Upsert set metadata from a sets CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open sets CSV: %w", err)
			}
			defer func() { _ = file.Close() }()

			sets, err := ingest.ReadSetsCSV(file)
			if err != nil {
				return err
			}
			if len(sets) == 0 {
				slog.Info("No sets found in file", "file", args[0])
				return nil
			}

			catalog, err := openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = catalog.Close() }()

			if err := catalog.SaveSets(cmd.Context(), sets); err != nil {
				return fmt.Errorf("failed to import sets: %w", err)
			}

			slog.Info("Imported sets", "file", args[0], "count", len(sets))
			return nil
		},
	}
}
