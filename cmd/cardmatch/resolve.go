package main

import (
	"fmt"
	"log/slog"
	"os"

	"cardmatch/internal/ingest"
	"cardmatch/internal/model"
	"cardmatch/internal/report"
	"cardmatch/internal/resolve"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func resolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve card identifications against the catalog",
		Long: `Resolve identifications against the catalog, either one record from
flags (--name/--number/--set-size/--year) or a whole classifier batch
from a JSONL file (--input). Batch mode writes a matches JSONL and a
manual-review CSV, one row per input in input order.`,
		RunE: runResolve,
	}

	cmd.Flags().String("input", "", "identifications JSONL file (batch mode)")
	cmd.Flags().String("output", "matches.jsonl", "matches JSONL output path (batch mode)")
	cmd.Flags().String("review-csv", "review.csv", "manual-review CSV output path (batch mode)")
	cmd.Flags().Int("start-at", 0, "resume batch from this 0-based line index")

	cmd.Flags().String("name", "", "card name (single mode)")
	cmd.Flags().String("number", "", "raw collector-number text (single mode)")
	cmd.Flags().Int("set-size", 0, "claimed set size (single mode)")
	cmd.Flags().Int("year", 0, "claimed copyright year (single mode)")

	cmd.Flags().Int("top-k", resolve.DefaultTopK, "maximum candidates returned per input")
	cmd.Flags().Int("threshold", resolve.DefaultReviewThreshold, "combined score below which a match needs review")
	cmd.Flags().Int("concurrency", resolve.DefaultConcurrency, "parallel resolutions in batch mode")

	return cmd
}

func runResolve(cmd *cobra.Command, _ []string) error {
	topK, _ := cmd.Flags().GetInt("top-k")
	threshold, _ := cmd.Flags().GetInt("threshold")
	concurrency, _ := cmd.Flags().GetInt("concurrency")

	config := resolve.Config{
		TopK:            topK,
		ReviewThreshold: threshold,
		Concurrency:     concurrency,
	}
	if err := config.Validate(); err != nil {
		return err
	}

	catalog, err := openCatalog(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = catalog.Close() }()

	resolver, err := resolve.NewWithConfig(catalog, config)
	if err != nil {
		return err
	}

	inputPath, _ := cmd.Flags().GetString("input")
	if inputPath == "" {
		return runResolveSingle(cmd, resolver)
	}
	return runResolveBatch(cmd, resolver, inputPath)
}

func runResolveSingle(cmd *cobra.Command, resolver *resolve.Resolver) error {
	input := identificationFromFlags(cmd)

	outcome, err := resolver.Resolve(cmd.Context(), input)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), report.RenderOutcomeLine(0, outcome))
	for i, match := range outcome.Matches {
		fmt.Fprintf(cmd.OutOrStdout(), "  %2d. score=%-3d %s #%s %s\n",
			i+1, match.Score, match.Name, match.Number, match.SetSlug)
	}
	return nil
}

// identificationFromFlags builds the single-mode input record. Set size
// and year are optional constraints: they are absent unless the flag was
// actually supplied.
func identificationFromFlags(cmd *cobra.Command) model.Identification {
	name, _ := cmd.Flags().GetString("name")
	number, _ := cmd.Flags().GetString("number")

	input := model.Identification{
		Name:            name,
		CollectorNumber: number,
	}

	if cmd.Flags().Changed("set-size") {
		size, _ := cmd.Flags().GetInt("set-size")
		input.SetSize = &size
	}
	if cmd.Flags().Changed("year") {
		year, _ := cmd.Flags().GetInt("year")
		input.CopyrightYear = &year
	}

	return input
}

func runResolveBatch(cmd *cobra.Command, resolver *resolve.Resolver, inputPath string) error {
	startAt, _ := cmd.Flags().GetInt("start-at")
	outputPath, _ := cmd.Flags().GetString("output")
	reviewPath, _ := cmd.Flags().GetString("review-csv")

	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}

	lines, err := ingest.ReadIdentifications(file)
	_ = file.Close()
	if err != nil {
		return err
	}

	if startAt > 0 {
		kept := lines[:0]
		for _, line := range lines {
			if line.Index >= startAt {
				kept = append(kept, line)
			}
		}
		lines = kept
	}

	if len(lines) == 0 {
		slog.Info("No identifications to resolve", "input", inputPath)
		return nil
	}

	slog.Info("Resolving identifications",
		"input", inputPath,
		"count", len(lines))

	inputs := make([]model.Identification, len(lines))
	for i, line := range lines {
		inputs[i] = line.Input
	}

	bar := progressbar.Default(int64(len(inputs)), "resolving")
	outcomes, err := resolver.ResolveBatch(cmd.Context(), inputs, func() {
		_ = bar.Add(1)
	})
	_ = bar.Finish()
	if err != nil {
		return err
	}

	// Unparseable lines still resolved (as empty inputs); mark them so
	// the review sheet says why.
	for i, line := range lines {
		if line.Err != nil {
			outcomes[i].NeedsReview = true
			outcomes[i].ReviewReasons = append(
				[]string{resolve.ReasonMalformedRecord}, outcomes[i].ReviewReasons...)
		}
	}

	if err := writeOutcomes(outputPath, reviewPath, outcomes); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), report.RenderSummary(outcomes))
	return nil
}

func writeOutcomes(outputPath, reviewPath string, outcomes []model.Outcome) error {
	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := report.WriteOutcomes(out, outcomes); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}

	review, err := os.Create(reviewPath)
	if err != nil {
		return fmt.Errorf("failed to create review CSV: %w", err)
	}
	if err := report.WriteReviewCSV(review, outcomes); err != nil {
		_ = review.Close()
		return err
	}
	if err := review.Close(); err != nil {
		return fmt.Errorf("failed to close review CSV: %w", err)
	}

	slog.Info("Wrote batch results",
		"matches", outputPath,
		"review", reviewPath)
	return nil
}
