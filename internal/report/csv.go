package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cardmatch/internal/model"
)

var reviewHeader = []string{
	"idx", "image", "input_name", "input_collector", "set_size",
	"copyright_year", "confidence", "best_name", "best_number",
	"best_set_slug", "best_ungraded_price", "best_score", "best_url",
	"needs_review", "review_reasons",
}

// WriteReviewCSV writes the flat manual-review sheet, one row per
// outcome in batch order.
func WriteReviewCSV(w io.Writer, outcomes []model.Outcome) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(reviewHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, outcome := range outcomes {
		row := []string{
			strconv.Itoa(i),
			outcome.Input.Image,
			outcome.Input.Name,
			outcome.Input.CollectorNumber,
			intField(outcome.Input.SetSize),
			intField(outcome.Input.CopyrightYear),
			floatField(outcome.Input.Confidence),
		}

		if best := outcome.Best; best != nil {
			row = append(row,
				best.Name,
				best.Number,
				best.SetSlug,
				floatField(best.Ungraded),
				strconv.Itoa(best.Score),
				best.URL,
			)
		} else {
			row = append(row, "", "", "", "", "", "")
		}

		row = append(row,
			strconv.FormatBool(outcome.NeedsReview),
			strings.Join(outcome.ReviewReasons, "; "),
		)

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

var cardsHeader = []string{
	"card_url", "set_url", "set_slug", "product_id", "card_name",
	"card_number", "image_url", "ungraded_price", "grade9_price",
	"psa10_price",
}

// WriteCardsCSV dumps catalog entries for spreadsheet review. The column
// set round-trips through ingest.ReadCardsCSV.
func WriteCardsCSV(w io.Writer, cards []model.CardEntry) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(cardsHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, card := range cards {
		row := []string{
			card.URL,
			card.SetURL,
			card.SetSlug,
			card.ProductID,
			card.Name,
			card.Number,
			card.ImageURL,
			floatField(card.Ungraded),
			floatField(card.Grade9),
			floatField(card.PSA10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write card %s: %w", card.URL, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func intField(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}

func floatField(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
