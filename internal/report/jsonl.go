package report

import (
	"encoding/json"
	"fmt"
	"io"

	"cardmatch/internal/model"
)

// Wire shapes for the matches JSONL. Kept separate from the model types
// so the output format stays stable against internal refactors.
type inputRecord struct {
	CardName        string   `json:"card_name"`
	CollectorNumber string   `json:"collector_number"`
	SetSize         *int     `json:"set_size"`
	CopyrightYear   *int     `json:"copyright_year"`
	Confidence      *float64 `json:"confidence,omitempty"`
	Language        string   `json:"language,omitempty"`
	SetNameHint     string   `json:"set_name_hint,omitempty"`
	SetCodeHint     string   `json:"set_code_hint,omitempty"`
}

type candidateRecord struct {
	Score         int      `json:"score"`
	CardName      string   `json:"card_name"`
	CardNumber    string   `json:"card_number"`
	CardURL       string   `json:"card_url"`
	UngradedPrice *float64 `json:"ungraded_price"`
	Grade9Price   *float64 `json:"grade9_price"`
	PSA10Price    *float64 `json:"psa10_price"`
	SetSlug       string   `json:"set_slug"`
	SetURL        string   `json:"set_url"`
}

type outcomeRecord struct {
	Image         string            `json:"image,omitempty"`
	Input         inputRecord       `json:"input"`
	Best          *candidateRecord  `json:"best"`
	Matches       []candidateRecord `json:"matches"`
	NeedsReview   bool              `json:"needs_review"`
	ReviewReasons []string          `json:"review_reasons"`
}

// WriteOutcomes writes one JSON object per outcome, preserving order.
func WriteOutcomes(w io.Writer, outcomes []model.Outcome) error {
	enc := json.NewEncoder(w)
	for i, outcome := range outcomes {
		if err := enc.Encode(toOutcomeRecord(outcome)); err != nil {
			return fmt.Errorf("failed to write outcome %d: %w", i, err)
		}
	}
	return nil
}

func toOutcomeRecord(outcome model.Outcome) outcomeRecord {
	record := outcomeRecord{
		Image: outcome.Input.Image,
		Input: inputRecord{
			CardName:        outcome.Input.Name,
			CollectorNumber: outcome.Input.CollectorNumber,
			SetSize:         outcome.Input.SetSize,
			CopyrightYear:   outcome.Input.CopyrightYear,
			Confidence:      outcome.Input.Confidence,
			Language:        outcome.Input.Language,
			SetNameHint:     outcome.Input.SetNameHint,
			SetCodeHint:     outcome.Input.SetCodeHint,
		},
		Matches:       make([]candidateRecord, 0, len(outcome.Matches)),
		NeedsReview:   outcome.NeedsReview,
		ReviewReasons: outcome.ReviewReasons,
	}

	if record.ReviewReasons == nil {
		record.ReviewReasons = []string{}
	}

	for _, match := range outcome.Matches {
		record.Matches = append(record.Matches, toCandidateRecord(match))
	}
	if outcome.Best != nil {
		best := toCandidateRecord(*outcome.Best)
		record.Best = &best
	}

	return record
}

func toCandidateRecord(c model.RankedCandidate) candidateRecord {
	return candidateRecord{
		Score:         c.Score,
		CardName:      c.Name,
		CardNumber:    c.Number,
		CardURL:       c.URL,
		UngradedPrice: c.Ungraded,
		Grade9Price:   c.Grade9,
		PSA10Price:    c.PSA10,
		SetSlug:       c.SetSlug,
		SetURL:        c.SetURL,
	}
}
