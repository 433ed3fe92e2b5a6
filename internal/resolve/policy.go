package resolve

import "cardmatch/internal/model"

// Review reasons recorded on an outcome. Each triggering condition is
// reported individually so manual review can go straight to the gap.
const (
	ReasonNoCandidates    = "no candidates found"
	ReasonLowScore        = "best score below review threshold"
	ReasonMissingSetSize  = "missing set size"
	ReasonMissingYear     = "missing copyright year"
	ReasonMissingNumber   = "missing input number"
	ReasonMissingName     = "missing card name"
	ReasonMalformedRecord = "malformed input record"
)

// decide applies the review policy to a ranked candidate list. The
// policy deliberately favors false negatives (flag-for-review) over
// false positives (silently wrong price data): a top candidate is still
// returned on a low-confidence outcome, but never trusted.
//
// Reasons are appended in a fixed order so identical inputs produce
// identical outcomes.
func decide(input model.Identification, ranked []model.RankedCandidate, threshold int) (*model.RankedCandidate, bool, []string) {
	var reasons []string

	var best *model.RankedCandidate
	if len(ranked) > 0 {
		b := ranked[0]
		best = &b
	}

	if best == nil {
		reasons = append(reasons, ReasonNoCandidates)
	} else if best.Score < threshold {
		reasons = append(reasons, ReasonLowScore)
	}

	if input.SetSize == nil {
		reasons = append(reasons, ReasonMissingSetSize)
	}
	if input.CopyrightYear == nil {
		reasons = append(reasons, ReasonMissingYear)
	}
	if input.CollectorNumber == "" {
		reasons = append(reasons, ReasonMissingNumber)
	}
	if input.Name == "" {
		reasons = append(reasons, ReasonMissingName)
	}

	return best, len(reasons) > 0, reasons
}
