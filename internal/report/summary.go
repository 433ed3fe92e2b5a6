package report

import (
	"fmt"
	"strings"

	"cardmatch/internal/model"
)

// RenderSummary builds the styled end-of-batch summary: totals plus one
// line per outcome in batch order.
func RenderSummary(outcomes []model.Outcome) string {
	var resolved, review, missed int
	for _, outcome := range outcomes {
		switch {
		case outcome.Best == nil:
			missed++
		case outcome.NeedsReview:
			review++
		default:
			resolved++
		}
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("Resolution summary"))
	sb.WriteString("\n")
	sb.WriteString(ResolvedStyle.Render(fmt.Sprintf("  resolved: %d", resolved)))
	sb.WriteString("\n")
	sb.WriteString(ReviewStyle.Render(fmt.Sprintf("  needs review: %d", review)))
	sb.WriteString("\n")
	sb.WriteString(MissStyle.Render(fmt.Sprintf("  unresolved: %d", missed)))
	sb.WriteString("\n")

	for i, outcome := range outcomes {
		sb.WriteString(RenderOutcomeLine(i, outcome))
		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderOutcomeLine renders one outcome the way the batch log prints it.
func RenderOutcomeLine(index int, outcome model.Outcome) string {
	label := outcome.Input.Image
	if label == "" {
		label = outcome.Input.Name
	}

	if outcome.Best == nil {
		return MissStyle.Render(fmt.Sprintf("[%d] MISS %s: %s %s",
			index, label, outcome.Input.Name, outcome.Input.CollectorNumber))
	}

	best := outcome.Best
	line := fmt.Sprintf("[%d] OK  %s: %s #%s %s  %s  score=%d",
		index, label, best.Name, best.Number, best.SetSlug,
		priceField(best.Ungraded), best.Score)

	if outcome.NeedsReview {
		return ReviewStyle.Render(line + "  REVIEW: " + strings.Join(outcome.ReviewReasons, ", "))
	}
	return ResolvedStyle.Render(line)
}

func priceField(f *float64) string {
	if f == nil {
		return SubtleStyle.Render("no price")
	}
	return fmt.Sprintf("$%.2f", *f)
}
