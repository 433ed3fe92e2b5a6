// Package report renders resolution outcomes: the matches JSONL, the
// manual-review CSV, and the styled terminal summary.
package report

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	successColor = lipgloss.Color("#4ECDC4") // teal
	warningColor = lipgloss.Color("#FFE66D") // yellow
	errorColor   = lipgloss.Color("#FF6B6B") // red
	subtleColor  = lipgloss.Color("#666666") // gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	// ResolvedStyle formats confidently resolved outcomes.
	ResolvedStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// ReviewStyle formats low-confidence outcomes.
	ReviewStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	// MissStyle formats unresolved outcomes.
	MissStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	// SubtleStyle formats secondary detail.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(subtleColor)
)
