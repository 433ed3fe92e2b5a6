package model

// RankedCandidate is one scored catalog match, produced per resolution
// call and never persisted.
type RankedCandidate struct {
	Name     string
	Number   string
	URL      string
	SetSlug  string
	SetURL   string
	Ungraded *float64
	Grade9   *float64
	PSA10    *float64
	Score    int // combined score in [0,100]
}

// Outcome is the final result of resolving one Identification.
type Outcome struct {
	Input         Identification
	Best          *RankedCandidate  // nil when unresolved
	Matches       []RankedCandidate // best-first, bounded by the configured top-K
	ReviewReasons []string
	NeedsReview   bool
}
