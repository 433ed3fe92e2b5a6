package model

// CardEntry represents a single priced card listing in the catalog.
// The listing URL is the entry's identity; re-ingesting the same URL
// overwrites every other field.
type CardEntry struct {
	URL       string // unique listing URL, catalog identity
	SetURL    string
	SetSlug   string
	ProductID string
	Name      string
	Number    string // printed-number text exactly as scraped
	ImageURL  string

	// Prices are absent when the source listed no value.
	Ungraded *float64
	Grade9   *float64
	PSA10    *float64
}
