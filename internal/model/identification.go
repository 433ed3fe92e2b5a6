package model

// Identification is one record from the upstream vision classifier.
// Every field may be absent or garbled; the resolution engine must
// tolerate any combination of missing inputs.
type Identification struct {
	Image           string // source image path, passed through to reports
	Name            string // free-text card name, may be empty
	CollectorNumber string // raw collector-number text, e.g. "103/165", "#245"
	Language        string // passthrough hint, not interpreted
	SetNameHint     string // passthrough hint, not interpreted
	SetCodeHint     string // passthrough hint, not interpreted
	SetSize         *int
	CopyrightYear   *int
	Confidence      *float64 // upstream confidence, informational only
}
