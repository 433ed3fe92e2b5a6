package model

// SetMeta describes one logical card set. Populated by the out-of-band
// enrichment step and treated as an immutable snapshot during resolution.
type SetMeta struct {
	Slug         string // unique set identifier
	Name         string
	ReleasedMD   string // month-day portion of the release date, e.g. "Mar 31"
	ReleasedRaw  string
	Language     string
	BaseTotal    *int // base card count; positive when present
	SecretTotal  *int
	ReleasedYear *int // four-digit year when present
}
