package resolve

import (
	"fmt"

	"cardmatch/internal/common"
)

// Scoring weights and review threshold. Named here rather than inlined
// so the precision/recall tuning stays in one place.
const (
	// NameWeight and NumberWeight blend name similarity and numeric
	// agreement into the combined score.
	NameWeight   = 0.85
	NumberWeight = 0.15

	// DefaultReviewThreshold is the combined score below which a best
	// match is flagged for manual review.
	DefaultReviewThreshold = 70

	// DefaultTopK bounds the ranked list returned per resolution.
	DefaultTopK = 10

	// DefaultConcurrency is the batch worker count. Resolutions are
	// independent, so any value is correct; this is just a sane default
	// for a local SQLite read path.
	DefaultConcurrency = 4
)

// Config holds configuration options for the resolver.
type Config struct {
	TopK            int
	ReviewThreshold int
	Concurrency     int
}

// DefaultConfig returns the default resolver configuration.
func DefaultConfig() Config {
	return Config{
		TopK:            DefaultTopK,
		ReviewThreshold: DefaultReviewThreshold,
		Concurrency:     DefaultConcurrency,
	}
}

// Validate rejects invalid configuration before any catalog access.
func (c Config) Validate() error {
	if c.TopK <= 0 {
		return fmt.Errorf("%w: top-K must be positive, got %d", common.ErrInvalidConfig, c.TopK)
	}
	if c.ReviewThreshold < 0 || c.ReviewThreshold > 100 {
		return fmt.Errorf("%w: review threshold must be in [0,100], got %d", common.ErrInvalidConfig, c.ReviewThreshold)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("%w: concurrency must be positive, got %d", common.ErrInvalidConfig, c.Concurrency)
	}
	return nil
}
