// Package resolve implements the card identity resolution engine: given
// a noisy machine-extracted identification, find the best-matching entry
// in the priced-card catalog or flag the input for manual review.
package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"cardmatch/internal/common"
	"cardmatch/internal/model"
	"cardmatch/internal/service"
)

// Resolver matches identifications against a read-only catalog handle.
// It holds no mutable state, so one Resolver may serve any number of
// concurrent resolutions.
type Resolver struct {
	catalog service.CatalogReader
	config  Config
}

// New creates a resolver with the default configuration.
func New(catalog service.CatalogReader) (*Resolver, error) {
	return NewWithConfig(catalog, DefaultConfig())
}

// NewWithConfig creates a resolver with a custom configuration. The
// configuration is validated here, before any catalog access.
func NewWithConfig(catalog service.CatalogReader, config Config) (*Resolver, error) {
	if catalog == nil {
		return nil, fmt.Errorf("%w: catalog", common.ErrMissingConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Resolver{
		catalog: catalog,
		config:  config,
	}, nil
}

// Resolve matches one identification against the catalog. For a fixed
// catalog it is a pure function of its input: identical inputs produce
// identical outcomes. Only catalog failures return an error; missing or
// garbled input fields degrade to an unresolved or low-confidence
// outcome instead.
func (r *Resolver) Resolve(ctx context.Context, input model.Identification) (model.Outcome, error) {
	number, hasNumber := ExtractNumber(input.CollectorNumber)

	var candidates []model.CardEntry
	if hasNumber {
		filter := service.SetFilter{
			BaseTotal:     input.SetSize,
			CopyrightYear: input.CopyrightYear,
		}

		slugs, err := r.catalog.CandidateSets(ctx, filter)
		if err != nil {
			return model.Outcome{}, fmt.Errorf("%w: selecting candidate sets: %v", common.ErrStoreUnavailable, err)
		}

		if len(slugs) > 0 {
			candidates, err = r.catalog.CandidatesByNumber(ctx, slugs, number)
			if err != nil {
				return model.Outcome{}, fmt.Errorf("%w: fetching candidate cards: %v", common.ErrStoreUnavailable, err)
			}
		}
	}

	ranked := rankCandidates(input.Name, number, hasNumber, candidates, r.config.TopK)
	best, needsReview, reasons := decide(input, ranked, r.config.ReviewThreshold)

	slog.Debug("Resolved identification",
		"name", input.Name,
		"number", input.CollectorNumber,
		"candidates", len(candidates),
		"needs_review", needsReview)

	return model.Outcome{
		Input:         input,
		Best:          best,
		Matches:       ranked,
		NeedsReview:   needsReview,
		ReviewReasons: reasons,
	}, nil
}

// ResolveBatch resolves inputs concurrently and returns one outcome per
// input, in input order. Resolutions are independent; the worker count
// comes from Config.Concurrency. onResolved, when non-nil, is called
// once per finished input (from worker goroutines) for progress
// reporting. The first catalog failure cancels the batch.
func (r *Resolver) ResolveBatch(ctx context.Context, inputs []model.Identification, onResolved func()) ([]model.Outcome, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	batchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	outcomes := make([]model.Outcome, len(inputs))
	indexes := make(chan int)

	var wg sync.WaitGroup
	var errOnce sync.Once
	var batchErr error

	workers := r.config.Concurrency
	if workers > len(inputs) {
		workers = len(inputs)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				outcome, err := r.Resolve(batchCtx, inputs[i])
				if err != nil {
					errOnce.Do(func() {
						batchErr = err
						cancel()
					})
					return
				}

				outcomes[i] = outcome
				if onResolved != nil {
					onResolved()
				}
			}
		}()
	}

	for i := range inputs {
		select {
		case <-batchCtx.Done():
		case indexes <- i:
			continue
		}
		break
	}
	close(indexes)

	wg.Wait()

	if batchErr != nil {
		return nil, batchErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return outcomes, nil
}
