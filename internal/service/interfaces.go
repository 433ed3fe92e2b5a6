// Package service defines the interfaces between the resolution engine
// and its collaborators. The catalog is passed in as an explicit handle
// so tests can substitute an in-memory fixture.
package service

import (
	"context"

	"cardmatch/internal/model"
)

// SetFilter restricts candidate set selection. Nil fields are absent
// constraints and are not applied.
type SetFilter struct {
	BaseTotal     *int
	CopyrightYear *int
}

// CatalogReader is the read contract the resolution engine depends on.
type CatalogReader interface {
	// CandidateSets returns the slugs of English-language sets
	// satisfying every supplied filter. With no filters it returns all
	// eligible sets.
	CandidateSets(ctx context.Context, filter SetFilter) ([]string, error)

	// CandidatesByNumber returns catalog entries owned by one of the
	// given sets whose stored printed-number text matches the target
	// number exactly, zero-padded to three digits, or as a substring of
	// the stored text. Results are de-duplicated by listing URL.
	CandidatesByNumber(ctx context.Context, setSlugs []string, number int) ([]model.CardEntry, error)
}

// CatalogWriter is the ingestion contract used by the import commands.
type CatalogWriter interface {
	// SaveCards upserts card entries keyed by listing URL.
	SaveCards(ctx context.Context, cards []model.CardEntry) error

	// SaveSets upserts set metadata keyed by set slug.
	SaveSets(ctx context.Context, sets []model.SetMeta) error
}

// Catalog is the full catalog store surface.
type Catalog interface {
	CatalogReader
	CatalogWriter

	GetCard(ctx context.Context, url string) (*model.CardEntry, error)
	GetSet(ctx context.Context, slug string) (*model.SetMeta, error)
	ListCards(ctx context.Context) ([]model.CardEntry, error)
	CardCount(ctx context.Context) (int, error)
	SetCount(ctx context.Context) (int, error)

	Migrate(ctx context.Context) error
	Close() error
}
