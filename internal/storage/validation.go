// Package storage provides the SQLite-backed card catalog.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cardmatch/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrEmptySlice   = errors.New("slice cannot be empty")
	ErrInvalidCard  = errors.New("invalid card entry")
	ErrInvalidSet   = errors.New("invalid set metadata")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateCards validates a slice of card entries.
func validateCards(cards []model.CardEntry) error {
	if cards == nil {
		return fmt.Errorf("%w: cards", ErrNilParameter)
	}
	if len(cards) == 0 {
		return fmt.Errorf("%w: cards", ErrEmptySlice)
	}

	for i, card := range cards {
		if err := validateCard(&card); err != nil {
			return fmt.Errorf("card at index %d: %w", i, err)
		}
	}
	return nil
}

// validateCard validates a single card entry.
func validateCard(card *model.CardEntry) error {
	if card == nil {
		return fmt.Errorf("%w: card", ErrNilParameter)
	}
	if strings.TrimSpace(card.URL) == "" {
		return fmt.Errorf("%w: missing listing URL", ErrInvalidCard)
	}
	if strings.TrimSpace(card.SetSlug) == "" {
		return fmt.Errorf("%w: missing set slug", ErrInvalidCard)
	}
	return nil
}

// validateSets validates a slice of set metadata records.
func validateSets(sets []model.SetMeta) error {
	if sets == nil {
		return fmt.Errorf("%w: sets", ErrNilParameter)
	}
	if len(sets) == 0 {
		return fmt.Errorf("%w: sets", ErrEmptySlice)
	}

	for i, set := range sets {
		if err := validateSet(&set); err != nil {
			return fmt.Errorf("set at index %d: %w", i, err)
		}
	}
	return nil
}

// validateSet validates a single set metadata record.
func validateSet(set *model.SetMeta) error {
	if set == nil {
		return fmt.Errorf("%w: set", ErrNilParameter)
	}
	if strings.TrimSpace(set.Slug) == "" {
		return fmt.Errorf("%w: missing set slug", ErrInvalidSet)
	}
	if set.BaseTotal != nil && *set.BaseTotal <= 0 {
		return fmt.Errorf("%w: base total must be positive", ErrInvalidSet)
	}
	if set.ReleasedYear != nil && (*set.ReleasedYear < 1000 || *set.ReleasedYear > 9999) {
		return fmt.Errorf("%w: released year must be four digits", ErrInvalidSet)
	}
	return nil
}
