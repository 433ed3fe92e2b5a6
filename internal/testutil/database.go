// Package testutil provides in-memory catalog fixtures for tests.
package testutil

import (
	"context"
	"testing"

	"cardmatch/internal/model"
	"cardmatch/internal/service"
	"cardmatch/internal/storage"
)

// TestCatalog wraps an in-memory catalog with seeding helpers.
type TestCatalog struct {
	Catalog service.Catalog
	t       *testing.T
}

// SetupTestCatalog creates a migrated in-memory SQLite catalog seeded
// with the given sets and cards. Cleanup is registered automatically.
func SetupTestCatalog(t *testing.T, sets []model.SetMeta, cards []model.CardEntry) *TestCatalog {
	t.Helper()

	catalog, err := storage.NewSQLiteCatalog(":memory:")
	if err != nil {
		t.Fatalf("failed to create test catalog: %v", err)
	}

	ctx := context.Background()
	if err := catalog.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	if len(sets) > 0 {
		if err := catalog.SaveSets(ctx, sets); err != nil {
			t.Fatalf("failed to seed sets: %v", err)
		}
	}
	if len(cards) > 0 {
		if err := catalog.SaveCards(ctx, cards); err != nil {
			t.Fatalf("failed to seed cards: %v", err)
		}
	}

	t.Cleanup(func() {
		_ = catalog.Close()
	})

	return &TestCatalog{
		Catalog: catalog,
		t:       t,
	}
}

// IntPtr returns a pointer to i, for optional fixture fields.
func IntPtr(i int) *int {
	return &i
}

// FloatPtr returns a pointer to f, for optional fixture fields.
func FloatPtr(f float64) *float64 {
	return &f
}

// EnglishSet builds a minimal English set fixture.
func EnglishSet(slug string, baseTotal, releasedYear int) model.SetMeta {
	return model.SetMeta{
		Slug:         slug,
		Name:         slug,
		Language:     storage.EnglishLanguage,
		BaseTotal:    IntPtr(baseTotal),
		ReleasedYear: IntPtr(releasedYear),
	}
}

// Card builds a minimal card fixture in the given set.
func Card(url, setSlug, name, number string) model.CardEntry {
	return model.CardEntry{
		URL:     url,
		SetSlug: setSlug,
		Name:    name,
		Number:  number,
	}
}
