package storage

import (
	"context"
	"testing"

	"cardmatch/internal/model"
	"cardmatch/internal/service"
)

func seedSets(t *testing.T, catalog *SQLiteCatalog, sets ...model.SetMeta) {
	t.Helper()
	if err := catalog.SaveSets(context.Background(), sets); err != nil {
		t.Fatalf("Failed to seed sets: %v", err)
	}
}

func defaultSets() []model.SetMeta {
	return []model.SetMeta{
		{Slug: "pokemon-151", Language: EnglishLanguage, BaseTotal: intp(165), ReleasedYear: intp(2023)},
		{Slug: "paldea-evolved", Language: EnglishLanguage, BaseTotal: intp(193), ReleasedYear: intp(2023)},
		{Slug: "obsidian-flames", Language: EnglishLanguage, BaseTotal: intp(197), ReleasedYear: intp(2024)},
		{Slug: "pokemon-card-151-jp", Language: "Japanese", BaseTotal: intp(165), ReleasedYear: intp(2023)},
		{Slug: "mystery-set", Language: EnglishLanguage},
	}
}

func TestSQLiteCatalog_CandidateSets(t *testing.T) {
	catalog := createTestCatalog(t)
	seedSets(t, catalog, defaultSets()...)
	ctx := context.Background()

	tests := []struct {
		name      string
		filter    service.SetFilter
		wantSlugs []string
	}{
		{
			name:      "size and year",
			filter:    service.SetFilter{BaseTotal: intp(165), CopyrightYear: intp(2023)},
			wantSlugs: []string{"pokemon-151"},
		},
		{
			name: "year admits the following catalog year",
			// Claimed 2024 matches sets released in 2024 or 2023.
			filter:    service.SetFilter{CopyrightYear: intp(2024)},
			wantSlugs: []string{"obsidian-flames", "paldea-evolved", "pokemon-151"},
		},
		{
			name:      "size only",
			filter:    service.SetFilter{BaseTotal: intp(193)},
			wantSlugs: []string{"paldea-evolved"},
		},
		{
			name:      "non-English set excluded even when numerically matching",
			filter:    service.SetFilter{BaseTotal: intp(165), CopyrightYear: intp(2023)},
			wantSlugs: []string{"pokemon-151"},
		},
		{
			name:      "no filters returns all eligible English sets",
			filter:    service.SetFilter{},
			wantSlugs: []string{"mystery-set", "obsidian-flames", "paldea-evolved", "pokemon-151"},
		},
		{
			name:      "impossible size matches nothing",
			filter:    service.SetFilter{BaseTotal: intp(9999)},
			wantSlugs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.CandidateSets(ctx, tt.filter)
			if err != nil {
				t.Fatalf("CandidateSets failed: %v", err)
			}

			if len(got) != len(tt.wantSlugs) {
				t.Fatalf("Got slugs %v, want %v", got, tt.wantSlugs)
			}
			for i := range tt.wantSlugs {
				if got[i] != tt.wantSlugs[i] {
					t.Errorf("Slug[%d] = %s, want %s", i, got[i], tt.wantSlugs[i])
				}
			}
		})
	}
}

func TestSQLiteCatalog_SaveSetsUpsert(t *testing.T) {
	catalog := createTestCatalog(t)
	ctx := context.Background()

	seedSets(t, catalog, model.SetMeta{
		Slug:         "pokemon-151",
		Name:         "Scarlet & Violet 151",
		Language:     EnglishLanguage,
		BaseTotal:    intp(165),
		ReleasedYear: intp(2023),
	})

	// A partial re-import must not erase previously enriched fields.
	seedSets(t, catalog, model.SetMeta{
		Slug: "pokemon-151",
		Name: "Scarlet & Violet 151",
	})

	got, err := catalog.GetSet(ctx, "pokemon-151")
	if err != nil {
		t.Fatalf("GetSet failed: %v", err)
	}
	if got.BaseTotal == nil || *got.BaseTotal != 165 {
		t.Errorf("BaseTotal = %v, want 165 preserved across partial upsert", got.BaseTotal)
	}
	if got.Language != EnglishLanguage {
		t.Errorf("Language = %q, want preserved", got.Language)
	}

	count, err := catalog.SetCount(ctx)
	if err != nil {
		t.Fatalf("SetCount failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Set count = %d, want 1", count)
	}
}

func TestSQLiteCatalog_SaveSetsValidation(t *testing.T) {
	catalog := createTestCatalog(t)
	ctx := context.Background()

	if err := catalog.SaveSets(ctx, []model.SetMeta{{Slug: "x", BaseTotal: intp(0)}}); err == nil {
		t.Error("Expected error for non-positive base total")
	}
	if err := catalog.SaveSets(ctx, []model.SetMeta{{Slug: "x", ReleasedYear: intp(99)}}); err == nil {
		t.Error("Expected error for non-four-digit year")
	}
	if err := catalog.SaveSets(ctx, []model.SetMeta{{}}); err == nil {
		t.Error("Expected error for missing slug")
	}
}
