package storage

import (
	"context"
	"errors"
	"testing"

	"cardmatch/internal/common"
	"cardmatch/internal/model"
)

func floatp(f float64) *float64 { return &f }
func intp(i int) *int           { return &i }

func seedCards(t *testing.T, catalog *SQLiteCatalog, cards ...model.CardEntry) {
	t.Helper()
	if err := catalog.SaveCards(context.Background(), cards); err != nil {
		t.Fatalf("Failed to seed cards: %v", err)
	}
}

func TestSQLiteCatalog_SaveCardsUpsert(t *testing.T) {
	catalog := createTestCatalog(t)
	ctx := context.Background()

	card := model.CardEntry{
		URL:      "https://example.com/gardevoir-245",
		SetSlug:  "pokemon-151",
		Name:     "Gardevoir ex",
		Number:   "245",
		Ungraded: floatp(12.5),
	}
	seedCards(t, catalog, card)

	// Re-ingesting the same URL overwrites all non-identity fields.
	card.Name = "Gardevoir ex (updated)"
	card.Ungraded = floatp(15.0)
	card.PSA10 = floatp(120.0)
	seedCards(t, catalog, card)

	count, err := catalog.CardCount(ctx)
	if err != nil {
		t.Fatalf("Failed to count cards: %v", err)
	}
	if count != 1 {
		t.Errorf("Card count = %d, want 1 (upsert must not duplicate)", count)
	}

	got, err := catalog.GetCard(ctx, card.URL)
	if err != nil {
		t.Fatalf("Failed to get card: %v", err)
	}
	if got.Name != "Gardevoir ex (updated)" {
		t.Errorf("Name = %q, want updated name", got.Name)
	}
	if got.Ungraded == nil || *got.Ungraded != 15.0 {
		t.Errorf("Ungraded = %v, want 15.0", got.Ungraded)
	}
	if got.PSA10 == nil || *got.PSA10 != 120.0 {
		t.Errorf("PSA10 = %v, want 120.0", got.PSA10)
	}
}

func TestSQLiteCatalog_SaveCardsValidation(t *testing.T) {
	catalog := createTestCatalog(t)
	ctx := context.Background()

	if err := catalog.SaveCards(ctx, nil); err == nil {
		t.Error("Expected error for nil slice")
	}
	if err := catalog.SaveCards(ctx, []model.CardEntry{}); err == nil {
		t.Error("Expected error for empty slice")
	}
	if err := catalog.SaveCards(ctx, []model.CardEntry{{SetSlug: "x"}}); err == nil {
		t.Error("Expected error for missing URL")
	}
}

func TestSQLiteCatalog_GetCardNotFound(t *testing.T) {
	catalog := createTestCatalog(t)

	_, err := catalog.GetCard(context.Background(), "https://example.com/nope")
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteCatalog_CandidatesByNumber(t *testing.T) {
	catalog := createTestCatalog(t)
	ctx := context.Background()

	seedCards(t, catalog,
		model.CardEntry{URL: "u1", SetSlug: "pokemon-151", Name: "Bulbasaur", Number: "1"},
		model.CardEntry{URL: "u2", SetSlug: "pokemon-151", Name: "Alakazam ex", Number: "065"},
		model.CardEntry{URL: "u3", SetSlug: "pokemon-151", Name: "Gardevoir ex", Number: "245"},
		model.CardEntry{URL: "u4", SetSlug: "pokemon-151", Name: "Promo Mew", Number: "SVP-053"},
		model.CardEntry{URL: "u5", SetSlug: "other-set", Name: "Gardevoir ex", Number: "245"},
	)

	tests := []struct {
		name     string
		slugs    []string
		number   int
		wantURLs []string
	}{
		{
			name:     "exact match",
			slugs:    []string{"pokemon-151"},
			number:   245,
			wantURLs: []string{"u3"},
		},
		{
			name:     "zero padded match",
			slugs:    []string{"pokemon-151"},
			number:   65,
			wantURLs: []string{"u2"},
		},
		{
			name:     "substring of stored text",
			slugs:    []string{"pokemon-151"},
			number:   53,
			wantURLs: []string{"u4"},
		},
		{
			name:     "set restriction applies",
			slugs:    []string{"other-set"},
			number:   245,
			wantURLs: []string{"u5"},
		},
		{
			name:     "multiple sets",
			slugs:    []string{"pokemon-151", "other-set"},
			number:   245,
			wantURLs: []string{"u3", "u5"},
		},
		{
			name:     "no match",
			slugs:    []string{"pokemon-151"},
			number:   9999,
			wantURLs: nil,
		},
		{
			name:     "empty set list returns nothing",
			slugs:    nil,
			number:   245,
			wantURLs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.CandidatesByNumber(ctx, tt.slugs, tt.number)
			if err != nil {
				t.Fatalf("CandidatesByNumber failed: %v", err)
			}

			var gotURLs []string
			for _, card := range got {
				gotURLs = append(gotURLs, card.URL)
			}

			if len(gotURLs) != len(tt.wantURLs) {
				t.Fatalf("Got URLs %v, want %v", gotURLs, tt.wantURLs)
			}
			for i := range tt.wantURLs {
				if gotURLs[i] != tt.wantURLs[i] {
					t.Errorf("URL[%d] = %s, want %s", i, gotURLs[i], tt.wantURLs[i])
				}
			}
		})
	}
}

func TestSQLiteCatalog_CandidatesByNumberDeduplicates(t *testing.T) {
	catalog := createTestCatalog(t)
	ctx := context.Background()

	// "103" matches both the exact arm and the substring arm; the card
	// must still appear once.
	seedCards(t, catalog,
		model.CardEntry{URL: "u1", SetSlug: "s", Name: "Pidgeot", Number: "103"},
	)

	got, err := catalog.CandidatesByNumber(ctx, []string{"s"}, 103)
	if err != nil {
		t.Fatalf("CandidatesByNumber failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Got %d candidates, want 1", len(got))
	}
}

func TestSQLiteCatalog_ListCards(t *testing.T) {
	catalog := createTestCatalog(t)

	seedCards(t, catalog,
		model.CardEntry{URL: "u2", SetSlug: "b-set", Name: "Second", Number: "2"},
		model.CardEntry{URL: "u1", SetSlug: "a-set", Name: "First", Number: "1"},
	)

	cards, err := catalog.ListCards(context.Background())
	if err != nil {
		t.Fatalf("ListCards failed: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("Got %d cards, want 2", len(cards))
	}
	if cards[0].SetSlug != "a-set" {
		t.Errorf("Cards not ordered by set slug: first is %s", cards[0].SetSlug)
	}
}
