package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCardsCSV(t *testing.T) {
	csv := strings.Join([]string{
		"card_url,set_url,set_slug,product_id,card_name,card_number,image_url,ungraded_price,grade9_price,psa10_price",
		"https://example.com/gardevoir,https://example.com/151,pokemon-151,12345,Gardevoir ex,245,https://img/1.png,12.50,30.00,120.00",
		"https://example.com/mew,https://example.com/151,pokemon-151,12346,Mew ex,151,,,,",
		",,pokemon-151,,Skipped,1,,,,",
	}, "\n")

	cards, err := ReadCardsCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, cards, 2) // row without a URL is skipped

	first := cards[0]
	assert.Equal(t, "https://example.com/gardevoir", first.URL)
	assert.Equal(t, "pokemon-151", first.SetSlug)
	assert.Equal(t, "Gardevoir ex", first.Name)
	assert.Equal(t, "245", first.Number)
	require.NotNil(t, first.Ungraded)
	assert.Equal(t, 12.5, *first.Ungraded)

	second := cards[1]
	assert.Nil(t, second.Ungraded)
	assert.Nil(t, second.Grade9)
	assert.Nil(t, second.PSA10)
}

func TestReadCardsCSV_ColumnOrderIndependent(t *testing.T) {
	csv := strings.Join([]string{
		"card_name,card_number,card_url,set_slug",
		"Pikachu,25,https://example.com/pikachu,pokemon-151",
	}, "\n")

	cards, err := ReadCardsCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "Pikachu", cards[0].Name)
	assert.Equal(t, "https://example.com/pikachu", cards[0].URL)
}

func TestReadCardsCSV_MissingRequiredColumn(t *testing.T) {
	csv := "card_name,card_number\nPikachu,25\n"

	_, err := ReadCardsCSV(strings.NewReader(csv))
	assert.Error(t, err)
}

func TestReadSetsCSV(t *testing.T) {
	csv := strings.Join([]string{
		"set_slug,set_name,base_total,secret_total,released_md,released_year,released_raw,language",
		"pokemon-151,Scarlet & Violet 151,165 cards,42,Sep 22,2023,Sep 22 2023,English",
		"paldea-evolved,Paldea Evolved,193,,Jun 9,2023,,",
	}, "\n")

	sets, err := ReadSetsCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, sets, 2)

	first := sets[0]
	assert.Equal(t, "pokemon-151", first.Slug)
	require.NotNil(t, first.BaseTotal)
	assert.Equal(t, 165, *first.BaseTotal, "digits-only coercion should strip the unit suffix")
	require.NotNil(t, first.SecretTotal)
	assert.Equal(t, 42, *first.SecretTotal)

	second := sets[1]
	assert.Nil(t, second.SecretTotal)
	assert.Equal(t, "English", second.Language, "language defaults to English")
}

func TestDigitsInt(t *testing.T) {
	tests := []struct {
		in   string
		want *int
	}{
		{"165", intp(165)},
		{"165 cards", intp(165)},
		{"+165", intp(165)},
		{"", nil},
		{"none", nil},
	}

	for _, tt := range tests {
		got := digitsInt(tt.in)
		if tt.want == nil {
			assert.Nil(t, got, "digitsInt(%q)", tt.in)
		} else {
			require.NotNil(t, got, "digitsInt(%q)", tt.in)
			assert.Equal(t, *tt.want, *got)
		}
	}
}
