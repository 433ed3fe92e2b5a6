package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"cardmatch/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOutcomes() []model.Outcome {
	size := 165
	year := 2023
	price := 12.5

	return []model.Outcome{
		{
			Input: model.Identification{
				Image:           "img1.png",
				Name:            "Gardevoir ex",
				CollectorNumber: "245/165",
				SetSize:         &size,
				CopyrightYear:   &year,
			},
			Best: &model.RankedCandidate{
				Score:    100,
				Name:     "Gardevoir ex",
				Number:   "245",
				URL:      "https://example.com/gardevoir",
				SetSlug:  "pokemon-151",
				Ungraded: &price,
			},
			Matches: []model.RankedCandidate{
				{Score: 100, Name: "Gardevoir ex", Number: "245", URL: "https://example.com/gardevoir", SetSlug: "pokemon-151", Ungraded: &price},
			},
		},
		{
			Input:         model.Identification{Name: "Unknown", CollectorNumber: ""},
			NeedsReview:   true,
			ReviewReasons: []string{"no candidates found", "missing input number"},
		},
	}
}

func TestWriteReviewCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReviewCSV(&buf, sampleOutcomes()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 outcomes

	assert.Equal(t, reviewHeader, rows[0])

	matched := rows[1]
	assert.Equal(t, "0", matched[0])
	assert.Equal(t, "img1.png", matched[1])
	assert.Equal(t, "Gardevoir ex", matched[7])
	assert.Equal(t, "100", matched[11])
	assert.Equal(t, "false", matched[13])

	missed := rows[2]
	assert.Equal(t, "1", missed[0])
	assert.Equal(t, "", missed[7], "no best match fields")
	assert.Equal(t, "true", missed[13])
	assert.Contains(t, missed[14], "missing input number")
}

func TestWriteOutcomesJSONL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutcomes(&buf, sampleOutcomes()))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	assert.Contains(t, string(lines[0]), `"needs_review":false`)
	assert.Contains(t, string(lines[0]), `"card_url":"https://example.com/gardevoir"`)
	assert.Contains(t, string(lines[1]), `"best":null`)
	assert.Contains(t, string(lines[1]), `"review_reasons":["no candidates found","missing input number"]`)
}

func TestWriteCardsCSVRoundTripColumns(t *testing.T) {
	price := 9.99
	cards := []model.CardEntry{
		{
			URL:      "https://example.com/pikachu",
			SetSlug:  "pokemon-151",
			Name:     "Pikachu",
			Number:   "25",
			Ungraded: &price,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCardsCSV(&buf, cards))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, cardsHeader, rows[0])
	assert.Equal(t, "https://example.com/pikachu", rows[1][0])
	assert.Equal(t, "9.99", rows[1][7])
}
