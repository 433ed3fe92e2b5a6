// Package ingest parses the scraper exports and classifier output that
// feed the catalog and the resolution engine. Parsing is tolerant:
// numeric fields degrade to absent values rather than failing a whole
// file for one bad cell.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cardmatch/internal/common"
	"cardmatch/internal/model"
)

// ReadCardsCSV parses a cards export. The file must carry a header row;
// columns are matched by name so column order doesn't matter. Required
// columns: card_url, set_slug. Everything else is optional.
func ReadCardsCSV(r io.Reader) ([]model.CardEntry, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := headerIndex(header)
	for _, required := range []string{"card_url", "set_slug"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", common.ErrMalformedRecord, required)
		}
	}

	var cards []model.CardEntry
	for line := 2; ; line++ {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", line, readErr)
		}

		get := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		url := get("card_url")
		if url == "" {
			continue
		}

		cards = append(cards, model.CardEntry{
			URL:       url,
			SetURL:    get("set_url"),
			SetSlug:   get("set_slug"),
			ProductID: get("product_id"),
			Name:      get("card_name"),
			Number:    get("card_number"),
			ImageURL:  get("image_url"),
			Ungraded:  parseFloat(get("ungraded_price")),
			Grade9:    parseFloat(get("grade9_price")),
			PSA10:     parseFloat(get("psa10_price")),
		})
	}

	return cards, nil
}

// headerIndex maps lowercased column names to their positions. A UTF-8
// BOM on the first column is stripped.
func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, "\uFEFF")
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

// parseFloat returns nil for empty or unparseable price text.
func parseFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimPrefix(s, "$"), 64)
	if err != nil {
		return nil
	}
	return &f
}

// digitsInt extracts the digits of s as an integer, matching the
// enrichment pipeline's tolerant coercion ("165 cards" -> 165). Returns
// nil when s contains no digits.
func digitsInt(s string) *int {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 0 {
		return nil
	}

	n, err := strconv.Atoi(sb.String())
	if err != nil {
		return nil
	}
	return &n
}
