package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"cardmatch/internal/common"
	"cardmatch/internal/model"
	"cardmatch/internal/storage"
)

// ReadSetsCSV parses a set-metadata export. Numeric columns use
// digits-only coercion, so "165 cards" and "165" both yield 165.
// Language defaults to English when the column is absent or empty,
// matching the enrichment pipeline.
func ReadSetsCSV(r io.Reader) ([]model.SetMeta, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := headerIndex(header)
	if _, ok := cols["set_slug"]; !ok {
		return nil, fmt.Errorf("%w: missing column %q", common.ErrMalformedRecord, "set_slug")
	}

	var sets []model.SetMeta
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

		slug := get("set_slug")
		if slug == "" {
			continue
		}

		language := get("language")
		if language == "" {
			language = storage.EnglishLanguage
		}

		sets = append(sets, model.SetMeta{
			Slug:         slug,
			Name:         get("set_name"),
			BaseTotal:    digitsInt(get("base_total")),
			SecretTotal:  digitsInt(get("secret_total")),
			ReleasedMD:   get("released_md"),
			ReleasedYear: digitsInt(get("released_year")),
			ReleasedRaw:  get("released_raw"),
			Language:     language,
		})
	}

	return sets, nil
}
