package ingest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cardmatch/internal/common"
	"cardmatch/internal/model"
)

// Line is one JSONL identification record. Err is set when the line
// could not be parsed; such lines still occupy their slot so batch
// output order matches input order.
type Line struct {
	Err   error
	Input model.Identification
	Index int
}

// rawIdentification mirrors the classifier's JSON output. Numeric
// fields arrive as numbers or strings depending on the upstream run, so
// they are decoded loosely and coerced afterwards.
type rawIdentification struct {
	Image           string `json:"image"`
	FrontLocal      string `json:"front_local"`
	Path            string `json:"path"`
	CardName        string `json:"card_name"`
	CollectorNumber string `json:"collector_number"`
	Language        string `json:"language"`
	SetName         string `json:"set_name"`
	SetCode         string `json:"set_code"`
	SetSize         any    `json:"set_size"`
	CopyrightYear   any    `json:"copyright_year"`
	Confidence      any    `json:"confidence"`
}

// ReadIdentifications reads classifier output, one JSON object per
// line. Blank lines are skipped. Malformed lines are returned with Err
// set rather than aborting the whole file. Indexes count physical lines
// from zero so a batch can be resumed with a start offset.
func ReadIdentifications(r io.Reader) ([]Line, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []Line
	index := -1
	for scanner.Scan() {
		index++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var raw rawIdentification
		if err := json.Unmarshal([]byte(text), &raw); err != nil {
			lines = append(lines, Line{
				Index: index,
				Err:   fmt.Errorf("%w: line %d: %v", common.ErrMalformedRecord, index, err),
			})
			continue
		}

		image := raw.Image
		if image == "" {
			image = raw.FrontLocal
		}
		if image == "" {
			image = raw.Path
		}

		lines = append(lines, Line{
			Index: index,
			Input: model.Identification{
				Image:           image,
				Name:            strings.TrimSpace(raw.CardName),
				CollectorNumber: strings.TrimSpace(raw.CollectorNumber),
				Language:        raw.Language,
				SetNameHint:     raw.SetName,
				SetCodeHint:     raw.SetCode,
				SetSize:         coerceInt(raw.SetSize),
				CopyrightYear:   coerceInt(raw.CopyrightYear),
				Confidence:      coerceFloat(raw.Confidence),
			},
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read identifications: %w", err)
	}

	return lines, nil
}

// coerceInt converts a loosely-typed JSON value to an int. Anything
// unparseable is absent, never an error.
func coerceInt(v any) *int {
	switch x := v.(type) {
	case nil:
		return nil
	case float64:
		n := int(x)
		return &n
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil
		}
		return &n
	case json.Number:
		n, err := strconv.Atoi(x.String())
		if err != nil {
			return nil
		}
		return &n
	default:
		return nil
	}
}

// coerceFloat converts a loosely-typed JSON value to a float64.
func coerceFloat(v any) *float64 {
	switch x := v.(type) {
	case nil:
		return nil
	case float64:
		f := x
		return &f
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &f
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}
