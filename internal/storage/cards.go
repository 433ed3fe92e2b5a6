package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"cardmatch/internal/common"
	"cardmatch/internal/model"
)

const cardColumns = `card_url, set_url, set_slug, product_id, card_name,
	card_number, image_url, ungraded_price, grade9_price, psa10_price`

// SaveCards upserts card entries keyed by listing URL. Re-ingesting an
// existing URL overwrites every non-identity column.
func (s *SQLiteCatalog) SaveCards(ctx context.Context, cards []model.CardEntry) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCards(cards); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cards (
			card_url, set_url, set_slug, product_id, card_name,
			card_number, image_url, ungraded_price, grade9_price, psa10_price
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(card_url) DO UPDATE SET
			set_url=excluded.set_url,
			set_slug=excluded.set_slug,
			product_id=excluded.product_id,
			card_name=excluded.card_name,
			card_number=excluded.card_number,
			image_url=excluded.image_url,
			ungraded_price=excluded.ungraded_price,
			grade9_price=excluded.grade9_price,
			psa10_price=excluded.psa10_price,
			updated_at=CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, card := range cards {
		_, err = stmt.ExecContext(ctx,
			card.URL,
			card.SetURL,
			card.SetSlug,
			card.ProductID,
			card.Name,
			card.Number,
			card.ImageURL,
			nullFloat(card.Ungraded),
			nullFloat(card.Grade9),
			nullFloat(card.PSA10),
		)
		if err != nil {
			return fmt.Errorf("failed to upsert card %s: %w", card.URL, err)
		}
	}

	return tx.Commit()
}

// GetCard returns the card entry with the given listing URL.
func (s *SQLiteCatalog) GetCard(ctx context.Context, url string) (*model.CardEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(url, "url"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM cards WHERE card_url = ?`, cardColumns), url)

	card, err := scanCard(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: card %s", common.ErrNotFound, url)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return card, nil
}

// CandidatesByNumber returns every card owned by one of the given sets
// whose stored printed-number text matches the target number exactly,
// zero-padded to three digits, or as a substring of the stored text.
//
// The LIKE arms deliberately over-select: scraped number fields carry
// inconsistent zero-padding and embedded prefixes/suffixes, so this stage
// trades precision for recall and leaves precision to the scorer. The
// looser inverse match (input as substring of a longer number, "53"
// matching "153") is intentionally not performed.
func (s *SQLiteCatalog) CandidatesByNumber(ctx context.Context, setSlugs []string, number int) ([]model.CardEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if len(setSlugs) == 0 {
		return nil, nil
	}
	if number < 0 {
		return nil, fmt.Errorf("number must be non-negative, got %d", number)
	}

	n := fmt.Sprintf("%d", number)
	n3 := fmt.Sprintf("%03d", number)

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(setSlugs)), ",")
	args := make([]any, 0, len(setSlugs)+4)
	for _, slug := range setSlugs {
		args = append(args, slug)
	}
	args = append(args, n, n3, "%"+n+"%", "%"+n3+"%")

	query := fmt.Sprintf(`
		SELECT %s
		FROM cards
		WHERE set_slug IN (%s)
		  AND (
		        card_number = ?
		     OR card_number = ?
		     OR card_number LIKE ?
		     OR card_number LIKE ?
		  )
		ORDER BY set_slug, card_number, card_url
	`, cardColumns, placeholders)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidate cards: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var cards []model.CardEntry
	seen := make(map[string]bool)
	for rows.Next() {
		card, scanErr := scanCard(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan candidate card: %w", scanErr)
		}
		if seen[card.URL] {
			continue
		}
		seen[card.URL] = true
		cards = append(cards, *card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidate cards: %w", err)
	}

	return cards, nil
}

// ListCards returns every card in the catalog ordered by set and number.
func (s *SQLiteCatalog) ListCards(ctx context.Context) ([]model.CardEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT %s FROM cards ORDER BY set_slug, card_number, card_url`, cardColumns))
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var cards []model.CardEntry
	for rows.Next() {
		card, scanErr := scanCard(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan card: %w", scanErr)
		}
		cards = append(cards, *card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cards: %w", err)
	}

	return cards, nil
}

// CardCount returns the number of cards in the catalog.
func (s *SQLiteCatalog) CardCount(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cards`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count cards: %w", err)
	}
	return count, nil
}

// scanner abstracts sql.Row and sql.Rows for scanCard.
type scanner interface {
	Scan(dest ...any) error
}

func scanCard(row scanner) (*model.CardEntry, error) {
	var card model.CardEntry
	var setURL, setSlug, productID, name, number, imageURL sql.NullString
	var ungraded, grade9, psa10 sql.NullFloat64

	err := row.Scan(
		&card.URL,
		&setURL,
		&setSlug,
		&productID,
		&name,
		&number,
		&imageURL,
		&ungraded,
		&grade9,
		&psa10,
	)
	if err != nil {
		return nil, err
	}

	card.SetURL = setURL.String
	card.SetSlug = setSlug.String
	card.ProductID = productID.String
	card.Name = name.String
	card.Number = number.String
	card.ImageURL = imageURL.String
	card.Ungraded = floatPtr(ungraded)
	card.Grade9 = floatPtr(grade9)
	card.PSA10 = floatPtr(psa10)

	return &card, nil
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func floatPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}
