package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cardmatch/internal/common"
	"cardmatch/internal/model"
	"cardmatch/internal/service"
)

// EnglishLanguage is the only language tag the resolution engine
// consults. Other-language sets stay in the catalog but are excluded
// from candidate selection as a business rule.
const EnglishLanguage = "English"

// SaveSets upserts set metadata keyed by set slug.
func (s *SQLiteCatalog) SaveSets(ctx context.Context, sets []model.SetMeta) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateSets(sets); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO set_meta (
			set_slug, set_name, base_total, secret_total,
			released_md, released_year, released_raw, language
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(set_slug) DO UPDATE SET
			set_name=excluded.set_name,
			base_total=COALESCE(excluded.base_total, set_meta.base_total),
			secret_total=COALESCE(excluded.secret_total, set_meta.secret_total),
			released_md=COALESCE(excluded.released_md, set_meta.released_md),
			released_year=COALESCE(excluded.released_year, set_meta.released_year),
			released_raw=COALESCE(excluded.released_raw, set_meta.released_raw),
			language=COALESCE(excluded.language, set_meta.language),
			updated_at=CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, set := range sets {
		_, err = stmt.ExecContext(ctx,
			set.Slug,
			set.Name,
			nullInt(set.BaseTotal),
			nullInt(set.SecretTotal),
			nullString(set.ReleasedMD),
			nullInt(set.ReleasedYear),
			nullString(set.ReleasedRaw),
			nullString(set.Language),
		)
		if err != nil {
			return fmt.Errorf("failed to upsert set %s: %w", set.Slug, err)
		}
	}

	return tx.Commit()
}

// GetSet returns the set metadata with the given slug.
func (s *SQLiteCatalog) GetSet(ctx context.Context, slug string) (*model.SetMeta, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(slug, "slug"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT set_slug, set_name, base_total, secret_total,
		       released_md, released_year, released_raw, language
		FROM set_meta
		WHERE set_slug = ?
	`, slug)

	set, err := scanSet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: set %s", common.ErrNotFound, slug)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get set: %w", err)
	}
	return set, nil
}

// CandidateSets returns the slugs of English-language sets satisfying
// every supplied filter. Absent filters are simply not applied; the
// released-year filter also admits the year before the claimed copyright
// year, because the catalog records a set's release one year after the
// year printed on its cards.
func (s *SQLiteCatalog) CandidateSets(ctx context.Context, filter service.SetFilter) ([]string, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	where := []string{"language = ?"}
	args := []any{EnglishLanguage}

	if filter.BaseTotal != nil {
		where = append(where, "base_total = ?")
		args = append(args, *filter.BaseTotal)
	}

	if filter.CopyrightYear != nil {
		where = append(where, "(released_year = ? OR released_year = ?)")
		args = append(args, *filter.CopyrightYear, *filter.CopyrightYear-1)
	}

	query := "SELECT set_slug FROM set_meta WHERE " + where[0]
	for _, clause := range where[1:] {
		query += " AND " + clause
	}
	query += " ORDER BY set_slug"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidate sets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var slugs []string
	for rows.Next() {
		var slug string
		if scanErr := rows.Scan(&slug); scanErr != nil {
			return nil, fmt.Errorf("failed to scan set slug: %w", scanErr)
		}
		slugs = append(slugs, slug)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidate sets: %w", err)
	}

	return slugs, nil
}

// SetCount returns the number of set metadata rows in the catalog.
func (s *SQLiteCatalog) SetCount(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM set_meta`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sets: %w", err)
	}
	return count, nil
}

func scanSet(row scanner) (*model.SetMeta, error) {
	var set model.SetMeta
	var name, releasedMD, releasedRaw, language sql.NullString
	var baseTotal, secretTotal, releasedYear sql.NullInt64

	err := row.Scan(
		&set.Slug,
		&name,
		&baseTotal,
		&secretTotal,
		&releasedMD,
		&releasedYear,
		&releasedRaw,
		&language,
	)
	if err != nil {
		return nil, err
	}

	set.Name = name.String
	set.ReleasedMD = releasedMD.String
	set.ReleasedRaw = releasedRaw.String
	set.Language = language.String
	set.BaseTotal = intPtr(baseTotal)
	set.SecretTotal = intPtr(secretTotal)
	set.ReleasedYear = intPtr(releasedYear)

	return &set, nil
}

func nullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func intPtr(i sql.NullInt64) *int {
	if !i.Valid {
		return nil
	}
	v := int(i.Int64)
	return &v
}
