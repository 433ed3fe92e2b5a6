package storage

import (
	"context"
	"testing"
)

func createTestCatalog(t *testing.T) *SQLiteCatalog {
	t.Helper()

	catalog, err := NewSQLiteCatalog(":memory:")
	if err != nil {
		t.Fatalf("Failed to create catalog: %v", err)
	}
	if err := catalog.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	t.Cleanup(func() {
		_ = catalog.Close()
	})
	return catalog
}

func TestSQLiteCatalog_EmptyPathRejected(t *testing.T) {
	if _, err := NewSQLiteCatalog(""); err == nil {
		t.Fatal("Expected error for empty path")
	}
	if _, err := NewSQLiteCatalog("   "); err == nil {
		t.Fatal("Expected error for blank path")
	}
}

func TestSQLiteCatalog_MigrateIsIdempotent(t *testing.T) {
	catalog := createTestCatalog(t)
	ctx := context.Background()

	// A second migration run must be a no-op, not a failure.
	if err := catalog.Migrate(ctx); err != nil {
		t.Fatalf("Second migrate failed: %v", err)
	}

	var version int
	if err := catalog.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		t.Fatalf("Failed to read schema version: %v", err)
	}
	if version != ExpectedSchemaVersion {
		t.Errorf("Schema version = %d, want %d", version, ExpectedSchemaVersion)
	}
}

func TestSQLiteCatalog_NilContextRejected(t *testing.T) {
	catalog := createTestCatalog(t)

	//nolint:staticcheck // deliberately passing nil context
	if err := catalog.Migrate(nil); err == nil {
		t.Fatal("Expected error for nil context")
	}
	//nolint:staticcheck // deliberately passing nil context
	if _, err := catalog.CardCount(nil); err == nil {
		t.Fatal("Expected error for nil context")
	}
}
