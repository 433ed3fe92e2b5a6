package main

import (
	"fmt"
	"log/slog"

	"cardmatch/internal/storage"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run catalog database migrations",
		Long: `Initialize or update the catalog schema to the latest version.
Other commands migrate automatically on open; this exists to prepare a
database ahead of time or verify one after copying it between machines.`,
		RunE: runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	dbPath, err := defaultDBPath()
	if err != nil {
		return err
	}

	slog.Info("Starting catalog migration", "database", dbPath)

	catalog, err := storage.NewSQLiteCatalog(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() { _ = catalog.Close() }()

	if err := catalog.Migrate(cmd.Context()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	slog.Info("Catalog migrations completed", "schema_version", storage.ExpectedSchemaVersion)
	return nil
}
