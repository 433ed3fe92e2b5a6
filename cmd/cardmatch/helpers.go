package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"cardmatch/internal/common"
	"cardmatch/internal/storage"

	"github.com/spf13/viper"
)

// defaultDBPath returns the catalog path from config, falling back to
// the standard per-user data directory.
func defaultDBPath() (string, error) {
	if dbPath := viper.GetString("database.path"); dbPath != "" {
		return dbPath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "cardmatch", "catalog.db"), nil
}

// openCatalog opens the configured catalog database and brings its
// schema up to date.
func openCatalog(ctx context.Context) (*storage.SQLiteCatalog, error) {
	dbPath, err := defaultDBPath()
	if err != nil {
		return nil, err
	}

	catalog, err := storage.NewSQLiteCatalog(dbPath)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("unable to open the catalog at %s", dbPath), err)
	}

	if err := catalog.Migrate(ctx); err != nil {
		_ = catalog.Close()
		return nil, fmt.Errorf("failed to migrate catalog: %w", err)
	}

	return catalog, nil
}
