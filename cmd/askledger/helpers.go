package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/sahanav/askledger/internal/config"
	"github.com/sahanav/askledger/internal/engine"
	"github.com/sahanav/askledger/internal/format"
	"github.com/sahanav/askledger/internal/storage"
)

// defaultDBPath returns the configured database path, falling back to
// the standard local data directory.
func defaultDBPath() (string, error) {
	if dbPath := viper.GetString("database.path"); dbPath != "" {
		return config.ExpandPath(dbPath), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "askledger", "askledger.db"), nil
}

// openStore opens the SQLite store and brings its schema up to date.
func openStore(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath, err := defaultDBPath()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// newEngine builds the query engine from configuration.
func newEngine(store *storage.SQLiteStorage) *engine.Engine {
	formatter := format.New(format.Options{
		CurrencyPrefix: viper.GetString("format.currency"),
		RecentLimit:    viper.GetInt("format.recent_limit"),
	})

	var storeTimeout time.Duration
	if seconds := viper.GetInt("engine.store_timeout"); seconds > 0 {
		storeTimeout = time.Duration(seconds) * time.Second
	}

	return engine.New(store, engine.Options{
		Formatter:     formatter,
		StoreTimeout:  storeTimeout,
		FallbackLimit: viper.GetInt("engine.fallback_limit"),
		Strict:        viper.GetBool("engine.strict"),
	})
}
