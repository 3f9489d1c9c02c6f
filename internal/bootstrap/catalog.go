package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"tool-rental-backend/internal/config"
	"tool-rental-backend/internal/logger"
	"tool-rental-backend/internal/repository/memory"
	"tool-rental-backend/internal/repository/postgres"
)

// OpenDB opens and pings the configured PostgreSQL database.
func OpenDB(cfg *config.Config) (*sql.DB, error) {
	logger.Debug("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	logger.Info("Database connection established")
	return db, nil
}

// LoadCatalog builds the tool catalog from the configured source. The
// postgres source reads the tools table once and closes the connection.
func LoadCatalog(ctx context.Context, cfg *config.Config) (*memory.Catalog, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceFile:
		logger.Info("Loading tool catalog from file", "file", cfg.Catalog.File)
		return memory.LoadFile(cfg.Catalog.File)
	case config.CatalogSourcePostgres:
		db, err := OpenDB(cfg)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		logger.Info("Loading tool catalog from database")
		return memory.FromRepository(ctx, postgres.NewStore(db))
	default:
		logger.Info("Using built-in tool catalog")
		return memory.DefaultCatalog(), nil
	}
}
