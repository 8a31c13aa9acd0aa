package catalog

import (
	"context"

	"github.com/magefree/gwent-engine-go/internal/card"
	"github.com/magefree/gwent-engine-go/internal/config"
	"go.uber.org/zap"
)

// Load picks the catalog source from cfg: a CSV file, a Postgres
// database, or the built-in standard set.
func Load(ctx context.Context, cfg config.CatalogConfig, logger *zap.Logger) (*card.Catalog, error) {
	switch {
	case cfg.Path != "":
		logger.Info("loading catalog from file", zap.String("path", cfg.Path))
		return LoadCSV(cfg.Path)
	case cfg.DatabaseURL != "":
		logger.Info("loading catalog from database")
		store, err := NewPGStore(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.LoadCatalog(ctx)
	default:
		return Standard(), nil
	}
}
