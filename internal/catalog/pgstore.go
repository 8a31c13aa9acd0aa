package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/magefree/gwent-engine-go/internal/card"
	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS gwent_cards (
	id        INTEGER PRIMARY KEY,
	name      TEXT    NOT NULL,
	strength  INTEGER NOT NULL DEFAULT 0,
	ability   TEXT    NOT NULL DEFAULT 'none',
	card_type TEXT    NOT NULL,
	faction   TEXT    NOT NULL,
	lane      TEXT    NOT NULL,
	copies    INTEGER NOT NULL DEFAULT 1
)`

const selectTemplates = `
SELECT id, name, strength, ability, card_type AS type, faction, lane, copies
FROM gwent_cards
ORDER BY id`

const upsertTemplate = `
INSERT INTO gwent_cards (id, name, strength, ability, card_type, faction, lane, copies)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET
	name = EXCLUDED.name,
	strength = EXCLUDED.strength,
	ability = EXCLUDED.ability,
	card_type = EXCLUDED.card_type,
	faction = EXCLUDED.faction,
	lane = EXCLUDED.lane,
	copies = EXCLUDED.copies`

// PGStore keeps card templates in PostgreSQL.
type PGStore struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPGStore connects to databaseURL and verifies the connection.
func NewPGStore(ctx context.Context, databaseURL string, logger *zap.Logger) (*PGStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PGStore{pool: pool, logger: logger}, nil
}

// Close releases the connection pool.
func (s *PGStore) Close() {
	s.pool.Close()
}

// EnsureSchema creates the card table if it does not exist.
func (s *PGStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// LoadTemplates reads every stored template ordered by ID.
func (s *PGStore) LoadTemplates(ctx context.Context) ([]card.Template, error) {
	rows, err := s.pool.Query(ctx, selectTemplates)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards: %w", err)
	}
	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("failed to read cards: %w", err)
	}

	templates := make([]card.Template, 0, len(maps))
	for _, row := range maps {
		t, err := decodeTemplate(row)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	s.logger.Debug("loaded card templates", zap.Int("count", len(templates)))
	return templates, nil
}

// LoadCatalog reads and validates the stored catalog.
func (s *PGStore) LoadCatalog(ctx context.Context) (*card.Catalog, error) {
	templates, err := s.LoadTemplates(ctx)
	if err != nil {
		return nil, err
	}
	return card.NewCatalog(templates)
}

// ImportTemplates upserts templates in batches of batchSize, one
// transaction per batch. It returns how many rows were written.
func (s *PGStore) ImportTemplates(ctx context.Context, templates []card.Template, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = len(templates)
	}
	imported := 0
	for start := 0; start < len(templates); start += batchSize {
		end := min(start+batchSize, len(templates))
		if err := s.importBatch(ctx, templates[start:end]); err != nil {
			return imported, err
		}
		imported += end - start
		s.logger.Info("imported card batch",
			zap.Int("imported", imported),
			zap.Int("total", len(templates)),
		)
	}
	return imported, nil
}

func (s *PGStore) importBatch(ctx context.Context, templates []card.Template) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, t := range templates {
		fields := encodeTemplate(t)
		batch.Queue(upsertTemplate, t.ID, t.Name, t.Strength, fields[3], fields[4], fields[5], fields[6], t.Copies)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to upsert cards: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	return nil
}
