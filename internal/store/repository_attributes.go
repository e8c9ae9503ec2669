package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
)

// attributeRepository is the SQLite-backed implementation of [AttributeStore].
// Attributes are addressed by (entity, entity id, key); an absent attribute
// reads as an empty string.
type attributeRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewAttributeRepository(db *DB, logger *logger.Logger) AttributeStore {
	logger.Debug().Msg("creating attribute repository")
	return &attributeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *attributeRepository) Get(ctx context.Context, entity string, entityID int64, key string) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	err := r.db.QueryRowContext(ctx, selectAttribute, entity, entityID, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		log.Err(err).Str("func", "*attributeRepository.Get").Msg("error reading attribute")
		return "", fmt.Errorf("unexpected DB error: %w", err)
	}

	return value, nil
}

func (r *attributeRepository) Set(ctx context.Context, entity string, entityID int64, key, value string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, upsertAttribute, entity, entityID, key, value); err != nil {
		log.Err(err).Str("func", "*attributeRepository.Set").Msg("error saving attribute")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *attributeRepository) Delete(ctx context.Context, entity string, entityID int64, key string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteAttribute, entity, entityID, key); err != nil {
		log.Err(err).Str("func", "*attributeRepository.Delete").Msg("error deleting attribute")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
