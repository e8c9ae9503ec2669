package store

import (
	"database/sql"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/migrations"
)

// DB wraps a *sql.DB handle together with the application logger. The same
// type backs both the shop-platform connection and the local state
// connection; Migrate is only meaningful for the latter.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
