// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shop-sync/internal/config"
	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/models"
)

// newTestLocalDB открывает файловую SQLite с применёнными миграциями
func newTestLocalDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewConnectSQLite(
		context.Background(),
		config.LocalDB{DSN: filepath.Join(t.TempDir(), "state.db")},
		logger.Nop(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSettings_LoadDefaults(t *testing.T) {
	repo := NewSettingsRepository(newTestLocalDB(t), logger.Nop())

	// пустая база — должны вернуться значения по умолчанию
	settings, err := repo.Load(context.Background())
	require.NoError(t, err)

	assert.Empty(t, settings.APIKey)
	assert.Empty(t, settings.BrandID)
	assert.Equal(t, models.DefaultPageSize, settings.PageSize)
	assert.Equal(t, models.DefaultBatchThreshold, settings.BatchThreshold)
	assert.Empty(t, settings.BatchIDs)
}

func TestSettings_SaveAndLoad(t *testing.T) {
	repo := NewSettingsRepository(newTestLocalDB(t), logger.Nop())
	ctx := context.Background()

	saved := &models.Settings{
		APIKey:                "key-1",
		BrandID:               "brand-1",
		UseTracking:           true,
		TrackingScript:        "<script>track()</script>",
		ProductScript:         "<script>product()</script>",
		IdentifyContactScript: "<script>identify()</script>",
		PageSize:              50,
		BatchThreshold:        500,
		LogRequests:           true,
		LogRequestErrors:      true,
		BatchIDs:              []string{"batch-1", "batch-2"},
	}
	require.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestSettings_SaveOverwrites(t *testing.T) {
	repo := NewSettingsRepository(newTestLocalDB(t), logger.Nop())
	ctx := context.Background()

	first := &models.Settings{APIKey: "key-1", BatchIDs: []string{"batch-1"}}
	first.Normalize()
	require.NoError(t, repo.Save(ctx, first))

	second := &models.Settings{APIKey: "key-2"}
	second.Normalize()
	require.NoError(t, repo.Save(ctx, second))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "key-2", loaded.APIKey)
	assert.Empty(t, loaded.BatchIDs)
}

func TestAttributes_GetSetDelete(t *testing.T) {
	repo := NewAttributeRepository(newTestLocalDB(t), logger.Nop())
	ctx := context.Background()

	// отсутствующий атрибут читается как пустая строка
	value, err := repo.Get(ctx, "customer", 1, "cart_id")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, repo.Set(ctx, "customer", 1, "cart_id", "cart-abc"))

	value, err = repo.Get(ctx, "customer", 1, "cart_id")
	require.NoError(t, err)
	assert.Equal(t, "cart-abc", value)

	// перезапись
	require.NoError(t, repo.Set(ctx, "customer", 1, "cart_id", "cart-def"))
	value, err = repo.Get(ctx, "customer", 1, "cart_id")
	require.NoError(t, err)
	assert.Equal(t, "cart-def", value)

	// атрибуты с тем же ключом у другой сущности не пересекаются
	value, err = repo.Get(ctx, "customer", 2, "cart_id")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, repo.Delete(ctx, "customer", 1, "cart_id"))
	value, err = repo.Get(ctx, "customer", 1, "cart_id")
	require.NoError(t, err)
	assert.Empty(t, value)

	// удаление отсутствующего атрибута — no-op
	require.NoError(t, repo.Delete(ctx, "customer", 1, "cart_id"))
}
