// SPDX-License-Identifier: Apache-2.0

package service_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/mock"
	"github.com/MKhiriev/go-shop-sync/internal/service"
	"github.com/MKhiriev/go-shop-sync/models"
)

// newTestTracker — хелпер для создания batch-трекера с моками
func newTestTracker(t *testing.T, ctrl *gomock.Controller) (service.BatchTracker, *mock.MockClient, *mock.MockSettingsStore) {
	t.Helper()
	client := mock.NewMockClient(ctrl)
	settings := mock.NewMockSettingsStore(ctrl)
	return service.NewBatchTracker(client, settings, &sync.Mutex{}, logger.Nop()), client, settings
}

// ── RecordSubmission ─────────────────────────────────────────────────────────

func TestBatchTracker_RecordSubmission_PersistsImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker, _, settings := newTestTracker(t, ctrl)
	ctx := context.Background()

	stored := &models.Settings{BatchIDs: []string{"b-1"}}
	settings.EXPECT().Load(ctx).Return(stored, nil)
	settings.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, s *models.Settings) error {
			// id должен быть добавлен до сохранения
			assert.Equal(t, []string{"b-1", "b-2"}, s.BatchIDs)
			return nil
		},
	)

	batchID, err := tracker.RecordSubmission(ctx, []byte(`{"batchID":"b-2"}`))

	require.NoError(t, err)
	assert.Equal(t, "b-2", batchID)
}

func TestBatchTracker_RecordSubmission_EmptyBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker, _, _ := newTestTracker(t, ctrl)

	// пустое тело — ничего не записываем и не сохраняем
	batchID, err := tracker.RecordSubmission(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, batchID)
}

func TestBatchTracker_RecordSubmission_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker, _, _ := newTestTracker(t, ctrl)

	_, err := tracker.RecordSubmission(context.Background(), []byte(`{not json`))

	require.Error(t, err)
}

func TestBatchTracker_RecordSubmission_NoID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker, _, _ := newTestTracker(t, ctrl)

	batchID, err := tracker.RecordSubmission(context.Background(), []byte(`{"status":"queued"}`))

	require.NoError(t, err)
	assert.Empty(t, batchID)
}

// ── Reconcile ────────────────────────────────────────────────────────────────

func TestBatchTracker_Reconcile_NoTrackedIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker, _, settings := newTestTracker(t, ctrl)
	ctx := context.Background()

	settings.EXPECT().Load(ctx).Return(&models.Settings{}, nil)

	running, flags, err := tracker.Reconcile(ctx)

	require.NoError(t, err)
	assert.Empty(t, running)
	assert.Equal(t, models.BlockFlags{}, flags)
}

func TestBatchTracker_Reconcile_DropsFinishedAndVanished(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker, client, settings := newTestTracker(t, ctrl)
	ctx := context.Background()

	stored := &models.Settings{BatchIDs: []string{"done", "gone", "busy"}}
	settings.EXPECT().Load(ctx).Return(stored, nil)

	// "Finished" сравнивается без учёта регистра
	client.EXPECT().Perform(ctx, http.MethodGet, "batches/done", nil).
		Return([]byte(`{"batchID":"done","endpoint":"contacts","status":"Finished"}`), nil)
	// пустое тело 404 — задача исчезла на удалённой стороне
	client.EXPECT().Perform(ctx, http.MethodGet, "batches/gone", nil).
		Return([]byte{}, nil)
	client.EXPECT().Perform(ctx, http.MethodGet, "batches/busy", nil).
		Return([]byte(`{"batchID":"busy","endpoint":"orders","status":"inProgress"}`), nil)

	settings.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, s *models.Settings) error {
			assert.Equal(t, []string{"busy"}, s.BatchIDs)
			return nil
		},
	)

	running, flags, err := tracker.Reconcile(ctx)

	require.NoError(t, err)
	require.Len(t, running, 1)
	assert.Equal(t, "busy", running[0].BatchID)
	assert.Equal(t, models.BlockFlags{Orders: true}, flags)
}

func TestBatchTracker_Reconcile_TransportErrorKeepsID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker, client, settings := newTestTracker(t, ctrl)
	ctx := context.Background()

	stored := &models.Settings{BatchIDs: []string{"unknown", "busy"}}
	settings.EXPECT().Load(ctx).Return(stored, nil)

	// транспортный сбой: неизвестно ≠ завершено, id остаётся
	client.EXPECT().Perform(ctx, http.MethodGet, "batches/unknown", nil).
		Return(nil, errors.New("connection refused"))
	client.EXPECT().Perform(ctx, http.MethodGet, "batches/busy", nil).
		Return([]byte(`{"batchID":"busy","endpoint":"orders","status":"inProgress"}`), nil)

	// Save не вызывается — набор не изменился

	running, flags, err := tracker.Reconcile(ctx)

	require.NoError(t, err)
	require.Len(t, running, 1)
	assert.Equal(t, "busy", running[0].BatchID)
	// флаги считаются только по полученным заданиям: недоступное задание
	// не блокирует чужие эндпоинты
	assert.Equal(t, models.BlockFlags{Orders: true}, flags)
	assert.Equal(t, []string{"unknown", "busy"}, stored.BatchIDs)
}

func TestBatchTracker_Reconcile_ProductsAndCategoriesShareFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker, client, settings := newTestTracker(t, ctrl)
	ctx := context.Background()

	settings.EXPECT().Load(ctx).Return(&models.Settings{BatchIDs: []string{"cat"}}, nil)
	client.EXPECT().Perform(ctx, http.MethodGet, "batches/cat", nil).
		Return([]byte(`{"batchID":"cat","endpoint":"categories","status":"inProgress"}`), nil)

	_, flags, err := tracker.Reconcile(ctx)

	require.NoError(t, err)
	// категории и товары наполняют один каталог — флаг общий
	assert.True(t, flags.Products)
	assert.False(t, flags.Contacts)
	assert.False(t, flags.Orders)
}

func TestBatchTracker_Reconcile_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker, client, settings := newTestTracker(t, ctrl)
	ctx := context.Background()

	// два вызова подряд с одним работающим заданием: набор стабилен,
	// Save не вызывается ни разу
	for i := 0; i < 2; i++ {
		settings.EXPECT().Load(ctx).Return(&models.Settings{BatchIDs: []string{"busy"}}, nil)
		client.EXPECT().Perform(ctx, http.MethodGet, "batches/busy", nil).
			Return([]byte(`{"batchID":"busy","endpoint":"contacts","status":"inProgress"}`), nil)
	}

	for i := 0; i < 2; i++ {
		running, flags, err := tracker.Reconcile(ctx)
		require.NoError(t, err)
		require.Len(t, running, 1)
		assert.Equal(t, models.BlockFlags{Contacts: true}, flags)
	}
}
