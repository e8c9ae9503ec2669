// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-shop-sync/internal/adapter"
	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/store"
	"github.com/MKhiriev/go-shop-sync/models"
)

// batchTracker owns the persisted set of outstanding batch-job ids.
//
// The mutex serializes every settings read-modify-write and is shared with
// the account service: the reconcile worker and an admin-triggered settings
// save may otherwise interleave and lose ids. Each mutation is saved before
// the method returns, so the set survives restarts mid-sync.
type batchTracker struct {
	client   adapter.Client
	settings store.SettingsStore
	logger   *logger.Logger

	mu *sync.Mutex
}

func NewBatchTracker(client adapter.Client, settings store.SettingsStore, mu *sync.Mutex, logger *logger.Logger) BatchTracker {
	return &batchTracker{
		client:   client,
		settings: settings,
		mu:       mu,
		logger:   logger,
	}
}

// RecordSubmission parses the batch-create response and appends the returned
// id to the persisted set. An empty body (e.g. a 404 answer) records nothing
// and returns an empty id.
func (t *batchTracker) RecordSubmission(ctx context.Context, body []byte) (string, error) {
	log := logger.FromContext(ctx)

	if len(body) == 0 {
		return "", nil
	}

	var created models.BatchCreateResponse
	if err := json.Unmarshal(body, &created); err != nil {
		log.Err(err).Msg("error decoding batch create response")
		return "", fmt.Errorf("decode batch create response: %w", err)
	}
	if created.BatchID == "" {
		return "", nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	settings, err := t.settings.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load settings: %w", err)
	}

	settings.AddBatch(created.BatchID)
	if err := t.settings.Save(ctx, settings); err != nil {
		return "", fmt.Errorf("save settings: %w", err)
	}

	log.Info().Str("batchID", created.BatchID).Msg("batch job recorded")
	return created.BatchID, nil
}

// Reconcile fetches the remote state of every tracked job and prunes the
// persisted set.
//
// Pruning rules:
//   - a job whose status reads "finished" (case-insensitive) is dropped;
//   - a job the remote side no longer knows (empty 404 answer) is dropped;
//   - a job that cannot be fetched because of a transport failure is KEPT —
//     unknown is not the same as gone.
//
// The returned slice holds the still-running jobs; the block flags mark the
// endpoints those jobs target. Products and categories share one flag.
func (t *batchTracker) Reconcile(ctx context.Context) ([]models.BatchResponse, models.BlockFlags, error) {
	log := logger.FromContext(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()

	settings, err := t.settings.Load(ctx)
	if err != nil {
		return nil, models.BlockFlags{}, fmt.Errorf("load settings: %w", err)
	}
	if len(settings.BatchIDs) == 0 {
		return nil, models.BlockFlags{}, nil
	}

	var (
		running []models.BatchResponse
		flags   models.BlockFlags
		changed bool
	)

	for _, batchID := range append([]string(nil), settings.BatchIDs...) {
		batch, found, err := t.fetchBatch(ctx, batchID)
		if err != nil {
			// transport failure: state unknown, keep the id; the flags are
			// computed from the jobs that were retrievable
			log.Err(err).Str("batchID", batchID).Msg("error fetching batch state, keeping id")
			continue
		}

		if !found {
			log.Warn().Str("batchID", batchID).Msg("batch job vanished remotely, dropping id")
			settings.RemoveBatch(batchID)
			changed = true
			continue
		}

		if batch.Finished() {
			log.Info().Str("batchID", batchID).Str("endpoint", batch.Endpoint).Msg("batch job finished, dropping id")
			settings.RemoveBatch(batchID)
			changed = true
			continue
		}

		running = append(running, batch)
		raiseFlag(&flags, batch.Endpoint)
	}

	if changed {
		if err := t.settings.Save(ctx, settings); err != nil {
			return nil, models.BlockFlags{}, fmt.Errorf("save settings: %w", err)
		}
	}

	return running, flags, nil
}

// fetchBatch returns (zero, false, nil) when the job is unknown remotely.
func (t *batchTracker) fetchBatch(ctx context.Context, batchID string) (models.BatchResponse, bool, error) {
	body, err := t.client.Perform(ctx, http.MethodGet, pathBatches+"/"+batchID, nil)
	if err != nil {
		return models.BatchResponse{}, false, err
	}
	if len(body) == 0 {
		return models.BatchResponse{}, false, nil
	}

	var batch models.BatchResponse
	if err := json.Unmarshal(body, &batch); err != nil {
		return models.BatchResponse{}, false, fmt.Errorf("decode batch response: %w", err)
	}
	if batch.BatchID == "" {
		batch.BatchID = batchID
	}

	return batch, true, nil
}

// raiseFlag marks the endpoint a running job targets. An endpoint name the
// vocabulary does not know raises nothing.
func raiseFlag(flags *models.BlockFlags, endpoint string) {
	switch strings.ToLower(endpoint) {
	case endpointContacts:
		flags.Contacts = true
	case endpointOrders:
		flags.Orders = true
	case endpointProducts, endpointCategories:
		flags.Products = true
	}
}
