package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/service"
)

const defaultReconcileInterval = 5 * time.Minute

// reconcileWorker periodically reconciles outstanding batch jobs so that
// finished jobs unblock their endpoints without waiting for the next admin
// sync request. The worker is idle until Start is called.
type reconcileWorker struct {
	tracker  service.BatchTracker
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newReconcileWorker(tracker service.BatchTracker, interval time.Duration, logger *logger.Logger) *reconcileWorker {
	if interval <= 0 {
		interval = defaultReconcileInterval
	}
	return &reconcileWorker{
		tracker:  tracker,
		interval: interval,
		logger:   logger,
	}
}

// Start implements Worker. It stops any previously running reconciliation
// loop, then launches a background goroutine that reconciles batch jobs every
// interval. The goroutine exits when ctx is cancelled or Stop is called.
func (w *reconcileWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.reconcile(jobCtx)
			}
		}
	}()
}

// Stop implements Worker. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the worker
// is not running (no-op in that case).
func (w *reconcileWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *reconcileWorker) reconcile(ctx context.Context) {
	ctx = w.logger.WithContext(ctx)

	running, _, err := w.tracker.Reconcile(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "reconcile").Msg("batch reconciliation failed")
		return
	}

	w.logger.Debug().Int("running", len(running)).Msg("batch jobs reconciled")
}
