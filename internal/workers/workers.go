package workers

import (
	"context"

	"github.com/MKhiriev/go-shop-sync/internal/config"
	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers of the sync engine. Currently
// that is the periodic batch-job reconciler.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newReconcileWorker(services.BatchTracker, cfg.ReconcileInterval, logger),
		},
	}
}

// Start launches every worker. Their goroutines exit when ctx is cancelled
// or Stop is called.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker and blocks until their goroutines have exited.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
