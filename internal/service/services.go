package service

import (
	"sync"

	"github.com/MKhiriev/go-shop-sync/internal/adapter"
	"github.com/MKhiriev/go-shop-sync/internal/config"
	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/store"
)

type Services struct {
	AuthService     AuthService
	AccountService  AccountService
	BatchTracker    BatchTracker
	SyncService     SyncService
	CustomerService CustomerService
	CartService     CartService
	TrackingService TrackingService
	EventDispatcher EventDispatcher
}

func NewServices(client adapter.Client, storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	mapper := NewMapper(cfg.App)

	// one guard for every settings read-modify-write: the tracker mutates
	// BatchIDs, the account service the rest of the row
	settingsMu := &sync.Mutex{}
	tracker := NewBatchTracker(client, storages.Settings, settingsMu, logger)
	customers := NewCustomerService(client, storages.Contacts, storages.Attributes, logger)
	carts := NewCartService(client, storages.Carts, storages.Contacts, customers, mapper, cfg.App, logger)
	sync := NewSyncService(client, storages, tracker, customers, carts, mapper, logger)
	tracking := NewTrackingService(storages.Settings, storages.Attributes, logger)

	return &Services{
		AuthService:     NewAuthService(cfg.App, logger),
		AccountService:  NewAccountService(client, storages.Settings, settingsMu, cfg.App, logger),
		BatchTracker:    tracker,
		SyncService:     sync,
		CustomerService: customers,
		CartService:     carts,
		TrackingService: tracking,
		EventDispatcher: NewEventDispatcher(client, storages, sync, carts, customers, tracking, mapper, cfg.App, logger),
	}
}
