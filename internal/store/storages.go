package store

import "github.com/MKhiriev/go-shop-sync/internal/logger"

// Storages aggregates every repository behind one value for convenient
// injection into the service layer.
type Storages struct {
	Settings   SettingsStore
	Attributes AttributeStore
	Contacts   ContactSource
	Catalog    CatalogSource
	Orders     OrderSource
	Carts      CartSource
}

// NewStorages wires all repositories: shop is the shop-platform database,
// local is the state database.
func NewStorages(shop, local *DB, log *logger.Logger) *Storages {
	return &Storages{
		Settings:   NewSettingsRepository(local, log),
		Attributes: NewAttributeRepository(local, log),
		Contacts:   NewContactRepository(shop, log),
		Catalog:    NewCatalogRepository(shop, log),
		Orders:     NewOrderRepository(shop, log),
		Carts:      NewCartRepository(shop, log),
	}
}
