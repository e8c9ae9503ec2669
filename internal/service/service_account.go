package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-shop-sync/internal/adapter"
	"github.com/MKhiriev/go-shop-sync/internal/config"
	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/store"
	"github.com/MKhiriev/go-shop-sync/models"
)

// accountService manages the marketing-service connection and the persisted
// settings. The mutex is shared with the batch tracker: both sides
// load-modify-save the same settings row (the tracker mutates BatchIDs), so
// every read-modify-write must hold the same guard.
type accountService struct {
	client   adapter.Client
	settings store.SettingsStore
	storeURL string
	version  string
	logger   *logger.Logger

	mu *sync.Mutex
}

func NewAccountService(client adapter.Client, settings store.SettingsStore, mu *sync.Mutex, cfg config.App, logger *logger.Logger) AccountService {
	return &accountService{
		client:   client,
		settings: settings,
		mu:       mu,
		storeURL: strings.TrimRight(cfg.StoreURL, "/"),
		version:  cfg.Version,
		logger:   logger,
	}
}

func (a *accountService) Connect(ctx context.Context, apiKey string) (*models.Settings, error) {
	log := logger.FromContext(ctx)

	if apiKey == "" {
		return nil, fmt.Errorf("empty api key: %w", ErrInvalidDataProvided)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	settings, err := a.settings.Load(ctx)
	if err != nil {
		return nil, err
	}

	// the key must be on the client before registration: the accounts call
	// itself is authenticated
	a.client.SetAPIKey(apiKey)

	register := models.RegisterAccountRequest{
		Website:  a.storeURL,
		Platform: platformName,
		Version:  a.version,
	}
	body, err := a.client.Perform(ctx, http.MethodPost, pathAccounts, register)
	if err != nil {
		log.Err(err).Str("func", "Connect").Msg("account registration failed")
		a.client.SetAPIKey(settings.APIKey)
		return nil, err
	}

	var account models.AccountsResponse
	if err := json.Unmarshal(body, &account); err != nil {
		a.client.SetAPIKey(settings.APIKey)
		return nil, fmt.Errorf("decode accounts response: %w", err)
	}

	settings.APIKey = apiKey
	settings.BrandID = account.BrandID
	settings.Normalize()
	if err := a.settings.Save(ctx, settings); err != nil {
		return nil, err
	}

	a.client.SetBrandID(settings.BrandID)

	log.Info().Str("func", "Connect").Msg("connected to marketing service")
	return settings, nil
}

func (a *accountService) Disconnect(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	settings, err := a.settings.Load(ctx)
	if err != nil {
		return err
	}

	settings.APIKey = ""
	settings.BrandID = ""
	settings.BatchIDs = nil
	if err := a.settings.Save(ctx, settings); err != nil {
		return err
	}

	a.client.SetAPIKey("")
	a.client.SetBrandID("")

	logger.FromContext(ctx).Info().Str("func", "Disconnect").Msg("disconnected from marketing service")
	return nil
}

func (a *accountService) Settings(ctx context.Context) (*models.Settings, error) {
	settings, err := a.settings.Load(ctx)
	if err != nil {
		return nil, err
	}
	settings.Normalize()
	return settings, nil
}

func (a *accountService) UpdateSettings(ctx context.Context, upd models.Settings) (*models.Settings, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	settings, err := a.settings.Load(ctx)
	if err != nil {
		return nil, err
	}

	settings.UseTracking = upd.UseTracking
	settings.TrackingScript = upd.TrackingScript
	settings.ProductScript = upd.ProductScript
	settings.IdentifyContactScript = upd.IdentifyContactScript
	settings.PageSize = upd.PageSize
	settings.BatchThreshold = upd.BatchThreshold
	settings.LogRequests = upd.LogRequests
	settings.LogRequestErrors = upd.LogRequestErrors
	settings.Normalize()

	if err := a.settings.Save(ctx, settings); err != nil {
		return nil, err
	}

	a.client.SetLogging(settings.LogRequests, settings.LogRequestErrors)
	return settings, nil
}

func (a *accountService) ApplySettings(ctx context.Context) error {
	settings, err := a.settings.Load(ctx)
	if err != nil {
		return err
	}

	a.client.SetAPIKey(settings.APIKey)
	a.client.SetBrandID(settings.BrandID)
	a.client.SetLogging(settings.LogRequests, settings.LogRequestErrors)
	return nil
}
