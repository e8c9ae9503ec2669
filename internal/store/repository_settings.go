package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/models"
)

// Setting names as stored in the local settings table. One row per value;
// batch ids are kept as a JSON array under batchIDsSetting.
const (
	apiKeySetting                = "api_key"
	brandIDSetting               = "brand_id"
	useTrackingSetting           = "use_tracking"
	trackingScriptSetting        = "tracking_script"
	productScriptSetting         = "product_script"
	identifyContactScriptSetting = "identify_contact_script"
	pageSizeSetting              = "page_size"
	batchThresholdSetting        = "batch_threshold"
	logRequestsSetting           = "log_requests"
	logRequestErrorsSetting      = "log_request_errors"
	batchIDsSetting              = "batch_ids"
)

// settingsRepository is the SQLite-backed implementation of [SettingsStore].
type settingsRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsStore {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

// Load reads every settings row and assembles a [models.Settings]. Missing
// rows keep their zero value; paging knobs are normalized afterwards, so a
// fresh database yields usable defaults.
func (r *settingsRepository) Load(ctx context.Context) (*models.Settings, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, selectAllSettings)
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.Load").Msg("error querying settings")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	settings := &models.Settings{}
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			log.Err(err).Str("func", "*settingsRepository.Load").Msg("error: scanning error")
			return nil, err
		}
		if err := applySetting(settings, name, value); err != nil {
			log.Err(err).Str("func", "*settingsRepository.Load").Str("setting", name).Msg("error: bad stored value")
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	settings.Normalize()
	return settings, nil
}

// Save writes all settings rows in one transaction.
func (r *settingsRepository) Save(ctx context.Context, settings *models.Settings) error {
	log := logger.FromContext(ctx)

	batchIDs, err := json.Marshal(settings.BatchIDs)
	if err != nil {
		return fmt.Errorf("encode batch ids: %w", err)
	}

	values := map[string]string{
		apiKeySetting:                settings.APIKey,
		brandIDSetting:               settings.BrandID,
		useTrackingSetting:           strconv.FormatBool(settings.UseTracking),
		trackingScriptSetting:        settings.TrackingScript,
		productScriptSetting:         settings.ProductScript,
		identifyContactScriptSetting: settings.IdentifyContactScript,
		pageSizeSetting:              strconv.Itoa(settings.PageSize),
		batchThresholdSetting:        strconv.Itoa(settings.BatchThreshold),
		logRequestsSetting:           strconv.FormatBool(settings.LogRequests),
		logRequestErrorsSetting:      strconv.FormatBool(settings.LogRequestErrors),
		batchIDsSetting:              string(batchIDs),
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.Save").Msg("error starting transaction")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for name, value := range values {
		if _, err := tx.ExecContext(ctx, upsertSetting, name, value); err != nil {
			log.Err(err).Str("func", "*settingsRepository.Save").Str("setting", name).Msg("error saving setting")
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return tx.Commit()
}

func applySetting(s *models.Settings, name, value string) error {
	var err error
	switch name {
	case apiKeySetting:
		s.APIKey = value
	case brandIDSetting:
		s.BrandID = value
	case useTrackingSetting:
		s.UseTracking, err = parseBoolSetting(value)
	case trackingScriptSetting:
		s.TrackingScript = value
	case productScriptSetting:
		s.ProductScript = value
	case identifyContactScriptSetting:
		s.IdentifyContactScript = value
	case pageSizeSetting:
		s.PageSize, err = parseIntSetting(value)
	case batchThresholdSetting:
		s.BatchThreshold, err = parseIntSetting(value)
	case logRequestsSetting:
		s.LogRequests, err = parseBoolSetting(value)
	case logRequestErrorsSetting:
		s.LogRequestErrors, err = parseBoolSetting(value)
	case batchIDsSetting:
		if value != "" {
			err = json.Unmarshal([]byte(value), &s.BatchIDs)
		}
	}
	// unknown names are ignored: old rows must not break newer builds
	return err
}

func parseBoolSetting(value string) (bool, error) {
	if value == "" {
		return false, nil
	}
	return strconv.ParseBool(value)
}

func parseIntSetting(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}
