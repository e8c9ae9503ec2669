// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/store"
)

// trackingService renders the storefront script blocks out of the snippets
// stored in the settings. Snippets carry placeholders (brand id, email,
// contact id) that are substituted per request.
type trackingService struct {
	settings   store.SettingsStore
	attributes store.AttributeStore
	logger     *logger.Logger
}

func NewTrackingService(settings store.SettingsStore, attributes store.AttributeStore, logger *logger.Logger) TrackingService {
	return &trackingService{settings: settings, attributes: attributes, logger: logger}
}

func (t *trackingService) PageScripts(ctx context.Context, customerID int64, routeName string) (string, error) {
	settings, err := t.settings.Load(ctx)
	if err != nil {
		return "", err
	}
	if !settings.UseTracking || settings.APIKey == "" {
		return "", nil
	}

	var b strings.Builder
	b.WriteString(strings.ReplaceAll(settings.TrackingScript, placeholderBrandID, settings.BrandID))

	if routeName == productRouteName && settings.ProductScript != "" {
		b.WriteString("\n")
		b.WriteString(settings.ProductScript)
	}

	identify, err := t.identifyScript(ctx, customerID, settings.IdentifyContactScript)
	if err != nil {
		return "", err
	}
	if identify != "" {
		b.WriteString("\n")
		b.WriteString(identify)
	}

	return b.String(), nil
}

// identifyScript renders the identify snippet: once after a recorded login
// (the flag is consumed), or on every page when the remote contact id is
// known for the customer.
func (t *trackingService) identifyScript(ctx context.Context, customerID int64, snippet string) (string, error) {
	if customerID == 0 || snippet == "" {
		return "", nil
	}

	email, err := t.attributes.Get(ctx, entityCustomer, customerID, attrIdentifyEmail)
	if err != nil {
		return "", err
	}
	if email != "" {
		if err := t.attributes.Delete(ctx, entityCustomer, customerID, attrIdentifyEmail); err != nil {
			return "", err
		}
		return strings.ReplaceAll(snippet, placeholderEmail, email), nil
	}

	contactID, err := t.attributes.Get(ctx, entityCustomer, customerID, attrContactID)
	if err != nil {
		return "", err
	}
	if contactID == "" {
		return "", nil
	}

	out := strings.ReplaceAll(snippet, placeholderContactID, contactID)
	out = strings.ReplaceAll(out, placeholderEmail, "")
	return out, nil
}

func (t *trackingService) MarkIdentify(ctx context.Context, customerID int64, email string) error {
	if customerID == 0 || email == "" {
		return nil
	}
	return t.attributes.Set(ctx, entityCustomer, customerID, attrIdentifyEmail, email)
}
