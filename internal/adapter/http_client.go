package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
)

const apiKeyHeader = "X-API-KEY"

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpClient struct {
	client *resty.Client
	log    *logger.Logger

	mu           sync.RWMutex
	apiKey       string
	brandID      string
	logRequests  bool
	logReqErrors bool
}

// NewHTTPClient builds a resty-backed [Client] for the marketing API.
// The logger may be logger.Nop() in tests.
func NewHTTPClient(cfg HTTPClientConfig, log *logger.Logger) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.omnisend.com/v3"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpClient{client: cli, log: log}
}

func (h *httpClient) SetAPIKey(key string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.apiKey = strings.TrimSpace(key)
}

func (h *httpClient) SetBrandID(brandID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.brandID = strings.TrimSpace(brandID)
}

func (h *httpClient) SetLogging(requests, requestErrors bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.logRequests = requests
	h.logReqErrors = requestErrors
}

func (h *httpClient) Perform(ctx context.Context, method, path string, body any) ([]byte, error) {
	h.mu.RLock()
	apiKey, brandID := h.apiKey, h.brandID
	logRequests, logReqErrors := h.logRequests, h.logReqErrors
	h.mu.RUnlock()

	// Account endpoints are the only calls permitted before the brand id is
	// known: registration is what produces the brand id in the first place.
	if brandID == "" && !isAccountPath(path) {
		return nil, ErrBrandIDRequired
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader(apiKeyHeader, apiKey)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	if logRequests {
		h.log.Debug().
			Str("method", method).
			Str("path", path).
			Msg("api request")
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		if logReqErrors {
			h.log.Error().Err(err).
				Str("method", method).
				Str("path", path).
				Msg("api request failed")
		}
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		// Absent remote resource is a normal answer, not a failure.
		return []byte{}, nil
	case resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices:
		if logRequests {
			h.log.Debug().
				Str("method", method).
				Str("path", path).
				Int("status", resp.StatusCode()).
				Msg("api response")
		}
		return resp.Body(), nil
	default:
		err = mapHTTPError(resp, method, path)
		if logReqErrors {
			h.log.Error().Err(err).
				Str("method", method).
				Str("path", path).
				Int("status", resp.StatusCode()).
				Str("body", strings.TrimSpace(string(resp.Body()))).
				Msg("api request failed")
		}
		return nil, err
	}
}

func isAccountPath(path string) bool {
	return strings.Contains(path, "accounts")
}

func mapHTTPError(resp *resty.Response, method, path string) error {
	if resp.StatusCode() == http.StatusUnauthorized {
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%s %s: http %d: %s", method, path, resp.StatusCode(), body)
}
