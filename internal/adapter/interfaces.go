// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for communicating with the
// marketing-automation REST API.
//
// The primary abstraction is [Client], which decouples the service layer from
// the underlying HTTP mechanics. The package ships a resty-based
// implementation ([NewHTTPClient]) that manages the API-key header, the
// brand-id gate, and optional request/error logging.
//
// Error values defined in errors.go let callers use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrBrandIDRequired] when the
// account has not been registered yet).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// Client defines outbound communication with the marketing API.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level failures to errors.
type Client interface {
	// SetAPIKey stores the API key attached to all subsequent requests via
	// the X-API-KEY header. Called at startup and whenever the key changes
	// from the admin API.
	SetAPIKey(key string)

	// SetBrandID stores the brand identifier obtained from account
	// registration. While the brand id is empty every request except the
	// account endpoints is refused with [ErrBrandIDRequired].
	SetBrandID(brandID string)

	// SetLogging toggles verbose logging of outgoing requests and of failed
	// requests, mirroring the corresponding persisted settings.
	SetLogging(requests, requestErrors bool)

	// Perform issues a single request against the API. method is an
	// http.Method* constant, path is relative to the configured base URL,
	// and body (when non-nil) is JSON-encoded into the request.
	//
	// Returns the raw response body on 2xx, an empty non-nil slice on 404,
	// and (nil, error) on transport failures or any other non-2xx status.
	// Requests are never retried.
	Perform(ctx context.Context, method, path string, body any) ([]byte, error)
}
