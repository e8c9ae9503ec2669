package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the API rejects the configured key.
	ErrUnauthorized = errors.New("api key rejected")
	// ErrBrandIDRequired is returned for non-account requests issued before
	// the account has been registered with the marketing service.
	ErrBrandIDRequired = errors.New("brand id is not set")
)
