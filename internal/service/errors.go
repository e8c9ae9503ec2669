package service

import "errors"

var (
	// ErrInvalidDataProvided indicates a request with missing or malformed
	// required fields.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongCredentials indicates a failed admin login attempt.
	ErrWrongCredentials = errors.New("wrong login or password")

	// ErrNotConnected indicates an operation that requires a configured API
	// key before the integration has been connected.
	ErrNotConnected = errors.New("integration is not connected")

	// ErrEndpointBlocked indicates a sync attempt against an endpoint with
	// an unfinished batch job still in flight.
	ErrEndpointBlocked = errors.New("endpoint has an unfinished batch job")

	// ErrUnknownEvent indicates a lifecycle event kind outside the closed
	// set the dispatcher understands.
	ErrUnknownEvent = errors.New("unknown event kind")

	// ErrBadRestoreToken indicates a cart recovery link whose token cannot
	// be decoded into its mandatory parts.
	ErrBadRestoreToken = errors.New("malformed cart restore token")
)
