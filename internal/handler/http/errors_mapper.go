package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shop-sync/internal/adapter"
	"github.com/MKhiriev/go-shop-sync/internal/service"
	"github.com/MKhiriev/go-shop-sync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrWrongCredentials:    http.StatusUnauthorized,
	service.ErrNotConnected:        http.StatusConflict,
	service.ErrEndpointBlocked:     http.StatusConflict,
	service.ErrUnknownEvent:        http.StatusBadRequest,
	service.ErrBadRestoreToken:     http.StatusBadRequest,

	store.ErrNotFound:   http.StatusNotFound,
	store.ErrShopSchema: http.StatusInternalServerError,

	adapter.ErrUnauthorized: http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
