package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/service"
	"github.com/MKhiriev/go-shop-sync/models"
)

// event is the lifecycle notification intake. The shop platform posts one
// DomainEvent per host-side action; dispatching is synchronous.
func (h *Handler) event(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var event models.DomainEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if !event.Kind.Known() {
		log.Error().Str("kind", string(event.Kind)).Msg("unknown event kind")
		http.Error(w, service.ErrUnknownEvent.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.EventDispatcher.Handle(ctx, event); err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownEvent):
			log.Err(err).Msg("unknown event kind")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Str("kind", string(event.Kind)).Msg("event dispatch failed")
			http.Error(w, err.Error(), statusFromError(err))
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}
