package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/service"
	"github.com/MKhiriev/go-shop-sync/internal/utils"
	"github.com/MKhiriev/go-shop-sync/models"
)

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type connectRequest struct {
	APIKey string `json:"api_key"`
}

type batchesResponse struct {
	Batches []models.BatchResponse `json:"batches"`
	Blocked models.BlockFlags      `json:"blocked"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Token(ctx, req.Login, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongCredentials):
			log.Err(err).Msg("wrong login or password")
			http.Error(w, "invalid login/password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) connect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req connectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	settings, err := h.services.AccountService.Connect(ctx, req.APIKey)
	if err != nil {
		log.Err(err).Msg("connect to marketing service failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) disconnect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.services.AccountService.Disconnect(ctx); err != nil {
		log.Err(err).Msg("disconnect failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) settings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	settings, err := h.services.AccountService.Settings(ctx)
	if err != nil {
		log.Err(err).Msg("loading settings failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var upd models.Settings
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	settings, err := h.services.AccountService.UpdateSettings(ctx, upd)
	if err != nil {
		log.Err(err).Msg("updating settings failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) batches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	batches, blocked, err := h.services.BatchTracker.Reconcile(ctx)
	if err != nil {
		log.Err(err).Msg("batch reconciliation failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, batchesResponse{Batches: batches, Blocked: blocked}, http.StatusOK)
}

func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	settings, err := h.services.AccountService.Settings(ctx)
	if err != nil {
		log.Err(err).Msg("loading settings failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	if settings.APIKey == "" {
		log.Err(service.ErrNotConnected).Msg("sync requested before connect")
		http.Error(w, service.ErrNotConnected.Error(), statusFromError(service.ErrNotConnected))
		return
	}

	var result service.SyncResult
	switch endpoint := chi.URLParam(r, "endpoint"); endpoint {
	case "contacts":
		result, err = h.services.SyncService.SyncContacts(ctx)
	case "categories":
		result, err = h.services.SyncService.SyncCategories(ctx)
	case "products":
		result, err = h.services.SyncService.SyncProducts(ctx)
	case "orders":
		result, err = h.services.SyncService.SyncOrders(ctx)
	case "carts":
		result, err = h.services.SyncService.SyncCarts(ctx)
	default:
		log.Error().Str("endpoint", endpoint).Msg("unknown sync endpoint requested")
		http.Error(w, "unknown sync endpoint", http.StatusNotFound)
		return
	}
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEndpointBlocked):
			log.Err(err).Msg("endpoint blocked by unfinished batch job")
			http.Error(w, err.Error(), http.StatusConflict)
			return
		default:
			log.Err(err).Msg("synchronization failed")
			http.Error(w, err.Error(), statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
