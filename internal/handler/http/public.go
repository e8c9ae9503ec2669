package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/utils"
)

type restoredCartResponse struct {
	CustomerID int64  `json:"customer_id"`
	CartID     string `json:"cart_id"`
}

// trackingScripts serves the script block embedded into a storefront page.
// customer_id is optional: anonymous visitors get the base snippet only.
func (h *Handler) trackingScripts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var customerID int64
	if raw := r.URL.Query().Get("customer_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Err(err).Str("customer_id", raw).Msg("invalid customer id")
			http.Error(w, "invalid customer_id", http.StatusBadRequest)
			return
		}
		customerID = parsed
	}
	routeName := r.URL.Query().Get("route")

	scripts, err := h.services.TrackingService.PageScripts(ctx, customerID, routeName)
	if err != nil {
		log.Err(err).Msg("rendering tracking scripts failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(scripts))
}

// restoreCart resolves a recovery-link token back into the customer and cart
// correlation id. The shop platform proxies this route and rebuilds the cart
// from the response.
func (h *Handler) restoreCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token := chi.URLParam(r, "token")

	customerID, cartID, err := h.services.CartService.RestoreCart(ctx, token)
	if err != nil {
		log.Err(err).Msg("cart restore token rejected")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, restoredCartResponse{CustomerID: customerID, CartID: cartID}, http.StatusOK)
}
