package handler

import (
	"net/http"

	"lojinha/internal/cart"
	"lojinha/internal/middleware"
	"lojinha/internal/model"
	"lojinha/internal/notify"
	"lojinha/internal/service"
	"lojinha/internal/session"

	"github.com/rs/zerolog"
)

// CheckoutHandler handles POST /api/checkout requests.
type CheckoutHandler struct {
	checkout service.CheckoutService
	sessions SessionStore
	notifier notify.Notifier
	logger   zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(checkout service.CheckoutService, sessions SessionStore, notifier notify.Notifier, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		sessions: sessions,
		notifier: notifier,
		logger:   logger.With().Str("handler", "checkout").Logger(),
	}
}

// checkoutRequest is the wire form of an order submission.
type checkoutRequest struct {
	Customer        model.CustomerInfo `json:"customer"`
	Notes           string             `json:"notes,omitempty"`
	DirectProductID string             `json:"directProductId,omitempty"`
}

// Submit handles the order submission for the calling session.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	sessionID := middleware.SessionFrom(r.Context())
	ledger := cart.NewLedger(h.sessions, session.CartKey(sessionID), h.notifier, h.logger)
	ledger.Restore(r.Context())

	result, err := h.checkout.Submit(r.Context(), ledger, sessionID, &service.CheckoutRequest{
		Customer:        req.Customer,
		Notes:           req.Notes,
		DirectProductID: req.DirectProductID,
	})
	if err != nil {
		writeDomainError(w, err, "failed to submit order", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}
