package handler

import (
	"context"
	"net/http"

	"lojinha/internal/cart"
	"lojinha/internal/middleware"
	"lojinha/internal/notify"
	"lojinha/internal/service"
	"lojinha/internal/session"

	"github.com/rs/zerolog"
)

// SessionStore is the slice of the session store the HTTP layer needs.
// Satisfied by *session.Store.
type SessionStore interface {
	cart.Store
	LoadPrefill(ctx context.Context, sessionID string) session.Prefill
	SavePrefill(ctx context.Context, sessionID string, p session.Prefill)
}

// CartView is the cart as rendered to the storefront.
type CartView struct {
	Items      []cart.LineItem `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice string          `json:"totalPrice"`
}

// CartHandler handles per-session cart requests. Each request restores the
// session's ledger from the durable slot, applies the mutation and lets the
// ledger persist itself.
type CartHandler struct {
	sessions SessionStore
	catalog  service.CatalogService
	notifier notify.Notifier
	logger   zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(sessions SessionStore, catalog service.CatalogService, notifier notify.Notifier, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		sessions: sessions,
		catalog:  catalog,
		notifier: notifier,
		logger:   logger.With().Str("handler", "cart").Logger(),
	}
}

// ledger restores the calling session's cart ledger.
func (h *CartHandler) ledger(r *http.Request) *cart.Ledger {
	sessionID := middleware.SessionFrom(r.Context())
	ledger := cart.NewLedger(h.sessions, session.CartKey(sessionID), h.notifier, h.logger)
	ledger.Restore(r.Context())
	return ledger
}

func (h *CartHandler) view(ledger *cart.Ledger) CartView {
	return CartView{
		Items:      ledger.Items(),
		TotalItems: ledger.TotalItems(),
		TotalPrice: ledger.TotalPrice().StringFixed(2),
	}
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.view(h.ledger(r)))
}

// AddItem handles POST /api/cart/items requests. The product is looked up
// by ID so the cart snapshots the catalogue price at add time.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
	}
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	product, err := h.catalog.GetByID(r.Context(), req.ProductID)
	if err != nil {
		writeDomainError(w, err, "failed to add product", h.logger)
		return
	}

	ledger := h.ledger(r)
	ledger.AddItem(r.Context(), cart.InputFromProduct(product))

	writeJSON(w, http.StatusOK, h.view(ledger))
}

// UpdateQuantity handles PATCH /api/cart/items/{id} requests. A quantity of
// zero or less removes the line.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	ledger := h.ledger(r)
	ledger.UpdateQuantity(r.Context(), r.PathValue("id"), req.Quantity)

	writeJSON(w, http.StatusOK, h.view(ledger))
}

// RemoveItem handles DELETE /api/cart/items/{id} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ledger := h.ledger(r)
	ledger.RemoveItem(r.Context(), r.PathValue("id"))

	writeJSON(w, http.StatusOK, h.view(ledger))
}

// Clear handles DELETE /api/cart requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	ledger := h.ledger(r)
	ledger.Clear(r.Context())

	writeJSON(w, http.StatusOK, h.view(ledger))
}

// Prefill handles GET /api/cart/prefill requests, returning the last-used
// contact block for the session.
func (h *CartHandler) Prefill(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionFrom(r.Context())
	writeJSON(w, http.StatusOK, h.sessions.LoadPrefill(r.Context(), sessionID))
}
