package handler

import (
	"net/http"

	"lojinha/internal/model"
	"lojinha/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order tracking and admin order requests.
type OrderHandler struct {
	orders service.OrderService
	logger zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orders service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		logger: logger.With().Str("handler", "order").Logger(),
	}
}

// Track handles GET /api/orders/track requests. Lookup is by email or,
// failing that, phone.
func (h *OrderHandler) Track(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	phone := r.URL.Query().Get("phone")

	if email == "" && phone == "" {
		writeError(w, http.StatusBadRequest, "email or phone is required", h.logger)
		return
	}

	var (
		orders []model.Order
		err    error
	)
	if email != "" {
		orders, err = h.orders.TrackByEmail(r.Context(), email)
	} else {
		orders, err = h.orders.TrackByPhone(r.Context(), phone)
	}
	if err != nil {
		writeDomainError(w, err, "failed to track orders", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// List handles GET /api/admin/orders requests, most recent first.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		writeDomainError(w, err, "failed to retrieve orders", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// GetByID handles GET /api/admin/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err, "failed to retrieve order", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// UpdateStatus handles PATCH /api/admin/orders/{id}/status requests.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status model.OrderStatus `json:"status"`
	}
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	if err := h.orders.UpdateStatus(r.Context(), r.PathValue("id"), req.Status); err != nil {
		writeDomainError(w, err, "failed to update order status", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
