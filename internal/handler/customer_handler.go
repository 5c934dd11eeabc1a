package handler

import (
	"net/http"

	"lojinha/internal/service"

	"github.com/rs/zerolog"
)

// CustomerHandler handles admin customer requests.
type CustomerHandler struct {
	customers service.CustomerService
	logger    zerolog.Logger
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(customers service.CustomerService, logger zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{
		customers: customers,
		logger:    logger.With().Str("handler", "customer").Logger(),
	}
}

// List handles GET /api/admin/customers requests.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.List(r.Context())
	if err != nil {
		writeDomainError(w, err, "failed to retrieve customers", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, customers)
}
