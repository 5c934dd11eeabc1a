package handler

import (
	"net/http"

	"lojinha/internal/model"
	"lojinha/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles storefront and admin product requests.
type ProductHandler struct {
	catalog service.CatalogService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(catalog service.CatalogService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products requests, hiding sold items.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	products, err := h.catalog.List(r.Context(), category)
	if err != nil {
		writeDomainError(w, err, "failed to retrieve products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("id")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	product, err := h.catalog.GetByID(r.Context(), productID)
	if err != nil {
		writeDomainError(w, err, "failed to retrieve product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// ListAll handles GET /api/admin/products requests, including sold items.
func (h *ProductHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListAll(r.Context())
	if err != nil {
		writeDomainError(w, err, "failed to retrieve products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Create handles POST /api/admin/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var product model.Product
	if !decodeJSON(w, r, &product, h.logger) {
		return
	}

	id, err := h.catalog.Create(r.Context(), &product)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	product.ID = id
	writeJSON(w, http.StatusCreated, product)
}

// Update handles PUT /api/admin/products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var product model.Product
	if !decodeJSON(w, r, &product, h.logger) {
		return
	}
	product.ID = r.PathValue("id")

	if err := h.catalog.Update(r.Context(), &product); err != nil {
		writeDomainError(w, err, "failed to update product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /api/admin/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeDomainError(w, err, "failed to delete product", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetSold handles PATCH /api/admin/products/{id}/sold requests.
func (h *ProductHandler) SetSold(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Sold bool `json:"sold"`
	}
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	if err := h.catalog.SetSold(r.Context(), r.PathValue("id"), req.Sold); err != nil {
		writeDomainError(w, err, "failed to update product", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
