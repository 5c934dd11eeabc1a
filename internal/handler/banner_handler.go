package handler

import (
	"net/http"

	"lojinha/internal/model"
	"lojinha/internal/service"

	"github.com/rs/zerolog"
)

// BannerHandler handles storefront and admin banner requests.
type BannerHandler struct {
	banners service.BannerService
	logger  zerolog.Logger
}

// NewBannerHandler creates a new banner handler.
func NewBannerHandler(banners service.BannerService, logger zerolog.Logger) *BannerHandler {
	return &BannerHandler{
		banners: banners,
		logger:  logger.With().Str("handler", "banner").Logger(),
	}
}

// Active handles GET /api/banners/active requests, returning only banners
// whose date window covers today.
func (h *BannerHandler) Active(w http.ResponseWriter, r *http.Request) {
	banners, err := h.banners.Visible(r.Context())
	if err != nil {
		writeDomainError(w, err, "failed to retrieve banners", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, banners)
}

// List handles GET /api/admin/banners requests.
func (h *BannerHandler) List(w http.ResponseWriter, r *http.Request) {
	banners, err := h.banners.List(r.Context())
	if err != nil {
		writeDomainError(w, err, "failed to retrieve banners", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, banners)
}

// Create handles POST /api/admin/banners requests.
func (h *BannerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var banner model.Banner
	if !decodeJSON(w, r, &banner, h.logger) {
		return
	}

	id, err := h.banners.Create(r.Context(), &banner)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	banner.ID = id
	writeJSON(w, http.StatusCreated, banner)
}

// Update handles PUT /api/admin/banners/{id} requests.
func (h *BannerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var banner model.Banner
	if !decodeJSON(w, r, &banner, h.logger) {
		return
	}
	banner.ID = r.PathValue("id")

	if err := h.banners.Update(r.Context(), &banner); err != nil {
		writeDomainError(w, err, "failed to update banner", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, banner)
}

// Delete handles DELETE /api/admin/banners/{id} requests.
func (h *BannerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.banners.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeDomainError(w, err, "failed to delete banner", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetActive handles PATCH /api/admin/banners/{id}/active requests.
func (h *BannerHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Active bool `json:"active"`
	}
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	if err := h.banners.SetActive(r.Context(), r.PathValue("id"), req.Active); err != nil {
		writeDomainError(w, err, "failed to update banner", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
