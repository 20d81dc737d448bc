package handler

import (
	"net/http"

	"scan-kart/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles barcode lookups.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// Scan handles GET /api/scan/{barcode} requests.
func (h *ProductHandler) Scan(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Scan(r.Context(), r.PathValue("barcode"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
