package handler

import (
	"net/http"

	"scan-kart/internal/service"

	"github.com/rs/zerolog"
)

// CheckoutHandler handles checkout requests.
type CheckoutHandler struct {
	service service.CheckoutService
	logger  zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(service service.CheckoutService, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		logger:  logger.With().Str("handler", "checkout").Logger(),
	}
}

// Start handles POST /api/checkout requests. The payment runs in the
// background; clients poll GET /api/checkout for the outcome.
func (h *CheckoutHandler) Start(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Start(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusAccepted, snap)
}

// Status handles GET /api/checkout requests.
func (h *CheckoutHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Status())
}

// Cancel handles POST /api/checkout/cancel requests.
func (h *CheckoutHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Cancel()
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

// Acknowledge handles POST /api/checkout/ack requests.
func (h *CheckoutHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Acknowledge()
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}
