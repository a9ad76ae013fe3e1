package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// promoValidator is the interface for promo code validation
type promoValidator interface {
	IsValid(ctx context.Context, code string) bool
	GetStats() map[string]interface{}
}

// PromoHandler handles HTTP requests for promo code checks
type PromoHandler struct {
	validator promoValidator
}

// NewPromoHandler creates a new PromoHandler
func NewPromoHandler(validator promoValidator) *PromoHandler {
	return &PromoHandler{
		validator: validator,
	}
}

// ValidatePromo handles GET /api/promo/{promoCode}
// A valid code waives the delivery fee at checkout
func (h *PromoHandler) ValidatePromo(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "promoCode")

	if h.validator.IsValid(r.Context(), code) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"valid":  true,
			"promo":  code,
			"effect": "free delivery",
		})
		return
	}

	writeJSON(w, http.StatusNotFound, map[string]interface{}{
		"valid":   false,
		"promo":   code,
		"message": "Promo code not found or invalid",
	})
}

// GetStats handles GET /api/promo/stats (operator only)
func (h *PromoHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.validator.GetStats())
}
