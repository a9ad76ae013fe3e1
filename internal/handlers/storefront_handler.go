package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/babitas-kitchen/storefront/internal/service"
)

// SelectCategoryRequest is the body of PUT /api/session/category
type SelectCategoryRequest struct {
	Category string `json:"category"`
}

// StorefrontHandler serves the composed page state and session settings
type StorefrontHandler struct {
	cartService *service.CartService
	log         *slog.Logger
}

// NewStorefrontHandler creates a new storefront handler
func NewStorefrontHandler(cartService *service.CartService, log *slog.Logger) *StorefrontHandler {
	return &StorefrontHandler{
		cartService: cartService,
		log:         log,
	}
}

// GetStorefront handles GET /api/storefront
func (h *StorefrontHandler) GetStorefront(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r, h.log)
	if !ok {
		return
	}

	sf, err := h.cartService.Storefront(r.Context(), sess)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to compose storefront", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, sf, h.log)
}

// SelectCategory handles PUT /api/session/category
// Names are stored as given; a name matching no category shows no products
func (h *StorefrontHandler) SelectCategory(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r, h.log)
	if !ok {
		return
	}

	var req SelectCategoryRequest
	if err := decodeJSON(r, &req); err != nil || strings.TrimSpace(req.Category) == "" {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	sess.SelectCategory(req.Category)
	WriteJSON(w, http.StatusOK, req, h.log)
}

// ListNotifications handles GET /api/notifications
func (h *StorefrontHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r, h.log)
	if !ok {
		return
	}

	WriteJSON(w, http.StatusOK, sess.Notifications(), h.log)
}
