package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/babitas-kitchen/storefront/internal/service"
)

// AddItemRequest is the body of POST /api/cart/items
type AddItemRequest struct {
	ProductID int64 `json:"productId"`
}

// UpdateQuantityRequest is the body of PUT /api/cart/items/{productId}
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

// CartHandler handles cart HTTP requests for the caller's session
type CartHandler struct {
	cartService *service.CartService
	log         *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService, log *slog.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		log:         log,
	}
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r, h.log)
	if !ok {
		return
	}

	WriteJSON(w, http.StatusOK, h.cartService.Cart(r.Context(), sess), h.log)
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := requireSession(w, r, h.log)
	if !ok {
		return
	}

	var req AddItemRequest
	if err := decodeJSON(r, &req); err != nil {
		h.log.WarnContext(ctx, "failed to decode add item request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	line, err := h.cartService.AddToCart(ctx, sess, req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidProduct) {
			WriteError(w, http.StatusBadRequest, "Invalid product", h.log)
			return
		}
		h.log.ErrorContext(ctx, "failed to add item", "productId", req.ProductID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.log.InfoContext(ctx, "item added to cart", "productId", line.ProductID(), "quantity", line.Quantity)
	WriteJSON(w, http.StatusOK, h.cartService.Cart(ctx, sess), h.log)
}

// UpdateItem handles PUT /api/cart/items/{productId}
// A quantity of zero removes the line
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := requireSession(w, r, h.log)
	if !ok {
		return
	}

	productID, ok := productIDParam(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	var req UpdateQuantityRequest
	if err := decodeJSON(r, &req); err != nil || req.Quantity == nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	if err := h.cartService.UpdateQuantity(ctx, sess, productID, *req.Quantity); err != nil {
		if errors.Is(err, service.ErrInvalidQuantity) {
			WriteError(w, http.StatusBadRequest, "Quantity must not be negative", h.log)
			return
		}
		h.log.ErrorContext(ctx, "failed to update quantity", "productId", productID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, h.cartService.Cart(ctx, sess), h.log)
}

// RemoveItem handles DELETE /api/cart/items/{productId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := requireSession(w, r, h.log)
	if !ok {
		return
	}

	productID, ok := productIDParam(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	h.cartService.RemoveFromCart(ctx, sess, productID)
	WriteJSON(w, http.StatusOK, h.cartService.Cart(ctx, sess), h.log)
}
