package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/babitas-kitchen/storefront/internal/checkout"
	"github.com/babitas-kitchen/storefront/internal/models"
)

// CheckoutHandler handles the order form of the caller's session
type CheckoutHandler struct {
	log *slog.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(log *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{log: log}
}

// GetCheckout handles GET /api/checkout
func (h *CheckoutHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r, h.log)
	if !ok {
		return
	}

	WriteJSON(w, http.StatusOK, sess.Checkout().State(), h.log)
}

// SaveDraft handles PUT /api/checkout
func (h *CheckoutHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r, h.log)
	if !ok {
		return
	}

	var form models.OrderForm
	if err := decodeJSON(r, &form); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	if err := sess.Checkout().Update(form); err != nil {
		h.writeCheckoutError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, sess.Checkout().State(), h.log)
}

// Submit handles POST /api/checkout
// The response is sent once the simulated submission completes
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := requireSession(w, r, h.log)
	if !ok {
		return
	}

	var form models.OrderForm
	if err := decodeJSON(r, &form); err != nil {
		h.log.WarnContext(ctx, "failed to decode order form", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	conf, err := sess.SubmitOrder(ctx, form)
	if err != nil {
		h.writeCheckoutError(w, r, err)
		return
	}

	h.log.InfoContext(ctx, "order submitted",
		"order_id", conf.OrderID,
		"lines", len(conf.Lines),
		"total", conf.Summary.Total,
		"payment_method", conf.Form.PaymentMethod,
	)
	WriteJSON(w, http.StatusOK, conf, h.log)
}

func (h *CheckoutHandler) writeCheckoutError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, checkout.ErrInvalidForm):
		WriteError(w, http.StatusBadRequest, err.Error(), h.log)
	case errors.Is(err, checkout.ErrEmptyOrder):
		WriteError(w, http.StatusBadRequest, "Order must contain at least one item", h.log)
	case errors.Is(err, checkout.ErrSubmissionInProgress):
		WriteError(w, http.StatusConflict, "Order submission already in progress", h.log)
	case errors.Is(err, checkout.ErrClosed):
		WriteError(w, http.StatusGone, "Session has ended", h.log)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.log.WarnContext(r.Context(), "order submission abandoned", "error", err)
		WriteError(w, http.StatusServiceUnavailable, "Request cancelled", h.log)
	default:
		h.log.ErrorContext(r.Context(), "checkout failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}
