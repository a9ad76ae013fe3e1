// Package view assembles what a visitor sees from their session and the
// catalog: filtered products, the cart panel and the checkout form.
package view

import (
	"context"

	"github.com/babitas-kitchen/storefront/internal/catalog"
	"github.com/babitas-kitchen/storefront/internal/models"
	"github.com/babitas-kitchen/storefront/internal/session"
)

// CartPanel is the cart drawer: lines, item count and money summary.
type CartPanel struct {
	Lines   []models.CartLine   `json:"lines"`
	Count   int                 `json:"count"`
	Summary models.OrderSummary `json:"summary"`
}

// Storefront is the full page state for one session.
type Storefront struct {
	SessionID        string                `json:"sessionId"`
	Categories       []models.Category     `json:"categories"`
	SelectedCategory string                `json:"selectedCategory"`
	Products         []models.Product      `json:"products"`
	Cart             CartPanel             `json:"cart"`
	Notifications    []models.Notification `json:"notifications"`
	Checkout         models.CheckoutState  `json:"checkout"`
}

// Cart builds the cart panel for s. The delivery fee follows the promo
// code currently entered on the checkout form.
func Cart(ctx context.Context, s *session.Session) CartPanel {
	lines, count, total := s.CartSnapshot()
	co := s.Checkout()
	return CartPanel{
		Lines:   lines,
		Count:   count,
		Summary: co.Summary(ctx, total, co.State().Form.PromoCode),
	}
}

// Compose derives the storefront from the session and the catalog.
func Compose(ctx context.Context, s *session.Session, products []models.Product, categories []models.Category) Storefront {
	selected := s.SelectedCategory()
	return Storefront{
		SessionID:        s.ID,
		Categories:       categories,
		SelectedCategory: selected,
		Products:         catalog.Filter(products, categories, selected),
		Cart:             Cart(ctx, s),
		Notifications:    s.Notifications(),
		Checkout:         s.Checkout().State(),
	}
}
