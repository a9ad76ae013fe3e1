// Package session owns the per-visitor storefront state: cart, selected
// category, notifications and checkout form.
//
// Nothing here outlives the process. A session is created on a visitor's
// first request and closed when it idles out, which also stops every
// timer it started.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/babitas-kitchen/storefront/internal/cart"
	"github.com/babitas-kitchen/storefront/internal/checkout"
	"github.com/babitas-kitchen/storefront/internal/models"
	"github.com/babitas-kitchen/storefront/internal/notify"
)

// Session is the state of one visitor. Methods are safe for concurrent use.
type Session struct {
	ID string

	mu       sync.Mutex
	cart     *cart.Cart
	category string
	lastSeen time.Time

	notifications *notify.Queue
	checkout      *checkout.Checkout
}

func newSession(id string, opts Options, now time.Time) *Session {
	return &Session{
		ID:            id,
		cart:          cart.New(),
		category:      models.AllProducts,
		lastSeen:      now,
		notifications: notify.NewQueue(opts.NotificationTTL),
		checkout:      checkout.New(opts.Checkout),
	}
}

// AddToCart adds one unit of p and announces it.
func (s *Session) AddToCart(p models.Product) models.CartLine {
	s.mu.Lock()
	line := s.cart.Add(p)
	s.mu.Unlock()

	s.notifications.Show(fmt.Sprintf("%s added to cart!", p.Name))
	return line
}

// RemoveFromCart drops the line for productID, reporting whether it existed.
func (s *Session) RemoveFromCart(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Remove(productID)
}

// UpdateQuantity sets a line's quantity; zero removes the line.
func (s *Session) UpdateQuantity(productID int64, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.UpdateQuantity(productID, quantity)
}

// CartSnapshot returns the lines, item count and total in one consistent read.
func (s *Session) CartSnapshot() (lines []models.CartLine, count int, total int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines(), s.cart.Count(), s.cart.Total()
}

// CartTotal is the sum of price * quantity over the cart.
func (s *Session) CartTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// CartCount is the number of items in the cart.
func (s *Session) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Count()
}

// SelectCategory stores the category the catalog is filtered by.
func (s *Session) SelectCategory(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category = name
}

// SelectedCategory returns the current category, models.AllProducts by default.
func (s *Session) SelectedCategory() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.category
}

// Notifications returns the visible notifications.
func (s *Session) Notifications() []models.Notification {
	return s.notifications.List()
}

// Checkout returns the session's checkout form.
func (s *Session) Checkout() *checkout.Checkout {
	return s.checkout
}

// SubmitOrder submits form with the current cart. It blocks for the
// simulated submission delay.
func (s *Session) SubmitOrder(ctx context.Context, form models.OrderForm) (*models.Confirmation, error) {
	s.mu.Lock()
	lines := s.cart.Lines()
	s.mu.Unlock()

	return s.checkout.Submit(ctx, form, lines)
}

// Close stops the session's timers.
func (s *Session) Close() {
	s.notifications.Close()
	s.checkout.Close()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}
