// Package checkout implements the order form and its simulated submission.
//
// Submitting never reaches a backend: the form moves to "submitting",
// waits a fixed delay, moves to "submitted" with a confirmation, and
// resets itself to empty defaults after a second delay.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/babitas-kitchen/storefront/internal/models"
	"github.com/google/uuid"
)

const (
	DefaultSubmitDelay = 2 * time.Second
	DefaultResetDelay  = 3 * time.Second
	DefaultDeliveryFee = 40
)

var (
	ErrInvalidForm          = errors.New("invalid order form")
	ErrEmptyOrder           = errors.New("order must contain at least one item")
	ErrSubmissionInProgress = errors.New("order submission already in progress")
	ErrClosed               = errors.New("checkout closed")
)

// PromoValidator checks promo codes. A valid code waives the delivery fee.
type PromoValidator interface {
	IsValid(ctx context.Context, code string) bool
}

// Options configures a Checkout.
type Options struct {
	SubmitDelay time.Duration
	ResetDelay  time.Duration
	DeliveryFee int64
	Promo       PromoValidator // may be nil
}

// Checkout owns the order form of one session. It is safe for
// concurrent use.
type Checkout struct {
	mu           sync.Mutex
	opts         Options
	form         models.OrderForm
	status       models.SubmissionStatus
	confirmation *models.Confirmation
	resetTimer   *time.Timer
	cancel       context.CancelFunc
	closed       bool
	newID        func() string
	now          func() time.Time
}

// New creates an idle checkout with an empty form.
func New(opts Options) *Checkout {
	return &Checkout{
		opts:   opts,
		form:   models.EmptyOrderForm(),
		status: models.StatusIdle,
		newID:  uuid.NewString,
		now:    time.Now,
	}
}

// State returns a snapshot of the form, status and confirmation.
func (c *Checkout) State() models.CheckoutState {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := models.CheckoutState{Form: c.form, Status: c.status}
	if c.confirmation != nil {
		conf := *c.confirmation
		st.Confirmation = &conf
	}
	return st
}

// Update stores draft form values. Only an idle form accepts changes.
func (c *Checkout) Update(form models.OrderForm) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if c.status != models.StatusIdle {
		return ErrSubmissionInProgress
	}
	c.form = normalize(form)
	return nil
}

// Summary computes subtotal, delivery fee and total for a cart subtotal.
// An empty cart carries no delivery fee.
func (c *Checkout) Summary(ctx context.Context, subtotal int64, promoCode string) models.OrderSummary {
	fee := c.opts.DeliveryFee
	switch {
	case subtotal == 0:
		fee = 0
	case promoCode != "" && c.opts.Promo != nil && c.opts.Promo.IsValid(ctx, promoCode):
		fee = 0
	}
	return models.OrderSummary{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal + fee,
	}
}

// Submit validates form, simulates the order round trip and returns the
// confirmation. lines is the cart at the time of submission.
//
// Cancelling ctx during the delay puts the form back to idle and returns
// ctx.Err(). The submitted state lasts ResetDelay, after which the form
// is cleared.
func (c *Checkout) Submit(ctx context.Context, form models.OrderForm, lines []models.CartLine) (*models.Confirmation, error) {
	form = normalize(form)
	if err := Validate(form); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClosed
	}
	if c.status != models.StatusIdle {
		c.mu.Unlock()
		return nil, ErrSubmissionInProgress
	}
	c.form = form
	c.status = models.StatusSubmitting
	c.cancel = cancel
	c.mu.Unlock()

	var subtotal int64
	for _, l := range lines {
		subtotal += l.Subtotal()
	}
	summary := c.Summary(ctx, subtotal, form.PromoCode)

	timer := time.NewTimer(c.opts.SubmitDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		c.mu.Lock()
		c.cancel = nil
		if !c.closed {
			c.status = models.StatusIdle
		}
		closed := c.closed
		c.mu.Unlock()
		if closed {
			return nil, ErrClosed
		}
		return nil, ctx.Err()
	case <-timer.C:
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancel = nil
	if c.closed {
		return nil, ErrClosed
	}

	snapshot := make([]models.CartLine, len(lines))
	copy(snapshot, lines)
	conf := &models.Confirmation{
		OrderID:     c.newID(),
		Form:        form,
		Lines:       snapshot,
		Summary:     summary,
		SubmittedAt: c.now().UTC(),
	}
	c.status = models.StatusSubmitted
	c.confirmation = conf
	c.resetTimer = time.AfterFunc(c.opts.ResetDelay, c.reset)

	out := *conf
	return &out, nil
}

// Close cancels an in-flight submission and the pending reset.
func (c *Checkout) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.cancel != nil {
		c.cancel()
	}
	if c.resetTimer != nil {
		c.resetTimer.Stop()
		c.resetTimer = nil
	}
}

func (c *Checkout) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.form = models.EmptyOrderForm()
	c.status = models.StatusIdle
	c.confirmation = nil
	c.resetTimer = nil
}

// Validate checks the fields the order form marks as required. An empty
// payment method counts as cash on delivery.
func Validate(form models.OrderForm) error {
	form = normalize(form)
	required := []struct {
		name  string
		value string
	}{
		{"name", form.Name},
		{"phone", form.Phone},
		{"address", form.Address},
		{"deliveryDate", form.DeliveryDate},
		{"deliveryTime", form.DeliveryTime},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidForm, f.name)
		}
	}
	if !form.PaymentMethod.Valid() {
		return fmt.Errorf("%w: unsupported payment method %q", ErrInvalidForm, form.PaymentMethod)
	}
	return nil
}

func normalize(form models.OrderForm) models.OrderForm {
	if form.PaymentMethod == "" {
		form.PaymentMethod = models.PaymentCashOnDelivery
	}
	form.PromoCode = strings.TrimSpace(form.PromoCode)
	return form
}
