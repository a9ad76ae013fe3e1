package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/babitas-kitchen/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPromo map[string]bool

func (s stubPromo) IsValid(_ context.Context, code string) bool { return s[code] }

func validForm() models.OrderForm {
	return models.OrderForm{
		Name:         "Asha",
		Phone:        "9876543210",
		Address:      "12 MG Road",
		DeliveryDate: "2026-10-20",
		DeliveryTime: "19:30",
	}
}

func someLines() []models.CartLine {
	return []models.CartLine{
		{Product: models.Product{ID: 1, Name: "Butter Chicken", Price: 280}, Quantity: 2},
		{Product: models.Product{ID: 4, Name: "Butter Naan", Price: 40}, Quantity: 3},
	}
}

func fastOptions() Options {
	return Options{SubmitDelay: 20 * time.Millisecond, ResetDelay: 150 * time.Millisecond, DeliveryFee: 40}
}

func TestSubmit_Lifecycle(t *testing.T) {
	c := New(fastOptions())
	defer c.Close()
	c.newID = func() string { return "order-1" }

	done := make(chan struct{})
	var conf *models.Confirmation
	var err error
	go func() {
		defer close(done)
		conf, err = c.Submit(context.Background(), validForm(), someLines())
	}()

	assert.Eventually(t, func() bool {
		return c.State().Status == models.StatusSubmitting
	}, time.Second, time.Millisecond)

	<-done
	require.NoError(t, err)
	assert.Equal(t, "order-1", conf.OrderID)
	assert.Equal(t, models.OrderSummary{Subtotal: 680, DeliveryFee: 40, Total: 720}, conf.Summary)
	assert.Len(t, conf.Lines, 2)

	st := c.State()
	assert.Equal(t, models.StatusSubmitted, st.Status)
	require.NotNil(t, st.Confirmation)
	assert.Equal(t, "Asha", st.Form.Name)

	assert.Eventually(t, func() bool {
		st := c.State()
		return st.Status == models.StatusIdle && st.Confirmation == nil && st.Form == models.EmptyOrderForm()
	}, time.Second, 2*time.Millisecond)
}

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.OrderForm)
		lines   []models.CartLine
		wantErr error
	}{
		{"missing name", func(f *models.OrderForm) { f.Name = "" }, someLines(), ErrInvalidForm},
		{"blank phone", func(f *models.OrderForm) { f.Phone = "   " }, someLines(), ErrInvalidForm},
		{"missing address", func(f *models.OrderForm) { f.Address = "" }, someLines(), ErrInvalidForm},
		{"missing delivery date", func(f *models.OrderForm) { f.DeliveryDate = "" }, someLines(), ErrInvalidForm},
		{"missing delivery time", func(f *models.OrderForm) { f.DeliveryTime = "" }, someLines(), ErrInvalidForm},
		{"unknown payment method", func(f *models.OrderForm) { f.PaymentMethod = "cheque" }, someLines(), ErrInvalidForm},
		{"empty cart", func(f *models.OrderForm) {}, nil, ErrEmptyOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(fastOptions())
			defer c.Close()

			form := validForm()
			tt.mutate(&form)

			_, err := c.Submit(context.Background(), form, tt.lines)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, models.StatusIdle, c.State().Status)
		})
	}
}

func TestSubmit_EmailIsOptional(t *testing.T) {
	form := validForm()
	form.Email = ""
	assert.NoError(t, Validate(form))
}

func TestValidate_PaymentMethod(t *testing.T) {
	tests := []struct {
		method  models.PaymentMethod
		wantErr bool
	}{
		{"", false},
		{models.PaymentCashOnDelivery, false},
		{models.PaymentCard, false},
		{models.PaymentUPI, false},
		{"cheque", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			form := validForm()
			form.PaymentMethod = tt.method

			err := Validate(form)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidForm)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSubmit_DefaultsPaymentMethod(t *testing.T) {
	c := New(fastOptions())
	defer c.Close()

	conf, err := c.Submit(context.Background(), validForm(), someLines())
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCashOnDelivery, conf.Form.PaymentMethod)
}

func TestSubmit_RejectsConcurrentSubmission(t *testing.T) {
	opts := fastOptions()
	opts.SubmitDelay = 100 * time.Millisecond
	c := New(opts)
	defer c.Close()

	go func() { _, _ = c.Submit(context.Background(), validForm(), someLines()) }()
	require.Eventually(t, func() bool {
		return c.State().Status == models.StatusSubmitting
	}, time.Second, time.Millisecond)

	_, err := c.Submit(context.Background(), validForm(), someLines())
	assert.ErrorIs(t, err, ErrSubmissionInProgress)
	assert.ErrorIs(t, c.Update(validForm()), ErrSubmissionInProgress)
}

func TestSubmit_ContextCancelledReturnsToIdle(t *testing.T) {
	opts := fastOptions()
	opts.SubmitDelay = time.Second
	c := New(opts)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Submit(ctx, validForm(), someLines())
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, models.StatusIdle, c.State().Status)
}

func TestClose_AbortsSubmission(t *testing.T) {
	opts := fastOptions()
	opts.SubmitDelay = time.Second
	c := New(opts)

	errCh := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background(), validForm(), someLines())
		errCh <- err
	}()
	require.Eventually(t, func() bool {
		return c.State().Status == models.StatusSubmitting
	}, time.Second, time.Millisecond)

	c.Close()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, ErrClosed)
	case <-time.After(500 * time.Millisecond):
		t.Fatal("submission did not stop after Close")
	}
}

func TestClose_StopsReset(t *testing.T) {
	c := New(fastOptions())

	_, err := c.Submit(context.Background(), validForm(), someLines())
	require.NoError(t, err)
	c.Close()

	time.Sleep(250 * time.Millisecond)
	assert.Equal(t, models.StatusSubmitted, c.State().Status)
	assert.ErrorIs(t, c.Update(validForm()), ErrClosed)
}

func TestSummary_PromoWaivesDeliveryFee(t *testing.T) {
	opts := fastOptions()
	opts.Promo = stubPromo{"FREEDEL": true}
	c := New(opts)
	defer c.Close()

	ctx := context.Background()
	assert.Equal(t, models.OrderSummary{Subtotal: 100, DeliveryFee: 0, Total: 100}, c.Summary(ctx, 100, "FREEDEL"))
	assert.Equal(t, models.OrderSummary{Subtotal: 100, DeliveryFee: 40, Total: 140}, c.Summary(ctx, 100, "NOPE"))
	assert.Equal(t, models.OrderSummary{Subtotal: 100, DeliveryFee: 40, Total: 140}, c.Summary(ctx, 100, ""))
	assert.Equal(t, models.OrderSummary{}, c.Summary(ctx, 0, ""), "empty cart")
}

func TestUpdate_StoresDraft(t *testing.T) {
	c := New(fastOptions())
	defer c.Close()

	draft := models.OrderForm{Name: "Ravi", PromoCode: "  FREEDEL "}
	require.NoError(t, c.Update(draft))

	st := c.State()
	assert.Equal(t, "Ravi", st.Form.Name)
	assert.Equal(t, "FREEDEL", st.Form.PromoCode)
	assert.Equal(t, models.PaymentCashOnDelivery, st.Form.PaymentMethod)
}
