package session

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/babitas-kitchen/storefront/internal/checkout"
	"github.com/babitas-kitchen/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testOptions() Options {
	return Options{
		IdleTimeout:     time.Minute,
		NotificationTTL: time.Minute,
		Checkout: checkout.Options{
			SubmitDelay: 10 * time.Millisecond,
			ResetDelay:  time.Minute,
			DeliveryFee: 40,
		},
	}
}

var chai = models.Product{ID: 12, Name: "Masala Chai", Price: 30, Category: "beverages"}

func TestSession_AddToCartNotifies(t *testing.T) {
	st := NewStore(testOptions(), testLogger())
	defer st.Close()
	s := st.Create()

	s.AddToCart(chai)
	s.AddToCart(chai)

	lines, count, total := s.CartSnapshot()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, count)
	assert.EqualValues(t, 60, total)

	notes := s.Notifications()
	require.Len(t, notes, 2)
	assert.Equal(t, "Masala Chai added to cart!", notes[0].Message)
}

func TestSession_CartMutations(t *testing.T) {
	st := NewStore(testOptions(), testLogger())
	defer st.Close()
	s := st.Create()

	s.AddToCart(chai)
	require.NoError(t, s.UpdateQuantity(chai.ID, 4))
	assert.Equal(t, 4, s.CartCount())
	assert.EqualValues(t, 120, s.CartTotal())

	require.NoError(t, s.UpdateQuantity(chai.ID, 0))
	assert.Zero(t, s.CartCount())
	assert.False(t, s.RemoveFromCart(chai.ID))

	// removal does not notify
	assert.Len(t, s.Notifications(), 1)
}

func TestSession_SelectedCategoryDefaultsToAll(t *testing.T) {
	st := NewStore(testOptions(), testLogger())
	defer st.Close()
	s := st.Create()

	assert.Equal(t, models.AllProducts, s.SelectedCategory())
	s.SelectCategory("Sweets")
	assert.Equal(t, "Sweets", s.SelectedCategory())
}

func TestSession_SubmitOrderUsesCart(t *testing.T) {
	st := NewStore(testOptions(), testLogger())
	defer st.Close()
	s := st.Create()
	s.AddToCart(chai)

	conf, err := s.SubmitOrder(context.Background(), models.OrderForm{
		Name: "Asha", Phone: "98765", Address: "MG Road", DeliveryDate: "2026-10-20", DeliveryTime: "19:00",
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderSummary{Subtotal: 30, DeliveryFee: 40, Total: 70}, conf.Summary)
	assert.Equal(t, models.StatusSubmitted, s.Checkout().State().Status)

	// the cart is left as it was
	assert.Equal(t, 1, s.CartCount())
}

func TestSession_ConcurrentAdds(t *testing.T) {
	st := NewStore(testOptions(), testLogger())
	defer st.Close()
	s := st.Create()

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddToCart(chai)
		}()
	}
	wg.Wait()

	lines, count, _ := s.CartSnapshot()
	assert.Len(t, lines, 1)
	assert.Equal(t, 40, count)
}

func TestContext(t *testing.T) {
	st := NewStore(testOptions(), testLogger())
	defer st.Close()
	s := st.Create()

	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	got, ok := FromContext(NewContext(context.Background(), s))
	require.True(t, ok)
	assert.Same(t, s, got)
}
