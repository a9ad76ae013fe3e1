package models

import "time"

// CartLine is one product-quantity pairing in the cart.
// The product is a snapshot taken when the line was created.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// ProductID returns the id of the product on the line.
func (l CartLine) ProductID() int64 {
	return l.Product.ID
}

// Subtotal is price times quantity.
func (l CartLine) Subtotal() int64 {
	return l.Product.Price * int64(l.Quantity)
}

// Notification is a transient message shown after a cart mutation.
type Notification struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// PaymentMethod identifies how the customer pays on delivery.
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cod"
	PaymentCard           PaymentMethod = "card"
	PaymentUPI            PaymentMethod = "upi"
)

// Valid reports whether m is one of the offered payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCashOnDelivery, PaymentCard, PaymentUPI:
		return true
	}
	return false
}

// OrderForm holds the contact, delivery and payment fields of the
// checkout form.
type OrderForm struct {
	Name                string        `json:"name"`
	Phone               string        `json:"phone"`
	Email               string        `json:"email"`
	Address             string        `json:"address"`
	DeliveryDate        string        `json:"deliveryDate"`
	DeliveryTime        string        `json:"deliveryTime"`
	PaymentMethod       PaymentMethod `json:"paymentMethod"`
	SpecialInstructions string        `json:"specialInstructions"`
	PromoCode           string        `json:"promoCode,omitempty"`
}

// EmptyOrderForm returns the form defaults.
func EmptyOrderForm() OrderForm {
	return OrderForm{PaymentMethod: PaymentCashOnDelivery}
}

// SubmissionStatus tracks the simulated order submission.
type SubmissionStatus string

const (
	StatusIdle       SubmissionStatus = "idle"
	StatusSubmitting SubmissionStatus = "submitting"
	StatusSubmitted  SubmissionStatus = "submitted"
)

// OrderSummary is the money breakdown shown in the cart panel and on
// the checkout form.
type OrderSummary struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Total       int64 `json:"total"`
}

// Confirmation is displayed after a successful submission.
type Confirmation struct {
	OrderID     string       `json:"orderId"`
	Form        OrderForm    `json:"form"`
	Lines       []CartLine   `json:"lines"`
	Summary     OrderSummary `json:"summary"`
	SubmittedAt time.Time    `json:"submittedAt"`
}

// CheckoutState is the externally visible state of the checkout form.
type CheckoutState struct {
	Form         OrderForm        `json:"form"`
	Status       SubmissionStatus `json:"status"`
	Confirmation *Confirmation    `json:"confirmation,omitempty"`
}
