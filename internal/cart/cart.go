// Package cart holds the shopping cart of a single visitor.
//
// A Cart keeps at most one line per product and never retains a line
// with quantity zero. It is not safe for concurrent use; the owning
// session serializes access.
package cart

import (
	"errors"

	"github.com/babitas-kitchen/storefront/internal/models"
)

var ErrInvalidQuantity = errors.New("quantity must not be negative")

// Cart is an ordered list of cart lines.
type Cart struct {
	lines []models.CartLine
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add increments the line for p, appending a new line with quantity 1
// when p is not in the cart yet.
func (c *Cart) Add(p models.Product) models.CartLine {
	if i := c.index(p.ID); i >= 0 {
		c.lines[i].Quantity++
		return c.lines[i]
	}
	line := models.CartLine{Product: p, Quantity: 1}
	c.lines = append(c.lines, line)
	return line
}

// Remove deletes the line for productID. Unknown ids are ignored.
func (c *Cart) Remove(productID int64) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return true
}

// UpdateQuantity sets the quantity of the line for productID.
// Zero removes the line; unknown ids are ignored.
func (c *Cart) UpdateQuantity(productID int64, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	if quantity == 0 {
		c.Remove(productID)
		return nil
	}
	if i := c.index(productID); i >= 0 {
		c.lines[i].Quantity = quantity
	}
	return nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total is the sum of price * quantity over all lines.
func (c *Cart) Total() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// Count is the number of items in the cart.
func (c *Cart) Count() int {
	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// Len is the number of distinct products in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) index(productID int64) int {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			return i
		}
	}
	return -1
}
