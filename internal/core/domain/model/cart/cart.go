package cart

import (
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Variant is an optional selector distinguishing purchasable variations of the
// same product, e.g. name "7g" in category "size".
type Variant struct {
	Name     string
	Category string
}

// Line is a single cart line item. It references a product, carries the unit
// price resolved from the catalog at the time the line was built, and an
// optional variant selector.
//
// Line is a value object; quantity is always >= 1.
type Line struct {
	productID   kernel.UUID
	productName string
	quantity    int
	unitPrice   kernel.Money
	variant     *Variant
}

// NewLine creates a cart line with validation.
// The variant may be nil for products without purchasable variations.
func NewLine(productID kernel.UUID, productName string, quantity int, unitPrice kernel.Money, variant *Variant) (Line, error) {
	if err := productID.Validate(); err != nil {
		return Line{}, err
	}
	if productName == "" {
		return Line{}, errs.NewValueIsRequiredError("product name")
	}
	if quantity < 1 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	var v *Variant
	if variant != nil {
		copied := *variant
		v = &copied
	}

	return Line{
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
		variant:     v,
	}, nil
}

// ProductID returns the referenced product's identifier.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// ProductName returns the product name captured when the line was built.
func (l Line) ProductName() string {
	return l.productName
}

// Quantity returns the number of units in the line, always >= 1.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the per-unit price resolved from the catalog.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Variant returns a copy of the variant selector, nil when none was chosen.
func (l Line) Variant() *Variant {
	if l.variant == nil {
		return nil
	}
	copied := *l.variant
	return &copied
}

// Total returns unit price multiplied by quantity.
func (l Line) Total() kernel.Money {
	return l.unitPrice.MultiplyInt(l.quantity)
}

// sameSelection reports whether the line is for the same product and variant.
func (l Line) sameSelection(productID kernel.UUID, variant *Variant) bool {
	if !l.productID.IsEqual(productID) {
		return false
	}
	if l.variant == nil || variant == nil {
		return l.variant == nil && variant == nil
	}
	return *l.variant == *variant
}

// Cart aggregates line items for the active session.
//
// Cart is mutable but session-local; it is never shared across goroutines.
// Order creation snapshots the lines, so mutating the cart afterward does not
// affect any created order.
type Cart struct {
	lines []Line
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add merges a line into the cart. Lines with the same product and variant are
// combined by summing quantities; otherwise the line is appended.
func (c *Cart) Add(line Line) {
	for i, existing := range c.lines {
		if existing.sameSelection(line.productID, line.variant) {
			c.lines[i].quantity += line.quantity
			return
		}
	}
	c.lines = append(c.lines, line)
}

// SetQuantity updates the quantity of the line for the given product and
// variant. A quantity below 1 removes the line entirely.
// Returns ObjectNotFoundError if no such line exists.
func (c *Cart) SetQuantity(productID kernel.UUID, variant *Variant, quantity int) error {
	for i, existing := range c.lines {
		if existing.sameSelection(productID, variant) {
			if quantity < 1 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
				return nil
			}
			c.lines[i].quantity = quantity
			return nil
		}
	}
	return errs.NewObjectNotFoundError("cart line", productID.String())
}

// Remove deletes the line for the given product and variant, if present.
func (c *Cart) Remove(productID kernel.UUID, variant *Variant) {
	for i, existing := range c.lines {
		if existing.sameSelection(productID, variant) {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Lines returns a copy of the cart's line items in insertion order.
func (c *Cart) Lines() []Line {
	return append([]Line(nil), c.lines...)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Subtotal returns the sum of all line totals.
func (c *Cart) Subtotal() kernel.Money {
	subtotal := kernel.ZeroMoney()
	for _, line := range c.lines {
		subtotal = subtotal.Add(line.Total())
	}
	return subtotal
}
