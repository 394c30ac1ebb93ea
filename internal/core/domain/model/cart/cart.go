package cart

import (
	"errors"
	"fmt"

	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/core/domain/model/product"
	"caisse/internal/pkg/errs"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not created
	// through the NewCart or RestoreCart factory methods.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructor")

	// ErrLineIsNotConstructed is returned when a Line instance was not created
	// through the NewLine factory method.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")
)

// Line is one cart entry: a product reference and a positive quantity.
// A cart holds at most one line per product id; quantities below 1 are not
// a representable state.
type Line struct {
	product  product.Product
	quantity int
}

// NewLine creates a cart line with a validated product and quantity >= 1.
func NewLine(p product.Product, quantity int) (Line, error) {
	if err := p.Validate(); err != nil {
		return Line{}, err
	}
	if quantity < 1 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return Line{product: p, quantity: quantity}, nil
}

// Validate ensures the line was created through NewLine.
func (l Line) Validate() error {
	if l.quantity < 1 {
		return ErrLineIsNotConstructed
	}
	return l.product.Validate()
}

// Product returns the catalog entry this line refers to.
func (l Line) Product() product.Product {
	return l.product
}

// Quantity returns the line quantity, always >= 1.
func (l Line) Quantity() int {
	return l.quantity
}

// Subtotal returns unit price times quantity, exact.
func (l Line) Subtotal() kernel.Money {
	return l.product.Price().Mul(l.quantity)
}

// VatBucket aggregates the tax amount of all cart lines sharing one rate.
type VatBucket struct {
	rate   kernel.VatRate
	amount kernel.Money
}

// NewVatBucket creates a bucket for a validated rate. Used when restoring a
// frozen breakdown from persistence; live breakdowns come from Cart.VatBreakdown.
func NewVatBucket(rate kernel.VatRate, amount kernel.Money) (VatBucket, error) {
	if err := rate.Validate(); err != nil {
		return VatBucket{}, err
	}
	return VatBucket{rate: rate, amount: amount}, nil
}

// Rate returns the bucket's tax rate.
func (b VatBucket) Rate() kernel.VatRate {
	return b.rate
}

// Amount returns the aggregated tax amount, rounded to the millime.
func (b VatBucket) Amount() kernel.Money {
	return b.amount
}

// Cart is the in-progress order being built for the current table: an
// ordered sequence of lines keyed by product id. It is mutated by
// add/remove/update/clear and cleared when an order is created from it.
//
// Cart maintains these invariants after every mutation:
//   - at most one line per product id
//   - every line quantity is a positive integer
//
// Totals and VAT breakdowns are derived values, recomputed from the current
// lines on every call and never cached.
type Cart struct {
	lines []Line

	isConstructed bool
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{
		lines:         make([]Line, 0),
		isConstructed: true,
	}
}

// RestoreCart rebuilds a cart from persisted lines. Every line must be valid.
func RestoreCart(lines []Line) (*Cart, error) {
	c := NewCart()
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		c.lines = append(c.lines, l)
	}
	return c, nil
}

// Validate ensures the Cart instance was created through a constructor.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// Add puts one unit of the product into the cart: an existing line for the
// same product id is incremented by 1, otherwise a new line with quantity 1
// is appended.
func (c *Cart) Add(p product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	for i, l := range c.lines {
		if l.product.IsEqual(p) {
			c.lines[i].quantity++
			return nil
		}
	}

	c.lines = append(c.lines, Line{product: p, quantity: 1})
	return nil
}

// Remove deletes the line for the product id. Removing an absent line is a
// no-op, not an error.
func (c *Cart) Remove(productID string) {
	for i, l := range c.lines {
		if l.product.ID() == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity of an existing line. A quantity of zero
// (or below) removes the line. Updating a line that does not exist is a
// no-op: it does not create one.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}

	for i, l := range c.lines {
		if l.product.ID() == productID {
			c.lines[i].quantity = quantity
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.lines = c.lines[:0]
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Total sums unit price times quantity over all lines. The result is exact;
// rounding is a display concern.
func (c *Cart) Total() kernel.Money {
	var total kernel.Money
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// VatBreakdown returns one bucket per enumerated VAT rate. A bucket's
// amount is the rate applied to the summed subtotals of the lines carrying
// that rate, rounded to the millime at bucket level only. Zero-amount
// buckets are included; filtering them is the caller's concern.
func (c *Cart) VatBreakdown() []VatBucket {
	rates := kernel.AllVatRates()
	buckets := make([]VatBucket, 0, len(rates))

	for _, rate := range rates {
		var base kernel.Money
		for _, l := range c.lines {
			if l.product.VatRate() == rate {
				base = base.Add(l.Subtotal())
			}
		}
		buckets = append(buckets, VatBucket{rate: rate, amount: rate.AmountOn(base)})
	}

	return buckets
}
