package order

import (
	"errors"
	"time"

	"caisse/internal/core/domain/model/cart"
	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderHasNoLines rejects orders created from an empty cart snapshot.
	ErrOrderHasNoLines = errs.NewValueIsRequiredError("order lines")

	// ErrOrderServerIsRequired rejects orders without an assigned server.
	ErrOrderServerIsRequired = errs.NewValueIsRequiredError("order server")

	// ErrOrderCreatedAtIsRequired rejects orders without a creation timestamp.
	ErrOrderCreatedAtIsRequired = errs.NewValueIsRequiredError("order creation time")
)

// Order is the aggregate root for a submitted order. It freezes the cart at
// the instant of creation: lines, total and VAT breakdown are copies
// computed once and never derived again, so later catalog or cart changes
// cannot alter a receipt.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and table number
//   - Must snapshot at least one cart line
//   - Everything except status and paidAt is immutable after construction
//   - pending -> paid happens at most once and stamps paidAt
type Order struct {
	id           kernel.UUID
	tableNumber  kernel.TableNumber
	clientNames  []string
	lines        []cart.Line
	total        kernel.Money
	vatBreakdown []cart.VatBucket
	status       Status
	server       string
	createdAt    time.Time
	paidAt       *time.Time

	isConstructed bool
}

// NewOrder creates a pending order from a cart snapshot. The caller passes
// the already-computed total and VAT breakdown so the frozen values are
// exactly what the cart reported at creation time.
func NewOrder(
	id kernel.UUID,
	tableNumber kernel.TableNumber,
	lines []cart.Line,
	total kernel.Money,
	vatBreakdown []cart.VatBucket,
	clientNames []string,
	server string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTableNumber(tableNumber),
		o.setLines(lines),
		o.setServer(server),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.total = total
	o.vatBreakdown = append([]cart.VatBucket(nil), vatBreakdown...)
	o.clientNames = append([]string(nil), clientNames...)

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its status
// and payment timestamp. The status must be valid and consistent with the
// presence of paidAt.
func RestoreOrder(
	id kernel.UUID,
	tableNumber kernel.TableNumber,
	lines []cart.Line,
	total kernel.Money,
	vatBreakdown []cart.VatBucket,
	clientNames []string,
	server string,
	status Status,
	createdAt time.Time,
	paidAt *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, tableNumber, lines, total, vatBreakdown, clientNames, server, createdAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHavePaidAt(paidAt != nil); err != nil {
		return nil, err
	}

	o.status = status
	if paidAt != nil {
		at := *paidAt
		o.paidAt = &at
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TableNumber returns the number of the table this order is bound to.
func (o *Order) TableNumber() kernel.TableNumber {
	return o.tableNumber
}

// ClientNames returns a copy of the client names recorded at creation.
func (o *Order) ClientNames() []string {
	return append([]string(nil), o.clientNames...)
}

// Lines returns a copy of the frozen cart-line snapshot.
func (o *Order) Lines() []cart.Line {
	return append([]cart.Line(nil), o.lines...)
}

// Total returns the frozen order total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// VatBreakdown returns a copy of the frozen per-rate tax buckets.
func (o *Order) VatBreakdown() []cart.VatBucket {
	return append([]cart.VatBucket(nil), o.vatBreakdown...)
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Server returns the server who took the order.
func (o *Order) Server() string {
	return o.server
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PaidAt returns the payment timestamp, nil while the order is unpaid.
func (o *Order) PaidAt() *time.Time {
	if o.paidAt == nil {
		return nil
	}
	at := *o.paidAt
	return &at
}

// Pay settles the order: the status becomes Paid and paidAt is stamped with
// the given time. Paying an already-paid order returns ErrOrderAlreadyPaid
// and leaves the original timestamp untouched.
func (o *Order) Pay(at time.Time) error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paidAt = &at
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTableNumber(number kernel.TableNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.tableNumber = number
	return nil
}

func (o *Order) setLines(lines []cart.Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	o.lines = append([]cart.Line(nil), lines...)
	return nil
}

func (o *Order) setServer(server string) error {
	if server == "" {
		return ErrOrderServerIsRequired
	}
	o.server = server
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrOrderCreatedAtIsRequired
	}
	o.createdAt = createdAt
	return nil
}
