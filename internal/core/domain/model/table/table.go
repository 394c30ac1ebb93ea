package table

import (
	"errors"
	"time"

	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/pkg/errs"
)

var (
	// ErrTableIsNotConstructed is returned when a Table instance was not created
	// through the NewTable or RestoreTable factory methods.
	ErrTableIsNotConstructed = errors.New("Table must be created via NewTable or RestoreTable constructor")

	// ErrTableServerIsRequired rejects blank server assignments.
	ErrTableServerIsRequired = errs.NewValueIsRequiredError("table server")

	// ErrTableCreatedAtIsRequired rejects tables without a creation timestamp.
	ErrTableCreatedAtIsRequired = errs.NewValueIsRequiredError("table creation time")
)

// Table is the aggregate for a physical seating unit. Its status and
// current-order reference are consequences of the order lifecycle: creating
// an order occupies the table, paying that order frees it. The manual
// status override exists for reservations.
//
// Table follows these invariants:
//   - The identifier derives deterministically from the unique table number
//   - A new table starts free with an empty client list
//   - Releasing a table clears its current order and its clients
type Table struct {
	id             string
	number         kernel.TableNumber
	status         Status
	clients        []string
	server         *string
	currentOrderID *kernel.UUID
	createdAt      time.Time

	isConstructed bool
}

// NewTable creates a free table with the given number and an empty client list.
func NewTable(number kernel.TableNumber, createdAt time.Time) (*Table, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, ErrTableCreatedAtIsRequired
	}

	return &Table{
		id:            number.ID(),
		number:        number,
		status:        Free,
		clients:       make([]string, 0),
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreTable reconstructs a table from persistence.
func RestoreTable(
	number kernel.TableNumber,
	status Status,
	clients []string,
	server *string,
	currentOrderID *kernel.UUID,
	createdAt time.Time,
) (*Table, error) {
	t, err := NewTable(number, createdAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if server != nil && *server == "" {
		return nil, ErrTableServerIsRequired
	}
	if currentOrderID != nil {
		if err := currentOrderID.Validate(); err != nil {
			return nil, err
		}
	}

	t.status = status
	t.clients = append(t.clients, clients...)
	if server != nil {
		s := *server
		t.server = &s
	}
	if currentOrderID != nil {
		id := *currentOrderID
		t.currentOrderID = &id
	}

	return t, nil
}

// Validate ensures the Table instance was properly constructed through a factory method.
func (t *Table) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTableIsNotConstructed
	}
	return nil
}

// IsEqual compares two tables by their unique numbers.
func (t *Table) IsEqual(other *Table) bool {
	return other != nil && t.number == other.number
}

// ID returns the deterministic table identifier ("TABLE-<number>").
func (t *Table) ID() string {
	return t.id
}

// Number returns the user-assigned table number.
func (t *Table) Number() kernel.TableNumber {
	return t.number
}

// Status returns the current occupancy status.
func (t *Table) Status() Status {
	return t.status
}

// Clients returns a copy of the names currently seated at the table.
func (t *Table) Clients() []string {
	return append([]string(nil), t.clients...)
}

// Server returns the assigned server, nil when none is assigned.
func (t *Table) Server() *string {
	if t.server == nil {
		return nil
	}
	s := *t.server
	return &s
}

// CurrentOrderID returns the id of the table's open order, nil when the
// table has none.
func (t *Table) CurrentOrderID() *kernel.UUID {
	if t.currentOrderID == nil {
		return nil
	}
	id := *t.currentOrderID
	return &id
}

// CreatedAt returns the creation timestamp.
func (t *Table) CreatedAt() time.Time {
	return t.createdAt
}

// UpdateStatus applies the manual status override, e.g. marking a
// reservation. Any valid status is accepted; the order lifecycle is not
// consulted.
func (t *Table) UpdateStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.status = status
	return nil
}

// AssignServer assigns a server to the table. Blank names are rejected.
func (t *Table) AssignServer(server string) error {
	if server == "" {
		return ErrTableServerIsRequired
	}
	s := server
	t.server = &s
	return nil
}

// AddClients appends the given names to the table's client list.
func (t *Table) AddClients(names []string) {
	t.clients = append(t.clients, names...)
}

// Occupy binds an open order to the table and marks it occupée. The
// transition is deliberately permissive: a reserved table converts
// silently, and a second order against an occupied table replaces the
// current-order reference (the ledger does not guard against it).
func (t *Table) Occupy(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	t.status = Occupied
	id := orderID
	t.currentOrderID = &id
	return nil
}

// Release frees the table after its order is paid: status returns to
// libre, the current-order reference and the client list are cleared.
func (t *Table) Release() {
	t.status = Free
	t.currentOrderID = nil
	t.clients = t.clients[:0]
}
