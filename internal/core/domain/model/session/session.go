// Package session models the register's working context: the cart being
// built plus the ephemeral selections (current table, server, selected
// customer) that frame the next order. Exactly one session exists per
// terminal.
package session

import (
	"errors"

	"caisse/internal/core/domain/model/cart"
	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/core/domain/model/product"
	"caisse/internal/pkg/errs"
)

// DefaultServer is the server name a fresh session starts with.
const DefaultServer = "Sami"

var (
	// ErrSessionIsNotConstructed is returned when a Session instance was not
	// created through the NewSession or RestoreSession factory methods.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession or RestoreSession constructor")

	// ErrServerIsRequired rejects blank server names: a session always has an
	// assigned server.
	ErrServerIsRequired = errs.NewValueIsRequiredError("server")
)

// Session is the aggregate owning the cart and the current selections.
// Cart mutations go through the session so the cart pointer never escapes.
//
// The current table and the selected customer are nullable and carry no
// validation against the floor plan: committing them against a real table
// is checked at checkout, not here.
type Session struct {
	cart             *cart.Cart
	currentTable     *kernel.TableNumber
	server           string
	selectedCustomer *string

	isConstructed bool
}

// NewSession creates a pristine session: empty cart, no table or customer
// selected, default server.
func NewSession() *Session {
	return &Session{
		cart:          cart.NewCart(),
		server:        DefaultServer,
		isConstructed: true,
	}
}

// RestoreSession rebuilds a session from persisted state.
func RestoreSession(
	lines []cart.Line,
	currentTable *kernel.TableNumber,
	server string,
	selectedCustomer *string,
) (*Session, error) {
	restored, err := cart.RestoreCart(lines)
	if err != nil {
		return nil, err
	}
	if server == "" {
		return nil, ErrServerIsRequired
	}
	if currentTable != nil {
		if err := currentTable.Validate(); err != nil {
			return nil, err
		}
	}

	s := NewSession()
	s.cart = restored
	s.currentTable = currentTable
	s.server = server
	s.selectedCustomer = selectedCustomer
	return s, nil
}

// Validate ensures the Session instance was created through a constructor.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// AddToCart puts one unit of the product into the cart.
func (s *Session) AddToCart(p product.Product) error {
	return s.cart.Add(p)
}

// RemoveFromCart deletes the cart line for the product id, silently doing
// nothing if it is absent.
func (s *Session) RemoveFromCart(productID string) {
	s.cart.Remove(productID)
}

// UpdateCartQuantity sets a line's quantity; zero removes the line and an
// absent line is left absent.
func (s *Session) UpdateCartQuantity(productID string, quantity int) {
	s.cart.UpdateQuantity(productID, quantity)
}

// ClearCart empties the cart.
func (s *Session) ClearCart() {
	s.cart.Clear()
}

// CartLines returns a copy of the current cart lines.
func (s *Session) CartLines() []cart.Line {
	return s.cart.Lines()
}

// CartIsEmpty reports whether the cart holds no lines.
func (s *Session) CartIsEmpty() bool {
	return s.cart.IsEmpty()
}

// CartTotal recomputes the cart total from the current lines.
func (s *Session) CartTotal() kernel.Money {
	return s.cart.Total()
}

// VatBreakdown recomputes the per-rate tax buckets from the current lines.
func (s *Session) VatBreakdown() []cart.VatBucket {
	return s.cart.VatBreakdown()
}

// CurrentTable returns the selected table number, nil when none is selected.
func (s *Session) CurrentTable() *kernel.TableNumber {
	if s.currentTable == nil {
		return nil
	}
	n := *s.currentTable
	return &n
}

// SetCurrentTable selects a table (or clears the selection with nil). No
// check is made that the table exists or is free.
func (s *Session) SetCurrentTable(number *kernel.TableNumber) error {
	if number == nil {
		s.currentTable = nil
		return nil
	}
	if err := number.Validate(); err != nil {
		return err
	}
	n := *number
	s.currentTable = &n
	return nil
}

// Server returns the currently assigned server name.
func (s *Session) Server() string {
	return s.server
}

// SetServer assigns the session's server. Blank names are rejected.
func (s *Session) SetServer(server string) error {
	if server == "" {
		return ErrServerIsRequired
	}
	s.server = server
	return nil
}

// SelectedCustomer returns the selected customer name, nil when none.
func (s *Session) SelectedCustomer() *string {
	if s.selectedCustomer == nil {
		return nil
	}
	name := *s.selectedCustomer
	return &name
}

// SetSelectedCustomer selects a customer name for the next order, or clears
// the selection with nil.
func (s *Session) SetSelectedCustomer(name *string) {
	if name == nil {
		s.selectedCustomer = nil
		return
	}
	n := *name
	s.selectedCustomer = &n
}

// OrderClientNames builds the client-name list for a new order: the
// selected customer, when set, is prepended to the extra names.
func (s *Session) OrderClientNames(extra []string) []string {
	names := make([]string, 0, len(extra)+1)
	if s.selectedCustomer != nil {
		names = append(names, *s.selectedCustomer)
	}
	names = append(names, extra...)
	return names
}

// ResetAfterCheckout clears the cart, the table selection and the customer
// selection once an order has been created. The server stays assigned.
func (s *Session) ResetAfterCheckout() {
	s.cart.Clear()
	s.currentTable = nil
	s.selectedCustomer = nil
}

// Reset restores the pristine state: empty cart, no selections, default server.
func (s *Session) Reset() {
	s.cart.Clear()
	s.currentTable = nil
	s.selectedCustomer = nil
	s.server = DefaultServer
}
