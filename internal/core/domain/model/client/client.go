// Package client holds the customer roster. Clients are append-only: the
// ledger registers them and accumulates lifetime counters, but exposes no
// update or delete operation.
package client

import (
	"errors"
	"time"

	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/pkg/errs"
)

var (
	// ErrClientIsNotConstructed is returned when a Client instance was not created
	// through the NewClient or RestoreClient factory methods.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient or RestoreClient constructor")

	// ErrClientNameIsRequired rejects clients without a name.
	ErrClientNameIsRequired = errs.NewValueIsRequiredError("client name")

	// ErrClientCreatedAtIsRequired rejects clients without a registration timestamp.
	ErrClientCreatedAtIsRequired = errs.NewValueIsRequiredError("client registration time")
)

// Client is an entry in the customer roster. Phone, email and the table
// reference are optional; the lifetime counters start at zero and only
// grow.
type Client struct {
	id          kernel.UUID
	name        string
	phone       *string
	email       *string
	tableNumber *kernel.TableNumber
	totalSpent  kernel.Money
	visits      int
	createdAt   time.Time

	isConstructed bool
}

// NewClient registers a new client with zeroed lifetime counters.
func NewClient(
	id kernel.UUID,
	name string,
	phone *string,
	email *string,
	tableNumber *kernel.TableNumber,
	createdAt time.Time,
) (*Client, error) {
	c := &Client{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setTableNumber(tableNumber),
		c.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	c.phone = copyOptional(phone)
	c.email = copyOptional(email)

	return c, nil
}

// RestoreClient reconstructs a client from persistence with its
// accumulated counters.
func RestoreClient(
	id kernel.UUID,
	name string,
	phone *string,
	email *string,
	tableNumber *kernel.TableNumber,
	totalSpent kernel.Money,
	visits int,
	createdAt time.Time,
) (*Client, error) {
	c, err := NewClient(id, name, phone, email, tableNumber, createdAt)
	if err != nil {
		return nil, err
	}

	if visits < 0 {
		return nil, errs.NewValueIsOutOfRangeError("visits", visits, 0, "unbounded")
	}

	c.totalSpent = totalSpent
	c.visits = visits

	return c, nil
}

// Validate ensures the Client instance was properly constructed through a factory method.
func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

// IsEqual compares two clients by their unique identifiers.
func (c *Client) IsEqual(other *Client) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// Name returns the client's name.
func (c *Client) Name() string {
	return c.name
}

// Phone returns the optional phone number.
func (c *Client) Phone() *string {
	return copyOptional(c.phone)
}

// Email returns the optional email address.
func (c *Client) Email() *string {
	return copyOptional(c.email)
}

// TableNumber returns the optional table the client was registered at.
func (c *Client) TableNumber() *kernel.TableNumber {
	if c.tableNumber == nil {
		return nil
	}
	n := *c.tableNumber
	return &n
}

// TotalSpent returns the client's lifetime spend.
func (c *Client) TotalSpent() kernel.Money {
	return c.totalSpent
}

// Visits returns the client's lifetime visit count.
func (c *Client) Visits() int {
	return c.visits
}

// CreatedAt returns the registration timestamp.
func (c *Client) CreatedAt() time.Time {
	return c.createdAt
}

// RecordVisit accumulates one paid visit into the lifetime counters.
func (c *Client) RecordVisit(spent kernel.Money) {
	c.totalSpent = c.totalSpent.Add(spent)
	c.visits++
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	if name == "" {
		return ErrClientNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Client) setTableNumber(number *kernel.TableNumber) error {
	if number == nil {
		return nil
	}
	if err := number.Validate(); err != nil {
		return err
	}
	n := *number
	c.tableNumber = &n
	return nil
}

func (c *Client) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrClientCreatedAtIsRequired
	}
	c.createdAt = createdAt
	return nil
}

func copyOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
