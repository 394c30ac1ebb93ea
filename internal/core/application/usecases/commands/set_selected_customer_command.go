package commands

import (
	"errors"

	"caisse/internal/pkg/guard"
)

var (
	ErrSetSelectedCustomerCommandIsNotConstructed = errors.New(
		"SetSelectedCustomerCommand must be created via NewSetSelectedCustomerCommand constructor",
	)
	ErrCustomerNameIsBlank = errors.New("customer name must not be blank")
)

// SetSelectedCustomerCommand represents a request to attach a customer name
// to the session, or to clear the selection with nil. The selected name is
// prepended to the client list of the next checked-out order.
type SetSelectedCustomerCommand struct { //nolint:recvcheck //using for validation
	name *string

	guard guard.ConstructorGuard
}

// NewSetSelectedCustomerCommand creates a command to switch the selected customer.
// A nil name clears the selection; a non-nil name must not be blank.
func NewSetSelectedCustomerCommand(name *string) (SetSelectedCustomerCommand, error) {
	customerCommand := SetSelectedCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := customerCommand.setName(name); err != nil {
		return SetSelectedCustomerCommand{}, err
	}

	return customerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetSelectedCustomerCommand) Validate() error {
	return c.guard.Validate(ErrSetSelectedCustomerCommandIsNotConstructed)
}

// Name returns the requested customer selection, nil meaning "no customer".
func (c SetSelectedCustomerCommand) Name() *string {
	if c.name == nil {
		return nil
	}
	n := *c.name
	return &n
}

func (c *SetSelectedCustomerCommand) setName(name *string) error {
	if name == nil {
		return nil
	}

	if *name == "" {
		return ErrCustomerNameIsBlank
	}

	n := *name
	c.name = &n
	return nil
}
