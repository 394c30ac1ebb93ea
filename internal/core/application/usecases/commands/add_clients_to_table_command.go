package commands

import (
	"errors"

	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/pkg/guard"
)

var (
	ErrAddClientsToTableCommandIsNotConstructed = errors.New(
		"AddClientsToTableCommand must be created via NewAddClientsToTableCommand constructor",
	)
	ErrClientNamesAreRequired = errors.New("at least one client name is required")
)

// AddClientsToTableCommand represents a request to seat named clients at a
// table. Targeting a number that does not exist is a silent no-op.
type AddClientsToTableCommand struct { //nolint:recvcheck //using for validation
	tableNumber kernel.TableNumber
	names       []string

	guard guard.ConstructorGuard
}

// NewAddClientsToTableCommand creates a command to seat clients at a table.
// Requires at least one name.
func NewAddClientsToTableCommand(tableNumber kernel.TableNumber, names []string) (AddClientsToTableCommand, error) {
	clientsCommand := AddClientsToTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		clientsCommand.setTableNumber(tableNumber),
		clientsCommand.setNames(names),
	); err != nil {
		return AddClientsToTableCommand{}, err
	}

	return clientsCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddClientsToTableCommand) Validate() error {
	return c.guard.Validate(ErrAddClientsToTableCommandIsNotConstructed)
}

// TableNumber returns the number of the targeted table.
func (c AddClientsToTableCommand) TableNumber() kernel.TableNumber {
	return c.tableNumber
}

// Names returns a copy of the client names to seat.
func (c AddClientsToTableCommand) Names() []string {
	return append([]string(nil), c.names...)
}

func (c *AddClientsToTableCommand) setTableNumber(tableNumber kernel.TableNumber) error {
	if err := tableNumber.Validate(); err != nil {
		return err
	}

	c.tableNumber = tableNumber
	return nil
}

func (c *AddClientsToTableCommand) setNames(names []string) error {
	if len(names) == 0 {
		return ErrClientNamesAreRequired
	}

	c.names = append([]string(nil), names...)
	return nil
}
