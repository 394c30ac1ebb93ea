package commands

import (
	"errors"

	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/pkg/guard"
)

var (
	ErrAssignServerCommandIsNotConstructed = errors.New(
		"AssignServerCommand must be created via NewAssignServerCommand constructor",
	)
	ErrServerNameIsRequired = errors.New("server name is required")
)

// AssignServerCommand represents a request to assign a server to a table.
// Targeting a number that does not exist is a silent no-op.
type AssignServerCommand struct { //nolint:recvcheck //using for validation
	tableNumber kernel.TableNumber
	server      string

	guard guard.ConstructorGuard
}

// NewAssignServerCommand creates a command to assign a server to a table.
func NewAssignServerCommand(tableNumber kernel.TableNumber, server string) (AssignServerCommand, error) {
	serverCommand := AssignServerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		serverCommand.setTableNumber(tableNumber),
		serverCommand.setServer(server),
	); err != nil {
		return AssignServerCommand{}, err
	}

	return serverCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignServerCommand) Validate() error {
	return c.guard.Validate(ErrAssignServerCommandIsNotConstructed)
}

// TableNumber returns the number of the targeted table.
func (c AssignServerCommand) TableNumber() kernel.TableNumber {
	return c.tableNumber
}

// Server returns the server name to assign.
func (c AssignServerCommand) Server() string {
	return c.server
}

func (c *AssignServerCommand) setTableNumber(tableNumber kernel.TableNumber) error {
	if err := tableNumber.Validate(); err != nil {
		return err
	}

	c.tableNumber = tableNumber
	return nil
}

func (c *AssignServerCommand) setServer(server string) error {
	if server == "" {
		return ErrServerNameIsRequired
	}

	c.server = server
	return nil
}
