package commands

import (
	"errors"

	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/core/domain/model/table"
	"caisse/internal/pkg/guard"
)

var ErrUpdateTableStatusCommandIsNotConstructed = errors.New(
	"UpdateTableStatusCommand must be created via NewUpdateTableStatusCommand constructor",
)

// UpdateTableStatusCommand represents a manual status override on a table,
// e.g. marking it réservée. Targeting a number that does not exist is a
// silent no-op.
type UpdateTableStatusCommand struct { //nolint:recvcheck //using for validation
	tableNumber kernel.TableNumber
	status      table.Status

	guard guard.ConstructorGuard
}

// NewUpdateTableStatusCommand creates a command to override a table's status.
func NewUpdateTableStatusCommand(tableNumber kernel.TableNumber, status table.Status) (UpdateTableStatusCommand, error) {
	tableCommand := UpdateTableStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tableCommand.setTableNumber(tableNumber),
		tableCommand.setStatus(status),
	); err != nil {
		return UpdateTableStatusCommand{}, err
	}

	return tableCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTableStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTableStatusCommandIsNotConstructed)
}

// TableNumber returns the number of the targeted table.
func (c UpdateTableStatusCommand) TableNumber() kernel.TableNumber {
	return c.tableNumber
}

// Status returns the requested status.
func (c UpdateTableStatusCommand) Status() table.Status {
	return c.status
}

func (c *UpdateTableStatusCommand) setTableNumber(tableNumber kernel.TableNumber) error {
	if err := tableNumber.Validate(); err != nil {
		return err
	}

	c.tableNumber = tableNumber
	return nil
}

func (c *UpdateTableStatusCommand) setStatus(status table.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
