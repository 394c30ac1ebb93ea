package commands

import (
	"errors"

	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/pkg/guard"
)

var ErrAddTableCommandIsNotConstructed = errors.New(
	"AddTableCommand must be created via NewAddTableCommand constructor",
)

// AddTableCommand represents a request to add a table to the floor plan.
// Adding a number that already exists is a silent no-op.
//
// Example:
//
//	number, _ := kernel.NewTableNumber(11)
//	cmd, err := NewAddTableCommand(number)
//	if err != nil {
//	    return fmt.Errorf("invalid table request: %w", err)
//	}
//
//	handler := NewAddTableCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add table: %w", err)
//	}
type AddTableCommand struct { //nolint:recvcheck //using for validation
	tableNumber kernel.TableNumber

	guard guard.ConstructorGuard
}

// NewAddTableCommand creates a command to add a new table.
func NewAddTableCommand(tableNumber kernel.TableNumber) (AddTableCommand, error) {
	tableCommand := AddTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := tableCommand.setTableNumber(tableNumber); err != nil {
		return AddTableCommand{}, err
	}

	return tableCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddTableCommand) Validate() error {
	return c.guard.Validate(ErrAddTableCommandIsNotConstructed)
}

// TableNumber returns the number of the table to add.
func (c AddTableCommand) TableNumber() kernel.TableNumber {
	return c.tableNumber
}

func (c *AddTableCommand) setTableNumber(tableNumber kernel.TableNumber) error {
	if err := tableNumber.Validate(); err != nil {
		return err
	}

	c.tableNumber = tableNumber
	return nil
}
