package commands

import (
	"errors"

	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/pkg/guard"
)

var ErrSetCurrentTableCommandIsNotConstructed = errors.New(
	"SetCurrentTableCommand must be created via NewSetCurrentTableCommand constructor",
)

// SetCurrentTableCommand represents a request to point the session at a
// table, or to clear the selection with a nil number. The number is not
// checked against the floor plan; checkout performs that check.
type SetCurrentTableCommand struct { //nolint:recvcheck //using for validation
	tableNumber *kernel.TableNumber

	guard guard.ConstructorGuard
}

// NewSetCurrentTableCommand creates a command to switch the current table.
// A nil number clears the selection; a non-nil number must be valid.
func NewSetCurrentTableCommand(tableNumber *kernel.TableNumber) (SetCurrentTableCommand, error) {
	tableCommand := SetCurrentTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := tableCommand.setTableNumber(tableNumber); err != nil {
		return SetCurrentTableCommand{}, err
	}

	return tableCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCurrentTableCommand) Validate() error {
	return c.guard.Validate(ErrSetCurrentTableCommandIsNotConstructed)
}

// TableNumber returns the requested selection, nil meaning "no table".
func (c SetCurrentTableCommand) TableNumber() *kernel.TableNumber {
	if c.tableNumber == nil {
		return nil
	}
	n := *c.tableNumber
	return &n
}

func (c *SetCurrentTableCommand) setTableNumber(tableNumber *kernel.TableNumber) error {
	if tableNumber == nil {
		return nil
	}

	if err := tableNumber.Validate(); err != nil {
		return err
	}

	n := *tableNumber
	c.tableNumber = &n
	return nil
}
