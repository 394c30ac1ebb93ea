package commands

import (
	"errors"

	"caisse/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand empties the open cart without touching the table
// selection or the selected customer.
type ClearCartCommand struct {
	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a new command to empty the cart.
func NewClearCartCommand() ClearCartCommand {
	return ClearCartCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}
