package commands

import (
	"errors"

	"caisse/internal/pkg/guard"
)

var ErrResetLedgerCommandIsNotConstructed = errors.New(
	"ResetLedgerCommand must be created via NewResetLedgerCommand constructor",
)

// ResetLedgerCommand restores the pristine ledger state: empty cart, the
// default ten-table floor plan, no orders, no clients, default server.
type ResetLedgerCommand struct {
	guard guard.ConstructorGuard
}

// NewResetLedgerCommand creates a new command to reset the whole ledger.
func NewResetLedgerCommand() ResetLedgerCommand {
	return ResetLedgerCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ResetLedgerCommand) Validate() error {
	return c.guard.Validate(ErrResetLedgerCommandIsNotConstructed)
}
