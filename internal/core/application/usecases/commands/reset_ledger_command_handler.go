package commands

import (
	"context"
	"time"

	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/core/domain/model/session"
	"caisse/internal/core/domain/model/table"
)

// defaultTableCount is the size of the floor plan reseeded after a reset.
const defaultTableCount = 10

// ResetLedgerCommandHandler wipes every aggregate and reseeds the default
// floor plan inside a single transaction.
type ResetLedgerCommandHandler struct {
	uowFactory UoWFactory
}

// NewResetLedgerCommandHandler creates a handler for ledger resets.
func NewResetLedgerCommandHandler(uowFactory UoWFactory) ResetLedgerCommandHandler {
	return ResetLedgerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reset command.
// Orders, clients and tables are deleted, tables 1 through 10 are recreated
// libre, and a pristine session replaces the stored snapshot.
func (h ResetLedgerCommandHandler) Handle(ctx context.Context, cmd ResetLedgerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().RemoveAll(ctx); err != nil {
		return err
	}
	if err := uow.ClientRepository().RemoveAll(ctx); err != nil {
		return err
	}

	tableRepo := uow.TableRepository()
	if err := tableRepo.RemoveAll(ctx); err != nil {
		return err
	}

	now := time.Now().UTC()
	for i := 1; i <= defaultTableCount; i++ {
		number, err := kernel.NewTableNumber(i)
		if err != nil {
			return err
		}

		newTable, err := table.NewTable(number, now)
		if err != nil {
			return err
		}

		if err = tableRepo.Add(ctx, newTable); err != nil {
			return err
		}
	}

	if err := uow.SessionRepository().Save(ctx, session.NewSession()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
