package commands

import (
	"context"
	"errors"

	"caisse/internal/pkg/errs"
)

// AddClientsToTableCommandHandler handles the business logic for seating
// clients at a table.
type AddClientsToTableCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewAddClientsToTableCommandHandler creates a handler for seating clients.
func NewAddClientsToTableCommandHandler(uowFactory TableUoWFactory) AddClientsToTableCommandHandler {
	return AddClientsToTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the seating command.
// A missing table fails silently, matching the floor-plan edit semantics.
func (h AddClientsToTableCommandHandler) Handle(ctx context.Context, cmd AddClientsToTableCommand) error {
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

	tableRepo := uow.TableRepository()

	tbl, err := tableRepo.GetByNumber(ctx, cmd.TableNumber())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	tbl.AddClients(cmd.Names())

	if err = tableRepo.Update(ctx, tbl); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
