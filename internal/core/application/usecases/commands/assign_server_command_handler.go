package commands

import (
	"context"
	"errors"

	"caisse/internal/pkg/errs"
)

// AssignServerCommandHandler handles the business logic for assigning a
// server to a table.
type AssignServerCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewAssignServerCommandHandler creates a handler for server assignments.
func NewAssignServerCommandHandler(uowFactory TableUoWFactory) AssignServerCommandHandler {
	return AssignServerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the server assignment command.
// A missing table fails silently, matching the floor-plan edit semantics.
func (h AssignServerCommandHandler) Handle(ctx context.Context, cmd AssignServerCommand) error {
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

	if err = tbl.AssignServer(cmd.Server()); err != nil {
		return err
	}

	if err = tableRepo.Update(ctx, tbl); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
