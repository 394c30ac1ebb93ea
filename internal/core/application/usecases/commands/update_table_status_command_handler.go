package commands

import (
	"context"
	"errors"

	"caisse/internal/pkg/errs"
)

// UpdateTableStatusCommandHandler handles the business logic for manual
// table status overrides.
type UpdateTableStatusCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewUpdateTableStatusCommandHandler creates a handler for status overrides.
func NewUpdateTableStatusCommandHandler(uowFactory TableUoWFactory) UpdateTableStatusCommandHandler {
	return UpdateTableStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status override command.
// A missing table fails silently, matching the floor-plan edit semantics.
func (h UpdateTableStatusCommandHandler) Handle(ctx context.Context, cmd UpdateTableStatusCommand) error {
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

	if err = tbl.UpdateStatus(cmd.Status()); err != nil {
		return err
	}

	if err = tableRepo.Update(ctx, tbl); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
