package commands

import (
	"context"
	"errors"
	"time"

	"caisse/internal/core/domain/model/table"
	"caisse/internal/pkg/errs"
)

// AddTableCommandHandler handles the business logic for extending the floor
// plan. A duplicate number leaves the existing table untouched.
type AddTableCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewAddTableCommandHandler creates a handler for table creation.
func NewAddTableCommandHandler(uowFactory TableUoWFactory) AddTableCommandHandler {
	return AddTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-table command.
// New tables start libre with an empty client list.
func (h AddTableCommandHandler) Handle(ctx context.Context, cmd AddTableCommand) error {
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

	_, err := tableRepo.GetByNumber(ctx, cmd.TableNumber())
	if err == nil {
		// duplicate number, keep the existing table
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newTable, err := table.NewTable(cmd.TableNumber(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = tableRepo.Add(ctx, newTable); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
