package commands

import (
	"context"
)

// SetCurrentTableCommandHandler handles the business logic for switching the
// session's current table.
type SetCurrentTableCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewSetCurrentTableCommandHandler creates a handler for table selection changes.
func NewSetCurrentTableCommandHandler(uowFactory SessionUoWFactory) SetCurrentTableCommandHandler {
	return SetCurrentTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the table selection command.
func (h SetCurrentTableCommandHandler) Handle(ctx context.Context, cmd SetCurrentTableCommand) error {
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

	sessionRepo := uow.SessionRepository()
	session, err := sessionRepo.Get(ctx)
	if err != nil {
		return err
	}

	if err = session.SetCurrentTable(cmd.TableNumber()); err != nil {
		return err
	}

	if err = sessionRepo.Save(ctx, session); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
