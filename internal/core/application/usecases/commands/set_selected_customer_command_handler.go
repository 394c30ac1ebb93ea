package commands

import (
	"context"
)

// SetSelectedCustomerCommandHandler handles the business logic for switching
// the session's selected customer.
type SetSelectedCustomerCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewSetSelectedCustomerCommandHandler creates a handler for customer selection changes.
func NewSetSelectedCustomerCommandHandler(uowFactory SessionUoWFactory) SetSelectedCustomerCommandHandler {
	return SetSelectedCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer selection command.
func (h SetSelectedCustomerCommandHandler) Handle(ctx context.Context, cmd SetSelectedCustomerCommand) error {
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

	session.SetSelectedCustomer(cmd.Name())

	if err = sessionRepo.Save(ctx, session); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
