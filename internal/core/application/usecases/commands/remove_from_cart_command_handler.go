package commands

import (
	"context"
)

// RemoveFromCartCommandHandler handles the business logic for removing a
// cart line. An absent line leaves the cart untouched.
type RemoveFromCartCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewRemoveFromCartCommandHandler creates a handler for cart line removal.
func NewRemoveFromCartCommandHandler(uowFactory SessionUoWFactory) RemoveFromCartCommandHandler {
	return RemoveFromCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove-from-cart command.
func (h RemoveFromCartCommandHandler) Handle(ctx context.Context, cmd RemoveFromCartCommand) error {
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

	session.RemoveFromCart(cmd.ProductID())

	if err = sessionRepo.Save(ctx, session); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
