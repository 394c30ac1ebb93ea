package commands

import (
	"context"
)

// ClearCartCommandHandler handles the business logic for emptying the cart.
type ClearCartCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewClearCartCommandHandler creates a handler for cart clearing.
func NewClearCartCommandHandler(uowFactory SessionUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the clear-cart command.
func (h ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
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

	session.ClearCart()

	if err = sessionRepo.Save(ctx, session); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
