package commands

import (
	"context"
)

// UpdateCartQuantityCommandHandler handles the business logic for cart line
// quantity changes.
type UpdateCartQuantityCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewUpdateCartQuantityCommandHandler creates a handler for quantity updates.
func NewUpdateCartQuantityCommandHandler(uowFactory SessionUoWFactory) UpdateCartQuantityCommandHandler {
	return UpdateCartQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity update command.
func (h UpdateCartQuantityCommandHandler) Handle(ctx context.Context, cmd UpdateCartQuantityCommand) error {
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

	session.UpdateCartQuantity(cmd.ProductID(), cmd.Quantity())

	if err = sessionRepo.Save(ctx, session); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
