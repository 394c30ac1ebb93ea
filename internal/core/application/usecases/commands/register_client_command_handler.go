package commands

import (
	"context"
	"time"

	"caisse/internal/core/domain/model/client"
)

// RegisterClientCommandHandler handles the business logic for appending a
// client to the roster.
type RegisterClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewRegisterClientCommandHandler creates a handler for client registration.
func NewRegisterClientCommandHandler(uowFactory ClientUoWFactory) RegisterClientCommandHandler {
	return RegisterClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// The new client starts with zeroed lifetime counters.
func (h RegisterClientCommandHandler) Handle(ctx context.Context, cmd RegisterClientCommand) error {
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

	newClient, err := client.NewClient(
		cmd.ClientID(),
		cmd.Name(),
		cmd.Phone(),
		cmd.Email(),
		cmd.TableNumber(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.ClientRepository().Add(ctx, newClient); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
