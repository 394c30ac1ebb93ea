package commands

import (
	"context"
	"errors"
	"time"

	"caisse/internal/core/domain/model/order"
	"caisse/internal/pkg/errs"
)

var (
	ErrCartIsEmpty     = errors.New("cannot checkout an empty cart")
	ErrNoTableSelected = errors.New("no table selected for checkout")
	ErrTableNotFound   = errors.New("selected table does not exist")
)

// CheckoutOrderCommandHandler orchestrates order creation. It freezes the
// cart into an order snapshot, occupies the table and resets the session,
// all inside one transaction.
//
// Example:
//
//	handler := NewCheckoutOrderCommandHandler(uowFactory)
//	cmd, _ := NewCheckoutOrderCommand(kernel.NewUUID(), nil)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	// created is pending, its table is now occupée
type CheckoutOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCheckoutOrderCommandHandler creates a handler for checkout operations.
// Requires a UoWFactory for coordinating session, table and order updates.
func NewCheckoutOrderCommandHandler(uowFactory UoWFactory) CheckoutOrderCommandHandler {
	return CheckoutOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command and returns the created order.
//
// Preconditions, each with its declared error: the cart must not be empty
// (ErrCartIsEmpty), a table must be selected (ErrNoTableSelected) and that
// table must exist on the floor plan (ErrTableNotFound). A réservée table is
// accepted and converts to occupée. On success the cart, the table selection
// and the selected customer are cleared; the server assignment survives.
func (h CheckoutOrderCommandHandler) Handle(ctx context.Context, cmd CheckoutOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.SessionRepository()
	session, err := sessionRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if session.CartIsEmpty() {
		return nil, ErrCartIsEmpty
	}

	tableNumber := session.CurrentTable()
	if tableNumber == nil {
		return nil, ErrNoTableSelected
	}

	tableRepo := uow.TableRepository()
	tbl, err := tableRepo.GetByNumber(ctx, *tableNumber)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		*tableNumber,
		session.CartLines(),
		session.CartTotal(),
		session.VatBreakdown(),
		session.OrderClientNames(cmd.ExtraClientNames()),
		session.Server(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = tbl.Occupy(newOrder.ID()); err != nil {
		return nil, err
	}

	if err = tableRepo.Update(ctx, tbl); err != nil {
		return nil, err
	}

	session.ResetAfterCheckout()

	if err = sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
