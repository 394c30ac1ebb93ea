package commands

import (
	"context"
	"errors"
	"time"

	"caisse/internal/pkg/errs"
)

var ErrOrderNotFound = errors.New("order not found")

// PayOrderCommandHandler orchestrates order settlement. The order flips
// pending→paid with paidAt stamped, and its table returns to libre with the
// current-order reference and the client list cleared.
//
// Example:
//
//	handler := NewPayOrderCommandHandler(uowFactory)
//	cmd, _ := NewPayOrderCommand(orderID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOrderNotFound):
//	    log.Println("Unknown order id")
//	case errors.Is(err, order.ErrOrderAlreadyPaid):
//	    log.Println("Order was already settled")
//	case err != nil:
//	    log.Printf("Payment failed: %v", err)
//	}
type PayOrderCommandHandler struct {
	uowFactory OrderTableUoWFactory
}

// NewPayOrderCommandHandler creates a handler for payment operations.
// Requires an OrderTableUoWFactory for coordinating order and table updates.
func NewPayOrderCommandHandler(uowFactory OrderTableUoWFactory) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment command.
// Returns ErrOrderNotFound for an unknown id and order.ErrOrderAlreadyPaid
// when the order was settled before; a second payment never re-stamps paidAt.
// A missing table is tolerated: the order is still settled.
func (h PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	paidOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	if err = paidOrder.Pay(time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, paidOrder); err != nil {
		return err
	}

	tableRepo := uow.TableRepository()

	tbl, err := tableRepo.GetByNumber(ctx, paidOrder.TableNumber())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if err == nil {
		tbl.Release()
		if err = tableRepo.Update(ctx, tbl); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
