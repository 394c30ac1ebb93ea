package commands

import (
	"errors"

	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/pkg/guard"
)

var ErrCheckoutOrderCommandIsNotConstructed = errors.New(
	"CheckoutOrderCommand must be created via NewCheckoutOrderCommand constructor",
)

// CheckoutOrderCommand represents a request to turn the open cart into a
// pending order against the session's current table. Extra client names are
// recorded on the order after the selected customer, if any.
//
// Example:
//
//	cmd, err := NewCheckoutOrderCommand(kernel.NewUUID(), []string{"Karim"})
//	if err != nil {
//	    return fmt.Errorf("invalid checkout request: %w", err)
//	}
//
//	handler := NewCheckoutOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrCartIsEmpty):
//	    // nothing to order
//	case errors.Is(err, ErrNoTableSelected):
//	    // pick a table first
//	case err != nil:
//	    return err
//	}
//	fmt.Printf("order %s pending on table %d", created.ID(), created.TableNumber().Int())
type CheckoutOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	extraClientNames []string

	guard guard.ConstructorGuard
}

// NewCheckoutOrderCommand creates a command to check out the open cart.
// The extra client names list may be empty.
func NewCheckoutOrderCommand(orderID kernel.UUID, extraClientNames []string) (CheckoutOrderCommand, error) {
	checkoutCommand := CheckoutOrderCommand{
		extraClientNames: append([]string(nil), extraClientNames...),
		guard:            guard.NewConstructorGuard(),
	}

	if err := checkoutCommand.setOrderID(orderID); err != nil {
		return CheckoutOrderCommand{}, err
	}

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutOrderCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order to create.
func (c CheckoutOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ExtraClientNames returns a copy of the additional client names.
func (c CheckoutOrderCommand) ExtraClientNames() []string {
	return append([]string(nil), c.extraClientNames...)
}

func (c *CheckoutOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
