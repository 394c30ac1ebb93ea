package commands

import (
	"errors"

	"caisse/internal/pkg/guard"
)

var ErrUpdateCartQuantityCommandIsNotConstructed = errors.New(
	"UpdateCartQuantityCommand must be created via NewUpdateCartQuantityCommand constructor",
)

// UpdateCartQuantityCommand represents a request to set the quantity of a
// cart line. A quantity of zero or less removes the line; updating a line
// that does not exist is a no-op and never creates one.
type UpdateCartQuantityCommand struct { //nolint:recvcheck //using for validation
	productID string
	quantity  int

	guard guard.ConstructorGuard
}

// NewUpdateCartQuantityCommand creates a command to set a cart line quantity.
// Any quantity is accepted; non-positive values mean removal.
func NewUpdateCartQuantityCommand(productID string, quantity int) (UpdateCartQuantityCommand, error) {
	cartCommand := UpdateCartQuantityCommand{
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := cartCommand.setProductID(productID); err != nil {
		return UpdateCartQuantityCommand{}, err
	}

	return cartCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartQuantityCommandIsNotConstructed)
}

// ProductID returns the catalog identifier of the line to update.
func (c UpdateCartQuantityCommand) ProductID() string {
	return c.productID
}

// Quantity returns the requested line quantity.
func (c UpdateCartQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateCartQuantityCommand) setProductID(productID string) error {
	if productID == "" {
		return ErrProductIDIsRequired
	}

	c.productID = productID
	return nil
}
