package commands

import (
	"errors"

	"caisse/internal/pkg/guard"
)

var ErrRemoveFromCartCommandIsNotConstructed = errors.New(
	"RemoveFromCartCommand must be created via NewRemoveFromCartCommand constructor",
)

// RemoveFromCartCommand represents a request to drop a product's line from
// the open cart. Removing a product that is not in the cart is a no-op.
type RemoveFromCartCommand struct { //nolint:recvcheck //using for validation
	productID string

	guard guard.ConstructorGuard
}

// NewRemoveFromCartCommand creates a command to remove a product's cart line.
func NewRemoveFromCartCommand(productID string) (RemoveFromCartCommand, error) {
	cartCommand := RemoveFromCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cartCommand.setProductID(productID); err != nil {
		return RemoveFromCartCommand{}, err
	}

	return cartCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveFromCartCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFromCartCommandIsNotConstructed)
}

// ProductID returns the catalog identifier of the line to remove.
func (c RemoveFromCartCommand) ProductID() string {
	return c.productID
}

func (c *RemoveFromCartCommand) setProductID(productID string) error {
	if productID == "" {
		return ErrProductIDIsRequired
	}

	c.productID = productID
	return nil
}
