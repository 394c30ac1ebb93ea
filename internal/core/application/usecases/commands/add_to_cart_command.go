package commands

import (
	"errors"

	"caisse/internal/pkg/guard"
)

var (
	ErrAddToCartCommandIsNotConstructed = errors.New(
		"AddToCartCommand must be created via NewAddToCartCommand constructor",
	)
	ErrProductIDIsRequired = errors.New("product id is required")
)

// AddToCartCommand represents a request to add one unit of a catalog product
// to the open cart. Adding a product already in the cart increments its line
// quantity instead of creating a second line.
//
// Example:
//
//	cmd, err := NewAddToCartCommand("CAFE-01")
//	if err != nil {
//	    return fmt.Errorf("invalid cart request: %w", err)
//	}
//
//	handler := NewAddToCartCommandHandler(uowFactory, catalog)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add to cart: %w", err)
//	}
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	productID string

	guard guard.ConstructorGuard
}

// NewAddToCartCommand creates a command to add a product to the cart.
// Validates that the product id is not empty.
func NewAddToCartCommand(productID string) (AddToCartCommand, error) {
	cartCommand := AddToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cartCommand.setProductID(productID); err != nil {
		return AddToCartCommand{}, err
	}

	return cartCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddToCartCommandIsNotConstructed if validation fails.
func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

// ProductID returns the catalog identifier of the product to add.
func (c AddToCartCommand) ProductID() string {
	return c.productID
}

func (c *AddToCartCommand) setProductID(productID string) error {
	if productID == "" {
		return ErrProductIDIsRequired
	}

	c.productID = productID
	return nil
}
