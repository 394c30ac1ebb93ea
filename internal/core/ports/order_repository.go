// Package ports defines repository interfaces for the ledger domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and table binding.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no order carries the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order in creation order. A non-nil status
	// restricts the result to orders currently in that status.
	GetAll(ctx context.Context, status *order.Status) ([]*order.Order, error)

	// GetAllByTableNumber retrieves the orders bound to the given table,
	// in creation order.
	GetAllByTableNumber(ctx context.Context, number kernel.TableNumber) ([]*order.Order, error)

	// RemoveAll deletes every stored order. Used by the ledger reset.
	RemoveAll(ctx context.Context) error
}
