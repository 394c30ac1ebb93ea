package ports

import (
	"context"

	"caisse/internal/core/domain/model/client"
	"caisse/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for the client roster.
// The roster is append-only: entries are added and their counters updated,
// never removed outside of a full ledger reset.
type ClientRepository interface {
	// Add persists a new client to the roster.
	Add(ctx context.Context, aggregate *client.Client) error

	// Update persists changes to an existing client's counters.
	Update(ctx context.Context, aggregate *client.Client) error

	// Get retrieves a client by its unique identifier.
	// Returns errs.ObjectNotFoundError when no client carries the id.
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)

	// GetAll retrieves the whole roster in registration order.
	GetAll(ctx context.Context) ([]*client.Client, error)

	// RemoveAll deletes the whole roster. Used by the ledger reset.
	RemoveAll(ctx context.Context) error
}
