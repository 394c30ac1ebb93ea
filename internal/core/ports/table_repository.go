package ports

import (
	"context"

	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/core/domain/model/table"
)

// TableRepository defines the persistence contract for table aggregates.
type TableRepository interface {
	// Add persists a new table aggregate to storage.
	// The table must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *table.Table) error

	// Update persists changes to an existing table aggregate.
	Update(ctx context.Context, aggregate *table.Table) error

	// GetByNumber retrieves a table by its unique user-assigned number.
	// Returns errs.ObjectNotFoundError when no table carries the number.
	GetByNumber(ctx context.Context, number kernel.TableNumber) (*table.Table, error)

	// GetAll retrieves every table ordered by number.
	GetAll(ctx context.Context) ([]*table.Table, error)

	// RemoveAll deletes every stored table. Used by the ledger reset
	// before the default floor plan is reseeded.
	RemoveAll(ctx context.Context) error
}
