package queries

import (
	"errors"
	"time"

	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/core/domain/model/table"
	"caisse/internal/pkg/guard"
)

var ErrGetAllTablesQueryIsNotConstructed = errors.New(
	"GetAllTablesQuery must be created via NewGetAllTablesQuery constructor",
)

// GetAllTablesQuery retrieves the whole floor plan ordered by table number.
type GetAllTablesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllTablesQuery creates a query to list every table.
func NewGetAllTablesQuery() GetAllTablesQuery {
	return GetAllTablesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllTablesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllTablesQueryIsNotConstructed)
}

// TableResponse represents one table in the read model.
type TableResponse struct {
	ID             string
	Number         kernel.TableNumber
	Status         table.Status
	Clients        []string
	Server         *string
	CurrentOrderID *kernel.UUID
	CreatedAt      time.Time
}
