package queries

import (
	"errors"

	"caisse/internal/pkg/guard"
)

var ErrGetCurrentTableOrdersQueryIsNotConstructed = errors.New(
	"GetCurrentTableOrdersQuery must be created via NewGetCurrentTableOrdersQuery constructor",
)

// GetCurrentTableOrdersQuery retrieves the orders bound to the session's
// currently selected table. With no table selected, the result is empty.
type GetCurrentTableOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCurrentTableOrdersQuery creates a query to list the current table's orders.
func NewGetCurrentTableOrdersQuery() GetCurrentTableOrdersQuery {
	return GetCurrentTableOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCurrentTableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentTableOrdersQueryIsNotConstructed)
}
