package queries

import (
	"errors"

	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/pkg/guard"
)

var ErrGetTableByNumberQueryIsNotConstructed = errors.New(
	"GetTableByNumberQuery must be created via NewGetTableByNumberQuery constructor",
)

// GetTableByNumberQuery retrieves one table by its user-assigned number.
type GetTableByNumberQuery struct { //nolint:recvcheck //using for validation
	tableNumber kernel.TableNumber

	guard guard.ConstructorGuard
}

// NewGetTableByNumberQuery creates a query to find a table by number.
func NewGetTableByNumberQuery(tableNumber kernel.TableNumber) (GetTableByNumberQuery, error) {
	tableQuery := GetTableByNumberQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := tableQuery.setTableNumber(tableNumber); err != nil {
		return GetTableByNumberQuery{}, err
	}

	return tableQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTableByNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetTableByNumberQueryIsNotConstructed)
}

// TableNumber returns the number to look up.
func (q GetTableByNumberQuery) TableNumber() kernel.TableNumber {
	return q.tableNumber
}

func (q *GetTableByNumberQuery) setTableNumber(tableNumber kernel.TableNumber) error {
	if err := tableNumber.Validate(); err != nil {
		return err
	}

	q.tableNumber = tableNumber
	return nil
}
