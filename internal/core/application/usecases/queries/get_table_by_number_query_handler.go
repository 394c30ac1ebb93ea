package queries

import (
	"context"

	"caisse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetTableByNumberQueryHandler retrieves a single table from the database.
type GetTableByNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetTableByNumberQueryHandler creates a handler for single-table lookups.
func NewGetTableByNumberQueryHandler(db *gorm.DB) GetTableByNumberQueryHandler {
	return GetTableByNumberQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns errs.ObjectNotFoundError when no table carries the number.
func (h GetTableByNumberQueryHandler) Handle(
	ctx context.Context,
	query GetTableByNumberQuery,
) (TableResponse, error) {
	if err := query.Validate(); err != nil {
		return TableResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			status,
			clients,
			server,
			current_order_id,
			created_at
		FROM tables
		WHERE number = ?
	`, query.TableNumber().Int()).Rows()
	if err != nil {
		return TableResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return TableResponse{}, err
		}
		return TableResponse{}, errs.NewObjectNotFoundError("table", query.TableNumber().Int())
	}

	response, err := scanTableRow(rows)
	if err != nil {
		return TableResponse{}, err
	}

	return response, rows.Err()
}
