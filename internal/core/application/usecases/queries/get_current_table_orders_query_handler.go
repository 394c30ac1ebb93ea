package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// GetCurrentTableOrdersQueryHandler retrieves the orders of the session's
// current table.
type GetCurrentTableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCurrentTableOrdersQueryHandler creates a handler for current-table order queries.
func NewGetCurrentTableOrdersQueryHandler(db *gorm.DB) GetCurrentTableOrdersQueryHandler {
	return GetCurrentTableOrdersQueryHandler{db: db}
}

// Handle executes the query.
// Reads the current table from the session snapshot, then lists that
// table's orders in creation order. No selection means an empty result.
func (h GetCurrentTableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentTableOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var currentTable sql.NullInt64
	err := h.db.WithContext(ctx).Raw(`
		SELECT current_table
		FROM sessions
		LIMIT 1
	`).Row().Scan(&currentTable)
	if errors.Is(err, sql.ErrNoRows) {
		return []OrderResponse{}, nil
	}
	if err != nil {
		return nil, err
	}

	if !currentTable.Valid {
		return []OrderResponse{}, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			table_number,
			client_names,
			lines,
			total_millimes,
			vat_breakdown,
			status,
			server,
			created_at,
			paid_at
		FROM orders
		WHERE table_number = ?
		ORDER BY created_at
	`, currentTable.Int64).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		response, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
