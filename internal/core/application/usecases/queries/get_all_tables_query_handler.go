package queries

import (
	"context"
	"database/sql"
	"time"

	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/core/domain/model/table"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllTablesQueryHandler retrieves the floor plan from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetAllTablesQueryHandler(db)
//	query := NewGetAllTablesQuery()
//
//	tables, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get tables: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d tables\n", len(tables))
type GetAllTablesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllTablesQueryHandler creates a handler for floor plan queries.
// Requires a GORM database connection for query execution.
func NewGetAllTablesQueryHandler(db *gorm.DB) GetAllTablesQueryHandler {
	return GetAllTablesQueryHandler{db: db}
}

// Handle executes the query to retrieve all tables ordered by number.
func (h GetAllTablesQueryHandler) Handle(
	ctx context.Context,
	query GetAllTablesQuery,
) ([]TableResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tables := make([]TableResponse, 0)

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
		ORDER BY number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		response, scanErr := scanTableRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		tables = append(tables, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}

// scanTableRow maps one tables row to the read model, shared with the
// single-table query.
func scanTableRow(rows *sql.Rows) (TableResponse, error) {
	var (
		response   TableResponse
		number     int
		status     int
		rawClients []byte
		server     sql.NullString
		orderID    uuid.NullUUID
		createdAt  time.Time
	)

	if err := rows.Scan(&response.ID, &number, &status, &rawClients, &server, &orderID, &createdAt); err != nil {
		return TableResponse{}, err
	}

	tableNumber, err := kernel.NewTableNumber(number)
	if err != nil {
		return TableResponse{}, err
	}
	response.Number = tableNumber

	tableStatus := table.Status(status)
	if err = tableStatus.Validate(); err != nil {
		return TableResponse{}, err
	}
	response.Status = tableStatus

	clients, err := stringsFromJSON(rawClients)
	if err != nil {
		return TableResponse{}, err
	}
	response.Clients = clients

	if server.Valid {
		s := server.String
		response.Server = &s
	}

	if orderID.Valid {
		id, idErr := kernel.UUIDFromBytes(orderID.UUID[:])
		if idErr != nil {
			return TableResponse{}, idErr
		}
		response.CurrentOrderID = &id
	}

	response.CreatedAt = createdAt.UTC()
	return response, nil
}
