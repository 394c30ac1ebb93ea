package queries

import (
	"context"
	"database/sql"
	"time"

	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order snapshots from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve orders in creation order,
// optionally filtered by status. The frozen totals and VAT breakdowns are
// returned as persisted, never recomputed.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseQuery = `
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
	`

	var (
		rows *sql.Rows
		err  error
	)
	if status := query.Status(); status != nil {
		rows, err = h.db.WithContext(ctx).Raw(baseQuery+`WHERE status = ? ORDER BY created_at`, int(*status)).Rows()
	} else {
		rows, err = h.db.WithContext(ctx).Raw(baseQuery + `ORDER BY created_at`).Rows()
	}
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

// scanOrderRow maps one orders row to the read model, shared with the
// current-table orders query.
func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		response      OrderResponse
		id            uuid.UUID
		tableNumber   int
		rawNames      []byte
		rawLines      []byte
		totalMillimes int64
		rawBuckets    []byte
		status        int
		createdAt     time.Time
		paidAt        sql.NullTime
	)

	if err := rows.Scan(
		&id,
		&tableNumber,
		&rawNames,
		&rawLines,
		&totalMillimes,
		&rawBuckets,
		&status,
		&response.Server,
		&createdAt,
		&paidAt,
	); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	response.ID = orderID

	number, err := kernel.NewTableNumber(tableNumber)
	if err != nil {
		return OrderResponse{}, err
	}
	response.TableNumber = number

	names, err := stringsFromJSON(rawNames)
	if err != nil {
		return OrderResponse{}, err
	}
	response.ClientNames = names

	lines, err := cartLinesFromJSON(rawLines)
	if err != nil {
		return OrderResponse{}, err
	}
	response.Lines = cartLineResponses(lines)

	total, err := kernel.NewMoneyFromMillimes(totalMillimes)
	if err != nil {
		return OrderResponse{}, err
	}
	response.Total = total

	buckets, err := vatBucketsFromJSON(rawBuckets)
	if err != nil {
		return OrderResponse{}, err
	}
	response.VatBreakdown = buckets

	orderStatus := order.Status(status)
	if err = orderStatus.Validate(); err != nil {
		return OrderResponse{}, err
	}
	response.Status = orderStatus

	response.CreatedAt = createdAt.UTC()
	if paidAt.Valid {
		at := paidAt.Time.UTC()
		response.PaidAt = &at
	}

	return response, nil
}
