package queries

import (
	"context"
	"time"

	"caisse/internal/core/domain/services"
	"caisse/internal/core/ports"
)

// GetSalesReportQueryHandler builds the daily sales report. Unlike the
// other read handlers it loads full domain aggregates, because the report
// derivation lives in the SalesReporter domain service.
type GetSalesReportQueryHandler struct {
	orderRepo  ports.OrderRepository
	tableRepo  ports.TableRepository
	clientRepo ports.ClientRepository
	reporter   services.SalesReporter
}

// NewGetSalesReportQueryHandler creates a handler for report queries.
// The repositories are used read-only, outside of any transaction.
func NewGetSalesReportQueryHandler(
	orderRepo ports.OrderRepository,
	tableRepo ports.TableRepository,
	clientRepo ports.ClientRepository,
) GetSalesReportQueryHandler {
	return GetSalesReportQueryHandler{
		orderRepo:  orderRepo,
		tableRepo:  tableRepo,
		clientRepo: clientRepo,
		reporter:   services.NewSalesReporter(),
	}
}

// Handle executes the report query.
func (h GetSalesReportQueryHandler) Handle(
	ctx context.Context,
	query GetSalesReportQuery,
) (GetSalesReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSalesReportQueryResponse{}, err
	}

	orders, err := h.orderRepo.GetAll(ctx, nil)
	if err != nil {
		return GetSalesReportQueryResponse{}, err
	}

	tables, err := h.tableRepo.GetAll(ctx)
	if err != nil {
		return GetSalesReportQueryResponse{}, err
	}

	clients, err := h.clientRepo.GetAll(ctx)
	if err != nil {
		return GetSalesReportQueryResponse{}, err
	}

	generatedAt := time.Now().UTC()

	return GetSalesReportQueryResponse{
		Stats:       h.reporter.Stats(orders, tables, len(clients)),
		Report:      h.reporter.Report(orders, tables, len(clients), generatedAt),
		GeneratedAt: generatedAt,
	}, nil
}
