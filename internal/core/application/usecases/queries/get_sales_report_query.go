package queries

import (
	"errors"
	"time"

	"caisse/internal/core/domain/services"
	"caisse/internal/pkg/guard"
)

var ErrGetSalesReportQueryIsNotConstructed = errors.New(
	"GetSalesReportQuery must be created via NewGetSalesReportQuery constructor",
)

// GetSalesReportQuery produces the daily sales report: derived figures plus
// the shareable French report text. Reading the report mutates nothing.
type GetSalesReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSalesReportQuery creates a query to build the daily report.
func NewGetSalesReportQuery() GetSalesReportQuery {
	return GetSalesReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSalesReportQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesReportQueryIsNotConstructed)
}

// GetSalesReportQueryResponse carries the derived figures and the rendered
// report text.
type GetSalesReportQueryResponse struct {
	Stats       services.SalesStats
	Report      string
	GeneratedAt time.Time
}
