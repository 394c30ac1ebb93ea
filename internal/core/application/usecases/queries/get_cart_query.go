// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves the open cart with its derived figures: line
// subtotals, the grand total and the per-rate VAT breakdown. All derived
// values are recomputed from the stored lines, never read from storage.
//
// Example:
//
//	query := NewGetCartQuery()
//	handler := NewGetCartQueryHandler(db)
//
//	cart, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to read cart: %w", err)
//	}
//	fmt.Printf("%d lines, total %s\n", len(cart.Lines), cart.Total)
type GetCartQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query to read the open cart.
func NewGetCartQuery() GetCartQuery {
	return GetCartQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CartLineResponse represents one cart line in the read model.
type CartLineResponse struct {
	ProductID string
	Name      string
	UnitPrice kernel.Money
	VatRate   kernel.VatRate
	Quantity  int
	Subtotal  kernel.Money
}

// VatBucketResponse represents one per-rate tax bucket in the read model.
// Buckets with a zero amount are included.
type VatBucketResponse struct {
	Rate   kernel.VatRate
	Amount kernel.Money
}

// GetCartQueryResponse represents the open cart in the read model.
type GetCartQueryResponse struct {
	Lines        []CartLineResponse
	Total        kernel.Money
	VatBreakdown []VatBucketResponse
}
