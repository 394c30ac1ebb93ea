package queries

import (
	"errors"
	"time"

	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/core/domain/model/order"
	"caisse/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders in creation order, optionally restricted
// to a single status.
//
// Example:
//
//	paid := order.Paid
//	query, _ := NewGetOrdersQuery(&paid)
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list orders.
// A nil status means every order; a non-nil status must be valid.
func NewGetOrdersQuery(status *order.Status) (GetOrdersQuery, error) {
	ordersQuery := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := ordersQuery.setStatus(status); err != nil {
		return GetOrdersQuery{}, err
	}

	return ordersQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q GetOrdersQuery) Status() *order.Status {
	if q.status == nil {
		return nil
	}
	s := *q.status
	return &s
}

func (q *GetOrdersQuery) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}

	if err := status.Validate(); err != nil {
		return err
	}

	s := *status
	q.status = &s
	return nil
}

// OrderResponse represents one order in the read model, carrying the frozen
// snapshot exactly as it was persisted.
type OrderResponse struct {
	ID           kernel.UUID
	TableNumber  kernel.TableNumber
	ClientNames  []string
	Lines        []CartLineResponse
	Total        kernel.Money
	VatBreakdown []VatBucketResponse
	Status       order.Status
	Server       string
	CreatedAt    time.Time
	PaidAt       *time.Time
}
