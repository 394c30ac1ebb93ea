package queries

import (
	"context"
	"database/sql"
	"errors"

	"caisse/internal/core/domain/model/cart"

	"gorm.io/gorm"
)

// GetCartQueryHandler reads the session snapshot and recomputes the cart's
// derived figures. Uses direct SQL for optimal read performance in the
// CQRS pattern.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart read queries.
// Requires a GORM database connection for query execution.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the cart query.
// An absent session row reads as an empty cart. The total and the VAT
// breakdown are recomputed from the lines; the breakdown always carries one
// bucket per enumerated rate, zero amounts included.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	var rawLines []byte
	err := h.db.WithContext(ctx).Raw(`
		SELECT cart_lines
		FROM sessions
		LIMIT 1
	`).Row().Scan(&rawLines)
	if errors.Is(err, sql.ErrNoRows) {
		rawLines = nil
	} else if err != nil {
		return GetCartQueryResponse{}, err
	}

	lines, err := cartLinesFromJSON(rawLines)
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	restored, err := cart.RestoreCart(lines)
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	breakdown := make([]VatBucketResponse, 0)
	for _, bucket := range restored.VatBreakdown() {
		breakdown = append(breakdown, VatBucketResponse{Rate: bucket.Rate(), Amount: bucket.Amount()})
	}

	return GetCartQueryResponse{
		Lines:        cartLineResponses(restored.Lines()),
		Total:        restored.Total(),
		VatBreakdown: breakdown,
	}, nil
}
