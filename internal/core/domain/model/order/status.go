package order

import (
	"errors"
	"fmt"

	"caisse/internal/pkg/errs"
)

// ErrOrderAlreadyPaid rejects a second payment of the same order. Payment
// happens exactly once; paidAt is never re-stamped.
var ErrOrderAlreadyPaid = errors.New("order is already paid")

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Paid
//
// Preparing and Ready are declared, restorable statuses (a kitchen display
// could use them) but no ledger operation transitions into them. Paid is
// terminal; no transition removes or cancels an order.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every created order: the table is
	// occupied and the order awaits payment.
	Pending

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// Ready indicates the order is ready to serve.
	Ready

	// Paid is the terminal status: the order has been settled and its table freed.
	Paid
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Paid:      "paid",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Paid:      "paid",
	}
}

// StatusFromString parses a persisted or user-supplied status label.
func StatusFromString(s string) (Status, error) {
	for status, label := range getValidStatusStrings() {
		if label == s {
			return status, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Preparing, Ready, Paid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted, lowercase name of the status.
// Returns "unknown" for invalid status values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateCanHavePaidAt validates the consistency between a status and the
// presence of a payment timestamp: only Paid orders carry one.
func (s Status) ValidateCanHavePaidAt(paidAt bool) error {
	if paidAt && s != Paid {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a payment timestamp", s.String()),
		)
	}

	if !paidAt && s == Paid {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no payment timestamp", s.String()),
		)
	}

	return nil
}

// Pay transitions the status to Paid.
//
// Valid transitions:
//   - Pending -> Paid
//
// Invalid transitions:
//   - Paid -> Paid (ErrOrderAlreadyPaid; payment is not repeatable)
//   - Preparing/Ready/Unknown -> Paid
//
// Returns:
//   - (Paid, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Pay() (Status, error) {
	if s == Paid {
		return 0, ErrOrderAlreadyPaid
	}
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to pay", s.String()),
		)
	}

	return Paid, nil
}
