package table

import (
	"fmt"

	"caisse/internal/pkg/errs"
)

// Status represents the occupancy state of a table. The persisted names are
// the French labels the floor staff sees: "libre", "occupée", "réservée".
//
// State transitions driven by the order lifecycle:
//
//	libre ──> occupée ──> libre
//	      (order created)  (order paid)
//
// réservée is only entered through the manual status override; creating an
// order against a reserved table silently converts it to occupée.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Free ("libre") means the table has no open order and can be seated.
	Free

	// Occupied ("occupée") means the table carries the current open order.
	Occupied

	// Reserved ("réservée") marks a manual reservation.
	Reserved
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "unknown",
		Free:     "libre",
		Occupied: "occupée",
		Reserved: "réservée",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Free:     "libre",
		Occupied: "occupée",
		Reserved: "réservée",
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
		fmt.Errorf("%q is not a valid table status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Free, Occupied, Reserved.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the French label of the status.
// Returns "unknown" for invalid status values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
