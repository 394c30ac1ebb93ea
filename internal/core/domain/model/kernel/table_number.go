package kernel

import (
	"fmt"

	"caisse/internal/pkg/errs"
)

// TableNumber is the user-assigned number of a physical table. Numbers start
// at 1 and are unique across the floor plan. The zero value is invalid.
type TableNumber int

// NewTableNumber creates a TableNumber, rejecting numbers below 1.
func NewTableNumber(number int) (TableNumber, error) {
	n := TableNumber(number)
	if err := n.Validate(); err != nil {
		return 0, err
	}
	return n, nil
}

// Validate checks that the number is at least 1.
func (n TableNumber) Validate() error {
	if n < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"table number is invalid",
			fmt.Errorf("%d is not greater than 0", int(n)),
		)
	}
	return nil
}

// Int returns the number as a plain int.
func (n TableNumber) Int() int {
	return int(n)
}

// ID derives the deterministic table identifier from the number.
func (n TableNumber) ID() string {
	return fmt.Sprintf("TABLE-%d", int(n))
}

// String returns the decimal representation of the number.
func (n TableNumber) String() string {
	return fmt.Sprintf("%d", int(n))
}
