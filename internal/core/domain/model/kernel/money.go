package kernel

import (
	"fmt"

	"caisse/internal/pkg/errs"
)

// Money is an immutable fixed-point currency amount with three decimal
// places, stored as a whole number of millimes. All cart and order
// arithmetic is exact: no floating point is involved, so totals never
// accumulate rounding drift.
//
// The zero value is a valid amount of 0.000.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromMillimes(3500) // 3.500
//	total := price.Mul(2)                         // 7.000
//	fmt.Println(total)                            // "7.000"
type Money struct {
	millimes int64
}

// NewMoneyFromMillimes creates a Money amount from a whole number of
// millimes (thousandths of the currency unit). Negative amounts are
// rejected: the ledger never deals in negative prices or totals.
func NewMoneyFromMillimes(millimes int64) (Money, error) {
	if millimes < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money amount is invalid",
			fmt.Errorf("%d millimes is negative", millimes),
		)
	}
	return Money{millimes: millimes}, nil
}

// Millimes returns the amount as a whole number of millimes.
func (m Money) Millimes() int64 {
	return m.millimes
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{millimes: m.millimes + other.millimes}
}

// Mul returns the amount multiplied by a non-negative quantity.
func (m Money) Mul(quantity int) Money {
	return Money{millimes: m.millimes * int64(quantity)}
}

// DivRound divides the amount by n, rounding half away from zero to the
// nearest millime. Used for averages in reporting. n must be positive.
func (m Money) DivRound(n int64) Money {
	if n <= 0 {
		return Money{}
	}
	q := m.millimes / n
	if (m.millimes%n)*2 >= n {
		q++
	}
	return Money{millimes: q}
}

// IsZero reports whether the amount is exactly 0.000.
func (m Money) IsZero() bool {
	return m.millimes == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.millimes == other.millimes
}

// String formats the amount with three decimal places, e.g. "12.000".
func (m Money) String() string {
	return fmt.Sprintf("%d.%03d", m.millimes/1000, m.millimes%1000)
}
