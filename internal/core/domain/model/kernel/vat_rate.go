package kernel

import (
	"fmt"

	"caisse/internal/pkg/errs"
)

// VatRate is a value-added-tax percentage drawn from the fixed set of rates
// the register recognizes. Products carry one of these rates and the VAT
// breakdown aggregates cart lines into one bucket per rate.
type VatRate int

// The enumerated VAT rates. The catalog currently uses 7% and 18%; the
// remaining rates exist so breakdown buckets cover every legal rate.
const (
	VatRateExempt   VatRate = 0
	VatRateReduced  VatRate = 6
	VatRateFood     VatRate = 7
	VatRateLowered  VatRate = 12
	VatRateService  VatRate = 18
	VatRateStandard VatRate = 21
)

// AllVatRates returns the enumerated rates in ascending order. The VAT
// breakdown emits one bucket per entry, including zero-amount buckets.
func AllVatRates() []VatRate {
	return []VatRate{VatRateExempt, VatRateReduced, VatRateFood, VatRateLowered, VatRateService, VatRateStandard}
}

// NewVatRate creates a VatRate from a percentage, rejecting percentages
// outside the enumerated set.
func NewVatRate(percent int) (VatRate, error) {
	rate := VatRate(percent)
	if err := rate.Validate(); err != nil {
		return 0, err
	}
	return rate, nil
}

// Validate checks that the rate belongs to the enumerated set.
func (r VatRate) Validate() error {
	for _, valid := range AllVatRates() {
		if r == valid {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"vat rate is invalid",
		fmt.Errorf("%d%% is not a recognized VAT rate", int(r)),
	)
}

// Percent returns the rate as an integer percentage.
func (r VatRate) Percent() int {
	return int(r)
}

// AmountOn computes the tax owed on a base amount, rounding half up to the
// nearest millime. Rounding happens only here, once per bucket: callers sum
// exact line subtotals first and apply the rate to the bucket total.
func (r VatRate) AmountOn(base Money) Money {
	n := base.Millimes() * int64(r)
	q := n / 100
	if n%100 >= 50 {
		q++
	}
	return Money{millimes: q}
}

// String formats the rate as a percentage, e.g. "7%".
func (r VatRate) String() string {
	return fmt.Sprintf("%d%%", int(r))
}
