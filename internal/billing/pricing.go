package billing

import "fmt"

// Standard facility rates in dollars per year.
const (
	DefaultStoragePricePerTB        = 50
	DefaultFirstPowerUserPrice      = 1000
	DefaultAdditionalPowerUserPrice = 500
)

// Pricing holds the annual rates used to build a bill.
type Pricing struct {
	StoragePricePerTB        float64
	FirstPowerUserPrice      float64
	AdditionalPowerUserPrice float64
}

// DefaultPricing returns the standard facility rates.
func DefaultPricing() Pricing {
	return Pricing{
		StoragePricePerTB:        DefaultStoragePricePerTB,
		FirstPowerUserPrice:      DefaultFirstPowerUserPrice,
		AdditionalPowerUserPrice: DefaultAdditionalPowerUserPrice,
	}
}

// UserPriceByIndex returns the annual price for the power user holding
// seat i in a PI's seat order. Seat 0 is the PI's first power user,
// every later seat is billed at the additional rate.
func (p Pricing) UserPriceByIndex(i int) (float64, error) {
	if i < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeSeatIndex, i)
	}
	if i == 0 {
		return p.FirstPowerUserPrice, nil
	}
	return p.AdditionalPowerUserPrice, nil
}
