package domain

import (
	"github.com/govalues/decimal"
)

// HomeState ships with the lower delivery surcharge.
const HomeState = "Tamil Nadu"

var (
	deliveryHome, _  = decimal.New(50, 0)
	deliveryOther, _ = decimal.New(100, 0)
)

// DeliveryCharge returns the flat regional surcharge for a customer state.
// It is computed once at checkout and folded into the order total;
// reconciliation never recomputes it.
func DeliveryCharge(customerState string) decimal.Decimal {
	if customerState == HomeState {
		return deliveryHome
	}
	return deliveryOther
}

// MinorUnits converts a major-unit decimal amount to integer minor currency
// units, rounding at the second decimal place. 199.50 becomes 19950.
func MinorUnits(amount decimal.Decimal) (int64, error) {
	whole, frac, ok := amount.Round(2).Int64(2)
	if !ok {
		return 0, ErrAmountOverflow
	}
	return whole*100 + frac, nil
}
