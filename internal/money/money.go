package money

import "github.com/shopspring/decimal"

const (
	// AmountScale is the number of fractional digits kept on balances and amounts.
	AmountScale int32 = 2
	// RateScale is the number of fractional digits kept on exchange rates.
	RateScale int32 = 5
)

// MaxAmount is the exclusive upper bound for balances and amounts, matching NUMERIC(11,2).
var MaxAmount = decimal.New(1_000_000_000, 0)

var half = decimal.New(5, -1)

// RoundHalfDown rounds d to the given number of fractional digits. A value exactly
// halfway between two representable results rounds toward the smaller magnitude.
func RoundHalfDown(d decimal.Decimal, places int32) decimal.Decimal {
	neg := d.IsNegative()
	if neg {
		d = d.Neg()
	}

	shifted := d.Shift(places)
	rounded := shifted.Floor()
	if shifted.Sub(rounded).GreaterThan(half) {
		rounded = rounded.Add(decimal.New(1, 0))
	}

	result := rounded.Shift(-places)
	if neg {
		result = result.Neg()
	}
	return result
}

// RoundAmount rounds a monetary amount to cents.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return RoundHalfDown(d, AmountScale)
}

// RoundRate rounds an exchange rate to five fractional digits.
func RoundRate(d decimal.Decimal) decimal.Decimal {
	return RoundHalfDown(d, RateScale)
}

// Convert applies an exchange rate to an amount and rounds the result to cents.
func Convert(amount, rate decimal.Decimal) decimal.Decimal {
	return RoundAmount(amount.Mul(rate))
}
