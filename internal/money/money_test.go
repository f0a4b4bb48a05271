package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundHalfDown(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		places int32
		want   string
	}{
		{"no fraction", "10", 2, "10"},
		{"already two digits", "10.25", 2, "10.25"},
		{"rounds down below half", "10.254", 2, "10.25"},
		{"rounds up above half", "10.256", 2, "10.26"},
		{"exact half rounds down", "10.255", 2, "10.25"},
		{"exact half rounds down at zero", "0.005", 2, "0"},
		{"negative exact half rounds toward zero", "-10.255", 2, "-10.25"},
		{"negative above half", "-10.256", 2, "-10.26"},
		{"rate scale exact half", "63.545675", 5, "63.54567"},
		{"rate scale above half", "63.5456751", 5, "63.54568"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := decimal.RequireFromString(tt.in)
			got := RoundHalfDown(d, tt.places)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestConvert(t *testing.T) {
	amount := decimal.RequireFromString("10.00")
	rate := decimal.RequireFromString("63.54563")

	got := Convert(amount, rate)

	// 10.00 * 63.54563 = 635.4563, rounds to 635.46
	assert.True(t, got.Equal(decimal.RequireFromString("635.46")), "got %s", got)
}

func TestConvertHalfCent(t *testing.T) {
	amount := decimal.RequireFromString("1.00")
	rate := decimal.RequireFromString("0.125")

	got := Convert(amount, rate)

	// 0.125 is exactly half a cent, rounds down to 0.12
	assert.True(t, got.Equal(decimal.RequireFromString("0.12")), "got %s", got)
}

func TestRoundAmountAndRate(t *testing.T) {
	assert.True(t, RoundAmount(decimal.RequireFromString("99.999")).Equal(decimal.RequireFromString("100")))
	assert.True(t, RoundRate(decimal.NewFromFloat(1.2345678)).Equal(decimal.RequireFromString("1.23457")))
}
