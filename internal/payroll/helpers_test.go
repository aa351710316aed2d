package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const million Money = 1_000_000

func rate(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func vnBrackets() []Bracket {
	return []Bracket{
		{LowerBound: 0, UpperBound: 5 * million, Rate: rate("0.05")},
		{LowerBound: 5 * million, UpperBound: 10 * million, Rate: rate("0.10")},
		{LowerBound: 10 * million, UpperBound: 18 * million, Rate: rate("0.15")},
		{LowerBound: 18 * million, UpperBound: 32 * million, Rate: rate("0.20")},
		{LowerBound: 32 * million, UpperBound: 52 * million, Rate: rate("0.25")},
		{LowerBound: 52 * million, UpperBound: 80 * million, Rate: rate("0.30")},
		{LowerBound: 80 * million, UpperBound: Unbounded, Rate: rate("0.35")},
	}
}

func vnRates() Rates {
	return Rates{
		SocialInsurance:       rate("0.08"),
		HealthInsurance:       rate("0.015"),
		UnemploymentInsurance: rate("0.01"),
		PersonalRelief:        11 * million,
		DependentRelief:       4_400_000,
	}
}

func newVNCalculator(t *testing.T) *Calculator {
	t.Helper()
	schedule, err := NewSchedule(vnBrackets())
	require.NoError(t, err)
	calc, err := NewCalculator(vnRates(), schedule)
	require.NoError(t, err)
	return calc
}
