package payroll

import (
	"math"

	"github.com/shopspring/decimal"
)

// Money is an amount in whole đồng. All comparisons against bracket
// boundaries happen on this integer type.
type Money int64

// Unbounded marks the open upper end of the top tax bracket.
const Unbounded Money = math.MaxInt64

func (m Money) decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(m))
}

// mul returns the exact product m*rate.
func (m Money) mul(rate decimal.Decimal) decimal.Decimal {
	return m.decimal().Mul(rate)
}

// roundMoney rounds half away from zero to whole đồng.
func roundMoney(d decimal.Decimal) Money {
	return Money(d.Round(0).IntPart())
}

func floorMoney(d decimal.Decimal) Money {
	return Money(d.Floor().IntPart())
}

func absMoney(m Money) Money {
	if m < 0 {
		return -m
	}
	return m
}
