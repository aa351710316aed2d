package payroll

import (
	"github.com/shopspring/decimal"
)

// Bracket is one band of a progressive schedule. Income in
// [LowerBound, UpperBound) is taxed at Rate; the last bracket uses
// UpperBound = Unbounded.
type Bracket struct {
	LowerBound Money
	UpperBound Money
	Rate       decimal.Decimal
}

// Schedule is a validated, immutable bracket table.
type Schedule struct {
	brackets []Bracket
}

// NewSchedule checks that brackets are contiguous, ascending, strictly
// progressive in rate, and closed by a single unbounded bracket.
func NewSchedule(brackets []Bracket) (Schedule, error) {
	if err := validateBrackets(brackets); err != nil {
		return Schedule{}, err
	}
	owned := make([]Bracket, len(brackets))
	copy(owned, brackets)
	return Schedule{brackets: owned}, nil
}

func validateBrackets(brackets []Bracket) error {
	if len(brackets) == 0 {
		return scheduleError(-1, "at least one bracket is required")
	}
	one := decimal.NewFromInt(1)
	last := len(brackets) - 1
	for i, b := range brackets {
		if b.LowerBound < 0 {
			return scheduleError(i, "lower bound %d is negative", b.LowerBound)
		}
		if b.Rate.IsNegative() || b.Rate.GreaterThanOrEqual(one) {
			return scheduleError(i, "rate %s is outside [0, 1)", b.Rate)
		}
		if b.UpperBound == Unbounded && i != last {
			return scheduleError(i, "only the last bracket may be unbounded")
		}
		if i == last && b.UpperBound != Unbounded {
			return scheduleError(i, "last bracket must be unbounded")
		}
		if b.UpperBound <= b.LowerBound {
			return scheduleError(i, "upper bound %d is not above lower bound %d", b.UpperBound, b.LowerBound)
		}
		if i == 0 {
			continue
		}
		prev := brackets[i-1]
		if b.LowerBound != prev.UpperBound {
			return scheduleError(i, "lower bound %d does not continue previous upper bound %d", b.LowerBound, prev.UpperBound)
		}
		if !b.Rate.GreaterThan(prev.Rate) {
			return scheduleError(i, "rate %s is not above previous rate %s", b.Rate, prev.Rate)
		}
	}
	return nil
}

// Brackets returns a copy of the table.
func (s Schedule) Brackets() []Bracket {
	out := make([]Bracket, len(s.brackets))
	copy(out, s.brackets)
	return out
}

// MaxRate is the marginal rate of the unbounded bracket.
func (s Schedule) MaxRate() decimal.Decimal {
	if len(s.brackets) == 0 {
		return decimal.Zero
	}
	return s.brackets[len(s.brackets)-1].Rate
}

// Tax sums income*rate over the part of income falling in each bracket
// and rounds the total once, half away from zero.
func (s Schedule) Tax(taxableIncome Money) (Money, error) {
	if taxableIncome < 0 {
		return 0, ErrNegativeIncome
	}
	total := decimal.Zero
	for _, b := range s.brackets {
		if taxableIncome <= b.LowerBound {
			break
		}
		inBracket := min(taxableIncome, b.UpperBound) - b.LowerBound
		total = total.Add(inBracket.mul(b.Rate))
	}
	return roundMoney(total), nil
}

// ComputeTax validates brackets and evaluates the tax on taxableIncome.
// Callers evaluating many incomes should build a Schedule once instead.
func ComputeTax(taxableIncome Money, brackets []Bracket) (Money, error) {
	schedule, err := NewSchedule(brackets)
	if err != nil {
		return 0, err
	}
	return schedule.Tax(taxableIncome)
}
