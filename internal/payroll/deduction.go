package payroll

import (
	"github.com/shopspring/decimal"
)

// Rates holds the statutory withholding fractions and relief amounts.
type Rates struct {
	SocialInsurance       decimal.Decimal
	HealthInsurance       decimal.Decimal
	UnemploymentInsurance decimal.Decimal
	PersonalRelief        Money
	DependentRelief       Money
}

// InsuranceRate is the combined employee withholding fraction.
func (r Rates) InsuranceRate() decimal.Decimal {
	return r.SocialInsurance.Add(r.HealthInsurance).Add(r.UnemploymentInsurance)
}

func (r Rates) Validate() error {
	one := decimal.NewFromInt(1)
	for _, f := range []struct {
		name string
		rate decimal.Decimal
	}{
		{"social_insurance", r.SocialInsurance},
		{"health_insurance", r.HealthInsurance},
		{"unemployment_insurance", r.UnemploymentInsurance},
	} {
		if f.rate.IsNegative() || f.rate.GreaterThanOrEqual(one) {
			return ratesError(f.name, "rate %s is outside [0, 1)", f.rate)
		}
	}
	if r.InsuranceRate().GreaterThanOrEqual(one) {
		return ratesError("insurance", "combined rate %s must stay below 1", r.InsuranceRate())
	}
	if r.PersonalRelief < 0 {
		return ratesError("personal_relief", "amount %d is negative", r.PersonalRelief)
	}
	if r.DependentRelief < 0 {
		return ratesError("dependent_relief", "amount %d is negative", r.DependentRelief)
	}
	return nil
}

// Breakdown is the itemised result of one gross-to-net computation.
// Relief lowers TaxableIncome but is not withheld from NetSalary.
type Breakdown struct {
	GrossSalary           Money
	Dependents            int
	SocialInsurance       Money
	HealthInsurance       Money
	UnemploymentInsurance Money
	PersonalRelief        Money
	DependentRelief       Money
	Tax                   Money
	TaxableIncome         Money
	NetSalary             Money
	Clamped               []Clamp
}

// Clamp records an input that was floored to zero instead of rejected.
type Clamp struct {
	Field    string
	Original int64
}

func (b Breakdown) TotalInsurance() Money {
	return b.SocialInsurance + b.HealthInsurance + b.UnemploymentInsurance
}

func (b Breakdown) TotalRelief() Money {
	return b.PersonalRelief + b.DependentRelief
}

// TotalDeductions is everything actually withheld: insurance plus tax.
func (b Breakdown) TotalDeductions() Money {
	return b.TotalInsurance() + b.Tax
}

// Calculator binds a validated rate table and schedule. It holds no
// mutable state and is safe for concurrent use.
type Calculator struct {
	rates    Rates
	schedule Schedule
}

func NewCalculator(rates Rates, schedule Schedule) (*Calculator, error) {
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	if len(schedule.brackets) == 0 {
		return nil, scheduleError(-1, "schedule has no brackets")
	}
	return &Calculator{rates: rates, schedule: schedule}, nil
}

func (c *Calculator) Rates() Rates {
	return c.rates
}

func (c *Calculator) Schedule() Schedule {
	return c.schedule
}

// ComputeNet converts a gross salary into net pay. Negative gross or
// dependents are floored to zero and recorded in Clamped.
//
// The combined insurance is rounded once and social/health are floored,
// with unemployment taking the remainder, so the three items always sum
// to the rounded total and net pay never decreases as gross grows.
func (c *Calculator) ComputeNet(gross Money, dependents int) Breakdown {
	var clamped []Clamp
	if gross < 0 {
		clamped = append(clamped, Clamp{Field: "gross_salary", Original: int64(gross)})
		gross = 0
	}
	if dependents < 0 {
		clamped = append(clamped, Clamp{Field: "dependents", Original: int64(dependents)})
		dependents = 0
	}

	totalInsurance := roundMoney(gross.mul(c.rates.InsuranceRate()))
	social := floorMoney(gross.mul(c.rates.SocialInsurance))
	health := floorMoney(gross.mul(c.rates.HealthInsurance))
	unemployment := totalInsurance - social - health

	personal := c.rates.PersonalRelief
	dependent := c.dependentRelief(dependents)

	// Neither subtraction can overflow: gross-totalInsurance >= 0 and
	// personal+dependent <= Unbounded.
	taxable := max(0, gross-totalInsurance-personal-dependent)
	// taxable is never negative and the schedule is validated.
	tax, _ := c.schedule.Tax(taxable)

	return Breakdown{
		GrossSalary:           gross,
		Dependents:            dependents,
		SocialInsurance:       social,
		HealthInsurance:       health,
		UnemploymentInsurance: unemployment,
		PersonalRelief:        personal,
		DependentRelief:       dependent,
		Tax:                   tax,
		TaxableIncome:         taxable,
		NetSalary:             max(0, gross-totalInsurance-tax),
		Clamped:               clamped,
	}
}

// dependentRelief saturates so that personal plus dependent relief never
// exceeds Unbounded.
func (c *Calculator) dependentRelief(dependents int) Money {
	per := c.rates.DependentRelief
	if per == 0 {
		return 0
	}
	ceiling := Unbounded - c.rates.PersonalRelief
	if Money(dependents) > ceiling/per {
		return ceiling
	}
	return Money(dependents) * per
}

// ComputeNet validates the configuration and computes one breakdown.
func ComputeNet(gross Money, dependents int, rates Rates, brackets []Bracket) (Breakdown, error) {
	calc, err := newCalculatorFromBrackets(rates, brackets)
	if err != nil {
		return Breakdown{}, err
	}
	return calc.ComputeNet(gross, dependents), nil
}

func newCalculatorFromBrackets(rates Rates, brackets []Bracket) (*Calculator, error) {
	schedule, err := NewSchedule(brackets)
	if err != nil {
		return nil, err
	}
	return NewCalculator(rates, schedule)
}
