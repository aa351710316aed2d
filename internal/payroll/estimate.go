package payroll

import (
	"github.com/shopspring/decimal"
)

const (
	DefaultMaxIterations       = 100
	DefaultTolerance     Money = 1000
)

// Method selects how EstimateGross inverts ComputeNet.
type Method int

const (
	// FixedPoint repeats gross += target - net(gross). Net grows by less
	// than one đồng per đồng of gross, so the error shrinks by the
	// factor (1 - dNet/dGross) each round.
	FixedPoint Method = iota
	// Bisection halves [target, target/((1-insurance)(1-maxRate))] and
	// needs at most log2(width/1) evaluations.
	Bisection
)

func (m Method) String() string {
	switch m {
	case FixedPoint:
		return "fixed_point"
	case Bisection:
		return "bisection"
	default:
		return "unknown"
	}
}

// ParseMethod maps a wire name to a Method. The empty string selects
// FixedPoint.
func ParseMethod(s string) (Method, bool) {
	switch s {
	case "", "fixed_point":
		return FixedPoint, true
	case "bisection":
		return Bisection, true
	default:
		return FixedPoint, false
	}
}

type estimateOptions struct {
	maxIterations int
	tolerance     Money
	method        Method
}

type EstimateOption func(*estimateOptions)

// WithMaxIterations caps forward evaluations. Non-positive values keep
// the default.
func WithMaxIterations(n int) EstimateOption {
	return func(o *estimateOptions) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

// WithTolerance sets the accepted |target - net|. Non-positive values
// keep the default.
func WithTolerance(t Money) EstimateOption {
	return func(o *estimateOptions) {
		if t > 0 {
			o.tolerance = t
		}
	}
}

func WithMethod(m Method) EstimateOption {
	return func(o *estimateOptions) {
		o.method = m
	}
}

// Estimate is the outcome of a gross-salary search. When Converged is
// false, Gross is the closest estimate seen and should be treated as
// approximate.
type Estimate struct {
	TargetNet  Money
	Gross      Money
	Net        Money
	Iterations int
	Converged  bool
	Method     Method
	Clamped    []Clamp
}

// EstimateGross searches for the gross salary whose net pay is within
// the tolerance of targetNet. It never fails on slow convergence.
func (c *Calculator) EstimateGross(targetNet Money, dependents int, opts ...EstimateOption) Estimate {
	o := estimateOptions{
		maxIterations: DefaultMaxIterations,
		tolerance:     DefaultTolerance,
		method:        FixedPoint,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var clamped []Clamp
	if targetNet < 0 {
		clamped = append(clamped, Clamp{Field: "target_net_salary", Original: int64(targetNet)})
		targetNet = 0
	}
	if dependents < 0 {
		clamped = append(clamped, Clamp{Field: "dependents", Original: int64(dependents)})
		dependents = 0
	}
	if targetNet == 0 {
		return Estimate{Converged: true, Method: o.method, Clamped: clamped}
	}

	var est Estimate
	switch o.method {
	case Bisection:
		est = c.bisect(targetNet, dependents, o)
	default:
		est = c.fixedPoint(targetNet, dependents, o)
	}
	est.TargetNet = targetNet
	est.Method = o.method
	est.Clamped = clamped
	return est
}

// search tracks the closest evaluation seen so far.
type search struct {
	target Money
	best   Estimate
	bestD  Money
	calls  int
}

func (s *search) observe(gross, net Money) Money {
	s.calls++
	diff := s.target - net
	if s.calls == 1 || absMoney(diff) < s.bestD {
		s.best = Estimate{Gross: gross, Net: net}
		s.bestD = absMoney(diff)
	}
	return diff
}

func (s *search) result(converged bool) Estimate {
	est := s.best
	est.Iterations = s.calls
	est.Converged = converged
	return est
}

func (c *Calculator) fixedPoint(target Money, dependents int, o estimateOptions) Estimate {
	s := &search{target: target}
	gross := target
	for i := 0; i < o.maxIterations; i++ {
		diff := s.observe(gross, c.ComputeNet(gross, dependents).NetSalary)
		if absMoney(diff) < o.tolerance {
			return s.result(true)
		}
		gross = max(0, gross+diff)
	}
	return s.result(false)
}

func (c *Calculator) bisect(target Money, dependents int, o estimateOptions) Estimate {
	s := &search{target: target}
	lo, hi := target, c.upperGross(target, o.tolerance)
	for i := 0; i < o.maxIterations && lo <= hi; i++ {
		mid := lo + (hi-lo)/2
		diff := s.observe(mid, c.ComputeNet(mid, dependents).NetSalary)
		if absMoney(diff) < o.tolerance {
			return s.result(true)
		}
		if diff > 0 {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return s.result(false)
}

// upperGross bounds the answer from above: net(g) >= g*(1-insurance)*(1-maxRate).
func (c *Calculator) upperGross(target, tolerance Money) Money {
	one := decimal.NewFromInt(1)
	keep := one.Sub(c.rates.InsuranceRate()).Mul(one.Sub(c.schedule.MaxRate()))
	bound := target.decimal().Div(keep).Ceil()
	limit := decimal.NewFromInt(int64(Unbounded - tolerance - 1))
	if bound.GreaterThan(limit) {
		return Unbounded - 1
	}
	return Money(bound.IntPart()) + tolerance
}

// EstimateGross validates the configuration and inverts ComputeNet.
func EstimateGross(targetNet Money, dependents int, rates Rates, brackets []Bracket, opts ...EstimateOption) (Estimate, error) {
	calc, err := newCalculatorFromBrackets(rates, brackets)
	if err != nil {
		return Estimate{}, err
	}
	return calc.EstimateGross(targetNet, dependents, opts...), nil
}
