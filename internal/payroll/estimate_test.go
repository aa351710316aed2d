package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateGrossZeroTarget(t *testing.T) {
	calc := newVNCalculator(t)

	est := calc.EstimateGross(0, 3)
	assert.Equal(t, Money(0), est.Gross)
	assert.Equal(t, 0, est.Iterations)
	assert.True(t, est.Converged)

	est = calc.EstimateGross(-10, 0)
	assert.Equal(t, Money(0), est.Gross)
	assert.Equal(t, []Clamp{{Field: "target_net_salary", Original: -10}}, est.Clamped)
}

func TestEstimateGrossRoundTrip(t *testing.T) {
	calc := newVNCalculator(t)
	targets := []Money{1, 999, 5 * million, 9_950_000, 15 * million, 39_562_500, 75_123_456, 250 * million}

	for _, method := range []Method{FixedPoint, Bisection} {
		for _, target := range targets {
			for deps := 0; deps <= 4; deps++ {
				est := calc.EstimateGross(target, deps, WithMethod(method))
				require.True(t, est.Converged, "%s target %d deps %d", method, target, deps)

				net := calc.ComputeNet(est.Gross, deps).NetSalary
				assert.Equal(t, net, est.Net)
				assert.Less(t, absMoney(target-net), DefaultTolerance, "%s target %d deps %d", method, target, deps)
				assert.GreaterOrEqual(t, est.Gross, Money(0))
				assert.LessOrEqual(t, est.Iterations, DefaultMaxIterations)
				assert.Equal(t, method, est.Method)
			}
		}
	}
}

func TestEstimateGrossRecoversScenario(t *testing.T) {
	est, err := EstimateGross(39_562_500, 0, vnRates(), vnBrackets())
	require.NoError(t, err)
	require.True(t, est.Converged)
	assert.InDelta(t, 50_000_000, int64(est.Gross), 1500)
}

func TestEstimateGrossTightTolerance(t *testing.T) {
	calc := newVNCalculator(t)

	est := calc.EstimateGross(30*million, 1, WithTolerance(1), WithMethod(Bisection))
	require.True(t, est.Converged)
	assert.Equal(t, Money(30*million), est.Net)
}

// A 99% top rate makes each fixed-point step recover under 1% of the error.
func steepCalculator(t *testing.T) *Calculator {
	t.Helper()
	schedule, err := NewSchedule([]Bracket{
		{LowerBound: 0, UpperBound: 5 * million, Rate: rate("0.05")},
		{LowerBound: 5 * million, UpperBound: Unbounded, Rate: rate("0.99")},
	})
	require.NoError(t, err)
	calc, err := NewCalculator(vnRates(), schedule)
	require.NoError(t, err)
	return calc
}

func TestEstimateGrossFixedPointStallsWithoutError(t *testing.T) {
	calc := steepCalculator(t)

	est := calc.EstimateGross(100*million, 0)
	assert.False(t, est.Converged)
	assert.Equal(t, DefaultMaxIterations, est.Iterations)
	assert.Greater(t, est.Gross, Money(100*million))

	// The best estimate is the closest one seen.
	net := calc.ComputeNet(est.Gross, 0).NetSalary
	assert.Equal(t, net, est.Net)
	assert.Less(t, net, Money(100*million))
}

func TestEstimateGrossBisectionHandlesSteepSchedule(t *testing.T) {
	calc := steepCalculator(t)

	est := calc.EstimateGross(100*million, 0, WithMethod(Bisection))
	require.True(t, est.Converged)
	assert.Less(t, absMoney(100*million-est.Net), DefaultTolerance)
	assert.LessOrEqual(t, est.Iterations, 64)
}

func TestEstimateGrossIterationCap(t *testing.T) {
	calc := newVNCalculator(t)

	est := calc.EstimateGross(80*million, 0, WithMaxIterations(1))
	assert.False(t, est.Converged)
	assert.Equal(t, 1, est.Iterations)
	assert.Equal(t, Money(80*million), est.Gross)

	est = calc.EstimateGross(80*million, 0, WithMaxIterations(0), WithTolerance(-5))
	assert.True(t, est.Converged)
}

func TestParseMethod(t *testing.T) {
	m, ok := ParseMethod("")
	assert.True(t, ok)
	assert.Equal(t, FixedPoint, m)

	m, ok = ParseMethod("bisection")
	assert.True(t, ok)
	assert.Equal(t, Bisection, m)
	assert.Equal(t, "bisection", m.String())

	_, ok = ParseMethod("newton")
	assert.False(t, ok)
}

func TestEstimateGrossRejectsBadConfig(t *testing.T) {
	_, err := EstimateGross(1, 0, vnRates(), nil)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}
