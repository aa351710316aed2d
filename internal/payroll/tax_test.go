package payroll

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTaxProgressive(t *testing.T) {
	cases := []struct {
		income Money
		want   Money
	}{
		{0, 0},
		{1, 0},
		{5 * million, 250_000},
		{10 * million, 750_000},
		{18 * million, 1_950_000},
		{32 * million, 4_750_000},
		{33_750_000, 5_187_500},
		{52 * million, 9_750_000},
		{80 * million, 18_150_000},
		{100 * million, 25_150_000},
	}
	for _, tc := range cases {
		got, err := ComputeTax(tc.income, vnBrackets())
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "income %d", tc.income)
	}
}

func TestTaxContinuousAtBoundaries(t *testing.T) {
	schedule, err := NewSchedule(vnBrackets())
	require.NoError(t, err)

	for _, b := range vnBrackets()[1:] {
		below, err := schedule.Tax(b.LowerBound - 1)
		require.NoError(t, err)
		at, err := schedule.Tax(b.LowerBound)
		require.NoError(t, err)
		above, err := schedule.Tax(b.LowerBound + 1)
		require.NoError(t, err)

		assert.LessOrEqual(t, at-below, Money(1), "jump below boundary %d", b.LowerBound)
		assert.LessOrEqual(t, above-at, Money(1), "jump above boundary %d", b.LowerBound)
		assert.GreaterOrEqual(t, above, at)
		assert.GreaterOrEqual(t, at, below)
	}
}

func TestTaxMonotonic(t *testing.T) {
	schedule, err := NewSchedule(vnBrackets())
	require.NoError(t, err)

	prev := Money(0)
	for income := Money(0); income <= 120*million; income += 137_777 {
		got, err := schedule.Tax(income)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, prev, "income %d", income)
		prev = got
	}
}

func TestTaxRejectsNegativeIncome(t *testing.T) {
	_, err := ComputeTax(-1, vnBrackets())
	assert.ErrorIs(t, err, ErrNegativeIncome)
	assert.False(t, errors.Is(err, ErrInvalidSchedule))
}

func TestNewScheduleRejectsMalformedTables(t *testing.T) {
	cases := map[string]func([]Bracket) []Bracket{
		"empty": func([]Bracket) []Bracket { return nil },
		"gap": func(b []Bracket) []Bracket {
			b[2].LowerBound += 1
			return b
		},
		"unsorted": func(b []Bracket) []Bracket {
			b[1], b[2] = b[2], b[1]
			return b
		},
		"flat rate": func(b []Bracket) []Bracket {
			b[3].Rate = b[2].Rate
			return b
		},
		"full rate": func(b []Bracket) []Bracket {
			b[6].Rate = rate("1")
			return b
		},
		"negative rate": func(b []Bracket) []Bracket {
			b[0].Rate = rate("-0.01")
			return b
		},
		"bounded top": func(b []Bracket) []Bracket {
			b[6].UpperBound = 200 * million
			return b
		},
		"unbounded middle": func(b []Bracket) []Bracket {
			b[3].UpperBound = Unbounded
			return b
		},
		"negative lower": func(b []Bracket) []Bracket {
			b[0].LowerBound = -1
			return b
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewSchedule(mutate(vnBrackets()))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSchedule)
			assert.False(t, errors.Is(err, ErrNegativeIncome))

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, "brackets", cfgErr.Field)
		})
	}
}

func TestScheduleOwnsItsBrackets(t *testing.T) {
	brackets := vnBrackets()
	schedule, err := NewSchedule(brackets)
	require.NoError(t, err)

	brackets[0].Rate = rate("0.5")
	got, err := schedule.Tax(5 * million)
	require.NoError(t, err)
	assert.Equal(t, Money(250_000), got)

	copied := schedule.Brackets()
	copied[0].Rate = rate("0.5")
	assert.True(t, schedule.Brackets()[0].Rate.Equal(rate("0.05")))
	assert.True(t, schedule.MaxRate().Equal(rate("0.35")))
}

func TestScheduleAllowsUntaxedBand(t *testing.T) {
	schedule, err := NewSchedule([]Bracket{
		{LowerBound: 2 * million, UpperBound: Unbounded, Rate: rate("0.1")},
	})
	require.NoError(t, err)

	got, err := schedule.Tax(2 * million)
	require.NoError(t, err)
	assert.Equal(t, Money(0), got)

	got, err = schedule.Tax(3 * million)
	require.NoError(t, err)
	assert.Equal(t, Money(100_000), got)
}
