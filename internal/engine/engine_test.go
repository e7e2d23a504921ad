package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tax-engine/internal/model"
	"tax-engine/internal/rates"
)

func TestTypicalSalary(t *testing.T) {
	report, err := Compute(2000, 1400)
	require.NoError(t, err)

	require.Equal(t, 600.0, report.Withheld)
	require.InDelta(t, 497.0, report.EmployeeContributions, 1e-9)
	require.InDelta(t, 342.0, report.EmployerContributions, 1e-9)
	require.InDelta(t, 103.0, report.PersonalIncomeTax, 1e-9)

	assert.InDelta(t, 487.0, report.Contributions.Pension, 1e-9)
	assert.InDelta(t, 333.4, report.Contributions.Health, 1e-9)
	assert.InDelta(t, 4.0, report.Contributions.Unemployment, 1e-9)
	assert.InDelta(t, 4.0, report.Contributions.Parental, 1e-9)
	assert.InDelta(t, 10.6, report.Contributions.Injury, 1e-9)

	require.InDelta(t, 942.0, report.TotalCollected, 1e-9)
	require.Len(t, report.Breakdown, 13)
}

func TestBreakEvenSalaryClampsTax(t *testing.T) {
	// Employee contributions exceed the withheld amount, so the estimated
	// tax clamps to zero instead of going negative.
	report, err := Compute(1000, 1000)
	require.NoError(t, err)

	require.Equal(t, 0.0, report.Withheld)
	require.Equal(t, 0.0, report.PersonalIncomeTax)

	for category, amount := range report.Allocations {
		assert.Equal(t, 0.0, amount, "allocation for %s", category)
	}

	contributionSum := report.Contributions.Pension + report.Contributions.Health +
		report.Contributions.Unemployment + report.Contributions.Parental + report.Contributions.Injury
	require.InDelta(t, contributionSum, report.TotalCollected, 1e-9)
}

func TestNetMayExceedGross(t *testing.T) {
	report, err := Compute(1500, 1600)
	require.NoError(t, err)

	require.Equal(t, -100.0, report.Withheld)
	require.Equal(t, 0.0, report.PersonalIncomeTax)
}

func TestNegativeNetAllowed(t *testing.T) {
	report, err := Compute(1000, -50)
	require.NoError(t, err)

	require.Equal(t, 1050.0, report.Withheld)
	require.InDelta(t, 784.0, report.PersonalIncomeTax, 1e-9)
}

func TestInvalidInputs(t *testing.T) {
	cases := []struct {
		name  string
		gross float64
		net   float64
	}{
		{"zero gross", 0, 1400},
		{"negative gross", -2000, 1400},
		{"gross NaN", math.NaN(), 1400},
		{"gross positive infinity", math.Inf(1), 1400},
		{"gross negative infinity", math.Inf(-1), 1400},
		{"net NaN", 2000, math.NaN()},
		{"net infinity", 2000, math.Inf(1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report, err := Compute(tc.gross, tc.net)
			require.Nil(t, report)

			var invalid *InvalidInputError
			require.ErrorAs(t, err, &invalid)
			require.Equal(t, "Invalid salary values", invalid.Reason)
		})
	}
}

func TestBreakdownSumMatchesTotal(t *testing.T) {
	report, err := Compute(3000, 1900)
	require.NoError(t, err)
	require.Len(t, report.Breakdown, 13)

	var sum float64
	for _, entry := range report.Breakdown {
		assert.NotEmpty(t, entry.Name)
		sum += entry.Amount
	}
	require.InEpsilon(t, report.TotalCollected, sum, 1e-6)
}

func TestWithheldExact(t *testing.T) {
	pairs := [][2]float64{
		{2000, 1400},
		{1234.56, 901.23},
		{750, 800},
		{10000, 0},
	}

	for _, p := range pairs {
		report, err := Compute(p[0], p[1])
		require.NoError(t, err)
		require.Equal(t, p[0]-p[1], report.Withheld)
	}
}

func TestContributionsMonotonicInGross(t *testing.T) {
	const net = 400.0

	var prev model.Contributions
	for i, gross := range []float64{500, 1000, 2000, 4000} {
		report, err := Compute(gross, net)
		require.NoError(t, err)

		if i > 0 {
			assert.GreaterOrEqual(t, report.Contributions.Pension, prev.Pension)
			assert.GreaterOrEqual(t, report.Contributions.Health, prev.Health)
			assert.GreaterOrEqual(t, report.Contributions.Unemployment, prev.Unemployment)
			assert.GreaterOrEqual(t, report.Contributions.Parental, prev.Parental)
			assert.GreaterOrEqual(t, report.Contributions.Injury, prev.Injury)
		}
		prev = report.Contributions
	}
}

func TestTotalCollectedInvariant(t *testing.T) {
	pairs := [][2]float64{
		{2000, 1400},
		{3000, 1900},
		{950.5, 700.25},
	}

	for _, p := range pairs {
		report, err := Compute(p[0], p[1])
		require.NoError(t, err)

		expected := p[0]*(rates.EmployeeTotal()+rates.EmployerTotal()) +
			rates.FlatHealthFee + report.PersonalIncomeTax
		require.InEpsilon(t, expected, report.TotalCollected, 1e-9)
	}
}

func TestErrorImplementsError(t *testing.T) {
	var err error = &InvalidInputError{Reason: "Invalid salary values"}
	require.Equal(t, "Invalid salary values", err.Error())
	require.True(t, errors.As(err, new(*InvalidInputError)))
}
