package engine

import (
	"math"

	"github.com/samber/lo"

	"tax-engine/internal/model"
	"tax-engine/internal/rates"
)

// InvalidInputError reports salary values the calculation cannot work with:
// missing, non-finite, or a non-positive gross salary. It is returned, never
// panicked, so the caller can translate it into a protocol error.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}

const invalidSalaryMessage = "Invalid salary values"

// Compute maps a gross/net salary pair to the full distribution report:
// social-insurance contributions per kind, the estimated personal income
// tax, its allocation across government-expenditure categories, and the
// combined per-category breakdown.
//
// The function is pure. Any number of calls may run concurrently; every
// result is derived from the inputs and the constant tables alone.
func Compute(grossSalary, netSalary float64) (*model.DistributionReport, error) {
	if !isFinite(grossSalary) || !isFinite(netSalary) || grossSalary <= 0 {
		return nil, &InvalidInputError{Reason: invalidSalaryMessage}
	}

	contributions := model.Contributions{
		Pension:      grossSalary * rates.Pension.Total(),
		Health:       grossSalary*(rates.Health.Total()+rates.LongTermCare.Total()) + rates.FlatHealthFee,
		Unemployment: grossSalary * rates.Unemployment.Total(),
		Parental:     grossSalary * rates.Parental.Total(),
		Injury:       grossSalary * rates.Injury.Total(),
	}

	employeeContributions := grossSalary*rates.EmployeeTotal() + rates.FlatHealthFee
	employerContributions := grossSalary * rates.EmployerTotal()

	withheld := grossSalary - netSalary

	// Withheld pay covers the employee contributions plus income tax, so the
	// remainder after subtracting the contributions estimates the tax. When
	// the contributions alone exceed the withheld amount the tax is clamped
	// to zero rather than reported negative.
	personalIncomeTax := math.Max(0, withheld-employeeContributions)

	allocations := make(map[string]float64, len(rates.Categories))
	for category, share := range rates.TaxShares() {
		allocations[string(category)] = personalIncomeTax * share
	}

	// Direct contribution amounts per category. Injury insurance funds
	// healthcare, so it lands next to the health contribution; the remaining
	// categories are funded by allocated tax alone.
	direct := map[rates.Category]float64{
		rates.CategoryPensions:      contributions.Pension,
		rates.CategoryHealthcare:    contributions.Health + contributions.Injury,
		rates.CategoryUnemployment:  contributions.Unemployment,
		rates.CategoryFamilySupport: contributions.Parental,
	}

	breakdown := make([]model.BreakdownEntry, 0, len(rates.Categories))
	for _, category := range rates.Categories {
		breakdown = append(breakdown, model.BreakdownEntry{
			Name:   category.DisplayName(),
			Amount: direct[category] + allocations[string(category)],
		})
	}

	contributionSum := contributions.Pension + contributions.Health +
		contributions.Unemployment + contributions.Parental + contributions.Injury
	totalCollected := contributionSum + lo.Sum(lo.Values(allocations))

	return &model.DistributionReport{
		GrossSalary:           grossSalary,
		NetSalary:             netSalary,
		Withheld:              withheld,
		EmployeeContributions: employeeContributions,
		EmployerContributions: employerContributions,
		PersonalIncomeTax:     personalIncomeTax,
		Contributions:         contributions,
		Allocations:           allocations,
		Breakdown:             breakdown,
		TotalCollected:        totalCollected,
	}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
