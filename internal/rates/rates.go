// Package rates holds the statutory contribution rates and the statistical
// government-expenditure shares the calculation runs on. Everything here is
// fixed at compile time and never mutated.
package rates

// Rate is a social-insurance contribution rate as a fraction of gross
// salary, split between the employee-paid and employer-paid portions.
type Rate struct {
	Employee float64
	Employer float64
}

// Total returns the combined employee and employer rate.
func (r Rate) Total() float64 {
	return r.Employee + r.Employer
}

var (
	Pension      = Rate{Employee: 0.1550, Employer: 0.0885}
	Health       = Rate{Employee: 0.0636, Employer: 0.0656}
	Unemployment = Rate{Employee: 0.0014, Employer: 0.0006}
	Parental     = Rate{Employee: 0.0010, Employer: 0.0010}
	Injury       = Rate{Employer: 0.0053}
	LongTermCare = Rate{Employee: 0.0100, Employer: 0.0100}
)

// FlatHealthFee is the flat monthly health charge, owed regardless of the
// salary level. It is the only non-proportional component.
const FlatHealthFee = 35.0

var all = []Rate{Pension, Health, Unemployment, Parental, Injury, LongTermCare}

// EmployeeTotal returns the sum of all employee-side rates (0.2310).
func EmployeeTotal() float64 {
	var total float64
	for _, r := range all {
		total += r.Employee
	}
	return total
}

// EmployerTotal returns the sum of all employer-side rates (0.1710).
func EmployerTotal() float64 {
	var total float64
	for _, r := range all {
		total += r.Employer
	}
	return total
}

// Category identifies one user-facing report category. The values double as
// the JSON keys of the allocations object.
type Category string

const (
	CategoryPensions              Category = "pensions"
	CategoryHealthcare            Category = "healthcare"
	CategoryUnemployment          Category = "unemployment"
	CategoryFamilySupport         Category = "familySupport"
	CategoryOtherSocialProtection Category = "otherSocialProtection"
	CategoryEducation             Category = "education"
	CategoryDefence               Category = "defence"
	CategoryPolice                Category = "police"
	CategoryEconomicAffairs       Category = "economicAffairs"
	CategoryGeneralPublicServices Category = "generalPublicServices"
	CategoryCulture               Category = "culture"
	CategoryEnvironment           Category = "environment"
	CategoryHousing               Category = "housing"
)

// Categories lists the report categories in presentation order.
var Categories = []Category{
	CategoryPensions,
	CategoryHealthcare,
	CategoryUnemployment,
	CategoryFamilySupport,
	CategoryOtherSocialProtection,
	CategoryEducation,
	CategoryDefence,
	CategoryPolice,
	CategoryEconomicAffairs,
	CategoryGeneralPublicServices,
	CategoryCulture,
	CategoryEnvironment,
	CategoryHousing,
}

var displayNames = map[Category]string{
	CategoryPensions:              "Pensions",
	CategoryHealthcare:            "Healthcare",
	CategoryUnemployment:          "Unemployment",
	CategoryFamilySupport:         "Family support",
	CategoryOtherSocialProtection: "Other social protection",
	CategoryEducation:             "Education",
	CategoryDefence:               "Defence",
	CategoryPolice:                "Police",
	CategoryEconomicAffairs:       "Economic affairs",
	CategoryGeneralPublicServices: "General public services",
	CategoryCulture:               "Culture",
	CategoryEnvironment:           "Environment",
	CategoryHousing:               "Housing",
}

// DisplayName returns the human-readable category name used in the
// breakdown entries.
func (c Category) DisplayName() string {
	return displayNames[c]
}

// generalShares is the share of total government expenditure per
// top-level function. Sums to 1.0.
var generalShares = map[string]float64{
	"socialProtection":      0.411,
	"health":                0.153,
	"education":             0.115,
	"economicAffairs":       0.103,
	"generalPublicServices": 0.107,
	"publicOrder":           0.035,
	"defence":               0.024,
	"recreationCulture":     0.031,
	"environment":           0.012,
	"housing":               0.009,
}

// socialShares splits social-protection expenditure into its sub-functions.
// Sums to 1.0.
var socialShares = map[string]float64{
	"oldAgeAndSurvivors":    0.615,
	"sicknessAndDisability": 0.165,
	"familyAndChildren":     0.085,
	"unemployment":          0.035,
	"other":                 0.100,
}

// TaxShares combines the two expenditure tables into the final share of
// personal income tax per report category. Sickness-and-disability spending
// is reported under healthcare, so that category carries two terms. The
// shares exhaustively partition government expenditure and sum to 1.0.
func TaxShares() map[Category]float64 {
	social := generalShares["socialProtection"]
	return map[Category]float64{
		CategoryPensions:              social * socialShares["oldAgeAndSurvivors"],
		CategoryHealthcare:            generalShares["health"] + social*socialShares["sicknessAndDisability"],
		CategoryUnemployment:          social * socialShares["unemployment"],
		CategoryFamilySupport:         social * socialShares["familyAndChildren"],
		CategoryOtherSocialProtection: social * socialShares["other"],
		CategoryEducation:             generalShares["education"],
		CategoryDefence:               generalShares["defence"],
		CategoryPolice:                generalShares["publicOrder"],
		CategoryEconomicAffairs:       generalShares["economicAffairs"],
		CategoryGeneralPublicServices: generalShares["generalPublicServices"],
		CategoryCulture:               generalShares["recreationCulture"],
		CategoryEnvironment:           generalShares["environment"],
		CategoryHousing:               generalShares["housing"],
	}
}
