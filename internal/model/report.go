package model

// Contributions holds the computed social-insurance amounts per kind.
// Each amount combines the employee and employer portions; health also
// carries the long-term-care rates and the flat monthly fee.
type Contributions struct {
	Pension      float64 `json:"pension"`
	Health       float64 `json:"health"`
	Unemployment float64 `json:"unemployment"`
	Parental     float64 `json:"parental"`
	Injury       float64 `json:"injury"`
}

// BreakdownEntry is one row of the user-facing report: a category name and
// the money attributed to it (direct contributions plus allocated tax).
type BreakdownEntry struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// DistributionReport is the full calculation result. It is assembled once
// per call and never mutated afterwards. All monetary fields are plain
// amounts in the input currency unit; rounding is left to the consumer.
type DistributionReport struct {
	GrossSalary           float64            `json:"grossSalary"`
	NetSalary             float64            `json:"netSalary"`
	Withheld              float64            `json:"withheld"`
	EmployeeContributions float64            `json:"employeeContributions"`
	EmployerContributions float64            `json:"employerContributions"`
	PersonalIncomeTax     float64            `json:"personalIncomeTax"`
	Contributions         Contributions      `json:"contributions"`
	Allocations           map[string]float64 `json:"allocations"`
	Breakdown             []BreakdownEntry   `json:"breakdown"`
	TotalCollected        float64            `json:"totalCollected"`
}

// ErrorResponse is the failure payload returned to the caller.
type ErrorResponse struct {
	Error string `json:"error"`
}
