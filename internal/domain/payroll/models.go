package payroll

import "time"

// Structure is an employee's salary breakdown. There is exactly one per
// employee, enforced by lookup-then-upsert rather than a uniqueness
// constraint.
type Structure struct {
	ID               int64   `json:"id"`
	EmployeeID       int64   `json:"employeeId"`
	Basic            float64 `json:"basic"`
	HRA              float64 `json:"hra"`
	SpecialAllowance float64 `json:"specialAllowance"`
	GrossEarnings    float64 `json:"grossEarnings"`
	ProfessionalTax  float64 `json:"professionalTax"`
	ProvidentFund    float64 `json:"providentFund"`
	NetSalary        float64 `json:"netSalary"`
}

// Payslip is an append-only snapshot referencing the structure that existed
// at generation time. GeneratedOn is server-stamped and never changes.
type Payslip struct {
	ID          int64     `json:"payslipId"`
	EmployeeID  int64     `json:"userId"`
	SalaryID    int64     `json:"salaryId"`
	Month       string    `json:"month"`
	Year        int       `json:"year"`
	GeneratedOn time.Time `json:"generatedOn"`
}
