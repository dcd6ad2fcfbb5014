package payroll

import "context"

type StoreAPI interface {
	// UpsertStructure inserts or updates the employee's single structure row
	// and raises the employee's payroll flag in the same transaction.
	UpsertStructure(ctx context.Context, incoming Structure) (*Structure, error)
	StructureByID(ctx context.Context, id int64) (*Structure, error)
	StructureByEmployee(ctx context.Context, employeeID int64) (*Structure, error)
	ListStructures(ctx context.Context) ([]Structure, error)

	// InsertPayslips persists the whole batch or none of it.
	InsertPayslips(ctx context.Context, records []Payslip) ([]Payslip, error)
	PayslipByID(ctx context.Context, id int64) (*Payslip, error)
	ListPayslips(ctx context.Context) ([]Payslip, error)
}
