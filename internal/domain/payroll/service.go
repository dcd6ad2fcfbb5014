package payroll

import (
	"context"
	"fmt"
	"time"

	"ems/internal/domain/directory"
)

// DirectoryAPI is the slice of the employee directory payroll needs.
type DirectoryAPI interface {
	Exists(ctx context.Context, id int64) (bool, error)
	Lookup(ctx context.Context, id int64) (*directory.Info, error)
}

type Service struct {
	store StoreAPI
	dir   DirectoryAPI
	now   func() time.Time
}

func NewService(store StoreAPI, dir DirectoryAPI) *Service {
	return &Service{store: store, dir: dir, now: time.Now}
}

// SubmitStructure creates or replaces the employee's single salary structure.
// Re-submission races under last-write-wins, the provident fund survives
// updates, and the employee's payroll flag goes up either way.
func (s *Service) SubmitStructure(ctx context.Context, incoming Structure) (*Structure, error) {
	if incoming.EmployeeID == 0 {
		return nil, fmt.Errorf("%w: employeeId is required", ErrInvalid)
	}
	exists, err := s.dir.Exists(ctx, incoming.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: id %d", ErrEmployeeNotFound, incoming.EmployeeID)
	}
	return s.store.UpsertStructure(ctx, incoming)
}

func (s *Service) AllStructures(ctx context.Context) ([]Structure, error) {
	return s.store.ListStructures(ctx)
}

func (s *Service) StructureFor(ctx context.Context, employeeID int64) (*Structure, error) {
	return s.store.StructureByEmployee(ctx, employeeID)
}

// StorePayslips stamps each entry with the server clock and appends the whole
// batch atomically. Stored payslips are never updated afterwards.
func (s *Service) StorePayslips(ctx context.Context, records []Payslip) ([]Payslip, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: payslip batch must not be empty", ErrInvalid)
	}
	now := s.now().UTC()
	for i := range records {
		records[i].ID = 0
		records[i].GeneratedOn = now
	}
	return s.store.InsertPayslips(ctx, records)
}

func (s *Service) AllPayslips(ctx context.Context) ([]Payslip, error) {
	return s.store.ListPayslips(ctx)
}

func (s *Service) Payslip(ctx context.Context, id int64) (*Payslip, error) {
	return s.store.PayslipByID(ctx, id)
}
