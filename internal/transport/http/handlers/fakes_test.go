package handlers_test

import (
	"context"
	"sync"

	"ems/internal/domain/directory"
	"ems/internal/domain/leave"
	"ems/internal/domain/payroll"
	"ems/internal/domain/review"
)

// In-memory stores implementing each domain's StoreAPI so the full router can
// be exercised without a database.

type employeeStore struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]directory.Employee
}

func newEmployeeStore() *employeeStore {
	return &employeeStore{byID: make(map[int64]directory.Employee)}
}

func (m *employeeStore) Insert(_ context.Context, emp directory.Employee) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	emp.ID = m.nextID
	m.byID[emp.ID] = emp
	return emp.ID, nil
}

func (m *employeeStore) Update(_ context.Context, emp directory.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[emp.ID]; !ok {
		return directory.ErrNotFound
	}
	m.byID[emp.ID] = emp
	return nil
}

func (m *employeeStore) ByID(_ context.Context, id int64) (*directory.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	emp, ok := m.byID[id]
	if !ok {
		return nil, directory.ErrNotFound
	}
	return &emp, nil
}

func (m *employeeStore) ByEmail(_ context.Context, emailID string) (*directory.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, emp := range m.byID {
		if emp.EmailID == emailID {
			copied := emp
			return &copied, nil
		}
	}
	return nil, directory.ErrNotFound
}

func (m *employeeStore) ByOfficialEmail(_ context.Context, email string) (*directory.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, emp := range m.byID {
		if emp.OfficialEmail == email {
			copied := emp
			return &copied, nil
		}
	}
	return nil, directory.ErrNotFound
}

func (m *employeeStore) List(_ context.Context) ([]directory.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]directory.Employee, 0, len(m.byID))
	for i := int64(1); i <= m.nextID; i++ {
		if emp, ok := m.byID[i]; ok {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (m *employeeStore) Subordinates(_ context.Context, managerID int64) ([]directory.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []directory.Employee
	for i := int64(1); i <= m.nextID; i++ {
		emp, ok := m.byID[i]
		if ok && emp.ManagerID != nil && *emp.ManagerID == managerID {
			out = append(out, emp)
		}
	}
	return out, nil
}

type leaveStore struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]leave.Leave
}

func newLeaveStore() *leaveStore {
	return &leaveStore{byID: make(map[int64]leave.Leave)}
}

func (m *leaveStore) Insert(_ context.Context, record leave.Leave) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	record.ID = m.nextID
	m.byID[record.ID] = record
	return record.ID, nil
}

func (m *leaveStore) Update(_ context.Context, record leave.Leave) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[record.ID]; !ok {
		return leave.ErrNotFound
	}
	m.byID[record.ID] = record
	return nil
}

func (m *leaveStore) ByID(_ context.Context, id int64) (*leave.Leave, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.byID[id]
	if !ok {
		return nil, leave.ErrNotFound
	}
	return &record, nil
}

func (m *leaveStore) ByEmployee(_ context.Context, employeeID int64) ([]leave.Leave, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []leave.Leave
	for i := int64(1); i <= m.nextID; i++ {
		record, ok := m.byID[i]
		if ok && record.EmployeeID == employeeID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (m *leaveStore) ListAll(_ context.Context) ([]leave.Leave, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []leave.Leave
	for i := int64(1); i <= m.nextID; i++ {
		if record, ok := m.byID[i]; ok {
			out = append(out, record)
		}
	}
	return out, nil
}

type reviewStore struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]review.Review
}

func newReviewStore() *reviewStore {
	return &reviewStore{byID: make(map[int64]review.Review)}
}

func (m *reviewStore) InsertBatch(_ context.Context, records []review.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, record := range records {
		m.nextID++
		record.ID = m.nextID
		m.byID[record.ID] = record
	}
	return nil
}

func (m *reviewStore) Update(_ context.Context, record review.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[record.ID]; !ok {
		return review.ErrNotFound
	}
	m.byID[record.ID] = record
	return nil
}

func (m *reviewStore) ByID(_ context.Context, id int64) (*review.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.byID[id]
	if !ok {
		return nil, review.ErrNotFound
	}
	return &record, nil
}

func (m *reviewStore) ByEmployee(_ context.Context, employeeID int64) ([]review.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []review.Review
	for i := m.nextID; i >= 1; i-- {
		record, ok := m.byID[i]
		if ok && record.EmployeeID == employeeID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (m *reviewStore) LatestByEmployee(ctx context.Context, employeeID int64) (*review.Review, error) {
	all, err := m.ByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, review.ErrNotFound
	}
	return &all[0], nil
}

func (m *reviewStore) ListAll(_ context.Context) ([]review.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []review.Review
	for i := m.nextID; i >= 1; i-- {
		if record, ok := m.byID[i]; ok {
			out = append(out, record)
		}
	}
	return out, nil
}

type payrollStore struct {
	mu          sync.Mutex
	nextSalary  int64
	nextPayslip int64
	structures  map[int64]payroll.Structure
	payslips    map[int64]payroll.Payslip
	employees   *employeeStore
}

func newPayrollStore(employees *employeeStore) *payrollStore {
	return &payrollStore{
		structures: make(map[int64]payroll.Structure),
		payslips:   make(map[int64]payroll.Payslip),
		employees:  employees,
	}
}

func (m *payrollStore) UpsertStructure(ctx context.Context, incoming payroll.Structure) (*payroll.Structure, error) {
	m.mu.Lock()
	var result payroll.Structure
	found := false
	for id, existing := range m.structures {
		if existing.EmployeeID == incoming.EmployeeID {
			result = payroll.MergeStructure(existing, incoming)
			m.structures[id] = result
			found = true
			break
		}
	}
	if !found {
		m.nextSalary++
		incoming.ID = m.nextSalary
		m.structures[incoming.ID] = incoming
		result = incoming
	}
	m.mu.Unlock()

	if emp, err := m.employees.ByID(ctx, incoming.EmployeeID); err == nil {
		emp.PayRoll = true
		_ = m.employees.Update(ctx, *emp)
	}
	return &result, nil
}

func (m *payrollStore) StructureByID(_ context.Context, id int64) (*payroll.Structure, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.structures[id]
	if !ok {
		return nil, payroll.ErrNotFound
	}
	return &record, nil
}

func (m *payrollStore) StructureByEmployee(_ context.Context, employeeID int64) (*payroll.Structure, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, record := range m.structures {
		if record.EmployeeID == employeeID {
			copied := record
			return &copied, nil
		}
	}
	return nil, payroll.ErrNotFound
}

func (m *payrollStore) ListStructures(_ context.Context) ([]payroll.Structure, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []payroll.Structure
	for i := int64(1); i <= m.nextSalary; i++ {
		if record, ok := m.structures[i]; ok {
			out = append(out, record)
		}
	}
	return out, nil
}

func (m *payrollStore) InsertPayslips(_ context.Context, records []payroll.Payslip) ([]payroll.Payslip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]payroll.Payslip, 0, len(records))
	for _, record := range records {
		m.nextPayslip++
		record.ID = m.nextPayslip
		m.payslips[record.ID] = record
		out = append(out, record)
	}
	return out, nil
}

func (m *payrollStore) PayslipByID(_ context.Context, id int64) (*payroll.Payslip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.payslips[id]
	if !ok {
		return nil, payroll.ErrNotFound
	}
	return &record, nil
}

func (m *payrollStore) ListPayslips(_ context.Context) ([]payroll.Payslip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []payroll.Payslip
	for i := int64(1); i <= m.nextPayslip; i++ {
		if record, ok := m.payslips[i]; ok {
			out = append(out, record)
		}
	}
	return out, nil
}
