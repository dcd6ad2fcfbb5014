package payroll

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ems/internal/domain/directory"
)

type memStore struct {
	mu          sync.Mutex
	nextSalary  int64
	nextPayslip int64
	structures  map[int64]Structure
	payslips    map[int64]Payslip
	flagged     map[int64]bool
}

func newMemStore() *memStore {
	return &memStore{
		structures: make(map[int64]Structure),
		payslips:   make(map[int64]Payslip),
		flagged:    make(map[int64]bool),
	}
}

func (m *memStore) UpsertStructure(_ context.Context, incoming Structure) (*Structure, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, existing := range m.structures {
		if existing.EmployeeID == incoming.EmployeeID {
			merged := MergeStructure(existing, incoming)
			m.structures[id] = merged
			m.flagged[incoming.EmployeeID] = true
			return &merged, nil
		}
	}
	m.nextSalary++
	incoming.ID = m.nextSalary
	m.structures[incoming.ID] = incoming
	m.flagged[incoming.EmployeeID] = true
	return &incoming, nil
}

func (m *memStore) StructureByID(_ context.Context, id int64) (*Structure, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.structures[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

func (m *memStore) StructureByEmployee(_ context.Context, employeeID int64) (*Structure, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, record := range m.structures {
		if record.EmployeeID == employeeID {
			copied := record
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memStore) ListStructures(_ context.Context) ([]Structure, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Structure
	for i := int64(1); i <= m.nextSalary; i++ {
		if record, ok := m.structures[i]; ok {
			out = append(out, record)
		}
	}
	return out, nil
}

func (m *memStore) InsertPayslips(_ context.Context, records []Payslip) ([]Payslip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Payslip, 0, len(records))
	for _, record := range records {
		m.nextPayslip++
		record.ID = m.nextPayslip
		m.payslips[record.ID] = record
		out = append(out, record)
	}
	return out, nil
}

func (m *memStore) PayslipByID(_ context.Context, id int64) (*Payslip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.payslips[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

func (m *memStore) ListPayslips(_ context.Context) ([]Payslip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Payslip
	for i := int64(1); i <= m.nextPayslip; i++ {
		if record, ok := m.payslips[i]; ok {
			out = append(out, record)
		}
	}
	return out, nil
}

type memDirectory struct {
	infos map[int64]*directory.Info
}

func (d *memDirectory) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := d.infos[id]
	return ok, nil
}

func (d *memDirectory) Lookup(_ context.Context, id int64) (*directory.Info, error) {
	info, ok := d.infos[id]
	if !ok {
		return nil, directory.ErrNotFound
	}
	return info, nil
}

func fixture() (*Service, *memStore) {
	store := newMemStore()
	dir := &memDirectory{infos: map[int64]*directory.Info{
		9: {ID: 9, FirstName: "Asha", LastName: "Rao", OfficialEmail: "asha@official.io"},
	}}
	return NewService(store, dir), store
}

func TestSubmitStructureOneRowPerEmployee(t *testing.T) {
	svc, store := fixture()
	ctx := context.Background()

	first, err := svc.SubmitStructure(ctx, Structure{EmployeeID: 9, NetSalary: 40000, ProvidentFund: 1800})
	if err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	second, err := svc.SubmitStructure(ctx, Structure{EmployeeID: 9, NetSalary: 45000, ProvidentFund: 9999})
	if err != nil {
		t.Fatalf("second submit failed: %v", err)
	}

	all, _ := store.ListStructures(ctx)
	if len(all) != 1 {
		t.Fatalf("expected exactly one structure row, got %d", len(all))
	}
	if second.ID != first.ID {
		t.Fatalf("update must reuse the existing row, got ids %d and %d", first.ID, second.ID)
	}
	if second.NetSalary != 45000 {
		t.Fatalf("expected net salary 45000, got %v", second.NetSalary)
	}
	if second.ProvidentFund != 1800 {
		t.Fatalf("update must leave provident fund untouched, got %v", second.ProvidentFund)
	}
	if !store.flagged[9] {
		t.Fatal("payroll flag must be raised on submit")
	}
}

func TestSubmitStructureValidation(t *testing.T) {
	svc, _ := fixture()
	ctx := context.Background()

	if _, err := svc.SubmitStructure(ctx, Structure{}); !errors.Is(err, ErrInvalid) {
		t.Fatalf("missing employee id: expected ErrInvalid, got %v", err)
	}
	if _, err := svc.SubmitStructure(ctx, Structure{EmployeeID: 404}); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("unknown employee: expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestMergeStructure(t *testing.T) {
	existing := Structure{ID: 3, EmployeeID: 9, Basic: 100, ProvidentFund: 1800}
	incoming := Structure{EmployeeID: 9, Basic: 200, HRA: 50, ProvidentFund: 5000, NetSalary: 999}

	merged := MergeStructure(existing, incoming)
	if merged.ID != 3 || merged.EmployeeID != 9 {
		t.Fatalf("merge must keep identity, got %+v", merged)
	}
	if merged.Basic != 200 || merged.HRA != 50 || merged.NetSalary != 999 {
		t.Fatalf("merge must take incoming scalars, got %+v", merged)
	}
	if merged.ProvidentFund != 1800 {
		t.Fatalf("merge must keep stored provident fund, got %v", merged.ProvidentFund)
	}
}

func TestStorePayslipsStampsGeneratedOn(t *testing.T) {
	svc, store := fixture()
	ctx := context.Background()
	before := time.Now().UTC()

	stored, err := svc.StorePayslips(ctx, []Payslip{
		{EmployeeID: 9, SalaryID: 1, Month: "January", Year: 2026, GeneratedOn: time.Unix(0, 0)},
		{EmployeeID: 9, SalaryID: 1, Month: "February", Year: 2026},
	})
	if err != nil {
		t.Fatalf("store payslips failed: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("expected 2 payslips, got %d", len(stored))
	}
	for _, slip := range stored {
		if slip.GeneratedOn.Before(before) {
			t.Fatalf("client-supplied timestamp must be replaced, got %v", slip.GeneratedOn)
		}
		if slip.ID == 0 {
			t.Fatal("expected assigned payslip id")
		}
	}

	all, _ := store.ListPayslips(ctx)
	if len(all) != 2 {
		t.Fatalf("expected 2 stored payslips, got %d", len(all))
	}

	if _, err := svc.StorePayslips(ctx, nil); !errors.Is(err, ErrInvalid) {
		t.Fatalf("empty batch: expected ErrInvalid, got %v", err)
	}
}

func TestRenderPayslipPDF(t *testing.T) {
	svc, _ := fixture()
	ctx := context.Background()

	structure, err := svc.SubmitStructure(ctx, Structure{EmployeeID: 9, Basic: 30000, NetSalary: 45000})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	stored, err := svc.StorePayslips(ctx, []Payslip{{EmployeeID: 9, SalaryID: structure.ID, Month: "March", Year: 2026}})
	if err != nil {
		t.Fatalf("store payslips failed: %v", err)
	}

	data, err := svc.RenderPayslipPDF(ctx, stored[0].ID)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected a PDF document, got %q", data[:min(8, len(data))])
	}

	if _, err := svc.RenderPayslipPDF(ctx, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
