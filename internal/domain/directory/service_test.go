package directory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"ems/internal/domain/auth"
)

type memStore struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]Employee
}

func newMemStore() *memStore {
	return &memStore{byID: make(map[int64]Employee)}
}

func (m *memStore) Insert(_ context.Context, emp Employee) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	emp.ID = m.nextID
	m.byID[emp.ID] = emp
	return emp.ID, nil
}

func (m *memStore) Update(_ context.Context, emp Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[emp.ID]; !ok {
		return ErrNotFound
	}
	m.byID[emp.ID] = emp
	return nil
}

func (m *memStore) ByID(_ context.Context, id int64) (*Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	emp, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &emp, nil
}

func (m *memStore) ByEmail(_ context.Context, emailID string) (*Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, emp := range m.byID {
		if emp.EmailID == emailID {
			copied := emp
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memStore) ByOfficialEmail(_ context.Context, email string) (*Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, emp := range m.byID {
		if emp.OfficialEmail == email {
			copied := emp
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memStore) List(_ context.Context) ([]Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Employee, 0, len(m.byID))
	for i := int64(1); i <= m.nextID; i++ {
		if emp, ok := m.byID[i]; ok {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (m *memStore) Subordinates(_ context.Context, managerID int64) ([]Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Employee
	for i := int64(1); i <= m.nextID; i++ {
		emp, ok := m.byID[i]
		if ok && emp.ManagerID != nil && *emp.ManagerID == managerID {
			out = append(out, emp)
		}
	}
	return out, nil
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newMemStore())
	ctx := context.Background()

	if _, err := svc.Create(ctx, Employee{}, "secret123"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("empty email: expected ErrInvalid, got %v", err)
	}
	if _, err := svc.Create(ctx, Employee{EmailID: "not an email"}, "secret123"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("malformed email: expected ErrInvalid, got %v", err)
	}
	if _, err := svc.Create(ctx, Employee{EmailID: "a@b.c"}, "short"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("short password: expected ErrInvalid, got %v", err)
	}
}

func TestCreateHashesCredential(t *testing.T) {
	svc := NewService(newMemStore())
	emp, err := svc.Create(context.Background(), Employee{EmailID: "asha@corp.io", FirstName: "Asha"}, "secret123")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if emp.PasswordHash == "secret123" || emp.PasswordHash == "" {
		t.Fatal("credential must be stored hashed")
	}
	if err := auth.CheckPassword(emp.PasswordHash, "secret123"); err != nil {
		t.Fatalf("hash does not verify: %v", err)
	}
	if emp.Status != StatusActive {
		t.Fatalf("expected default status Active, got %q", emp.Status)
	}
}

func TestCreateRejectsDuplicateOfficialEmail(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	ctx := context.Background()

	if _, err := store.Insert(ctx, Employee{OfficialEmail: "taken@corp.io"}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if _, err := svc.Create(ctx, Employee{EmailID: "taken@corp.io"}, "secret123"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for claimed official email, got %v", err)
	}
}

func TestCreateResolvesManagerSilently(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	ctx := context.Background()

	managerID, _ := store.Insert(ctx, Employee{EmailID: "boss@corp.io"})

	dangling := int64(999)
	emp, err := svc.Create(ctx, Employee{EmailID: "a@corp.io", ManagerID: &dangling}, "secret123")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if emp.ManagerID != nil {
		t.Fatal("dangling manager id must leave the link unset")
	}

	emp, err = svc.Create(ctx, Employee{EmailID: "b@corp.io", ManagerID: &managerID}, "secret123")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if emp.ManagerID == nil || *emp.ManagerID != managerID {
		t.Fatalf("expected manager link %d, got %v", managerID, emp.ManagerID)
	}
}

func TestUpdateField(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	ctx := context.Background()

	if _, err := store.Insert(ctx, Employee{EmailID: "asha@corp.io"}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	emp, err := svc.UpdateField(ctx, "asha@corp.io", "salary", "72000")
	if err != nil {
		t.Fatalf("update field failed: %v", err)
	}
	if emp.Salary != 72000 {
		t.Fatalf("expected salary 72000, got %v", emp.Salary)
	}

	if _, err := svc.UpdateField(ctx, "missing@corp.io", "salary", "1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.UpdateField(ctx, "asha@corp.io", "bogus", "1"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for unknown field, got %v", err)
	}
}

func TestUpdateFieldOfficialEmailUniqueness(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	ctx := context.Background()

	store.Insert(ctx, Employee{EmailID: "a@corp.io", OfficialEmail: "a@official.io"})
	store.Insert(ctx, Employee{EmailID: "b@corp.io", OfficialEmail: "b@official.io"})

	if _, err := svc.UpdateField(ctx, "a@corp.io", "officialEmail", "b@official.io"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for duplicate official email, got %v", err)
	}
	if _, err := svc.UpdateField(ctx, "a@corp.io", "officialEmail", "fresh@official.io"); err != nil {
		t.Fatalf("expected fresh official email to be accepted: %v", err)
	}
}

func TestSoftDeleteMarksExiting(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	ctx := context.Background()

	id, _ := store.Insert(ctx, Employee{EmailID: "a@corp.io", Status: StatusActive})
	if err := svc.SoftDelete(ctx, id); err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}
	emp, _ := store.ByID(ctx, id)
	if emp.Status != StatusExiting {
		t.Fatalf("expected status Exiting, got %q", emp.Status)
	}
	if err := svc.SoftDelete(ctx, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateStatusAcceptsFreeText(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	ctx := context.Background()

	store.Insert(ctx, Employee{EmailID: "a@corp.io", Status: StatusActive})
	emp, err := svc.UpdateStatus(ctx, "a@corp.io", "Sabbatical")
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if emp.Status != "Sabbatical" {
		t.Fatalf("expected free-text status to be stored, got %q", emp.Status)
	}
}

func TestSubordinatesDerivedFromManagerIndex(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	ctx := context.Background()

	bossID, _ := store.Insert(ctx, Employee{EmailID: "boss@corp.io"})
	store.Insert(ctx, Employee{EmailID: "a@corp.io", ManagerID: &bossID})
	store.Insert(ctx, Employee{EmailID: "b@corp.io", ManagerID: &bossID})
	store.Insert(ctx, Employee{EmailID: "c@corp.io"})

	subs, err := svc.Subordinates(ctx, bossID)
	if err != nil {
		t.Fatalf("subordinates failed: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("expected 2 subordinates, got %d", len(subs))
	}
}

func TestInfoHidesSensitiveFields(t *testing.T) {
	emp := Employee{
		ID:           1,
		PasswordHash: "$2a$10$hash",
		AadhaarPan:   []byte{1, 2, 3},
		ProfilePic:   []byte{4, 5, 6},
		EmailID:      "a@corp.io",
	}
	info := emp.Info()
	if info.EmailID != "a@corp.io" || info.ID != 1 {
		t.Fatalf("unexpected info: %+v", info)
	}
	// Info carries neither the hash nor the blobs; the compiler enforces the
	// shape, this pins the intent.
}

func TestAuthenticate(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	ctx := context.Background()

	hash, _ := auth.HashPassword("secret123")
	store.Insert(ctx, Employee{OfficialEmail: "a@official.io", PasswordHash: hash})

	if _, err := svc.Authenticate(ctx, "a@official.io", "secret123"); err != nil {
		t.Fatalf("expected login to succeed: %v", err)
	}
	if _, err := svc.Authenticate(ctx, "a@official.io", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "missing@official.io", "secret123"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
