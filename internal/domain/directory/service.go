package directory

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"ems/internal/domain/auth"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+$`)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

// Create validates and persists a new employee. The manager reference is
// resolved best-effort: an id that does not resolve leaves the link unset.
func (s *Service) Create(ctx context.Context, emp Employee, password string) (*Employee, error) {
	if strings.TrimSpace(emp.EmailID) == "" {
		return nil, fmt.Errorf("%w: email cannot be empty", ErrInvalid)
	}
	if !emailPattern.MatchString(emp.EmailID) {
		return nil, fmt.Errorf("%w: invalid email format", ErrInvalid)
	}
	if len(password) < auth.MinCredentialLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters long", ErrInvalid, auth.MinCredentialLength)
	}

	existing, err := s.store.ByOfficialEmail(ctx, emp.EmailID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: employee with same email id already exists", ErrInvalid)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	emp.PasswordHash = hash
	if emp.Status == "" {
		emp.Status = StatusActive
	}

	if emp.ManagerID != nil {
		if _, err := s.store.ByID(ctx, *emp.ManagerID); err != nil {
			if !errors.Is(err, ErrNotFound) {
				return nil, err
			}
			emp.ManagerID = nil
		}
	}

	id, err := s.store.Insert(ctx, emp)
	if err != nil {
		return nil, err
	}
	emp.ID = id
	return &emp, nil
}

// UpdateField looks an employee up by personal email and sets one attribute
// from its textual representation.
func (s *Service) UpdateField(ctx context.Context, emailID, fieldName, value string) (*Employee, error) {
	emp, err := s.store.ByEmail(ctx, emailID)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(fieldName, "officialEmail") {
		other, err := s.store.ByOfficialEmail(ctx, value)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		if other != nil && other.ID != emp.ID {
			return nil, fmt.Errorf("%w: this official email is already set to another employee", ErrInvalid)
		}
	}

	if err := ApplyField(emp, fieldName, value); err != nil {
		return nil, err
	}
	if err := s.store.Update(ctx, *emp); err != nil {
		return nil, err
	}
	return emp, nil
}

// Update replaces a whole employee record, re-validating the email.
func (s *Service) Update(ctx context.Context, emp Employee) error {
	if strings.TrimSpace(emp.EmailID) == "" {
		return fmt.Errorf("%w: email cannot be empty", ErrInvalid)
	}
	if !emailPattern.MatchString(emp.EmailID) {
		return fmt.Errorf("%w: invalid email format", ErrInvalid)
	}
	return s.store.Update(ctx, emp)
}

// SoftDelete marks the employee as exiting. Records are never removed.
func (s *Service) SoftDelete(ctx context.Context, id int64) error {
	emp, err := s.store.ByID(ctx, id)
	if err != nil {
		return err
	}
	emp.Status = StatusExiting
	return s.store.Update(ctx, *emp)
}

// UpdateStatus overwrites the status label. Any text is accepted; the label
// set is not closed.
func (s *Service) UpdateStatus(ctx context.Context, emailID, status string) (*Employee, error) {
	emp, err := s.store.ByEmail(ctx, emailID)
	if err != nil {
		return nil, err
	}
	emp.Status = status
	if err := s.store.Update(ctx, *emp); err != nil {
		return nil, err
	}
	return emp, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Employee, error) {
	return s.store.ByID(ctx, id)
}

func (s *Service) GetByOfficialEmail(ctx context.Context, email string) (*Employee, error) {
	return s.store.ByOfficialEmail(ctx, email)
}

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	return s.store.List(ctx)
}

// Subordinates derives the inverse of the manager reference by index; no
// redundant subordinate list is stored.
func (s *Service) Subordinates(ctx context.Context, managerID int64) ([]Employee, error) {
	return s.store.Subordinates(ctx, managerID)
}

func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.store.ByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Lookup resolves an employee id to the outward-facing shape. Used by the
// denormalizing read paths of other domains.
func (s *Service) Lookup(ctx context.Context, id int64) (*Info, error) {
	emp, err := s.store.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	info := emp.Info()
	return &info, nil
}

// Authenticate checks the credential for the official-email identity.
func (s *Service) Authenticate(ctx context.Context, officialEmail, password string) (*Employee, error) {
	emp, err := s.store.ByOfficialEmail(ctx, officialEmail)
	if err != nil {
		return nil, err
	}
	if err := auth.CheckPassword(emp.PasswordHash, password); err != nil {
		return nil, ErrBadCredentials
	}
	return emp, nil
}

func (s *Service) ResetPassword(ctx context.Context, officialEmail, password string) error {
	if len(password) < auth.MinCredentialLength {
		return fmt.Errorf("%w: password must be at least %d characters long", ErrInvalid, auth.MinCredentialLength)
	}
	emp, err := s.store.ByOfficialEmail(ctx, officialEmail)
	if err != nil {
		return err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	emp.PasswordHash = hash
	return s.store.Update(ctx, *emp)
}

// SetDocument stores the identity document blob for the employee found by
// personal email.
func (s *Service) SetDocument(ctx context.Context, emailID string, data []byte) (*Employee, error) {
	emp, err := s.store.ByEmail(ctx, emailID)
	if err != nil {
		return nil, err
	}
	emp.AadhaarPan = data
	if err := s.store.Update(ctx, *emp); err != nil {
		return nil, err
	}
	return emp, nil
}

func (s *Service) Document(ctx context.Context, id int64) ([]byte, error) {
	emp, err := s.store.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return emp.AadhaarPan, nil
}

func (s *Service) SetProfilePic(ctx context.Context, id int64, data []byte) ([]byte, error) {
	emp, err := s.store.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	emp.ProfilePic = data
	if err := s.store.Update(ctx, *emp); err != nil {
		return nil, err
	}
	return emp.ProfilePic, nil
}

func (s *Service) ProfilePic(ctx context.Context, id int64) ([]byte, error) {
	emp, err := s.store.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return emp.ProfilePic, nil
}
