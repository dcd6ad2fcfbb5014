package leave

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"ems/internal/domain/directory"
)

// DirectoryAPI is the slice of the employee directory the workflow needs:
// existence checks and identity lookups for denormalized listings.
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

// Apply creates a new leave in PENDING state with a server-stamped
// submission time.
func (s *Service) Apply(ctx context.Context, employeeID int64, leaveType, startDate, endDate, reason string, attachment []byte) (*Leave, error) {
	exists, err := s.dir.Exists(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: id %d", ErrEmployeeNotFound, employeeID)
	}

	normalized := strings.ToUpper(strings.TrimSpace(leaveType))
	if !contains(Types, normalized) {
		return nil, fmt.Errorf("%w: invalid leaveType value %q", ErrInvalid, leaveType)
	}

	start, err := parseDate(startDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format, use yyyy-MM-dd", ErrInvalid)
	}
	end, err := parseDate(endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format, use yyyy-MM-dd", ErrInvalid)
	}

	record := Leave{
		EmployeeID:    employeeID,
		LeaveType:     normalized,
		Status:        StatusPending,
		StartDate:     start,
		EndDate:       end,
		SubmittedDate: s.now().UTC(),
		Reason:        reason,
		Attachment:    attachment,
	}
	id, err := s.store.Insert(ctx, record)
	if err != nil {
		return nil, err
	}
	record.ID = id
	return &record, nil
}

// ChangeStatus overwrites the status with any member of the enumeration.
// There is no forward-only guard: APPROVED can go back to PENDING.
func (s *Service) ChangeStatus(ctx context.Context, leaveID int64, actionType string) (*Leave, error) {
	normalized := strings.ToUpper(strings.TrimSpace(actionType))
	if !contains(Statuses, normalized) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalid, actionType)
	}

	record, err := s.store.ByID(ctx, leaveID)
	if err != nil {
		return nil, err
	}
	record.Status = normalized
	if err := s.store.Update(ctx, *record); err != nil {
		return nil, err
	}
	return record, nil
}

// Cancel forces the leave to CANCELLED regardless of its prior state and
// returns the employee's full leave history.
func (s *Service) Cancel(ctx context.Context, leaveID int64) ([]Leave, error) {
	record, err := s.store.ByID(ctx, leaveID)
	if err != nil {
		return nil, err
	}
	record.Status = StatusCancelled
	if err := s.store.Update(ctx, *record); err != nil {
		return nil, err
	}
	return s.store.ByEmployee(ctx, record.EmployeeID)
}

func (s *Service) History(ctx context.Context, employeeID int64) ([]Leave, error) {
	return s.store.ByEmployee(ctx, employeeID)
}

// AllHistory returns every leave denormalized with the employee's display
// identity. A record whose employee or manager reference does not resolve is
// returned with the identity fields empty; one dangling reference must not
// abort the listing.
func (s *Service) AllHistory(ctx context.Context) ([]HistoryEntry, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(records))
	for _, record := range records {
		entry := HistoryEntry{
			ID:            record.ID,
			EmployeeID:    record.EmployeeID,
			LeaveType:     record.LeaveType,
			Status:        record.Status,
			StartDate:     record.StartDate,
			EndDate:       record.EndDate,
			SubmittedDate: record.SubmittedDate,
			Reason:        record.Reason,
		}
		info, err := s.dir.Lookup(ctx, record.EmployeeID)
		if err != nil {
			slog.Warn("leave history: employee did not resolve", "leaveId", record.ID, "employeeId", record.EmployeeID, "err", err)
		} else {
			entry.Name = info.FirstName + " " + info.LastName
			entry.EmailID = info.EmailID
			entry.ManagerID = info.ManagerID
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(value))
}

func contains(set []string, value string) bool {
	for _, candidate := range set {
		if candidate == value {
			return true
		}
	}
	return false
}
