package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"ems/internal/domain/directory"
)

// DirectoryAPI resolves employee identities for the denormalized listing.
type DirectoryAPI interface {
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

// StartCycle creates one PENDING review per given employee id with all six
// subscores at zero and the reviewer unassigned. The ids are taken as-is:
// duplicates and dangling references are accepted. The whole batch persists
// or none of it does.
func (s *Service) StartCycle(ctx context.Context, employeeIDs []int64, periodStart, periodEnd string) (int, error) {
	if len(employeeIDs) == 0 {
		return 0, fmt.Errorf("%w: employeeIds must not be empty", ErrInvalid)
	}
	start, err := parseDate(periodStart)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid reviewPeriodStart, use yyyy-MM-dd", ErrInvalid)
	}
	end, err := parseDate(periodEnd)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid reviewPeriodEnd, use yyyy-MM-dd", ErrInvalid)
	}

	now := s.now().UTC()
	records := make([]Review, 0, len(employeeIDs))
	for _, employeeID := range employeeIDs {
		zero := 0
		r := Review{
			EmployeeID:    employeeID,
			ReviewerID:    0,
			PeriodStart:   start,
			PeriodEnd:     end,
			GoalsAchieved: &zero,
			Communication: &zero,
			Technical:     &zero,
			Teamwork:      &zero,
			Leadership:    &zero,
			Punctuality:   &zero,
			Status:        StatusPending,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		r.OverallRating = OverallRating(r.GoalsAchieved, r.Communication, r.Technical, r.Teamwork, r.Leadership, r.Punctuality)
		records = append(records, r)
	}
	if err := s.store.InsertBatch(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// Update overwrites the stored review's reviewer, period, subscores, comments
// and status, then recomputes the overall rating before persisting.
func (s *Service) Update(ctx context.Context, incoming Review) (*Review, error) {
	existing, err := s.store.ByID(ctx, incoming.ID)
	if err != nil {
		return nil, err
	}
	if incoming.Status != "" && !contains(Statuses, strings.ToUpper(incoming.Status)) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalid, incoming.Status)
	}

	existing.ReviewerID = incoming.ReviewerID
	existing.PeriodStart = incoming.PeriodStart
	existing.PeriodEnd = incoming.PeriodEnd
	existing.GoalsAchieved = incoming.GoalsAchieved
	existing.Communication = incoming.Communication
	existing.Technical = incoming.Technical
	existing.Teamwork = incoming.Teamwork
	existing.Leadership = incoming.Leadership
	existing.Punctuality = incoming.Punctuality
	existing.Comments = incoming.Comments
	if incoming.Status != "" {
		existing.Status = strings.ToUpper(incoming.Status)
	}
	existing.OverallRating = OverallRating(existing.GoalsAchieved, existing.Communication,
		existing.Technical, existing.Teamwork, existing.Leadership, existing.Punctuality)
	existing.UpdatedAt = s.now().UTC()

	if err := s.store.Update(ctx, *existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Latest returns the most recently created review for the employee.
func (s *Service) Latest(ctx context.Context, employeeID int64) (*Review, error) {
	return s.store.LatestByEmployee(ctx, employeeID)
}

func (s *Service) List(ctx context.Context, employeeID int64) ([]Review, error) {
	return s.store.ByEmployee(ctx, employeeID)
}

// Acknowledge sets the status to ACKNOWLEDGED unconditionally. There is no
// guard requiring a prior SUBMITTED state: a PENDING review can be
// acknowledged directly.
func (s *Service) Acknowledge(ctx context.Context, reviewID int64) (*Review, error) {
	record, err := s.store.ByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	record.Status = StatusAcknowledged
	record.UpdatedAt = s.now().UTC()
	if err := s.store.Update(ctx, *record); err != nil {
		return nil, err
	}
	return record, nil
}

// AllWithNames returns every review joined with employee and reviewer display
// identities. Unresolvable references stay empty; one dangling id must not
// abort the listing.
func (s *Service) AllWithNames(ctx context.Context) ([]NamedReview, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]NamedReview, 0, len(records))
	for _, record := range records {
		named := NamedReview{Review: record}
		if info, err := s.dir.Lookup(ctx, record.EmployeeID); err != nil {
			slog.Warn("review listing: employee did not resolve", "reviewId", record.ID, "employeeId", record.EmployeeID, "err", err)
		} else {
			named.EmployeeName = info.FirstName + " " + info.LastName
			named.EmployeeEmail = info.EmailID
		}
		if record.ReviewerID != 0 {
			if info, err := s.dir.Lookup(ctx, record.ReviewerID); err != nil {
				slog.Warn("review listing: reviewer did not resolve", "reviewId", record.ID, "reviewerId", record.ReviewerID, "err", err)
			} else {
				named.ReviewerName = info.FirstName + " " + info.LastName
			}
		}
		out = append(out, named)
	}
	return out, nil
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
