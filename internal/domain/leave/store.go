package leave

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const leaveColumns = `id, employee_id, leave_type, status, start_date, end_date, submitted_date, reason, attachment`

func (s *Store) Insert(ctx context.Context, record Leave) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
		INSERT INTO leaves (employee_id, leave_type, status, start_date, end_date, submitted_date, reason, attachment)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		record.EmployeeID, record.LeaveType, record.Status, record.StartDate,
		record.EndDate, record.SubmittedDate, record.Reason, record.Attachment,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert leave: %w", err)
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, record Leave) error {
	tag, err := s.DB.Exec(ctx, `
		UPDATE leaves
		SET leave_type = $2, status = $3, start_date = $4, end_date = $5, reason = $6
		WHERE id = $1`,
		record.ID, record.LeaveType, record.Status, record.StartDate, record.EndDate, record.Reason,
	)
	if err != nil {
		return fmt.Errorf("update leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ByID(ctx context.Context, id int64) (*Leave, error) {
	row := s.DB.QueryRow(ctx,
		`SELECT `+leaveColumns+` FROM leaves WHERE id = $1`, id)
	return scanLeave(row)
}

func (s *Store) ByEmployee(ctx context.Context, employeeID int64) ([]Leave, error) {
	rows, err := s.DB.Query(ctx,
		`SELECT `+leaveColumns+` FROM leaves WHERE employee_id = $1 ORDER BY submitted_date DESC, id DESC`,
		employeeID)
	if err != nil {
		return nil, fmt.Errorf("list leaves for employee: %w", err)
	}
	defer rows.Close()
	return collectLeaves(rows)
}

func (s *Store) ListAll(ctx context.Context) ([]Leave, error) {
	rows, err := s.DB.Query(ctx,
		`SELECT ` + leaveColumns + ` FROM leaves ORDER BY submitted_date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list leaves: %w", err)
	}
	defer rows.Close()
	return collectLeaves(rows)
}

func scanLeave(row pgx.Row) (*Leave, error) {
	var record Leave
	err := row.Scan(&record.ID, &record.EmployeeID, &record.LeaveType, &record.Status,
		&record.StartDate, &record.EndDate, &record.SubmittedDate, &record.Reason, &record.Attachment)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan leave: %w", err)
	}
	return &record, nil
}

func collectLeaves(rows pgx.Rows) ([]Leave, error) {
	var out []Leave
	for rows.Next() {
		var record Leave
		if err := rows.Scan(&record.ID, &record.EmployeeID, &record.LeaveType, &record.Status,
			&record.StartDate, &record.EndDate, &record.SubmittedDate, &record.Reason, &record.Attachment); err != nil {
			return nil, fmt.Errorf("scan leave: %w", err)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leaves: %w", err)
	}
	return out, nil
}
