package directory

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const employeeColumns = `
    id, first_name, last_name, mobile_number, alternate_mobile_number, status,
    password, date_of_joining, COALESCE(salary, 0), email_id, role, official_email,
    orientation_date, laptop_assigned, knowledge_transfer, id_returned,
    exit_interview, pay_roll, aadhaar_pan, profile_pic, manager_id, created_at`

func (s *Store) Insert(ctx context.Context, emp Employee) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employee (first_name, last_name, mobile_number, alternate_mobile_number,
      status, password, date_of_joining, salary, email_id, role, official_email,
      orientation_date, laptop_assigned, knowledge_transfer, id_returned,
      exit_interview, pay_roll, aadhaar_pan, profile_pic, manager_id)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
    RETURNING id
  `,
		emp.FirstName, emp.LastName, emp.MobileNumber, emp.AlternateMobile,
		emp.Status, emp.PasswordHash, emp.DateOfJoining, emp.Salary, emp.EmailID,
		emp.Role, emp.OfficialEmail, emp.OrientationDate, emp.LaptopAssigned,
		emp.KnowledgeTransfer, emp.IDReturned, emp.ExitInterview, emp.PayRoll,
		emp.AadhaarPan, emp.ProfilePic, emp.ManagerID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, emp Employee) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE employee
    SET first_name = $1,
        last_name = $2,
        mobile_number = $3,
        alternate_mobile_number = $4,
        status = $5,
        password = $6,
        date_of_joining = $7,
        salary = $8,
        email_id = $9,
        role = $10,
        official_email = $11,
        orientation_date = $12,
        laptop_assigned = $13,
        knowledge_transfer = $14,
        id_returned = $15,
        exit_interview = $16,
        pay_roll = $17,
        aadhaar_pan = $18,
        profile_pic = $19,
        manager_id = $20
    WHERE id = $21
  `,
		emp.FirstName, emp.LastName, emp.MobileNumber, emp.AlternateMobile,
		emp.Status, emp.PasswordHash, emp.DateOfJoining, emp.Salary, emp.EmailID,
		emp.Role, emp.OfficialEmail, emp.OrientationDate, emp.LaptopAssigned,
		emp.KnowledgeTransfer, emp.IDReturned, emp.ExitInterview, emp.PayRoll,
		emp.AadhaarPan, emp.ProfilePic, emp.ManagerID, emp.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ByID(ctx context.Context, id int64) (*Employee, error) {
	return s.scanOne(s.DB.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employee WHERE id = $1`, id))
}

func (s *Store) ByEmail(ctx context.Context, emailID string) (*Employee, error) {
	return s.scanOne(s.DB.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employee WHERE email_id = $1`, emailID))
}

func (s *Store) ByOfficialEmail(ctx context.Context, email string) (*Employee, error) {
	return s.scanOne(s.DB.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employee WHERE official_email = $1`, email))
}

func (s *Store) List(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+employeeColumns+` FROM employee ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMany(rows)
}

func (s *Store) Subordinates(ctx context.Context, managerID int64) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+employeeColumns+` FROM employee WHERE manager_id = $1 ORDER BY id`, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMany(rows)
}

func (s *Store) scanOne(row pgx.Row) (*Employee, error) {
	var emp Employee
	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.MobileNumber, &emp.AlternateMobile,
		&emp.Status, &emp.PasswordHash, &emp.DateOfJoining, &emp.Salary, &emp.EmailID,
		&emp.Role, &emp.OfficialEmail, &emp.OrientationDate, &emp.LaptopAssigned,
		&emp.KnowledgeTransfer, &emp.IDReturned, &emp.ExitInterview, &emp.PayRoll,
		&emp.AadhaarPan, &emp.ProfilePic, &emp.ManagerID, &emp.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func scanMany(rows pgx.Rows) ([]Employee, error) {
	var out []Employee
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(
			&emp.ID, &emp.FirstName, &emp.LastName, &emp.MobileNumber, &emp.AlternateMobile,
			&emp.Status, &emp.PasswordHash, &emp.DateOfJoining, &emp.Salary, &emp.EmailID,
			&emp.Role, &emp.OfficialEmail, &emp.OrientationDate, &emp.LaptopAssigned,
			&emp.KnowledgeTransfer, &emp.IDReturned, &emp.ExitInterview, &emp.PayRoll,
			&emp.AadhaarPan, &emp.ProfilePic, &emp.ManagerID, &emp.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}
