package payroll

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

const structureColumns = `id, employee_id, basic, hra, special_allowance, gross_earnings, professional_tax, provident_fund, net_salary`
const payslipColumns = `payslip_id, user_id, salary_id, month, year, generated_on`

// UpsertStructure runs the lookup-then-write and the employee flag update in
// one transaction so a reader never sees a structure without the flag.
func (s *Store) UpsertStructure(ctx context.Context, incoming Structure) (*Structure, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin structure upsert: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx,
		`SELECT `+structureColumns+` FROM salaries WHERE employee_id = $1 LIMIT 1`,
		incoming.EmployeeID)
	existing, err := scanStructure(row)

	var result Structure
	switch {
	case err == nil:
		result = MergeStructure(*existing, incoming)
		_, err = tx.Exec(ctx, `
			UPDATE salaries
			SET basic = $2, hra = $3, special_allowance = $4, gross_earnings = $5,
				professional_tax = $6, net_salary = $7
			WHERE id = $1`,
			result.ID, result.Basic, result.HRA, result.SpecialAllowance,
			result.GrossEarnings, result.ProfessionalTax, result.NetSalary)
		if err != nil {
			return nil, fmt.Errorf("update structure: %w", err)
		}
	case errors.Is(err, ErrNotFound):
		result = incoming
		err = tx.QueryRow(ctx, `
			INSERT INTO salaries (employee_id, basic, hra, special_allowance, gross_earnings, professional_tax, provident_fund, net_salary)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id`,
			result.EmployeeID, result.Basic, result.HRA, result.SpecialAllowance,
			result.GrossEarnings, result.ProfessionalTax, result.ProvidentFund, result.NetSalary,
		).Scan(&result.ID)
		if err != nil {
			return nil, fmt.Errorf("insert structure: %w", err)
		}
	default:
		return nil, err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE employee SET pay_roll = TRUE WHERE id = $1`, incoming.EmployeeID); err != nil {
		return nil, fmt.Errorf("set payroll flag: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit structure upsert: %w", err)
	}
	return &result, nil
}

func (s *Store) StructureByID(ctx context.Context, id int64) (*Structure, error) {
	row := s.DB.QueryRow(ctx,
		`SELECT `+structureColumns+` FROM salaries WHERE id = $1`, id)
	return scanStructure(row)
}

func (s *Store) StructureByEmployee(ctx context.Context, employeeID int64) (*Structure, error) {
	row := s.DB.QueryRow(ctx,
		`SELECT `+structureColumns+` FROM salaries WHERE employee_id = $1 LIMIT 1`, employeeID)
	return scanStructure(row)
}

func (s *Store) ListStructures(ctx context.Context) ([]Structure, error) {
	rows, err := s.DB.Query(ctx,
		`SELECT ` + structureColumns + ` FROM salaries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list structures: %w", err)
	}
	defer rows.Close()

	var out []Structure
	for rows.Next() {
		var record Structure
		if err := rows.Scan(&record.ID, &record.EmployeeID, &record.Basic, &record.HRA,
			&record.SpecialAllowance, &record.GrossEarnings, &record.ProfessionalTax,
			&record.ProvidentFund, &record.NetSalary); err != nil {
			return nil, fmt.Errorf("scan structure: %w", err)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate structures: %w", err)
	}
	return out, nil
}

func (s *Store) InsertPayslips(ctx context.Context, records []Payslip) ([]Payslip, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin payslip batch: %w", err)
	}
	defer tx.Rollback(ctx)

	out := make([]Payslip, 0, len(records))
	for _, record := range records {
		err := tx.QueryRow(ctx, `
			INSERT INTO payslips (user_id, salary_id, month, year, generated_on)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING payslip_id`,
			record.EmployeeID, record.SalaryID, record.Month, record.Year, record.GeneratedOn,
		).Scan(&record.ID)
		if err != nil {
			return nil, fmt.Errorf("insert payslip for employee %d: %w", record.EmployeeID, err)
		}
		out = append(out, record)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit payslip batch: %w", err)
	}
	return out, nil
}

func (s *Store) PayslipByID(ctx context.Context, id int64) (*Payslip, error) {
	row := s.DB.QueryRow(ctx,
		`SELECT `+payslipColumns+` FROM payslips WHERE payslip_id = $1`, id)
	var record Payslip
	err := row.Scan(&record.ID, &record.EmployeeID, &record.SalaryID,
		&record.Month, &record.Year, &record.GeneratedOn)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan payslip: %w", err)
	}
	return &record, nil
}

func (s *Store) ListPayslips(ctx context.Context) ([]Payslip, error) {
	rows, err := s.DB.Query(ctx,
		`SELECT ` + payslipColumns + ` FROM payslips ORDER BY generated_on DESC, payslip_id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list payslips: %w", err)
	}
	defer rows.Close()

	var out []Payslip
	for rows.Next() {
		var record Payslip
		if err := rows.Scan(&record.ID, &record.EmployeeID, &record.SalaryID,
			&record.Month, &record.Year, &record.GeneratedOn); err != nil {
			return nil, fmt.Errorf("scan payslip: %w", err)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payslips: %w", err)
	}
	return out, nil
}

func scanStructure(row pgx.Row) (*Structure, error) {
	var record Structure
	err := row.Scan(&record.ID, &record.EmployeeID, &record.Basic, &record.HRA,
		&record.SpecialAllowance, &record.GrossEarnings, &record.ProfessionalTax,
		&record.ProvidentFund, &record.NetSalary)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan structure: %w", err)
	}
	return &record, nil
}
