package payroll

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// RenderPayslipPDF renders a downloadable payslip document from the stored
// snapshot, its salary structure and the employee's identity. The employee
// lookup is best-effort so a payslip for a removed employee still renders.
func (s *Service) RenderPayslipPDF(ctx context.Context, payslipID int64) ([]byte, error) {
	slip, err := s.store.PayslipByID(ctx, payslipID)
	if err != nil {
		return nil, err
	}
	structure, err := s.store.StructureByID(ctx, slip.SalaryID)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("Employee #%d", slip.EmployeeID)
	email := ""
	if info, err := s.dir.Lookup(ctx, slip.EmployeeID); err == nil {
		name = info.FirstName + " " + info.LastName
		email = info.OfficialEmail
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", name))
	pdf.Ln(7)
	if email != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Email: %s", email))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s %d", slip.Month, slip.Year))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", slip.GeneratedOn.Format("2006-01-02")))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Basic: %.2f", structure.Basic))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("HRA: %.2f", structure.HRA))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Special Allowance: %.2f", structure.SpecialAllowance))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Gross Earnings: %.2f", structure.GrossEarnings))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Professional Tax: %.2f", structure.ProfessionalTax))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Provident Fund: %.2f", structure.ProvidentFund))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net Salary: %.2f", structure.NetSalary))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render payslip pdf: %w", err)
	}
	return buf.Bytes(), nil
}
