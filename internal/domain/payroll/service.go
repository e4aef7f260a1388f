package payroll

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	cryptoutil "hrpay/internal/platform/crypto"
)

type Service struct {
	store  *Store
	crypto *cryptoutil.Service
}

func NewService(store *Store, crypto *cryptoutil.Service) *Service {
	return &Service{store: store, crypto: crypto}
}

func (s *Service) Store() *Store {
	return s.store
}

type payee struct {
	EmployeeID  string
	Salary      float64
	Currency    string
	BankAccount string
}

// Payees resolves the effective employee set for a run: the included set
// when one is given, otherwise the employee list minus exclusions.
func Payees(run *Run) []string {
	if len(run.IncludedEmployees) > 0 {
		return run.IncludedEmployees
	}
	excluded := make(map[string]bool, len(run.ExcludedEmployees))
	for _, id := range run.ExcludedEmployees {
		excluded[id] = true
	}
	var out []string
	for _, id := range run.EmployeeList {
		if !excluded[id] {
			out = append(out, id)
		}
	}
	return out
}

// ProcessRun computes payslips and statutory records for every payee, rolls
// the totals up onto the run, and moves it draft -> processed. The final
// transition is the atomic conditional update, so concurrent processing of
// the same run resolves to one winner.
func (s *Service) ProcessRun(ctx context.Context, tenantID, runID, actorID string, now time.Time) (*Run, error) {
	run, err := s.store.GetRun(ctx, tenantID, runID)
	if err != nil {
		return nil, err
	}
	if run.Status != StatusDraft {
		return nil, ErrInvalidTransition
	}

	components, err := s.store.ListComponents(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var runEarnings, runDeductions float64
	for _, employeeID := range Payees(run) {
		target, err := s.payeeData(ctx, tenantID, employeeID)
		if err != nil {
			continue
		}

		lines := componentLines(target.Salary, components)
		earnings, deductions, _ := ComputePay(target.Salary, lines)
		pf, esi, pt := StatutoryDeductions(target.Salary, earnings)
		deductions = RoundMoney(deductions + pf + esi + pt)
		net := RoundMoney(earnings - deductions)

		if _, err := s.store.UpsertPayslip(ctx, tenantID, Payslip{
			RunID:      runID,
			EmployeeID: employeeID,
			Earnings:   earnings,
			Deductions: deductions,
			NetPay:     net,
			Currency:   target.Currency,
		}); err != nil {
			return nil, err
		}
		for kind, amount := range map[string]float64{
			ComplianceProvidentFund:   pf,
			ComplianceESI:             esi,
			ComplianceProfessionalTax: pt,
		} {
			if amount == 0 {
				continue
			}
			if _, err := s.store.CreateComplianceRecord(ctx, tenantID, ComplianceRecord{
				RunID:      runID,
				EmployeeID: employeeID,
				Kind:       kind,
				Amount:     amount,
			}); err != nil {
				return nil, err
			}
		}

		runEarnings += earnings
		runDeductions += deductions
	}

	run.TotalEarnings = RoundMoney(runEarnings)
	run.TotalDeductions = RoundMoney(runDeductions)
	if err := s.store.UpdateRunDetails(ctx, tenantID, run); err != nil {
		return nil, err
	}

	return s.store.TransitionRun(ctx, tenantID, runID, StatusProcessed, actorID, now)
}

func (s *Service) payeeData(ctx context.Context, tenantID, employeeID string) (payee, error) {
	var target payee
	err := s.store.DB.QueryRow(ctx, `
    SELECT id, COALESCE(salary, 0), COALESCE(currency, 'INR'), COALESCE(bank_account, '')
    FROM employees
    WHERE tenant_id = $1 AND id = $2
  `, tenantID, employeeID).Scan(&target.EmployeeID, &target.Salary, &target.Currency, &target.BankAccount)
	return target, err
}

func componentLines(baseSalary float64, components []Component) []ComponentLine {
	var lines []ComponentLine
	for _, component := range components {
		amount := component.Amount
		if component.CalcType == "percentage" {
			amount = RoundMoney(baseSalary * component.Percentage / 100)
		}
		lines = append(lines, ComponentLine{
			Type:    component.ComponentType,
			Name:    component.Name,
			Amount:  amount,
			Taxable: component.Taxable,
		})
	}
	return lines
}

// RunWarnings summarizes data issues across a run's payslips.
func (s *Service) RunWarnings(ctx context.Context, tenantID, runID string) (map[string]int, error) {
	warnings := map[string]int{}
	rows, err := s.store.DB.Query(ctx, `
    SELECT p.net_pay, COALESCE(e.bank_account, '')
    FROM payslips p
    JOIN employees e ON p.employee_id = e.id
    WHERE p.tenant_id = $1 AND p.run_id = $2
  `, tenantID, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var net float64
		var bank string
		if err := rows.Scan(&net, &bank); err != nil {
			continue
		}
		if net < 0 {
			warnings[WarningNegativeNet]++
		}
		if bank == "" {
			warnings[WarningMissingBank]++
		}
	}
	return warnings, nil
}

type BankAdviceRow struct {
	EmployeeID  string
	FirstName   string
	LastName    string
	BankAccount string
	NetPay      float64
	Currency    string
}

// BankAdviceRows lists the payment lines for a run's bank advice export.
func (s *Service) BankAdviceRows(ctx context.Context, tenantID, runID string) ([]BankAdviceRow, error) {
	rows, err := s.store.DB.Query(ctx, `
    SELECT e.id, e.first_name, e.last_name, COALESCE(e.bank_account, ''), p.net_pay, p.currency
    FROM payslips p
    JOIN employees e ON p.employee_id = e.id
    WHERE p.tenant_id = $1 AND p.run_id = $2
    ORDER BY e.last_name, e.first_name
  `, tenantID, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BankAdviceRow
	for rows.Next() {
		var row BankAdviceRow
		if err := rows.Scan(&row.EmployeeID, &row.FirstName, &row.LastName, &row.BankAccount, &row.NetPay, &row.Currency); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}

// GeneratePayslipPDF renders the payslip to storage and returns the file
// path, encrypting at rest when a data key is configured.
func (s *Service) GeneratePayslipPDF(ctx context.Context, tenantID, payslipID string) (string, error) {
	slip, err := s.store.GetPayslip(ctx, tenantID, payslipID)
	if err != nil {
		return "", err
	}

	var firstName, lastName, email string
	var period string
	if err := s.store.DB.QueryRow(ctx, `
    SELECT e.first_name, e.last_name, e.email, r.payroll_period
    FROM payslips p
    JOIN employees e ON p.employee_id = e.id
    JOIN payroll_runs r ON p.run_id = r.id
    WHERE p.tenant_id = $1 AND p.id = $2
  `, tenantID, payslipID).Scan(&firstName, &lastName, &email, &period); err != nil {
		return "", err
	}

	if err := os.MkdirAll("storage/payslips", 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join("storage/payslips", slip.ID+".pdf")

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s %s", firstName, lastName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Email: %s", email))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", period))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Earnings: %.2f %s", slip.Earnings, slip.Currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %.2f %s", slip.Deductions, slip.Currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net Pay: %.2f %s", slip.NetPay, slip.Currency))

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}

	if s.crypto != nil && s.crypto.Configured() {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", err
		}
		encrypted, err := s.crypto.Encrypt(data)
		if err != nil {
			return "", err
		}
		encryptedPath := filePath + ".enc"
		if err := os.WriteFile(encryptedPath, encrypted, 0o600); err != nil {
			return "", err
		}
		if err := os.Remove(filePath); err != nil {
			return "", err
		}
		filePath = encryptedPath
	}

	if err := s.store.UpdatePayslipFileURL(ctx, tenantID, payslipID, filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
