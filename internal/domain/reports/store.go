package reports

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

type DepartmentHeadcount struct {
	DepartmentID   string `json:"departmentId"`
	DepartmentName string `json:"departmentName"`
	Headcount      int    `json:"headcount"`
}

type RunTotals struct {
	RunID           string  `json:"runId"`
	PayrollPeriod   string  `json:"payrollPeriod"`
	Status          string  `json:"status"`
	TotalEarnings   float64 `json:"totalEarnings"`
	TotalDeductions float64 `json:"totalDeductions"`
	NetPay          float64 `json:"netPay"`
}

func (s *Store) ActiveHeadcount(ctx context.Context, tenantID string) (int, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employees WHERE tenant_id = $1 AND status = 'active'", tenantID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Store) HeadcountByDepartment(ctx context.Context, tenantID string) ([]DepartmentHeadcount, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT COALESCE(e.department_id::text, ''), COALESCE(d.name, 'Unassigned'), COUNT(1)
    FROM employees e
    LEFT JOIN departments d ON d.id = e.department_id
    WHERE e.tenant_id = $1 AND e.status = 'active'
    GROUP BY e.department_id, d.name
    ORDER BY COUNT(1) DESC
  `, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DepartmentHeadcount
	for rows.Next() {
		var dh DepartmentHeadcount
		if err := rows.Scan(&dh.DepartmentID, &dh.DepartmentName, &dh.Headcount); err != nil {
			return nil, err
		}
		out = append(out, dh)
	}
	return out, nil
}

func (s *Store) PendingLeave(ctx context.Context, tenantID string) (int, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM leave_requests WHERE tenant_id = $1 AND status = 'pending'", tenantID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Store) PendingExits(ctx context.Context, tenantFilter string) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT
      (SELECT COUNT(1) FROM resignations WHERE status = 'pending' AND ($1 = '' OR tenant_id = $1)) +
      (SELECT COUNT(1) FROM terminations WHERE status = 'pending' AND ($1 = '' OR tenant_id = $1))
  `, tenantFilter).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Store) PendingOnboarding(ctx context.Context, tenantFilter string) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1) FROM onboarding_records
    WHERE status IN ('pending', 'in_progress') AND ($1 = '' OR tenant_id = $1)
  `, tenantFilter).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Store) LatestRunTotals(ctx context.Context, tenantID string, limit int) ([]RunTotals, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, payroll_period, status, total_earnings, total_deductions, net_pay
    FROM payroll_runs
    WHERE tenant_id = $1
    ORDER BY created_at DESC
    LIMIT $2
  `, tenantID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunTotals
	for rows.Next() {
		var rt RunTotals
		if err := rows.Scan(&rt.RunID, &rt.PayrollPeriod, &rt.Status, &rt.TotalEarnings, &rt.TotalDeductions, &rt.NetPay); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, nil
}

func (s *Store) PayslipCount(ctx context.Context, tenantID, employeeID string) (int, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM payslips WHERE tenant_id = $1 AND employee_id = $2", tenantID, employeeID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
