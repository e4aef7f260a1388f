package payroll

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

func (s *Store) UpsertPayslip(ctx context.Context, tenantID string, slip Payslip) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO payslips (tenant_id, run_id, employee_id, earnings, deductions, net_pay, currency)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    ON CONFLICT (run_id, employee_id)
    DO UPDATE SET earnings = EXCLUDED.earnings, deductions = EXCLUDED.deductions,
                  net_pay = EXCLUDED.net_pay, currency = EXCLUDED.currency
    RETURNING id
  `, tenantID, slip.RunID, slip.EmployeeID, slip.Earnings, slip.Deductions, slip.NetPay, slip.Currency).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetPayslip(ctx context.Context, tenantID, payslipID string) (*Payslip, error) {
	var slip Payslip
	err := s.DB.QueryRow(ctx, `
    SELECT id, tenant_id, run_id, employee_id, earnings, deductions, net_pay, currency, COALESCE(file_url, ''), created_at
    FROM payslips
    WHERE tenant_id = $1 AND id = $2
  `, tenantID, payslipID).Scan(&slip.ID, &slip.TenantID, &slip.RunID, &slip.EmployeeID,
		&slip.Earnings, &slip.Deductions, &slip.NetPay, &slip.Currency, &slip.FileURL, &slip.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPayslipNotFound
	}
	if err != nil {
		return nil, err
	}
	return &slip, nil
}

func (s *Store) ListPayslips(ctx context.Context, tenantID, runID string) ([]Payslip, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, tenant_id, run_id, employee_id, earnings, deductions, net_pay, currency, COALESCE(file_url, ''), created_at
    FROM payslips
    WHERE tenant_id = $1 AND run_id = $2
    ORDER BY employee_id
  `, tenantID, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slips []Payslip
	for rows.Next() {
		var slip Payslip
		if err := rows.Scan(&slip.ID, &slip.TenantID, &slip.RunID, &slip.EmployeeID,
			&slip.Earnings, &slip.Deductions, &slip.NetPay, &slip.Currency, &slip.FileURL, &slip.CreatedAt); err != nil {
			return nil, err
		}
		slips = append(slips, slip)
	}
	return slips, nil
}

func (s *Store) ListEmployeePayslips(ctx context.Context, tenantID, employeeID string, limit, offset int) ([]Payslip, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, tenant_id, run_id, employee_id, earnings, deductions, net_pay, currency, COALESCE(file_url, ''), created_at
    FROM payslips
    WHERE tenant_id = $1 AND employee_id = $2
    ORDER BY created_at DESC
    LIMIT $3 OFFSET $4
  `, tenantID, employeeID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slips []Payslip
	for rows.Next() {
		var slip Payslip
		if err := rows.Scan(&slip.ID, &slip.TenantID, &slip.RunID, &slip.EmployeeID,
			&slip.Earnings, &slip.Deductions, &slip.NetPay, &slip.Currency, &slip.FileURL, &slip.CreatedAt); err != nil {
			return nil, err
		}
		slips = append(slips, slip)
	}
	return slips, nil
}

func (s *Store) UpdatePayslipFileURL(ctx context.Context, tenantID, payslipID, fileURL string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE payslips SET file_url = $1 WHERE tenant_id = $2 AND id = $3
  `, fileURL, tenantID, payslipID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPayslipNotFound
	}
	return nil
}

func (s *Store) DeletePayslipsForRun(ctx context.Context, tenantID, runID string) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM payslips WHERE tenant_id = $1 AND run_id = $2", tenantID, runID)
	return err
}
