package payroll

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

func (s *Store) ListComponents(ctx context.Context, tenantID string) ([]Component, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, tenant_id, name, component_type, calc_type, amount, percentage, taxable, created_at
    FROM salary_components
    WHERE tenant_id = $1
    ORDER BY name
  `, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var components []Component
	for rows.Next() {
		var component Component
		if err := rows.Scan(&component.ID, &component.TenantID, &component.Name, &component.ComponentType,
			&component.CalcType, &component.Amount, &component.Percentage, &component.Taxable, &component.CreatedAt); err != nil {
			return nil, err
		}
		components = append(components, component)
	}
	return components, nil
}

func (s *Store) GetComponent(ctx context.Context, tenantID, componentID string) (*Component, error) {
	var component Component
	err := s.DB.QueryRow(ctx, `
    SELECT id, tenant_id, name, component_type, calc_type, amount, percentage, taxable, created_at
    FROM salary_components
    WHERE tenant_id = $1 AND id = $2
  `, tenantID, componentID).Scan(&component.ID, &component.TenantID, &component.Name, &component.ComponentType,
		&component.CalcType, &component.Amount, &component.Percentage, &component.Taxable, &component.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrComponentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &component, nil
}

func (s *Store) CreateComponent(ctx context.Context, tenantID string, component Component) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO salary_components (tenant_id, name, component_type, calc_type, amount, percentage, taxable)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id
  `, tenantID, component.Name, component.ComponentType, component.CalcType,
		component.Amount, component.Percentage, component.Taxable).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) UpdateComponent(ctx context.Context, tenantID string, component Component) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE salary_components
    SET name = $1, component_type = $2, calc_type = $3, amount = $4, percentage = $5, taxable = $6
    WHERE tenant_id = $7 AND id = $8
  `, component.Name, component.ComponentType, component.CalcType,
		component.Amount, component.Percentage, component.Taxable, tenantID, component.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrComponentNotFound
	}
	return nil
}

func (s *Store) DeleteComponent(ctx context.Context, tenantID, componentID string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM salary_components WHERE tenant_id = $1 AND id = $2", tenantID, componentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrComponentNotFound
	}
	return nil
}

func (s *Store) CreateComplianceRecord(ctx context.Context, tenantID string, record ComplianceRecord) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO compliance_records (tenant_id, run_id, employee_id, kind, amount)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, tenantID, record.RunID, record.EmployeeID, record.Kind, record.Amount).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ListComplianceRecords(ctx context.Context, tenantID, runID string) ([]ComplianceRecord, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, tenant_id, run_id, employee_id, kind, amount, created_at
    FROM compliance_records
    WHERE tenant_id = $1 AND run_id = $2
    ORDER BY employee_id, kind
  `, tenantID, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ComplianceRecord
	for rows.Next() {
		var record ComplianceRecord
		if err := rows.Scan(&record.ID, &record.TenantID, &record.RunID, &record.EmployeeID,
			&record.Kind, &record.Amount, &record.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
