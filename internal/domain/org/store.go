package org

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store persists organisational structure. Departments, designations,
// reporting managers and shifts accept an optional tenant filter (empty
// string means unscoped); holidays are always tenant scoped.
type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) CreateDepartment(ctx context.Context, tenantID string, dep Department) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO departments (tenant_id, name, parent_id, manager_id)
    VALUES ($1, $2, NULLIF($3, '')::uuid, NULLIF($4, '')::uuid)
    RETURNING id
  `, tenantID, dep.Name, dep.ParentID, dep.ManagerID).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetDepartment(ctx context.Context, tenantFilter, departmentID string) (*Department, error) {
	var dep Department
	err := s.DB.QueryRow(ctx, `
    SELECT id, COALESCE(tenant_id, ''), name, COALESCE(parent_id::text, ''), COALESCE(manager_id::text, ''), created_at
    FROM departments
    WHERE id = $1 AND ($2 = '' OR tenant_id = $2)
  `, departmentID, tenantFilter).Scan(&dep.ID, &dep.TenantID, &dep.Name, &dep.ParentID, &dep.ManagerID, &dep.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDepartmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dep, nil
}

func (s *Store) ListDepartments(ctx context.Context, tenantFilter string) ([]Department, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, COALESCE(tenant_id, ''), name, COALESCE(parent_id::text, ''), COALESCE(manager_id::text, ''), created_at
    FROM departments
    WHERE ($1 = '' OR tenant_id = $1)
    ORDER BY name
  `, tenantFilter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Department
	for rows.Next() {
		var dep Department
		if err := rows.Scan(&dep.ID, &dep.TenantID, &dep.Name, &dep.ParentID, &dep.ManagerID, &dep.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, dep)
	}
	return out, nil
}

func (s *Store) UpdateDepartment(ctx context.Context, tenantFilter string, dep Department) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE departments
    SET name = $1, parent_id = NULLIF($2, '')::uuid, manager_id = NULLIF($3, '')::uuid
    WHERE id = $4 AND ($5 = '' OR tenant_id = $5)
  `, dep.Name, dep.ParentID, dep.ManagerID, dep.ID, tenantFilter)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrDepartmentNotFound
	}
	return nil
}

func (s *Store) DeleteDepartment(ctx context.Context, tenantFilter, departmentID string) error {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM departments WHERE id = $1 AND ($2 = '' OR tenant_id = $2)
  `, departmentID, tenantFilter)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrDepartmentNotFound
	}
	return nil
}

func (s *Store) CreateDesignation(ctx context.Context, tenantID string, des Designation) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO designations (tenant_id, title, grade, department_id)
    VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, '')::uuid)
    RETURNING id
  `, tenantID, des.Title, des.Grade, des.DepartmentID).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetDesignation(ctx context.Context, tenantFilter, designationID string) (*Designation, error) {
	var des Designation
	err := s.DB.QueryRow(ctx, `
    SELECT id, COALESCE(tenant_id, ''), title, COALESCE(grade, ''), COALESCE(department_id::text, ''), created_at
    FROM designations
    WHERE id = $1 AND ($2 = '' OR tenant_id = $2)
  `, designationID, tenantFilter).Scan(&des.ID, &des.TenantID, &des.Title, &des.Grade, &des.DepartmentID, &des.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDesignationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &des, nil
}

func (s *Store) ListDesignations(ctx context.Context, tenantFilter string) ([]Designation, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, COALESCE(tenant_id, ''), title, COALESCE(grade, ''), COALESCE(department_id::text, ''), created_at
    FROM designations
    WHERE ($1 = '' OR tenant_id = $1)
    ORDER BY title
  `, tenantFilter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Designation
	for rows.Next() {
		var des Designation
		if err := rows.Scan(&des.ID, &des.TenantID, &des.Title, &des.Grade, &des.DepartmentID, &des.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, des)
	}
	return out, nil
}

func (s *Store) UpdateDesignation(ctx context.Context, tenantFilter string, des Designation) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE designations
    SET title = $1, grade = NULLIF($2, ''), department_id = NULLIF($3, '')::uuid
    WHERE id = $4 AND ($5 = '' OR tenant_id = $5)
  `, des.Title, des.Grade, des.DepartmentID, des.ID, tenantFilter)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrDesignationNotFound
	}
	return nil
}

func (s *Store) DeleteDesignation(ctx context.Context, tenantFilter, designationID string) error {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM designations WHERE id = $1 AND ($2 = '' OR tenant_id = $2)
  `, designationID, tenantFilter)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrDesignationNotFound
	}
	return nil
}

func (s *Store) CreateReportingManager(ctx context.Context, tenantID string, rm ReportingManager) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO reporting_managers (tenant_id, employee_id, manager_id, effective_from)
    VALUES ($1, $2, $3, $4)
    RETURNING id
  `, tenantID, rm.EmployeeID, rm.ManagerID, rm.EffectiveFrom).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetReportingManager(ctx context.Context, tenantFilter, recordID string) (*ReportingManager, error) {
	var rm ReportingManager
	err := s.DB.QueryRow(ctx, `
    SELECT id, COALESCE(tenant_id, ''), employee_id, manager_id, effective_from, created_at
    FROM reporting_managers
    WHERE id = $1 AND ($2 = '' OR tenant_id = $2)
  `, recordID, tenantFilter).Scan(&rm.ID, &rm.TenantID, &rm.EmployeeID, &rm.ManagerID, &rm.EffectiveFrom, &rm.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrReportingManagerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

func (s *Store) ListReportingManagers(ctx context.Context, tenantFilter string) ([]ReportingManager, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, COALESCE(tenant_id, ''), employee_id, manager_id, effective_from, created_at
    FROM reporting_managers
    WHERE ($1 = '' OR tenant_id = $1)
    ORDER BY created_at DESC
  `, tenantFilter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ReportingManager
	for rows.Next() {
		var rm ReportingManager
		if err := rows.Scan(&rm.ID, &rm.TenantID, &rm.EmployeeID, &rm.ManagerID, &rm.EffectiveFrom, &rm.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, nil
}

func (s *Store) UpdateReportingManager(ctx context.Context, tenantFilter string, rm ReportingManager) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE reporting_managers
    SET employee_id = $1, manager_id = $2, effective_from = $3
    WHERE id = $4 AND ($5 = '' OR tenant_id = $5)
  `, rm.EmployeeID, rm.ManagerID, rm.EffectiveFrom, rm.ID, tenantFilter)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrReportingManagerNotFound
	}
	return nil
}

func (s *Store) DeleteReportingManager(ctx context.Context, tenantFilter, recordID string) error {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM reporting_managers WHERE id = $1 AND ($2 = '' OR tenant_id = $2)
  `, recordID, tenantFilter)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrReportingManagerNotFound
	}
	return nil
}

func (s *Store) CreateShift(ctx context.Context, tenantID string, sh Shift) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO shifts (tenant_id, name, start_time, end_time, days)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id
  `, tenantID, sh.Name, sh.StartTime, sh.EndTime, sh.Days).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetShift(ctx context.Context, tenantFilter, shiftID string) (*Shift, error) {
	var sh Shift
	err := s.DB.QueryRow(ctx, `
    SELECT id, COALESCE(tenant_id, ''), name, start_time, end_time, COALESCE(days, '{}'), created_at
    FROM shifts
    WHERE id = $1 AND ($2 = '' OR tenant_id = $2)
  `, shiftID, tenantFilter).Scan(&sh.ID, &sh.TenantID, &sh.Name, &sh.StartTime, &sh.EndTime, &sh.Days, &sh.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrShiftNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sh, nil
}

func (s *Store) ListShifts(ctx context.Context, tenantFilter string) ([]Shift, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, COALESCE(tenant_id, ''), name, start_time, end_time, COALESCE(days, '{}'), created_at
    FROM shifts
    WHERE ($1 = '' OR tenant_id = $1)
    ORDER BY name
  `, tenantFilter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Shift
	for rows.Next() {
		var sh Shift
		if err := rows.Scan(&sh.ID, &sh.TenantID, &sh.Name, &sh.StartTime, &sh.EndTime, &sh.Days, &sh.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, sh)
	}
	return out, nil
}

func (s *Store) UpdateShift(ctx context.Context, tenantFilter string, sh Shift) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE shifts
    SET name = $1, start_time = $2, end_time = $3, days = $4
    WHERE id = $5 AND ($6 = '' OR tenant_id = $6)
  `, sh.Name, sh.StartTime, sh.EndTime, sh.Days, sh.ID, tenantFilter)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrShiftNotFound
	}
	return nil
}

func (s *Store) DeleteShift(ctx context.Context, tenantFilter, shiftID string) error {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM shifts WHERE id = $1 AND ($2 = '' OR tenant_id = $2)
  `, shiftID, tenantFilter)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrShiftNotFound
	}
	return nil
}
