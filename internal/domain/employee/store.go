package employee

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
    id, tenant_id, COALESCE(user_id::text, ''), COALESCE(employee_number, ''),
    first_name, last_name, email, COALESCE(phone, ''),
    COALESCE(department_id::text, ''), COALESCE(designation_id::text, ''),
    COALESCE(manager_id::text, ''), COALESCE(shift_id::text, ''),
    salary, currency, COALESCE(bank_account, ''), COALESCE(employment_type, ''),
    start_date, end_date, status, created_at, updated_at`

func scanEmployee(row pgx.Row) (*Employee, error) {
	var emp Employee
	err := row.Scan(&emp.ID, &emp.TenantID, &emp.UserID, &emp.EmployeeNumber,
		&emp.FirstName, &emp.LastName, &emp.Email, &emp.Phone,
		&emp.DepartmentID, &emp.DesignationID, &emp.ManagerID, &emp.ShiftID,
		&emp.Salary, &emp.Currency, &emp.BankAccount, &emp.EmploymentType,
		&emp.StartDate, &emp.EndDate, &emp.Status, &emp.CreatedAt, &emp.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) CreateEmployee(ctx context.Context, tenantID string, emp Employee) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees
      (tenant_id, employee_number, first_name, last_name, email, phone,
       department_id, designation_id, manager_id, shift_id,
       salary, currency, bank_account, employment_type, start_date, status)
    VALUES ($1,$2,$3,$4,$5,$6,NULLIF($7,'')::uuid,NULLIF($8,'')::uuid,NULLIF($9,'')::uuid,NULLIF($10,'')::uuid,$11,$12,$13,$14,$15,'active')
    RETURNING id
  `, tenantID, emp.EmployeeNumber, emp.FirstName, emp.LastName, emp.Email, emp.Phone,
		emp.DepartmentID, emp.DesignationID, emp.ManagerID, emp.ShiftID,
		emp.Salary, emp.Currency, emp.BankAccount, emp.EmploymentType, emp.StartDate).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetEmployee(ctx context.Context, tenantID, employeeID string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+employeeColumns+`
    FROM employees
    WHERE tenant_id = $1 AND id = $2
  `, tenantID, employeeID)
	return scanEmployee(row)
}

func (s *Store) ListEmployees(ctx context.Context, tenantID string, limit, offset int) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+employeeColumns+`
    FROM employees
    WHERE tenant_id = $1
    ORDER BY last_name, first_name
    LIMIT $2 OFFSET $3
  `, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *emp)
	}
	return out, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, tenantID string, emp Employee) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET first_name = $1, last_name = $2, email = $3, phone = $4,
        department_id = NULLIF($5,'')::uuid, designation_id = NULLIF($6,'')::uuid,
        manager_id = NULLIF($7,'')::uuid, shift_id = NULLIF($8,'')::uuid,
        salary = $9, currency = $10, bank_account = $11, employment_type = $12,
        status = $13, end_date = $14, updated_at = now()
    WHERE tenant_id = $15 AND id = $16
  `, emp.FirstName, emp.LastName, emp.Email, emp.Phone,
		emp.DepartmentID, emp.DesignationID, emp.ManagerID, emp.ShiftID,
		emp.Salary, emp.Currency, emp.BankAccount, emp.EmploymentType,
		emp.Status, emp.EndDate, tenantID, emp.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func (s *Store) DeleteEmployee(ctx context.Context, tenantID, employeeID string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM employees WHERE tenant_id = $1 AND id = $2", tenantID, employeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func (s *Store) GetEmployeeByUserID(ctx context.Context, tenantID, userID string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+employeeColumns+`
    FROM employees
    WHERE tenant_id = $1 AND user_id = $2
  `, tenantID, userID)
	return scanEmployee(row)
}
