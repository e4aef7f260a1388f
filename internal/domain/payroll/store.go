package payroll

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const runColumns = `
    id, tenant_id, payroll_period, payroll_type, pay_date, start_date, end_date,
    employee_list, included_employees, excluded_employees,
    total_earnings, total_deductions, net_pay, status,
    COALESCE(processed_by, ''), COALESCE(approved_by, ''), COALESCE(locked_by, ''),
    processed_at, approved_at, locked_at,
    bank_advice_generated, payment_file_generated, final_confirmation,
    created_at, updated_at`

func scanRun(row pgx.Row) (*Run, error) {
	var run Run
	err := row.Scan(
		&run.ID, &run.TenantID, &run.PayrollPeriod, &run.PayrollType,
		&run.PayDate, &run.StartDate, &run.EndDate,
		&run.EmployeeList, &run.IncludedEmployees, &run.ExcludedEmployees,
		&run.TotalEarnings, &run.TotalDeductions, &run.NetPay, &run.Status,
		&run.ProcessedBy, &run.ApprovedBy, &run.LockedBy,
		&run.ProcessedAt, &run.ApprovedAt, &run.LockedAt,
		&run.BankAdviceGenerated, &run.PaymentFileGenerated, &run.FinalConfirmation,
		&run.CreatedAt, &run.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (s *Store) CreateRun(ctx context.Context, tenantID string, run *Run) (string, error) {
	if err := ValidateEmployeeSets(run); err != nil {
		return "", err
	}
	run.NetPay = run.TotalEarnings - run.TotalDeductions

	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO payroll_runs
      (tenant_id, payroll_period, payroll_type, pay_date, start_date, end_date,
       employee_list, included_employees, excluded_employees,
       total_earnings, total_deductions, net_pay, status)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
    RETURNING id
  `, tenantID, run.PayrollPeriod, run.PayrollType, run.PayDate, run.StartDate, run.EndDate,
		run.EmployeeList, run.IncludedEmployees, run.ExcludedEmployees,
		run.TotalEarnings, run.TotalDeductions, run.NetPay, StatusDraft).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetRun(ctx context.Context, tenantID, runID string) (*Run, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+runColumns+`
    FROM payroll_runs
    WHERE tenant_id = $1 AND id = $2
  `, tenantID, runID)
	return scanRun(row)
}

func (s *Store) CountRuns(ctx context.Context, tenantID string) (int, error) {
	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM payroll_runs WHERE tenant_id = $1", tenantID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) ListRuns(ctx context.Context, tenantID string, limit, offset int) ([]Run, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+runColumns+`
    FROM payroll_runs
    WHERE tenant_id = $1
    ORDER BY created_at DESC
    LIMIT $2 OFFSET $3
  `, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, nil
}

// UpdateRunDetails rewrites the run's period, dates, employee sets and
// totals. Locked runs are immutable; the guard rides in the WHERE clause so
// a concurrent lock cannot slip an update through.
func (s *Store) UpdateRunDetails(ctx context.Context, tenantID string, run *Run) error {
	if err := ValidateEmployeeSets(run); err != nil {
		return err
	}
	run.NetPay = run.TotalEarnings - run.TotalDeductions

	tag, err := s.DB.Exec(ctx, `
    UPDATE payroll_runs
    SET payroll_period = $1, payroll_type = $2, pay_date = $3, start_date = $4, end_date = $5,
        employee_list = $6, included_employees = $7, excluded_employees = $8,
        total_earnings = $9, total_deductions = $10, net_pay = $11, updated_at = now()
    WHERE tenant_id = $12 AND id = $13 AND status <> $14
  `, run.PayrollPeriod, run.PayrollType, run.PayDate, run.StartDate, run.EndDate,
		run.EmployeeList, run.IncludedEmployees, run.ExcludedEmployees,
		run.TotalEarnings, run.TotalDeductions, run.NetPay,
		tenantID, run.ID, StatusLocked)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return s.resolveMiss(ctx, tenantID, run.ID, ErrRunLocked)
	}
	return nil
}

// TransitionRun applies a lifecycle transition as one conditional update
// keyed on the expected current status, so two racing transitions cannot
// both stamp attribution: the loser sees zero rows and gets ErrConflict.
func (s *Store) TransitionRun(ctx context.Context, tenantID, runID, target, actorID string, now time.Time) (*Run, error) {
	run, err := s.GetRun(ctx, tenantID, runID)
	if err != nil {
		return nil, err
	}
	expected := run.Status
	if err := Transition(run, target, actorID, now); err != nil {
		return nil, err
	}

	tag, err := s.DB.Exec(ctx, `
    UPDATE payroll_runs
    SET status = $1,
        processed_by = COALESCE(processed_by, NULLIF($2, '')),
        processed_at = COALESCE(processed_at, $3),
        approved_by = COALESCE(approved_by, NULLIF($4, '')),
        approved_at = COALESCE(approved_at, $5),
        locked_by = COALESCE(locked_by, NULLIF($6, '')),
        locked_at = COALESCE(locked_at, $7),
        final_confirmation = final_confirmation OR $8,
        net_pay = total_earnings - total_deductions,
        updated_at = now()
    WHERE tenant_id = $9 AND id = $10 AND status = $11
  `, run.Status,
		run.ProcessedBy, run.ProcessedAt,
		run.ApprovedBy, run.ApprovedAt,
		run.LockedBy, run.LockedAt,
		run.FinalConfirmation,
		tenantID, runID, expected)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, s.resolveMiss(ctx, tenantID, runID, ErrConflict)
	}
	return run, nil
}

// MarkRunBankAdvice sets the bank advice flag. The status gate and the
// monotonic set both live in the statement.
func (s *Store) MarkRunBankAdvice(ctx context.Context, tenantID, runID string) error {
	return s.markFlag(ctx, tenantID, runID, "bank_advice_generated")
}

func (s *Store) MarkRunPaymentFile(ctx context.Context, tenantID, runID string) error {
	return s.markFlag(ctx, tenantID, runID, "payment_file_generated")
}

func (s *Store) markFlag(ctx context.Context, tenantID, runID, column string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE payroll_runs
    SET `+column+` = true, updated_at = now()
    WHERE tenant_id = $1 AND id = $2 AND status = ANY($3)
  `, tenantID, runID, []string{StatusApproved, StatusLocked})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return s.resolveMiss(ctx, tenantID, runID, ErrRunNotApproved)
	}
	return nil
}

func (s *Store) DeleteRun(ctx context.Context, tenantID, runID string) error {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM payroll_runs
    WHERE tenant_id = $1 AND id = $2 AND status <> $3
  `, tenantID, runID, StatusLocked)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return s.resolveMiss(ctx, tenantID, runID, ErrRunLocked)
	}
	return nil
}

// resolveMiss disambiguates a zero-row conditional write: the run either
// does not exist (ErrRunNotFound) or exists in a state that failed the
// precondition (onExists).
func (s *Store) resolveMiss(ctx context.Context, tenantID, runID string, onExists error) error {
	var count int
	if err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1) FROM payroll_runs WHERE tenant_id = $1 AND id = $2
  `, tenantID, runID).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return ErrRunNotFound
	}
	return onExists
}
