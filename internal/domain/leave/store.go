package leave

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrRequestNotFound = errors.New("leave request not found")

type Request struct {
	ID         string     `json:"id"`
	TenantID   string     `json:"tenantId"`
	EmployeeID string     `json:"employeeId"`
	LeaveType  string     `json:"leaveType"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    time.Time  `json:"endDate"`
	StartHalf  bool       `json:"startHalf"`
	EndHalf    bool       `json:"endHalf"`
	Days       float64    `json:"days"`
	Reason     string     `json:"reason"`
	Status     string     `json:"status"`
	DecidedBy  string     `json:"decidedBy,omitempty"`
	DecidedAt  *time.Time `json:"decidedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Create(ctx context.Context, tenantID string, req Request) (string, error) {
	days, err := CalculateRequestDays(req.StartDate, req.EndDate, req.StartHalf, req.EndHalf)
	if err != nil {
		return "", err
	}

	var id string
	err = s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests (tenant_id, employee_id, leave_type, start_date, end_date, start_half, end_half, days, reason)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    RETURNING id
  `, tenantID, req.EmployeeID, req.LeaveType, req.StartDate, req.EndDate, req.StartHalf, req.EndHalf, days, req.Reason).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Get(ctx context.Context, tenantID, requestID string) (*Request, error) {
	var req Request
	err := s.DB.QueryRow(ctx, `
    SELECT id, tenant_id, employee_id, leave_type, start_date, end_date, start_half, end_half, days,
           COALESCE(reason, ''), status, COALESCE(decided_by::text, ''), decided_at, created_at
    FROM leave_requests
    WHERE tenant_id = $1 AND id = $2
  `, tenantID, requestID).Scan(&req.ID, &req.TenantID, &req.EmployeeID, &req.LeaveType,
		&req.StartDate, &req.EndDate, &req.StartHalf, &req.EndHalf, &req.Days,
		&req.Reason, &req.Status, &req.DecidedBy, &req.DecidedAt, &req.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *Store) List(ctx context.Context, tenantID, employeeID, status string, limit, offset int) ([]Request, error) {
	query := `
    SELECT id, tenant_id, employee_id, leave_type, start_date, end_date, start_half, end_half, days,
           COALESCE(reason, ''), status, COALESCE(decided_by::text, ''), decided_at, created_at
    FROM leave_requests
    WHERE tenant_id = $1`
	args := []any{tenantID}
	if employeeID != "" {
		args = append(args, employeeID)
		query += " AND employee_id = $2"
	}
	if status != "" {
		args = append(args, status)
		query += " AND status = $" + itoa(len(args))
	}
	args = append(args, limit, offset)
	query += " ORDER BY created_at DESC LIMIT $" + itoa(len(args)-1) + " OFFSET $" + itoa(len(args))

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Request
	for rows.Next() {
		var req Request
		if err := rows.Scan(&req.ID, &req.TenantID, &req.EmployeeID, &req.LeaveType,
			&req.StartDate, &req.EndDate, &req.StartHalf, &req.EndHalf, &req.Days,
			&req.Reason, &req.Status, &req.DecidedBy, &req.DecidedAt, &req.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, nil
}

func (s *Store) Decide(ctx context.Context, tenantID, requestID, status, deciderID string) error {
	if !ValidStatus(status) {
		return errors.New("invalid leave status")
	}
	tag, err := s.DB.Exec(ctx, `
    UPDATE leave_requests
    SET status = $1, decided_by = $2, decided_at = now()
    WHERE tenant_id = $3 AND id = $4
  `, status, deciderID, tenantID, requestID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, tenantID, requestID string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM leave_requests WHERE tenant_id = $1 AND id = $2", tenantID, requestID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func itoa(value int) string {
	return strconv.Itoa(value)
}
