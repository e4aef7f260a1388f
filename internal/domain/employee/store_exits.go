package employee

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// Exit and onboarding records predate tenant isolation: their queries accept
// a tenant filter that may be empty, meaning unscoped. Records still store
// the creating actor's tenant for provenance.

func (s *Store) CreateResignation(ctx context.Context, tenantID string, res Resignation) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO resignations (tenant_id, employee_id, notice_date, last_working_day, reason)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, tenantID, res.EmployeeID, res.NoticeDate, res.LastWorkingDay, res.Reason).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetResignation(ctx context.Context, tenantFilter, resignationID string) (*Resignation, error) {
	var res Resignation
	err := s.DB.QueryRow(ctx, `
    SELECT id, COALESCE(tenant_id, ''), employee_id, notice_date, last_working_day,
           COALESCE(reason, ''), status, created_at, updated_at
    FROM resignations
    WHERE id = $1 AND ($2 = '' OR tenant_id = $2)
  `, resignationID, tenantFilter).Scan(&res.ID, &res.TenantID, &res.EmployeeID, &res.NoticeDate,
		&res.LastWorkingDay, &res.Reason, &res.Status, &res.CreatedAt, &res.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrResignationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *Store) ListResignations(ctx context.Context, tenantFilter string, limit, offset int) ([]Resignation, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, COALESCE(tenant_id, ''), employee_id, notice_date, last_working_day,
           COALESCE(reason, ''), status, created_at, updated_at
    FROM resignations
    WHERE ($1 = '' OR tenant_id = $1)
    ORDER BY created_at DESC
    LIMIT $2 OFFSET $3
  `, tenantFilter, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resignation
	for rows.Next() {
		var res Resignation
		if err := rows.Scan(&res.ID, &res.TenantID, &res.EmployeeID, &res.NoticeDate,
			&res.LastWorkingDay, &res.Reason, &res.Status, &res.CreatedAt, &res.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func (s *Store) UpdateResignation(ctx context.Context, tenantFilter string, res Resignation) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE resignations
    SET notice_date = $1, last_working_day = $2, reason = $3, updated_at = now()
    WHERE id = $4 AND ($5 = '' OR tenant_id = $5)
  `, res.NoticeDate, res.LastWorkingDay, res.Reason, res.ID, tenantFilter)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrResignationNotFound
	}
	return nil
}

func (s *Store) UpdateResignationStatus(ctx context.Context, tenantFilter, resignationID, status string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE resignations SET status = $1, updated_at = now()
    WHERE id = $2 AND ($3 = '' OR tenant_id = $3)
  `, status, resignationID, tenantFilter)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrResignationNotFound
	}
	return nil
}

func (s *Store) DeleteResignation(ctx context.Context, tenantFilter, resignationID string) error {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM resignations WHERE id = $1 AND ($2 = '' OR tenant_id = $2)
  `, resignationID, tenantFilter)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrResignationNotFound
	}
	return nil
}

func (s *Store) CreateTermination(ctx context.Context, tenantID string, term Termination) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO terminations (tenant_id, employee_id, termination_date, reason)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, tenantID, term.EmployeeID, term.TerminationDate, term.Reason).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetTermination(ctx context.Context, tenantFilter, terminationID string) (*Termination, error) {
	var term Termination
	err := s.DB.QueryRow(ctx, `
    SELECT id, COALESCE(tenant_id, ''), employee_id, termination_date, COALESCE(reason, ''), status, created_at, updated_at
    FROM terminations
    WHERE id = $1 AND ($2 = '' OR tenant_id = $2)
  `, terminationID, tenantFilter).Scan(&term.ID, &term.TenantID, &term.EmployeeID,
		&term.TerminationDate, &term.Reason, &term.Status, &term.CreatedAt, &term.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTerminationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &term, nil
}

func (s *Store) ListTerminations(ctx context.Context, tenantFilter string, limit, offset int) ([]Termination, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, COALESCE(tenant_id, ''), employee_id, termination_date, COALESCE(reason, ''), status, created_at, updated_at
    FROM terminations
    WHERE ($1 = '' OR tenant_id = $1)
    ORDER BY created_at DESC
    LIMIT $2 OFFSET $3
  `, tenantFilter, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Termination
	for rows.Next() {
		var term Termination
		if err := rows.Scan(&term.ID, &term.TenantID, &term.EmployeeID,
			&term.TerminationDate, &term.Reason, &term.Status, &term.CreatedAt, &term.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, term)
	}
	return out, nil
}

func (s *Store) UpdateTermination(ctx context.Context, tenantFilter string, term Termination) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE terminations
    SET termination_date = $1, reason = $2, updated_at = now()
    WHERE id = $3 AND ($4 = '' OR tenant_id = $4)
  `, term.TerminationDate, term.Reason, term.ID, tenantFilter)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTerminationNotFound
	}
	return nil
}

func (s *Store) UpdateTerminationStatus(ctx context.Context, tenantFilter, terminationID, status string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE terminations SET status = $1, updated_at = now()
    WHERE id = $2 AND ($3 = '' OR tenant_id = $3)
  `, status, terminationID, tenantFilter)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTerminationNotFound
	}
	return nil
}

func (s *Store) DeleteTermination(ctx context.Context, tenantFilter, terminationID string) error {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM terminations WHERE id = $1 AND ($2 = '' OR tenant_id = $2)
  `, terminationID, tenantFilter)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTerminationNotFound
	}
	return nil
}
