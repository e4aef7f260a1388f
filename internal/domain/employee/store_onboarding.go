package employee

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

const onboardingColumns = `id, COALESCE(tenant_id, ''), COALESCE(employee_id::text, ''), candidate_name,
  candidate_email, join_date, COALESCE(checklist, '[]'::jsonb), status, created_at, updated_at`

func scanOnboarding(row pgx.Row) (*Onboarding, error) {
	var rec Onboarding
	err := row.Scan(&rec.ID, &rec.TenantID, &rec.EmployeeID, &rec.CandidateName,
		&rec.CandidateEmail, &rec.JoinDate, &rec.Checklist, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOnboardingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) CreateOnboarding(ctx context.Context, tenantID string, rec Onboarding) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO onboarding_records (tenant_id, employee_id, candidate_name, candidate_email, join_date, checklist)
    VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, COALESCE($6::jsonb, '[]'::jsonb))
    RETURNING id
  `, tenantID, rec.EmployeeID, rec.CandidateName, rec.CandidateEmail, rec.JoinDate, rec.Checklist).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetOnboarding(ctx context.Context, tenantFilter, onboardingID string) (*Onboarding, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+onboardingColumns+`
    FROM onboarding_records
    WHERE id = $1 AND ($2 = '' OR tenant_id = $2)
  `, onboardingID, tenantFilter)
	return scanOnboarding(row)
}

func (s *Store) ListOnboarding(ctx context.Context, tenantFilter string, limit, offset int) ([]Onboarding, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+onboardingColumns+`
    FROM onboarding_records
    WHERE ($1 = '' OR tenant_id = $1)
    ORDER BY created_at DESC
    LIMIT $2 OFFSET $3
  `, tenantFilter, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Onboarding
	for rows.Next() {
		var rec Onboarding
		if err := rows.Scan(&rec.ID, &rec.TenantID, &rec.EmployeeID, &rec.CandidateName,
			&rec.CandidateEmail, &rec.JoinDate, &rec.Checklist, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *Store) UpdateOnboarding(ctx context.Context, tenantFilter string, rec Onboarding) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE onboarding_records
    SET candidate_name = $1, candidate_email = $2, join_date = $3,
        checklist = COALESCE($4::jsonb, checklist), employee_id = NULLIF($5, '')::uuid,
        status = $6, updated_at = now()
    WHERE id = $7 AND ($8 = '' OR tenant_id = $8)
  `, rec.CandidateName, rec.CandidateEmail, rec.JoinDate, rec.Checklist, rec.EmployeeID,
		rec.Status, rec.ID, tenantFilter)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOnboardingNotFound
	}
	return nil
}

func (s *Store) DeleteOnboarding(ctx context.Context, tenantFilter, onboardingID string) error {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM onboarding_records WHERE id = $1 AND ($2 = '' OR tenant_id = $2)
  `, onboardingID, tenantFilter)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOnboardingNotFound
	}
	return nil
}
