package org

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

func (s *Store) CreateHoliday(ctx context.Context, tenantID string, h Holiday) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO holidays (tenant_id, name, holiday_date, recurring)
    VALUES ($1, $2, $3, $4)
    RETURNING id
  `, tenantID, h.Name, h.Date, h.Recurring).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetHoliday(ctx context.Context, tenantID, holidayID string) (*Holiday, error) {
	var h Holiday
	err := s.DB.QueryRow(ctx, `
    SELECT id, tenant_id, name, holiday_date, recurring, created_at
    FROM holidays
    WHERE tenant_id = $1 AND id = $2
  `, tenantID, holidayID).Scan(&h.ID, &h.TenantID, &h.Name, &h.Date, &h.Recurring, &h.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrHolidayNotFound
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *Store) ListHolidays(ctx context.Context, tenantID string, year int) ([]Holiday, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, tenant_id, name, holiday_date, recurring, created_at
    FROM holidays
    WHERE tenant_id = $1 AND ($2 = 0 OR EXTRACT(YEAR FROM holiday_date) = $2 OR recurring)
    ORDER BY holiday_date
  `, tenantID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Holiday
	for rows.Next() {
		var h Holiday
		if err := rows.Scan(&h.ID, &h.TenantID, &h.Name, &h.Date, &h.Recurring, &h.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

func (s *Store) UpdateHoliday(ctx context.Context, tenantID string, h Holiday) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE holidays SET name = $1, holiday_date = $2, recurring = $3
    WHERE tenant_id = $4 AND id = $5
  `, h.Name, h.Date, h.Recurring, tenantID, h.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrHolidayNotFound
	}
	return nil
}

func (s *Store) DeleteHoliday(ctx context.Context, tenantID, holidayID string) error {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM holidays WHERE tenant_id = $1 AND id = $2
  `, tenantID, holidayID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrHolidayNotFound
	}
	return nil
}
