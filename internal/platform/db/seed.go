package db

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"hrpay/internal/domain/auth"
	"hrpay/internal/domain/authz"
	"hrpay/internal/platform/config"
)

// Seed ensures the default tenant and a bootstrap super admin exist.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if err := ensureTenant(ctx, pool, cfg.SeedTenantName); err != nil {
		return err
	}
	if strings.TrimSpace(cfg.SeedAdminEmail) == "" {
		return nil
	}
	return ensureAdminUser(ctx, pool, cfg.SeedTenantName, cfg.SeedAdminEmail, cfg.SeedAdminPassword)
}

func ensureTenant(ctx context.Context, pool *pgxpool.Pool, name string) error {
	if strings.TrimSpace(name) == "" {
		name = authz.DefaultTenant
	}
	_, err := pool.Exec(ctx, "INSERT INTO tenants (name) VALUES ($1) ON CONFLICT (name) DO NOTHING", name)
	return err
}

func ensureAdminUser(ctx context.Context, pool *pgxpool.Pool, tenant, email, password string) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE email = $1", email).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
    INSERT INTO users (tenant_id, email, password_hash, role, status)
    VALUES ($1, $2, $3, $4, 'active')
  `, tenant, email, hash, authz.RoleSuperAdmin)
	return err
}
