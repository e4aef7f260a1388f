package authz

import "strings"

// DefaultTenant is the sentinel tenant assigned to records and actors that
// predate tenant assignment.
const DefaultTenant = "default"

// Actor is the authenticated caller: decoded bearer-token claims reduced to
// what authorization needs.
type Actor struct {
	ID       string
	Role     string
	TenantID string
}

// globalResources are the resource types whose records carry no tenant field
// in the legacy data model. They stay unscoped unless the deployment opts
// into full tenant scoping.
var globalResources = map[string]bool{
	ResourceDepartment:       true,
	ResourceDesignation:      true,
	ResourceReportingManager: true,
	ResourceShift:            true,
	ResourceOnboarding:       true,
	ResourceResignation:      true,
	ResourceTermination:      true,
}

// Scope derives tenant filters for queries.
type Scope struct {
	// ScopeAll forces tenant filtering on the legacy global resource types.
	ScopeAll bool
}

// TenantFilter returns the tenant identifier every query for resourceType
// must be filtered by, or "" when the resource type is not tenant-isolated.
func (s Scope) TenantFilter(actor Actor, resourceType string) string {
	if globalResources[resourceType] && !s.ScopeAll {
		return ""
	}
	return TenantOf(actor)
}

// TenantOf returns the actor's tenant, falling back to the default tenant.
func TenantOf(actor Actor) string {
	return TenantOrDefault(actor.TenantID)
}

// TenantOrDefault normalizes a raw tenant identifier, substituting the
// default tenant for blank values.
func TenantOrDefault(tenantID string) string {
	if tenant := strings.TrimSpace(tenantID); tenant != "" {
		return tenant
	}
	return DefaultTenant
}
