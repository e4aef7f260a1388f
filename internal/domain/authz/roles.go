package authz

import "strings"

const (
	RoleSuperAdmin     = "super_admin"
	RoleAdmin          = "admin"
	RoleHRManager      = "hr_manager"
	RoleFinanceManager = "finance_manager"
	RoleManager        = "manager"
	RoleEmployee       = "employee"
)

var Roles = []string{
	RoleSuperAdmin,
	RoleAdmin,
	RoleHRManager,
	RoleFinanceManager,
	RoleManager,
	RoleEmployee,
}

// legacyLabels maps the display-label role variant that older token issuers
// still emit onto the canonical role keys.
var legacyLabels = map[string]string{
	"super admin":     RoleSuperAdmin,
	"admin":           RoleAdmin,
	"hr manager":      RoleHRManager,
	"finance manager": RoleFinanceManager,
	"manager":         RoleManager,
	"employee":        RoleEmployee,
}

// NormalizeRole resolves either naming scheme ("hr_manager" or "HR Manager")
// to the canonical role key. The second return is false for unknown roles.
func NormalizeRole(role string) (string, bool) {
	trimmed := strings.TrimSpace(role)
	lowered := strings.ToLower(trimmed)
	for _, known := range Roles {
		if lowered == known {
			return known, true
		}
	}
	if canonical, ok := legacyLabels[lowered]; ok {
		return canonical, true
	}
	return "", false
}
