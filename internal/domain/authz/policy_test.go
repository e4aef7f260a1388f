package authz

import (
	"errors"
	"testing"
)

var restrictedActions = []string{ActionCreate, ActionUpdate, ActionUpdateStatus, ActionDelete}

// expected is the full allowlist table: resource type -> action -> roles
// permitted. Roles absent from an entry must be denied; actions absent from
// an entry must deny every role.
var expected = map[string]map[string][]string{
	ResourceEmployee: {
		ActionCreate: {RoleSuperAdmin, RoleHRManager},
		ActionUpdate: {RoleSuperAdmin, RoleHRManager},
		ActionDelete: {RoleSuperAdmin},
	},
	ResourceOnboarding: {
		ActionCreate: {RoleSuperAdmin, RoleHRManager},
		ActionUpdate: {RoleSuperAdmin, RoleHRManager, RoleManager},
		ActionDelete: {RoleSuperAdmin},
	},
	ResourceResignation: {
		ActionCreate:       {RoleSuperAdmin, RoleHRManager, RoleManager, RoleEmployee},
		ActionUpdate:       {RoleSuperAdmin, RoleHRManager, RoleManager},
		ActionUpdateStatus: {RoleSuperAdmin, RoleHRManager},
		ActionDelete:       {RoleSuperAdmin},
	},
	ResourceTermination: {
		ActionCreate:       {RoleSuperAdmin, RoleHRManager},
		ActionUpdate:       {RoleSuperAdmin, RoleHRManager},
		ActionUpdateStatus: {RoleSuperAdmin},
		ActionDelete:       {RoleSuperAdmin},
	},
	ResourceDepartment: {
		ActionCreate: {RoleSuperAdmin, RoleHRManager},
		ActionUpdate: {RoleSuperAdmin, RoleHRManager},
		ActionDelete: {RoleSuperAdmin, RoleHRManager},
	},
	ResourceDesignation: {
		ActionCreate: {RoleSuperAdmin, RoleHRManager},
		ActionUpdate: {RoleSuperAdmin, RoleHRManager},
		ActionDelete: {RoleSuperAdmin, RoleHRManager},
	},
	ResourceReportingManager: {
		ActionCreate: {RoleSuperAdmin, RoleHRManager},
		ActionUpdate: {RoleSuperAdmin, RoleHRManager},
		ActionDelete: {RoleSuperAdmin, RoleHRManager},
	},
	ResourceShift: {
		ActionCreate: {RoleSuperAdmin, RoleHRManager, RoleManager},
		ActionUpdate: {RoleSuperAdmin, RoleHRManager, RoleManager},
		ActionDelete: {RoleSuperAdmin},
	},
	ResourceHoliday: {
		ActionCreate:       Roles,
		ActionUpdate:       Roles,
		ActionUpdateStatus: Roles,
		ActionDelete:       Roles,
	},
	ResourceLeave: {
		ActionCreate:       Roles,
		ActionUpdate:       Roles,
		ActionUpdateStatus: Roles,
		ActionDelete:       Roles,
	},
	ResourceSalaryComponent: {
		ActionCreate: {RoleSuperAdmin, RoleHRManager, RoleFinanceManager},
		ActionUpdate: {RoleSuperAdmin, RoleHRManager, RoleFinanceManager},
		ActionDelete: {RoleSuperAdmin},
	},
	ResourcePayrollRun: {
		ActionCreate:       {RoleSuperAdmin, RoleHRManager, RoleFinanceManager},
		ActionUpdate:       {RoleSuperAdmin, RoleHRManager, RoleFinanceManager},
		ActionUpdateStatus: {RoleSuperAdmin, RoleHRManager, RoleFinanceManager},
		ActionDelete:       {RoleSuperAdmin},
	},
	ResourcePayslip: {
		ActionCreate: {RoleSuperAdmin, RoleHRManager, RoleFinanceManager},
		ActionUpdate: {RoleSuperAdmin, RoleHRManager, RoleFinanceManager},
		ActionDelete: {RoleSuperAdmin},
	},
	ResourceCompliance: {
		ActionCreate: {RoleSuperAdmin, RoleHRManager, RoleFinanceManager},
		ActionUpdate: {RoleSuperAdmin, RoleHRManager, RoleFinanceManager},
		ActionDelete: {RoleSuperAdmin},
	},
}

func TestAuthorizeFullTable(t *testing.T) {
	for _, resource := range ResourceTypes {
		table, ok := expected[resource]
		if !ok {
			t.Fatalf("resource %s missing from expected table", resource)
		}
		for _, action := range restrictedActions {
			allowed := map[string]bool{}
			for _, role := range table[action] {
				allowed[role] = true
			}
			for _, role := range Roles {
				err := Authorize(role, action, resource)
				if allowed[role] && err != nil {
					t.Fatalf("%s should be allowed to %s %s, got %v", role, action, resource, err)
				}
				if !allowed[role] && !errors.Is(err, ErrPermissionDenied) {
					t.Fatalf("%s should be denied %s on %s, got %v", role, action, resource, err)
				}
			}
		}
	}
}

func TestAuthorizeReadUnrestricted(t *testing.T) {
	for _, resource := range ResourceTypes {
		for _, role := range Roles {
			if err := Authorize(role, ActionRead, resource); err != nil {
				t.Fatalf("read should be open to %s on %s, got %v", role, resource, err)
			}
		}
	}
}

func TestAuthorizeLegacyLabels(t *testing.T) {
	if err := Authorize("Employee", ActionCreate, ResourceResignation); err != nil {
		t.Fatalf("legacy Employee label should create resignation, got %v", err)
	}
	if err := Authorize("HR Manager", ActionUpdateStatus, ResourceResignation); err != nil {
		t.Fatalf("legacy HR Manager label should change resignation status, got %v", err)
	}
	err := Authorize("Employee", ActionDelete, ResourceResignation)
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("legacy Employee label should be denied delete, got %v", err)
	}
}

func TestAuthorizeUnknownInputs(t *testing.T) {
	if err := Authorize("intern", ActionRead, ResourceEmployee); !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
	if err := Authorize(RoleSuperAdmin, ActionRead, "timesheet"); !errors.Is(err, ErrUnknownResource) {
		t.Fatalf("expected ErrUnknownResource, got %v", err)
	}
	if err := Authorize(RoleSuperAdmin, "archive", ResourceEmployee); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("unknown action should deny, got %v", err)
	}
}

func TestPoliciesCoverEveryResource(t *testing.T) {
	for _, resource := range ResourceTypes {
		if _, ok := policies[resource]; !ok {
			t.Fatalf("resource %s has no policy", resource)
		}
	}
	for resource := range policies {
		found := false
		for _, known := range ResourceTypes {
			if resource == known {
				found = true
			}
		}
		if !found {
			t.Fatalf("policy registered for unknown resource %s", resource)
		}
	}
}
