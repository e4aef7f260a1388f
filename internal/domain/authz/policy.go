package authz

const (
	ActionCreate       = "create"
	ActionRead         = "read"
	ActionUpdate       = "update"
	ActionUpdateStatus = "updateStatus"
	ActionDelete       = "delete"
)

const (
	ResourceEmployee         = "employee"
	ResourceOnboarding       = "onboarding"
	ResourceResignation      = "resignation"
	ResourceTermination      = "termination"
	ResourceDepartment       = "department"
	ResourceDesignation      = "designation"
	ResourceReportingManager = "reporting_manager"
	ResourceShift            = "shift"
	ResourceHoliday          = "holiday"
	ResourceLeave            = "leave"
	ResourceSalaryComponent  = "salary_component"
	ResourcePayrollRun       = "payroll_run"
	ResourcePayslip          = "payslip"
	ResourceCompliance       = "compliance"
)

var ResourceTypes = []string{
	ResourceEmployee,
	ResourceOnboarding,
	ResourceResignation,
	ResourceTermination,
	ResourceDepartment,
	ResourceDesignation,
	ResourceReportingManager,
	ResourceShift,
	ResourceHoliday,
	ResourceLeave,
	ResourceSalaryComponent,
	ResourcePayrollRun,
	ResourcePayslip,
	ResourceCompliance,
}

type policy struct {
	create       []string
	update       []string
	updateStatus []string
	delete       []string
}

var (
	hrOnly      = []string{RoleSuperAdmin, RoleHRManager}
	hrManagers  = []string{RoleSuperAdmin, RoleHRManager, RoleManager}
	superOnly   = []string{RoleSuperAdmin}
	payrollTeam = []string{RoleSuperAdmin, RoleHRManager, RoleFinanceManager}
	anyRole     = Roles
)

// policies is the full per-resource-type allowlist table. A nil slice means
// the action is never permitted on that resource type; reads are open to any
// authenticated actor and are not listed here.
var policies = map[string]policy{
	ResourceEmployee: {
		create: hrOnly,
		update: hrOnly,
		delete: superOnly,
	},
	ResourceOnboarding: {
		create: hrOnly,
		update: hrManagers,
		delete: superOnly,
	},
	ResourceResignation: {
		create:       []string{RoleSuperAdmin, RoleHRManager, RoleManager, RoleEmployee},
		update:       hrManagers,
		updateStatus: hrOnly,
		delete:       superOnly,
	},
	ResourceTermination: {
		create:       hrOnly,
		update:       hrOnly,
		updateStatus: superOnly,
		delete:       superOnly,
	},
	ResourceDepartment: {
		create: hrOnly,
		update: hrOnly,
		delete: hrOnly,
	},
	ResourceDesignation: {
		create: hrOnly,
		update: hrOnly,
		delete: hrOnly,
	},
	ResourceReportingManager: {
		create: hrOnly,
		update: hrOnly,
		delete: hrOnly,
	},
	ResourceShift: {
		create: hrManagers,
		update: hrManagers,
		delete: superOnly,
	},
	ResourceHoliday: {
		create:       anyRole,
		update:       anyRole,
		updateStatus: anyRole,
		delete:       anyRole,
	},
	ResourceLeave: {
		create:       anyRole,
		update:       anyRole,
		updateStatus: anyRole,
		delete:       anyRole,
	},
	ResourceSalaryComponent: {
		create: payrollTeam,
		update: payrollTeam,
		delete: superOnly,
	},
	ResourcePayrollRun: {
		create:       payrollTeam,
		update:       payrollTeam,
		updateStatus: payrollTeam,
		delete:       superOnly,
	},
	ResourcePayslip: {
		create: payrollTeam,
		update: payrollTeam,
		delete: superOnly,
	},
	ResourceCompliance: {
		create: payrollTeam,
		update: payrollTeam,
		delete: superOnly,
	},
}

// Authorize decides whether role may perform action on resourceType. It is a
// pure function over the allowlist table: no ownership checks, no I/O.
// Callers must invoke it before resolving the target record so a denied
// caller gets ErrPermissionDenied even when the record does not exist.
func Authorize(role, action, resourceType string) error {
	canonical, ok := NormalizeRole(role)
	if !ok {
		return ErrUnknownRole
	}
	pol, ok := policies[resourceType]
	if !ok {
		return ErrUnknownResource
	}
	if action == ActionRead {
		return nil
	}

	var allowed []string
	switch action {
	case ActionCreate:
		allowed = pol.create
	case ActionUpdate:
		allowed = pol.update
	case ActionUpdateStatus:
		allowed = pol.updateStatus
	case ActionDelete:
		allowed = pol.delete
	default:
		return ErrPermissionDenied
	}

	for _, candidate := range allowed {
		if canonical == candidate {
			return nil
		}
	}
	return ErrPermissionDenied
}

// Can is the boolean convenience form of Authorize.
func Can(role, action, resourceType string) bool {
	return Authorize(role, action, resourceType) == nil
}
