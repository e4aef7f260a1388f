package authz

import "testing"

func TestNormalizeRole(t *testing.T) {
	cases := map[string]string{
		"super_admin":     RoleSuperAdmin,
		"Super Admin":     RoleSuperAdmin,
		"HR Manager":      RoleHRManager,
		"hr_manager":      RoleHRManager,
		"Finance Manager": RoleFinanceManager,
		"Manager":         RoleManager,
		"employee":        RoleEmployee,
		"Employee":        RoleEmployee,
		"  admin  ":       RoleAdmin,
	}
	for input, want := range cases {
		got, ok := NormalizeRole(input)
		if !ok {
			t.Fatalf("role %q should normalize", input)
		}
		if got != want {
			t.Fatalf("role %q normalized to %q, want %q", input, got, want)
		}
	}

	if _, ok := NormalizeRole("contractor"); ok {
		t.Fatal("unknown role should not normalize")
	}
	if _, ok := NormalizeRole(""); ok {
		t.Fatal("empty role should not normalize")
	}
}

func TestTenantOfFallback(t *testing.T) {
	if got := TenantOf(Actor{TenantID: "acme"}); got != "acme" {
		t.Fatalf("expected acme, got %s", got)
	}
	if got := TenantOf(Actor{}); got != DefaultTenant {
		t.Fatalf("expected default tenant, got %s", got)
	}
	if got := TenantOf(Actor{TenantID: "   "}); got != DefaultTenant {
		t.Fatalf("blank tenant should fall back, got %s", got)
	}
}

func TestTenantFilterGlobalResources(t *testing.T) {
	actor := Actor{TenantID: "acme"}

	unscoped := Scope{}
	if got := unscoped.TenantFilter(actor, ResourceDepartment); got != "" {
		t.Fatalf("department should be unscoped by default, got %q", got)
	}
	if got := unscoped.TenantFilter(actor, ResourcePayrollRun); got != "acme" {
		t.Fatalf("payroll run should always be scoped, got %q", got)
	}

	scoped := Scope{ScopeAll: true}
	if got := scoped.TenantFilter(actor, ResourceDepartment); got != "acme" {
		t.Fatalf("department should be scoped with ScopeAll, got %q", got)
	}
	if got := scoped.TenantFilter(Actor{}, ResourceShift); got != DefaultTenant {
		t.Fatalf("scoped shift without tenant should use default, got %q", got)
	}
}
