package payroll

import "testing"

func TestPayeesIncludedWins(t *testing.T) {
	run := &Run{
		EmployeeList:      []string{"e1", "e2", "e3"},
		IncludedEmployees: []string{"e2"},
		ExcludedEmployees: []string{"e3"},
	}
	payees := Payees(run)
	if len(payees) != 1 || payees[0] != "e2" {
		t.Fatalf("expected [e2], got %v", payees)
	}
}

func TestPayeesExclusion(t *testing.T) {
	run := &Run{
		EmployeeList:      []string{"e1", "e2", "e3"},
		ExcludedEmployees: []string{"e2"},
	}
	payees := Payees(run)
	if len(payees) != 2 || payees[0] != "e1" || payees[1] != "e3" {
		t.Fatalf("expected [e1 e3], got %v", payees)
	}
}

func TestComponentLines(t *testing.T) {
	components := []Component{
		{Name: "HRA", ComponentType: ComponentEarning, CalcType: "percentage", Percentage: 40},
		{Name: "Transport", ComponentType: ComponentEarning, CalcType: "fixed", Amount: 1600},
		{Name: "Canteen", ComponentType: ComponentDeduction, CalcType: "fixed", Amount: 500},
	}
	lines := componentLines(20000, components)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0].Amount != 8000 {
		t.Fatalf("expected HRA 8000, got %v", lines[0].Amount)
	}

	earnings, deductions, net := ComputePay(20000, lines)
	if earnings != 29600 {
		t.Fatalf("expected earnings 29600, got %v", earnings)
	}
	if deductions != 500 {
		t.Fatalf("expected deductions 500, got %v", deductions)
	}
	if net != 29100 {
		t.Fatalf("expected net 29100, got %v", net)
	}
}
