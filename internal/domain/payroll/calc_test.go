package payroll

import "testing"

func TestComputePay(t *testing.T) {
	lines := []ComponentLine{
		{Type: ComponentEarning, Amount: 500},
		{Type: ComponentEarning, Amount: 250.255},
		{Type: ComponentDeduction, Amount: 100},
		{Type: ComponentDeduction, Amount: 50.5},
	}
	earnings, deductions, net := ComputePay(1000, lines)
	if earnings != 1750.26 {
		t.Fatalf("expected earnings 1750.26, got %v", earnings)
	}
	if deductions != 150.5 {
		t.Fatalf("expected deductions 150.5, got %v", deductions)
	}
	if net != 1599.76 {
		t.Fatalf("expected net 1599.76, got %v", net)
	}
}

func TestComputePayNoComponents(t *testing.T) {
	earnings, deductions, net := ComputePay(30000, nil)
	if earnings != 30000 || deductions != 0 || net != 30000 {
		t.Fatalf("unexpected totals: %v %v %v", earnings, deductions, net)
	}
}

func TestComputePayNegativeNet(t *testing.T) {
	lines := []ComponentLine{{Type: ComponentDeduction, Amount: 50000}}
	_, _, net := ComputePay(30000, lines)
	if net != -20000 {
		t.Fatalf("expected net -20000, got %v", net)
	}
}

func TestRoundMoney(t *testing.T) {
	cases := map[float64]float64{
		10.004:  10.00,
		10.005:  10.01,
		-10.005: -10.01,
		0:       0,
	}
	for in, want := range cases {
		if got := RoundMoney(in); got != want {
			t.Fatalf("RoundMoney(%v) = %v, want %v", in, got, want)
		}
	}
}
