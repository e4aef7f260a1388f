package payroll

import "testing"

func TestProvidentFund(t *testing.T) {
	if got := ProvidentFund(10000); got != 1200 {
		t.Fatalf("expected 1200, got %v", got)
	}
	// basic above the wage ceiling contributes on the ceiling only
	if got := ProvidentFund(50000); got != 1800 {
		t.Fatalf("expected 1800, got %v", got)
	}
	if got := ProvidentFund(0); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestESI(t *testing.T) {
	if got := ESI(20000); got != 150 {
		t.Fatalf("expected 150, got %v", got)
	}
	if got := ESI(21000); got != 157.5 {
		t.Fatalf("expected 157.5 at the ceiling, got %v", got)
	}
	if got := ESI(21001); got != 0 {
		t.Fatalf("expected 0 above the ceiling, got %v", got)
	}
}

func TestProfessionalTaxSlabs(t *testing.T) {
	cases := map[float64]float64{
		5000:  0,
		7500:  0,
		7501:  175,
		10000: 175,
		10001: 200,
		90000: 200,
	}
	for gross, want := range cases {
		if got := ProfessionalTax(gross); got != want {
			t.Fatalf("ProfessionalTax(%v) = %v, want %v", gross, got, want)
		}
	}
}

func TestStatutoryDeductions(t *testing.T) {
	pf, esi, pt := StatutoryDeductions(12000, 18000)
	if pf != 1440 {
		t.Fatalf("expected pf 1440, got %v", pf)
	}
	if esi != 135 {
		t.Fatalf("expected esi 135, got %v", esi)
	}
	if pt != 200 {
		t.Fatalf("expected pt 200, got %v", pt)
	}
}
