package payroll

// Employee-side statutory contribution rules. Rates and ceilings follow the
// EPF/ESI schemes; professional tax uses the common monthly slab schedule.
const (
	pfRate        = 0.12
	pfWageCeiling = 15000

	esiRate         = 0.0075
	esiGrossCeiling = 21000

	ptSlabLower = 7500
	ptSlabUpper = 10000
	ptMid       = 175
	ptTop       = 200
)

// ProvidentFund returns the employee PF contribution: 12% of basic, with
// basic capped at the statutory wage ceiling.
func ProvidentFund(basic float64) float64 {
	if basic <= 0 {
		return 0
	}
	wages := basic
	if wages > pfWageCeiling {
		wages = pfWageCeiling
	}
	return RoundMoney(wages * pfRate)
}

// ESI returns the employee state insurance contribution: 0.75% of gross for
// employees at or under the coverage ceiling, zero above it.
func ESI(gross float64) float64 {
	if gross <= 0 || gross > esiGrossCeiling {
		return 0
	}
	return RoundMoney(gross * esiRate)
}

// ProfessionalTax returns the monthly professional tax for the gross slab.
func ProfessionalTax(gross float64) float64 {
	switch {
	case gross <= ptSlabLower:
		return 0
	case gross <= ptSlabUpper:
		return ptMid
	default:
		return ptTop
	}
}

// StatutoryDeductions computes all employee-side statutory amounts for one
// payslip.
func StatutoryDeductions(basic, gross float64) (pf, esi, pt float64) {
	return ProvidentFund(basic), ESI(gross), ProfessionalTax(gross)
}
