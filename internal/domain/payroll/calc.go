package payroll

type ComponentLine struct {
	Type    string
	Name    string
	Amount  float64
	Taxable bool
}

// ComputePay folds base salary and component lines into gross earnings,
// total deductions and net pay.
func ComputePay(baseSalary float64, lines []ComponentLine) (earnings, deductions, net float64) {
	earnings = baseSalary
	for _, line := range lines {
		switch line.Type {
		case ComponentEarning:
			earnings += line.Amount
		case ComponentDeduction:
			deductions += line.Amount
		}
	}
	earnings = RoundMoney(earnings)
	deductions = RoundMoney(deductions)
	net = RoundMoney(earnings - deductions)
	return earnings, deductions, net
}

// RoundMoney rounds to two decimal places, half away from zero.
func RoundMoney(value float64) float64 {
	if value < 0 {
		return -RoundMoney(-value)
	}
	scaled := value*100 + 0.5
	return float64(int64(scaled)) / 100
}
