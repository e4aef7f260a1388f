package payroll

import "time"

type Run struct {
	ID                   string     `json:"id"`
	TenantID             string     `json:"tenantId"`
	PayrollPeriod        string     `json:"payrollPeriod"`
	PayrollType          string     `json:"payrollType"`
	PayDate              *time.Time `json:"payDate,omitempty"`
	StartDate            *time.Time `json:"startDate,omitempty"`
	EndDate              *time.Time `json:"endDate,omitempty"`
	EmployeeList         []string   `json:"employeeList"`
	IncludedEmployees    []string   `json:"includedEmployees"`
	ExcludedEmployees    []string   `json:"excludedEmployees"`
	TotalEarnings        float64    `json:"totalEarnings"`
	TotalDeductions      float64    `json:"totalDeductions"`
	NetPay               float64    `json:"netPay"`
	Status               string     `json:"status"`
	ProcessedBy          string     `json:"processedBy,omitempty"`
	ApprovedBy           string     `json:"approvedBy,omitempty"`
	LockedBy             string     `json:"lockedBy,omitempty"`
	ProcessedAt          *time.Time `json:"processedAt,omitempty"`
	ApprovedAt           *time.Time `json:"approvedAt,omitempty"`
	LockedAt             *time.Time `json:"lockedAt,omitempty"`
	BankAdviceGenerated  bool       `json:"bankAdviceGenerated"`
	PaymentFileGenerated bool       `json:"paymentFileGenerated"`
	FinalConfirmation    bool       `json:"finalConfirmation"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

type Component struct {
	ID            string    `json:"id"`
	TenantID      string    `json:"tenantId"`
	Name          string    `json:"name"`
	ComponentType string    `json:"componentType"`
	CalcType      string    `json:"calcType"`
	Amount        float64   `json:"amount"`
	Percentage    float64   `json:"percentage"`
	Taxable       bool      `json:"taxable"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Payslip struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenantId"`
	RunID      string    `json:"runId"`
	EmployeeID string    `json:"employeeId"`
	Earnings   float64   `json:"earnings"`
	Deductions float64   `json:"deductions"`
	NetPay     float64   `json:"netPay"`
	Currency   string    `json:"currency"`
	FileURL    string    `json:"fileUrl"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ComplianceRecord struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenantId"`
	RunID      string    `json:"runId"`
	EmployeeID string    `json:"employeeId"`
	Kind       string    `json:"kind"`
	Amount     float64   `json:"amount"`
	CreatedAt  time.Time `json:"createdAt"`
}

type RunSummary struct {
	TotalEarnings   float64        `json:"totalEarnings"`
	TotalDeductions float64        `json:"totalDeductions"`
	NetPay          float64        `json:"netPay"`
	EmployeeCount   int            `json:"employeeCount"`
	Warnings        map[string]int `json:"warnings"`
}
