package payroll

const (
	StatusDraft     = "draft"
	StatusProcessed = "processed"
	StatusApproved  = "approved"
	StatusLocked    = "locked"

	TypeRegular  = "regular"
	TypeOffCycle = "off-cycle"

	ComponentEarning   = "earning"
	ComponentDeduction = "deduction"

	ComplianceProvidentFund   = "pf"
	ComplianceESI             = "esi"
	ComplianceProfessionalTax = "pt"

	WarningMissingBank = "missing_bank_account"
	WarningNegativeNet = "negative_net"
)

// Statuses in lifecycle order. Transitions move strictly forward, one step
// at a time.
var Statuses = []string{StatusDraft, StatusProcessed, StatusApproved, StatusLocked}
