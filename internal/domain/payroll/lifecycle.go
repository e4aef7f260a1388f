package payroll

import "time"

// NextStatus returns the only status a run in current may move to. The
// second return is false when current is terminal or unknown.
func NextStatus(current string) (string, bool) {
	switch current {
	case StatusDraft:
		return StatusProcessed, true
	case StatusProcessed:
		return StatusApproved, true
	case StatusApproved:
		return StatusLocked, true
	}
	return "", false
}

// Transition moves run to target, stamping the attribution fields for that
// step. Targets other than the immediate successor fail with
// ErrInvalidTransition; locked runs fail with ErrRunLocked. Attribution
// fields already set are left untouched, and monetary totals are never
// altered beyond recomputing NetPay from the totals themselves.
func Transition(run *Run, target, actorID string, now time.Time) error {
	if run.Status == StatusLocked {
		return ErrRunLocked
	}
	next, ok := NextStatus(run.Status)
	if !ok || target != next {
		return ErrInvalidTransition
	}

	stamp := now
	switch target {
	case StatusProcessed:
		run.ProcessedBy = actorID
		run.ProcessedAt = &stamp
	case StatusApproved:
		run.ApprovedBy = actorID
		run.ApprovedAt = &stamp
	case StatusLocked:
		run.LockedBy = actorID
		run.LockedAt = &stamp
		run.FinalConfirmation = true
	}
	run.Status = target
	run.NetPay = run.TotalEarnings - run.TotalDeductions
	return nil
}

// MarkBankAdvice flags the run's bank advice as generated. Bank advices are
// meaningless before approval, so runs earlier in the lifecycle are
// rejected. The flag is monotonic: it is never reset.
func MarkBankAdvice(run *Run) error {
	if run.Status != StatusApproved && run.Status != StatusLocked {
		return ErrRunNotApproved
	}
	run.BankAdviceGenerated = true
	return nil
}

// MarkPaymentFile flags the run's payment file as generated, under the same
// lifecycle gate as MarkBankAdvice.
func MarkPaymentFile(run *Run) error {
	if run.Status != StatusApproved && run.Status != StatusLocked {
		return ErrRunNotApproved
	}
	run.PaymentFileGenerated = true
	return nil
}

// ValidateEmployeeSets checks included ∪ excluded ⊆ employeeList and
// included ∩ excluded = ∅.
func ValidateEmployeeSets(run *Run) error {
	inList := make(map[string]bool, len(run.EmployeeList))
	for _, id := range run.EmployeeList {
		inList[id] = true
	}
	included := make(map[string]bool, len(run.IncludedEmployees))
	for _, id := range run.IncludedEmployees {
		if !inList[id] {
			return ErrEmployeeSets
		}
		included[id] = true
	}
	for _, id := range run.ExcludedEmployees {
		if !inList[id] || included[id] {
			return ErrEmployeeSets
		}
	}
	return nil
}

// Deletable reports whether the run may be removed. Locked runs are
// permanent.
func Deletable(run *Run) error {
	if run.Status == StatusLocked {
		return ErrRunLocked
	}
	return nil
}
