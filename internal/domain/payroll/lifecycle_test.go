package payroll

import (
	"errors"
	"testing"
	"time"
)

func draftRun() *Run {
	return &Run{
		ID:              "run-1",
		TenantID:        "default",
		PayrollPeriod:   "2025-08",
		PayrollType:     TypeRegular,
		Status:          StatusDraft,
		TotalEarnings:   100000,
		TotalDeductions: 20000,
		NetPay:          80000,
	}
}

func TestTransitionDraftToProcessed(t *testing.T) {
	run := draftRun()
	now := time.Date(2025, 8, 31, 10, 0, 0, 0, time.UTC)

	if err := Transition(run, StatusProcessed, "u1", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.Status != StatusProcessed {
		t.Fatalf("expected processed, got %s", run.Status)
	}
	if run.ProcessedBy != "u1" {
		t.Fatalf("expected processedBy u1, got %s", run.ProcessedBy)
	}
	if run.ProcessedAt == nil || !run.ProcessedAt.Equal(now) {
		t.Fatalf("expected processedAt %v, got %v", now, run.ProcessedAt)
	}
	if run.NetPay != 80000 {
		t.Fatalf("expected netPay 80000, got %v", run.NetPay)
	}
}

func TestTransitionFullLifecycle(t *testing.T) {
	run := draftRun()
	base := time.Date(2025, 8, 31, 10, 0, 0, 0, time.UTC)

	steps := []struct {
		target string
		actor  string
	}{
		{StatusProcessed, "u1"},
		{StatusApproved, "u2"},
		{StatusLocked, "u3"},
	}
	for i, step := range steps {
		if err := Transition(run, step.target, step.actor, base.Add(time.Duration(i)*time.Hour)); err != nil {
			t.Fatalf("transition to %s failed: %v", step.target, err)
		}
		if run.NetPay != run.TotalEarnings-run.TotalDeductions {
			t.Fatalf("netPay invariant broken after %s", step.target)
		}
	}

	if run.ProcessedBy != "u1" || run.ApprovedBy != "u2" || run.LockedBy != "u3" {
		t.Fatalf("attribution fields wrong: %s %s %s", run.ProcessedBy, run.ApprovedBy, run.LockedBy)
	}
	if !run.FinalConfirmation {
		t.Fatal("finalConfirmation should be set on lock")
	}
	if run.ProcessedAt == nil || run.ApprovedAt == nil || run.LockedAt == nil {
		t.Fatal("all timestamps should be set")
	}
}

func TestTransitionRejectsSkips(t *testing.T) {
	targets := []string{StatusApproved, StatusLocked, StatusDraft, "paid"}
	for _, target := range targets {
		run := draftRun()
		if err := Transition(run, target, "u1", time.Now()); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("draft -> %s should be invalid, got %v", target, err)
		}
		if run.Status != StatusDraft {
			t.Fatalf("failed transition must not change status, got %s", run.Status)
		}
		if run.ProcessedBy != "" || run.LockedBy != "" {
			t.Fatal("failed transition must not stamp attribution")
		}
	}
}

func TestTransitionLockedIsTerminal(t *testing.T) {
	run := draftRun()
	lockedAt := time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)
	run.Status = StatusLocked
	run.LockedBy = "u3"
	run.LockedAt = &lockedAt

	for _, target := range Statuses {
		if err := Transition(run, target, "u9", time.Now()); !errors.Is(err, ErrRunLocked) {
			t.Fatalf("locked -> %s should fail with ErrRunLocked, got %v", target, err)
		}
	}
	if run.LockedBy != "u3" || !run.LockedAt.Equal(lockedAt) {
		t.Fatal("lock attribution must not change after lock")
	}
}

func TestTransitionPreservesEarlierAttribution(t *testing.T) {
	run := draftRun()
	t1 := time.Date(2025, 8, 31, 10, 0, 0, 0, time.UTC)
	if err := Transition(run, StatusProcessed, "u1", t1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Transition(run, StatusApproved, "u2", t1.Add(time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.ProcessedBy != "u1" || !run.ProcessedAt.Equal(t1) {
		t.Fatal("later transition cleared earlier attribution")
	}
}

func TestMarkBankAdviceGating(t *testing.T) {
	run := draftRun()
	if err := MarkBankAdvice(run); !errors.Is(err, ErrRunNotApproved) {
		t.Fatalf("draft run should reject bank advice, got %v", err)
	}
	run.Status = StatusProcessed
	if err := MarkPaymentFile(run); !errors.Is(err, ErrRunNotApproved) {
		t.Fatalf("processed run should reject payment file, got %v", err)
	}

	run.Status = StatusApproved
	if err := MarkBankAdvice(run); err != nil {
		t.Fatalf("approved run should allow bank advice: %v", err)
	}
	run.Status = StatusLocked
	if err := MarkPaymentFile(run); err != nil {
		t.Fatalf("locked run should allow payment file: %v", err)
	}
	if !run.BankAdviceGenerated || !run.PaymentFileGenerated {
		t.Fatal("flags should be set")
	}
}

func TestValidateEmployeeSets(t *testing.T) {
	run := draftRun()
	run.EmployeeList = []string{"e1", "e2", "e3"}
	run.IncludedEmployees = []string{"e1", "e2"}
	run.ExcludedEmployees = []string{"e3"}
	if err := ValidateEmployeeSets(run); err != nil {
		t.Fatalf("valid partition rejected: %v", err)
	}

	run.ExcludedEmployees = []string{"e2"}
	if err := ValidateEmployeeSets(run); !errors.Is(err, ErrEmployeeSets) {
		t.Fatalf("overlap should fail, got %v", err)
	}

	run.ExcludedEmployees = []string{"e9"}
	if err := ValidateEmployeeSets(run); !errors.Is(err, ErrEmployeeSets) {
		t.Fatalf("excluded outside list should fail, got %v", err)
	}

	run.IncludedEmployees = []string{"e9"}
	run.ExcludedEmployees = nil
	if err := ValidateEmployeeSets(run); !errors.Is(err, ErrEmployeeSets) {
		t.Fatalf("included outside list should fail, got %v", err)
	}
}

func TestDeletable(t *testing.T) {
	run := draftRun()
	if err := Deletable(run); err != nil {
		t.Fatalf("draft run should be deletable: %v", err)
	}
	run.Status = StatusLocked
	if err := Deletable(run); !errors.Is(err, ErrRunLocked) {
		t.Fatalf("locked run must not be deletable, got %v", err)
	}
}
