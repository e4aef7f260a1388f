package payroll

import "errors"

var (
	ErrRunNotFound       = errors.New("payroll run not found")
	ErrInvalidTransition = errors.New("invalid payroll run status transition")
	ErrConflict          = errors.New("payroll run was modified concurrently")
	ErrRunLocked         = errors.New("payroll run is locked")
	ErrRunNotApproved    = errors.New("payroll run must be approved first")
	ErrEmployeeSets      = errors.New("included and excluded employees must partition the employee list")
	ErrComponentNotFound = errors.New("salary component not found")
	ErrPayslipNotFound   = errors.New("payslip not found")
)
