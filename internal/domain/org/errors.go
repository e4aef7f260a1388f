package org

import "errors"

var (
	ErrDepartmentNotFound       = errors.New("department not found")
	ErrDesignationNotFound      = errors.New("designation not found")
	ErrReportingManagerNotFound = errors.New("reporting manager not found")
	ErrShiftNotFound            = errors.New("shift not found")
	ErrHolidayNotFound          = errors.New("holiday not found")
)
