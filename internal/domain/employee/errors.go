package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrOnboardingNotFound  = errors.New("onboarding record not found")
	ErrResignationNotFound = errors.New("resignation not found")
	ErrTerminationNotFound = errors.New("termination not found")
)
