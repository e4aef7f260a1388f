package employee

import (
	"encoding/json"
	"time"
)

type Employee struct {
	ID             string     `json:"id"`
	TenantID       string     `json:"tenantId"`
	UserID         string     `json:"userId,omitempty"`
	EmployeeNumber string     `json:"employeeNumber"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	DepartmentID   string     `json:"departmentId"`
	DesignationID  string     `json:"designationId"`
	ManagerID      string     `json:"managerId"`
	ShiftID        string     `json:"shiftId"`
	Salary         *float64   `json:"salary,omitempty"`
	Currency       string     `json:"currency"`
	BankAccount    string     `json:"bankAccount,omitempty"`
	EmploymentType string     `json:"employmentType"`
	StartDate      *time.Time `json:"startDate,omitempty"`
	EndDate        *time.Time `json:"endDate,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type Onboarding struct {
	ID             string          `json:"id"`
	TenantID       string          `json:"tenantId,omitempty"`
	EmployeeID     string          `json:"employeeId,omitempty"`
	CandidateName  string          `json:"candidateName"`
	CandidateEmail string          `json:"candidateEmail"`
	JoinDate       *time.Time      `json:"joinDate,omitempty"`
	Checklist      json.RawMessage `json:"checklist"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type Resignation struct {
	ID             string     `json:"id"`
	TenantID       string     `json:"tenantId,omitempty"`
	EmployeeID     string     `json:"employeeId"`
	NoticeDate     time.Time  `json:"noticeDate"`
	LastWorkingDay *time.Time `json:"lastWorkingDay,omitempty"`
	Reason         string     `json:"reason"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type Termination struct {
	ID              string    `json:"id"`
	TenantID        string    `json:"tenantId,omitempty"`
	EmployeeID      string    `json:"employeeId"`
	TerminationDate time.Time `json:"terminationDate"`
	Reason          string    `json:"reason"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
