package org

import "time"

type Department struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenantId,omitempty"`
	Name      string    `json:"name"`
	ParentID  string    `json:"parentId,omitempty"`
	ManagerID string    `json:"managerId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Designation struct {
	ID           string    `json:"id"`
	TenantID     string    `json:"tenantId,omitempty"`
	Title        string    `json:"title"`
	Grade        string    `json:"grade,omitempty"`
	DepartmentID string    `json:"departmentId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ReportingManager struct {
	ID            string     `json:"id"`
	TenantID      string     `json:"tenantId,omitempty"`
	EmployeeID    string     `json:"employeeId"`
	ManagerID     string     `json:"managerId"`
	EffectiveFrom *time.Time `json:"effectiveFrom,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type Shift struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenantId,omitempty"`
	Name      string    `json:"name"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Days      []string  `json:"days"`
	CreatedAt time.Time `json:"createdAt"`
}

type Holiday struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenantId"`
	Name      string    `json:"name"`
	Date      time.Time `json:"date"`
	Recurring bool      `json:"recurring"`
	CreatedAt time.Time `json:"createdAt"`
}
