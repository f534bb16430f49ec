package domain

import "time"

// Employee represents a person record belonging to exactly one department.
type Employee struct {
	ID           int64
	FullName     string
	DateOfBirth  time.Time
	Salary       int
	DepartmentID int64
}

// EmployeePatch carries the mutable employee fields. A nil field is left
// unchanged when the patch is applied, which distinguishes an omitted field
// from one set to its existing value.
type EmployeePatch struct {
	FullName     *string
	DateOfBirth  *time.Time
	Salary       *int
	DepartmentID *int64
}

// Apply writes the set fields onto the employee.
func (p EmployeePatch) Apply(e *Employee) {
	if p.FullName != nil {
		e.FullName = *p.FullName
	}
	if p.DateOfBirth != nil {
		e.DateOfBirth = *p.DateOfBirth
	}
	if p.Salary != nil {
		e.Salary = *p.Salary
	}
	if p.DepartmentID != nil {
		e.DepartmentID = *p.DepartmentID
	}
}
