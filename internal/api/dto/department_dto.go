package dto

import (
	"unicode/utf8"

	"github.com/spec-kit/department-service/internal/domain"
)

// DepartmentRequest is the inbound payload for department create and update.
// Pointer fields distinguish omitted keys from zero values.
type DepartmentRequest struct {
	Title *string `json:"title"`
}

// Validate checks the payload and returns the validated patch alongside a
// field-keyed error map, nil when the payload is valid.
func (r DepartmentRequest) Validate() (domain.DepartmentPatch, map[string][]string) {
	var patch domain.DepartmentPatch
	errs := map[string][]string{}

	if r.Title == nil {
		errs["title"] = append(errs["title"], "Missing data for required field.")
	} else if n := utf8.RuneCountInString(*r.Title); n < 3 || n > 128 {
		errs["title"] = append(errs["title"], "Length must be between 3 and 128.")
	} else {
		patch.Title = r.Title
	}

	if len(errs) == 0 {
		return patch, nil
	}
	return patch, errs
}

// DepartmentResponse is the full outbound department representation.
type DepartmentResponse struct {
	ID        int64           `json:"id"`
	Title     string          `json:"title"`
	AvgSalary int             `json:"avg_salary"`
	Employees []EmployeeShort `json:"employees"`
}

// DepartmentShort is the department representation nested inside an employee;
// it omits the employee list to avoid the mirrored recursion.
type DepartmentShort struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	AvgSalary int    `json:"avg_salary"`
}

// NewDepartmentResponse shapes a department with its derived average salary
// and employee list.
func NewDepartmentResponse(dept domain.Department, avgSalary int, employees []domain.Employee) DepartmentResponse {
	shorts := make([]EmployeeShort, 0, len(employees))
	for _, emp := range employees {
		shorts = append(shorts, NewEmployeeShort(emp))
	}
	return DepartmentResponse{
		ID:        dept.ID,
		Title:     dept.Title,
		AvgSalary: avgSalary,
		Employees: shorts,
	}
}

// NewDepartmentShort shapes the nested department representation.
func NewDepartmentShort(dept domain.Department, avgSalary int) DepartmentShort {
	return DepartmentShort{
		ID:        dept.ID,
		Title:     dept.Title,
		AvgSalary: avgSalary,
	}
}
