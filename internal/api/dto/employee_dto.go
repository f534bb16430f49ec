package dto

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/spec-kit/department-service/internal/domain"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// EmployeeRequest is the inbound payload for employee create and update.
// Pointer fields distinguish omitted keys from zero values.
type EmployeeRequest struct {
	FullName     *string `json:"full_name"`
	DateOfBirth  *string `json:"date_of_birth"`
	Salary       *int    `json:"salary"`
	DepartmentID *int64  `json:"department_id"`
}

// ValidateCreate checks a creation payload: every field is required except
// department_id when requireDepartment is false (department-scoped creation
// supplies it from the URL). Returns the validated patch and a field-keyed
// error map, nil when the payload is valid.
func (r EmployeeRequest) ValidateCreate(requireDepartment bool) (domain.EmployeePatch, map[string][]string) {
	return r.validate(true, requireDepartment)
}

// ValidatePartial checks an update payload: any subset of fields may be
// present, and only present fields are validated.
func (r EmployeeRequest) ValidatePartial() (domain.EmployeePatch, map[string][]string) {
	return r.validate(false, false)
}

func (r EmployeeRequest) validate(required, requireDepartment bool) (domain.EmployeePatch, map[string][]string) {
	var patch domain.EmployeePatch
	errs := map[string][]string{}

	switch {
	case r.FullName != nil:
		if msgs := fullNameErrors(*r.FullName); len(msgs) > 0 {
			errs["full_name"] = msgs
		} else {
			patch.FullName = r.FullName
		}
	case required:
		errs["full_name"] = append(errs["full_name"], "full name is required")
	}

	switch {
	case r.DateOfBirth != nil:
		parsed, err := time.Parse(DateLayout, *r.DateOfBirth)
		if err != nil {
			errs["date_of_birth"] = append(errs["date_of_birth"], "Not a valid date.")
		} else {
			patch.DateOfBirth = &parsed
		}
	case required:
		errs["date_of_birth"] = append(errs["date_of_birth"], "Missing data for required field.")
	}

	switch {
	case r.Salary != nil:
		if *r.Salary < 0 {
			errs["salary"] = append(errs["salary"], "Must be greater than or equal to 0.")
		} else {
			patch.Salary = r.Salary
		}
	case required:
		errs["salary"] = append(errs["salary"], "salary is required")
	}

	switch {
	case r.DepartmentID != nil:
		patch.DepartmentID = r.DepartmentID
	case required && requireDepartment:
		errs["department_id"] = append(errs["department_id"], "department_id is required")
	}

	if len(errs) == 0 {
		return patch, nil
	}
	return patch, errs
}

// fullNameErrors enforces the structural rule: letters and spaces only, and
// exactly two whitespace-separated tokens, 6 to 128 characters overall.
func fullNameErrors(name string) []string {
	var msgs []string
	if !isFullName(name) {
		msgs = append(msgs, "Wrong full name")
	}
	if n := utf8.RuneCountInString(name); n < 6 || n > 128 {
		msgs = append(msgs, "Length must be between 6 and 128.")
	}
	return msgs
}

func isFullName(name string) bool {
	for _, r := range name {
		if !unicode.IsLetter(r) && r != ' ' {
			return false
		}
	}
	return len(strings.Fields(name)) == 2
}

// EmployeeResponse is the full outbound employee representation with its
// department nested in place of the raw department id.
type EmployeeResponse struct {
	ID          int64           `json:"id"`
	FullName    string          `json:"full_name"`
	DateOfBirth string          `json:"date_of_birth"`
	Salary      int             `json:"salary"`
	Department  DepartmentShort `json:"department"`
}

// EmployeeShort is the employee representation nested inside a department; it
// omits the department back-reference to avoid unbounded recursion.
type EmployeeShort struct {
	ID          int64  `json:"id"`
	FullName    string `json:"full_name"`
	DateOfBirth string `json:"date_of_birth"`
	Salary      int    `json:"salary"`
}

// NewEmployeeResponse shapes an employee with its nested department.
func NewEmployeeResponse(emp domain.Employee, dept domain.Department, deptAvgSalary int) EmployeeResponse {
	return EmployeeResponse{
		ID:          emp.ID,
		FullName:    emp.FullName,
		DateOfBirth: emp.DateOfBirth.Format(DateLayout),
		Salary:      emp.Salary,
		Department:  NewDepartmentShort(dept, deptAvgSalary),
	}
}

// NewEmployeeShort shapes the nested employee representation.
func NewEmployeeShort(emp domain.Employee) EmployeeShort {
	return EmployeeShort{
		ID:          emp.ID,
		FullName:    emp.FullName,
		DateOfBirth: emp.DateOfBirth.Format(DateLayout),
		Salary:      emp.Salary,
	}
}
