package service

import (
	"context"
	"time"

	"github.com/spec-kit/department-service/internal/domain"
	"github.com/spec-kit/department-service/internal/repository"
)

// EmployeeService coordinates employee reads and writes.
type EmployeeService struct {
	employees repository.EmployeeRepository
}

// EmployeeDependencies bundles repositories for the employee service.
type EmployeeDependencies struct {
	EmployeeRepo repository.EmployeeRepository
}

// NewEmployeeService constructs the service.
func NewEmployeeService(deps EmployeeDependencies) *EmployeeService {
	return &EmployeeService{employees: deps.EmployeeRepo}
}

// List returns all employees in insertion order.
func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.List(ctx)
}

// ListFromDepartment returns the employees of one department, an empty slice
// when none match.
func (s *EmployeeService) ListFromDepartment(ctx context.Context, departmentID int64) ([]domain.Employee, error) {
	return s.employees.ListByDepartment(ctx, departmentID)
}

// GetByID returns the employee or nil when it does not exist.
func (s *EmployeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

// ByDateOfBirth returns employees born on date, or born inside the inclusive
// interval [date, dateForInterval] when the second bound is given. Callers
// are responsible for passing an ordered interval.
func (s *EmployeeService) ByDateOfBirth(ctx context.Context, date time.Time, dateForInterval *time.Time) ([]domain.Employee, error) {
	return s.employees.ListByDateOfBirth(ctx, date, dateForInterval, nil)
}

// ByDateOfBirthFromDepartment is the department-scoped variant of
// ByDateOfBirth.
func (s *EmployeeService) ByDateOfBirthFromDepartment(ctx context.Context, departmentID int64, date time.Time, dateForInterval *time.Time) ([]domain.Employee, error) {
	return s.employees.ListByDateOfBirth(ctx, date, dateForInterval, &departmentID)
}

// Create inserts the employee; the repository rejects a department id that
// references no department.
func (s *EmployeeService) Create(ctx context.Context, emp *domain.Employee) (*domain.Employee, error) {
	if err := s.employees.Create(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

// Update applies the patch to the employee and persists it. Fields absent
// from the patch keep their prior values.
func (s *EmployeeService) Update(ctx context.Context, emp *domain.Employee, patch domain.EmployeePatch) (*domain.Employee, error) {
	patch.Apply(emp)
	if err := s.employees.Update(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

// Delete removes the employee.
func (s *EmployeeService) Delete(ctx context.Context, emp *domain.Employee) error {
	return s.employees.Delete(ctx, emp.ID)
}
