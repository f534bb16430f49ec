package service

import (
	"context"

	"github.com/spec-kit/department-service/internal/domain"
	"github.com/spec-kit/department-service/internal/repository"
)

// DepartmentService coordinates department reads and writes.
type DepartmentService struct {
	departments repository.DepartmentRepository
	employees   repository.EmployeeRepository
}

// DepartmentDependencies bundles repositories for the department service.
type DepartmentDependencies struct {
	DepartmentRepo repository.DepartmentRepository
	EmployeeRepo   repository.EmployeeRepository
}

// NewDepartmentService constructs the service.
func NewDepartmentService(deps DepartmentDependencies) *DepartmentService {
	return &DepartmentService{
		departments: deps.DepartmentRepo,
		employees:   deps.EmployeeRepo,
	}
}

// List returns all departments in insertion order.
func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	return s.departments.List(ctx)
}

// GetByID returns the department or nil when it does not exist.
func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	return s.departments.GetByID(ctx, id)
}

// Create inserts a department with the given title.
func (s *DepartmentService) Create(ctx context.Context, title string) (*domain.Department, error) {
	dept := &domain.Department{Title: title}
	if err := s.departments.Create(ctx, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

// Update applies the patch to the department and persists it. Fields absent
// from the patch keep their prior values.
func (s *DepartmentService) Update(ctx context.Context, dept *domain.Department, patch domain.DepartmentPatch) (*domain.Department, error) {
	patch.Apply(dept)
	if err := s.departments.Update(ctx, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

// Delete removes the department and all of its employees.
func (s *DepartmentService) Delete(ctx context.Context, dept *domain.Department) error {
	return s.departments.Delete(ctx, dept.ID)
}

// AvgSalary returns the department's mean salary rounded to the nearest
// integer, 0 for a department with no employees.
func (s *DepartmentService) AvgSalary(ctx context.Context, dept *domain.Department) (int, error) {
	return s.employees.AvgSalaryByDepartment(ctx, dept.ID)
}
