// Package memory holds in-memory implementations of the repository
// interfaces. They mirror the schema constraints (unique department title,
// employee department foreign key, cascade delete) and back the service and
// handler tests without a database.
package memory

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/department-service/internal/domain"
	"github.com/spec-kit/department-service/internal/repository"
	apperrors "github.com/spec-kit/department-service/pkg/util/errorutil"
)

// Store keeps both entity collections so the cross-entity constraints can be
// checked in one place.
type Store struct {
	mu          sync.Mutex
	departments []domain.Department
	employees   []domain.Employee
	nextDeptID  int64
	nextEmpID   int64
}

// NewStore builds an empty store.
func NewStore() *Store {
	return &Store{nextDeptID: 1, nextEmpID: 1}
}

// Departments returns the store as a DepartmentRepository.
func (s *Store) Departments() repository.DepartmentRepository {
	return (*departmentStore)(s)
}

// Employees returns the store as an EmployeeRepository.
func (s *Store) Employees() repository.EmployeeRepository {
	return (*employeeStore)(s)
}

type departmentStore Store

func (s *departmentStore) List(ctx context.Context) ([]domain.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]domain.Department, len(s.departments))
	copy(result, s.departments)
	return result, nil
}

func (s *departmentStore) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, dept := range s.departments {
		if dept.ID == id {
			found := dept
			return &found, nil
		}
	}
	return nil, nil
}

func (s *departmentStore) Create(ctx context.Context, dept *domain.Department) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.departments {
		if existing.Title == dept.Title {
			return apperrors.NewUniqueViolation("Department names should be unique")
		}
	}
	dept.ID = s.nextDeptID
	s.nextDeptID++
	s.departments = append(s.departments, *dept)
	return nil
}

func (s *departmentStore) Update(ctx context.Context, dept *domain.Department) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.departments {
		if existing.Title == dept.Title && existing.ID != dept.ID {
			return apperrors.NewUniqueViolation("Department names should be unique")
		}
	}
	for i, existing := range s.departments {
		if existing.ID == dept.ID {
			s.departments[i] = *dept
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (s *departmentStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.departments {
		if existing.ID == id {
			s.departments = append(s.departments[:i], s.departments[i+1:]...)
			kept := s.employees[:0]
			for _, emp := range s.employees {
				if emp.DepartmentID != id {
					kept = append(kept, emp)
				}
			}
			s.employees = kept
			return nil
		}
	}
	return pgx.ErrNoRows
}

type employeeStore Store

func (s *employeeStore) List(ctx context.Context) ([]domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]domain.Employee, len(s.employees))
	copy(result, s.employees)
	return result, nil
}

func (s *employeeStore) ListByDepartment(ctx context.Context, departmentID int64) ([]domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []domain.Employee
	for _, emp := range s.employees {
		if emp.DepartmentID == departmentID {
			result = append(result, emp)
		}
	}
	return result, nil
}

func (s *employeeStore) ListByDateOfBirth(ctx context.Context, from time.Time, to *time.Time, departmentID *int64) ([]domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []domain.Employee
	for _, emp := range s.employees {
		if to == nil {
			if !emp.DateOfBirth.Equal(from) {
				continue
			}
		} else if emp.DateOfBirth.Before(from) || emp.DateOfBirth.After(*to) {
			continue
		}
		if departmentID != nil && emp.DepartmentID != *departmentID {
			continue
		}
		result = append(result, emp)
	}
	return result, nil
}

func (s *employeeStore) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, emp := range s.employees {
		if emp.ID == id {
			found := emp
			return &found, nil
		}
	}
	return nil, nil
}

func (s *employeeStore) Create(ctx context.Context, emp *domain.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.departmentExists(emp.DepartmentID) {
		return apperrors.NewForeignKeyViolation("Not valid department id")
	}
	emp.ID = s.nextEmpID
	s.nextEmpID++
	s.employees = append(s.employees, *emp)
	return nil
}

func (s *employeeStore) Update(ctx context.Context, emp *domain.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.departmentExists(emp.DepartmentID) {
		return apperrors.NewForeignKeyViolation("Not valid department id")
	}
	for i, existing := range s.employees {
		if existing.ID == emp.ID {
			s.employees[i] = *emp
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (s *employeeStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.employees {
		if existing.ID == id {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (s *employeeStore) AvgSalaryByDepartment(ctx context.Context, departmentID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum, count int
	for _, emp := range s.employees {
		if emp.DepartmentID == departmentID {
			sum += emp.Salary
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return int(math.Round(float64(sum) / float64(count))), nil
}

func (s *employeeStore) departmentExists(id int64) bool {
	for _, dept := range s.departments {
		if dept.ID == id {
			return true
		}
	}
	return false
}
