package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/department-service/internal/domain"
	"github.com/spec-kit/department-service/internal/repository/memory"
	"github.com/spec-kit/department-service/internal/service"
	apperrors "github.com/spec-kit/department-service/pkg/util/errorutil"
)

func newServices(store *memory.Store) (*service.DepartmentService, *service.EmployeeService) {
	departments := service.NewDepartmentService(service.DepartmentDependencies{
		DepartmentRepo: store.Departments(),
		EmployeeRepo:   store.Employees(),
	})
	employees := service.NewEmployeeService(service.EmployeeDependencies{
		EmployeeRepo: store.Employees(),
	})
	return departments, employees
}

func dob(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestDepartmentServiceCreateAssignsID(t *testing.T) {
	ctx := context.Background()
	departments, _ := newServices(memory.NewStore())

	dept, err := departments.Create(ctx, "Python")
	require.NoError(t, err)
	assert.Equal(t, int64(1), dept.ID)
	assert.Equal(t, "Python", dept.Title)

	found, err := departments.GetByID(ctx, dept.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Python", found.Title)
}

func TestDepartmentServiceDuplicateTitle(t *testing.T) {
	ctx := context.Background()
	departments, _ := newServices(memory.NewStore())

	_, err := departments.Create(ctx, "Python")
	require.NoError(t, err)

	_, err = departments.Create(ctx, "Python")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "UNIQUE_VIOLATION"))
}

func TestDepartmentServiceGetByIDMissingIsNil(t *testing.T) {
	ctx := context.Background()
	departments, _ := newServices(memory.NewStore())

	dept, err := departments.GetByID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, dept)
}

func TestDepartmentServiceAvgSalary(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	departments, employees := newServices(store)

	dept, err := departments.Create(ctx, "Python")
	require.NoError(t, err)

	for _, salary := range []int{1500, 1000, 2000, 1000} {
		_, err := employees.Create(ctx, &domain.Employee{
			FullName:     "Some Person",
			DateOfBirth:  dob(1990, time.January, 1),
			Salary:       salary,
			DepartmentID: dept.ID,
		})
		require.NoError(t, err)
	}

	avg, err := departments.AvgSalary(ctx, dept)
	require.NoError(t, err)
	assert.Equal(t, 1375, avg)
}

func TestDepartmentServiceAvgSalaryEmptyDepartment(t *testing.T) {
	ctx := context.Background()
	departments, _ := newServices(memory.NewStore())

	dept, err := departments.Create(ctx, "Empty")
	require.NoError(t, err)

	avg, err := departments.AvgSalary(ctx, dept)
	require.NoError(t, err)
	assert.Equal(t, 0, avg)
}

func TestDepartmentServiceDeleteCascades(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	departments, employees := newServices(store)

	python, err := departments.Create(ctx, "Python")
	require.NoError(t, err)
	cpp, err := departments.Create(ctx, "C++")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := employees.Create(ctx, &domain.Employee{
			FullName:     "Python Person",
			DateOfBirth:  dob(1990, time.January, 1),
			Salary:       1000,
			DepartmentID: python.ID,
		})
		require.NoError(t, err)
	}
	kept, err := employees.Create(ctx, &domain.Employee{
		FullName:     "Cpp Person",
		DateOfBirth:  dob(1985, time.May, 5),
		Salary:       2000,
		DepartmentID: cpp.ID,
	})
	require.NoError(t, err)

	require.NoError(t, departments.Delete(ctx, python))

	remaining, err := employees.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].ID)

	gone, err := departments.GetByID(ctx, python.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestDepartmentServiceUpdateTitle(t *testing.T) {
	ctx := context.Background()
	departments, _ := newServices(memory.NewStore())

	dept, err := departments.Create(ctx, "Python")
	require.NoError(t, err)

	title := "Golang"
	updated, err := departments.Update(ctx, dept, domain.DepartmentPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Golang", updated.Title)

	found, err := departments.GetByID(ctx, dept.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Golang", found.Title)
}

func TestDepartmentServiceUpdateDuplicateTitle(t *testing.T) {
	ctx := context.Background()
	departments, _ := newServices(memory.NewStore())

	_, err := departments.Create(ctx, "Python")
	require.NoError(t, err)
	dept, err := departments.Create(ctx, "C++")
	require.NoError(t, err)

	title := "Python"
	_, err = departments.Update(ctx, dept, domain.DepartmentPatch{Title: &title})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "UNIQUE_VIOLATION"))
}
