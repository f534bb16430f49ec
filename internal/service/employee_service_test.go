package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/department-service/internal/domain"
	"github.com/spec-kit/department-service/internal/repository/memory"
	apperrors "github.com/spec-kit/department-service/pkg/util/errorutil"
)

func TestEmployeeServiceCreateRequiresExistingDepartment(t *testing.T) {
	ctx := context.Background()
	_, employees := newServices(memory.NewStore())

	_, err := employees.Create(ctx, &domain.Employee{
		FullName:     "Dillan Dejesus",
		DateOfBirth:  dob(1973, time.March, 3),
		Salary:       2000,
		DepartmentID: 42,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "FOREIGN_KEY_VIOLATION"))
}

func TestEmployeeServicePartialUpdate(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	departments, employees := newServices(store)

	dept, err := departments.Create(ctx, "Python")
	require.NoError(t, err)

	emp, err := employees.Create(ctx, &domain.Employee{
		FullName:     "Rhian Sutherland",
		DateOfBirth:  dob(1992, time.February, 2),
		Salary:       1000,
		DepartmentID: dept.ID,
	})
	require.NoError(t, err)

	name := "Ayah Hobbs"
	updated, err := employees.Update(ctx, emp, domain.EmployeePatch{FullName: &name})
	require.NoError(t, err)

	assert.Equal(t, "Ayah Hobbs", updated.FullName)
	assert.Equal(t, 1000, updated.Salary)
	assert.Equal(t, dob(1992, time.February, 2), updated.DateOfBirth)
	assert.Equal(t, dept.ID, updated.DepartmentID)

	found, err := employees.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Ayah Hobbs", found.FullName)
	assert.Equal(t, 1000, found.Salary)
}

func TestEmployeeServiceUpdateToMissingDepartment(t *testing.T) {
	ctx := context.Background()
	departments, employees := newServices(memory.NewStore())

	dept, err := departments.Create(ctx, "Python")
	require.NoError(t, err)
	emp, err := employees.Create(ctx, &domain.Employee{
		FullName:     "Neil Wilson",
		DateOfBirth:  dob(1985, time.May, 5),
		Salary:       2000,
		DepartmentID: dept.ID,
	})
	require.NoError(t, err)

	missing := int64(99)
	_, err = employees.Update(ctx, emp, domain.EmployeePatch{DepartmentID: &missing})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "FOREIGN_KEY_VIOLATION"))
}

func TestEmployeeServiceListFromDepartment(t *testing.T) {
	ctx := context.Background()
	departments, employees := newServices(memory.NewStore())

	python, err := departments.Create(ctx, "Python")
	require.NoError(t, err)
	cpp, err := departments.Create(ctx, "C++")
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := employees.Create(ctx, &domain.Employee{
			FullName: "Python Person", DateOfBirth: dob(1990, time.January, 1), Salary: 1000, DepartmentID: python.ID,
		})
		require.NoError(t, err)
	}

	members, err := employees.ListFromDepartment(ctx, python.ID)
	require.NoError(t, err)
	assert.Len(t, members, 2)

	empty, err := employees.ListFromDepartment(ctx, cpp.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestEmployeeServiceByDateOfBirth(t *testing.T) {
	ctx := context.Background()
	departments, employees := newServices(memory.NewStore())

	python, err := departments.Create(ctx, "Python")
	require.NoError(t, err)
	cpp, err := departments.Create(ctx, "C++")
	require.NoError(t, err)

	seed := []domain.Employee{
		{FullName: "Rhian Sutherland", DateOfBirth: dob(1992, time.February, 2), Salary: 1000, DepartmentID: python.ID},
		{FullName: "Evie Amin", DateOfBirth: dob(1995, time.April, 4), Salary: 2000, DepartmentID: cpp.ID},
		{FullName: "Abdirahman Davidson", DateOfBirth: dob(1995, time.May, 5), Salary: 2000, DepartmentID: cpp.ID},
	}
	for i := range seed {
		_, err := employees.Create(ctx, &seed[i])
		require.NoError(t, err)
	}

	t.Run("exact match", func(t *testing.T) {
		found, err := employees.ByDateOfBirth(ctx, dob(1995, time.April, 4), nil)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Evie Amin", found[0].FullName)
	})

	t.Run("interval includes both endpoints", func(t *testing.T) {
		to := dob(1995, time.May, 5)
		found, err := employees.ByDateOfBirth(ctx, dob(1992, time.February, 2), &to)
		require.NoError(t, err)
		require.Len(t, found, 3)
	})

	t.Run("no matches is empty not error", func(t *testing.T) {
		found, err := employees.ByDateOfBirth(ctx, dob(2020, time.January, 1), nil)
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("department scoped", func(t *testing.T) {
		to := dob(1995, time.May, 5)
		found, err := employees.ByDateOfBirthFromDepartment(ctx, cpp.ID, dob(1992, time.February, 2), &to)
		require.NoError(t, err)
		require.Len(t, found, 2)
		for _, emp := range found {
			assert.Equal(t, cpp.ID, emp.DepartmentID)
		}
	})
}

func TestEmployeeServiceDelete(t *testing.T) {
	ctx := context.Background()
	departments, employees := newServices(memory.NewStore())

	dept, err := departments.Create(ctx, "Python")
	require.NoError(t, err)
	emp, err := employees.Create(ctx, &domain.Employee{
		FullName: "Corban Snow", DateOfBirth: dob(1962, time.February, 2), Salary: 1000, DepartmentID: dept.ID,
	})
	require.NoError(t, err)

	require.NoError(t, employees.Delete(ctx, emp))

	found, err := employees.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}
