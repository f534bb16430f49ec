package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int       { return &n }
func int64Ptr(n int64) *int64 { return &n }

func validCreateRequest() EmployeeRequest {
	return EmployeeRequest{
		FullName:     strPtr("Dillan Dejesus"),
		DateOfBirth:  strPtr("1973-03-03"),
		Salary:       intPtr(2000),
		DepartmentID: int64Ptr(2),
	}
}

func TestEmployeeRequestValidateCreate(t *testing.T) {
	req := validCreateRequest()
	patch, errs := req.ValidateCreate(true)
	require.Nil(t, errs)
	require.NotNil(t, patch.FullName)
	assert.Equal(t, "Dillan Dejesus", *patch.FullName)
	require.NotNil(t, patch.DateOfBirth)
	assert.Equal(t, time.Date(1973, time.March, 3, 0, 0, 0, 0, time.UTC), *patch.DateOfBirth)
	require.NotNil(t, patch.Salary)
	assert.Equal(t, 2000, *patch.Salary)
	require.NotNil(t, patch.DepartmentID)
	assert.Equal(t, int64(2), *patch.DepartmentID)
}

func TestEmployeeRequestFullNameRules(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		wantErr  []string
	}{
		{name: "two alphabetic tokens", fullName: "Dillan Dejesus"},
		{name: "single token", fullName: "Dillan", wantErr: []string{"Wrong full name"}},
		{name: "digit in name", fullName: "Dillan D3jesus", wantErr: []string{"Wrong full name"}},
		{name: "three tokens", fullName: "Dillan Middle Dejesus", wantErr: []string{"Wrong full name"}},
		{name: "hyphenated", fullName: "Mary-Jane Watson", wantErr: []string{"Wrong full name"}},
		{name: "too short", fullName: "Al Bo", wantErr: []string{"Length must be between 6 and 128."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			req.FullName = &tt.fullName
			_, errs := req.ValidateCreate(true)
			if tt.wantErr == nil {
				require.Nil(t, errs)
				return
			}
			require.NotNil(t, errs)
			assert.Equal(t, tt.wantErr, errs["full_name"])
		})
	}
}

func TestEmployeeRequestRequiredFields(t *testing.T) {
	_, errs := EmployeeRequest{}.ValidateCreate(true)
	require.NotNil(t, errs)
	assert.Equal(t, []string{"full name is required"}, errs["full_name"])
	assert.Equal(t, []string{"Missing data for required field."}, errs["date_of_birth"])
	assert.Equal(t, []string{"salary is required"}, errs["salary"])
	assert.Equal(t, []string{"department_id is required"}, errs["department_id"])
}

func TestEmployeeRequestDepartmentOptionalForScopedCreate(t *testing.T) {
	req := validCreateRequest()
	req.DepartmentID = nil
	patch, errs := req.ValidateCreate(false)
	require.Nil(t, errs)
	assert.Nil(t, patch.DepartmentID)
}

func TestEmployeeRequestFieldChecks(t *testing.T) {
	t.Run("negative salary", func(t *testing.T) {
		req := validCreateRequest()
		req.Salary = intPtr(-1)
		_, errs := req.ValidateCreate(true)
		require.NotNil(t, errs)
		assert.Equal(t, []string{"Must be greater than or equal to 0."}, errs["salary"])
	})

	t.Run("zero salary is valid", func(t *testing.T) {
		req := validCreateRequest()
		req.Salary = intPtr(0)
		_, errs := req.ValidateCreate(true)
		require.Nil(t, errs)
	})

	t.Run("malformed date", func(t *testing.T) {
		req := validCreateRequest()
		req.DateOfBirth = strPtr("03-03-1973")
		_, errs := req.ValidateCreate(true)
		require.NotNil(t, errs)
		assert.Equal(t, []string{"Not a valid date."}, errs["date_of_birth"])
	})
}

func TestEmployeeRequestValidatePartial(t *testing.T) {
	t.Run("empty payload is valid", func(t *testing.T) {
		patch, errs := EmployeeRequest{}.ValidatePartial()
		require.Nil(t, errs)
		assert.Nil(t, patch.FullName)
		assert.Nil(t, patch.DateOfBirth)
		assert.Nil(t, patch.Salary)
		assert.Nil(t, patch.DepartmentID)
	})

	t.Run("present fields are still validated", func(t *testing.T) {
		_, errs := EmployeeRequest{FullName: strPtr("OnlyOne")}.ValidatePartial()
		require.NotNil(t, errs)
		assert.Equal(t, []string{"Wrong full name"}, errs["full_name"])
	})

	t.Run("subset builds a partial patch", func(t *testing.T) {
		patch, errs := EmployeeRequest{Salary: intPtr(1200)}.ValidatePartial()
		require.Nil(t, errs)
		require.NotNil(t, patch.Salary)
		assert.Equal(t, 1200, *patch.Salary)
		assert.Nil(t, patch.FullName)
	})
}
