package handlers

import (
	"context"
	"fmt"

	"github.com/spec-kit/department-service/internal/api/dto"
	"github.com/spec-kit/department-service/internal/domain"
	"github.com/spec-kit/department-service/internal/service"
	apperrors "github.com/spec-kit/department-service/pkg/util/errorutil"
)

func departmentResponse(ctx context.Context, departments *service.DepartmentService, employees *service.EmployeeService, dept *domain.Department) (dto.DepartmentResponse, error) {
	avg, err := departments.AvgSalary(ctx, dept)
	if err != nil {
		return dto.DepartmentResponse{}, err
	}
	members, err := employees.ListFromDepartment(ctx, dept.ID)
	if err != nil {
		return dto.DepartmentResponse{}, err
	}
	return dto.NewDepartmentResponse(*dept, avg, members), nil
}

func employeeResponse(ctx context.Context, departments *service.DepartmentService, emp domain.Employee) (dto.EmployeeResponse, error) {
	responses, err := employeeResponses(ctx, departments, []domain.Employee{emp})
	if err != nil {
		return dto.EmployeeResponse{}, err
	}
	return responses[0], nil
}

// employeeResponses shapes employees with their nested departments, looking
// each department and its average salary up once per distinct id.
func employeeResponses(ctx context.Context, departments *service.DepartmentService, employees []domain.Employee) ([]dto.EmployeeResponse, error) {
	depts := make(map[int64]domain.Department)
	avgs := make(map[int64]int)
	resp := make([]dto.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		dept, ok := depts[emp.DepartmentID]
		if !ok {
			found, err := departments.GetByID(ctx, emp.DepartmentID)
			if err != nil {
				return nil, err
			}
			if found == nil {
				return nil, apperrors.NewInternalError(fmt.Errorf("employee %d references missing department %d", emp.ID, emp.DepartmentID))
			}
			avg, err := departments.AvgSalary(ctx, found)
			if err != nil {
				return nil, err
			}
			depts[emp.DepartmentID] = *found
			avgs[emp.DepartmentID] = avg
			dept = *found
		}
		resp = append(resp, dto.NewEmployeeResponse(emp, dept, avgs[emp.DepartmentID]))
	}
	return resp, nil
}

func invalidBody() error {
	return apperrors.NewValidationError(map[string][]string{"_schema": {"Invalid input type."}})
}
