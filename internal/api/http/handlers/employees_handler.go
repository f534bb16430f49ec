package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/department-service/internal/api/dto"
	"github.com/spec-kit/department-service/internal/domain"
	"github.com/spec-kit/department-service/internal/service"
	apperrors "github.com/spec-kit/department-service/pkg/util/errorutil"
)

// The GET/DELETE and PUT endpoints answer a missing employee with different
// historical message texts; both are preserved per endpoint.
const (
	employeeNotFoundFmt       = "Employee with id = %s was not found"
	employeeNotFoundUpdateFmt = "Employee with id %s not found"

	searchDepartmentNotFoundFmt = "Department with id %s not found"
)

// EmployeesHandler serves the employee resources and the date-of-birth
// search endpoints.
type EmployeesHandler struct {
	employees   *service.EmployeeService
	departments *service.DepartmentService
}

// NewEmployeesHandler constructs the handler.
func NewEmployeesHandler(employees *service.EmployeeService, departments *service.DepartmentService) *EmployeesHandler {
	return &EmployeesHandler{employees: employees, departments: departments}
}

// List GET /api/v1/employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	employees, err := h.employees.List(c.UserContext())
	if err != nil {
		return err
	}
	resp, err := employeeResponses(c.UserContext(), h.departments, employees)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Get GET /api/v1/employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	emp, err := h.findEmployee(c, employeeNotFoundFmt)
	if err != nil {
		return err
	}
	resp, err := employeeResponse(c.UserContext(), h.departments, *emp)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Create POST /api/v1/employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody()
	}
	patch, fieldErrs := req.ValidateCreate(true)
	if fieldErrs != nil {
		return apperrors.NewValidationError(fieldErrs)
	}
	emp := &domain.Employee{}
	patch.Apply(emp)
	created, err := h.employees.Create(c.UserContext(), emp)
	if err != nil {
		return err
	}
	resp, err := employeeResponse(c.UserContext(), h.departments, *created)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update PUT /api/v1/employees/:id. Accepts any subset of the mutable
// fields; omitted fields keep their prior values.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	emp, err := h.findEmployee(c, employeeNotFoundUpdateFmt)
	if err != nil {
		return err
	}
	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody()
	}
	patch, fieldErrs := req.ValidatePartial()
	if fieldErrs != nil {
		return apperrors.NewValidationError(fieldErrs)
	}
	updated, err := h.employees.Update(c.UserContext(), emp, patch)
	if err != nil {
		return err
	}
	resp, err := employeeResponse(c.UserContext(), h.departments, *updated)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Delete DELETE /api/v1/employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	emp, err := h.findEmployee(c, employeeNotFoundFmt)
	if err != nil {
		return err
	}
	if err := h.employees.Delete(c.UserContext(), emp); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Search GET /api/v1/employees/search.
func (h *EmployeesHandler) Search(c *fiber.Ctx) error {
	date, interval, err := parseSearchQuery(c)
	if err != nil {
		return err
	}
	employees, err := h.employees.ByDateOfBirth(c.UserContext(), date, interval)
	if err != nil {
		return err
	}
	resp, err := employeeResponses(c.UserContext(), h.departments, employees)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SearchInDepartment GET /api/v1/departments/:id/employees/search.
func (h *EmployeesHandler) SearchInDepartment(c *fiber.Ctx) error {
	date, interval, err := parseSearchQuery(c)
	if err != nil {
		return err
	}
	raw := c.Params("id")
	id, parseErr := strconv.ParseInt(raw, 10, 64)
	if parseErr != nil {
		return apperrors.NewNotFound(fmt.Sprintf(searchDepartmentNotFoundFmt, raw))
	}
	dept, err := h.departments.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if dept == nil {
		return apperrors.NewNotFound(fmt.Sprintf(searchDepartmentNotFoundFmt, raw))
	}
	employees, err := h.employees.ByDateOfBirthFromDepartment(c.UserContext(), dept.ID, date, interval)
	if err != nil {
		return err
	}
	resp, err := employeeResponses(c.UserContext(), h.departments, employees)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *EmployeesHandler) findEmployee(c *fiber.Ctx, notFoundFmt string) (*domain.Employee, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperrors.NewNotFound(fmt.Sprintf(notFoundFmt, raw))
	}
	emp, err := h.employees.GetByID(c.UserContext(), id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, apperrors.NewNotFound(fmt.Sprintf(notFoundFmt, raw))
	}
	return emp, nil
}

// parseSearchQuery reads date_of_birth (required) and date_for_interval
// (optional) from the query string.
func parseSearchQuery(c *fiber.Ctx) (time.Time, *time.Time, error) {
	raw := c.Query("date_of_birth")
	if raw == "" {
		return time.Time{}, nil, apperrors.NewBadRequest("Enter search data")
	}
	date, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		return time.Time{}, nil, apperrors.NewValidationError(map[string][]string{"date_of_birth": {"Not a valid date."}})
	}
	var interval *time.Time
	if rawInterval := c.Query("date_for_interval"); rawInterval != "" {
		parsed, err := time.Parse(dto.DateLayout, rawInterval)
		if err != nil {
			return time.Time{}, nil, apperrors.NewValidationError(map[string][]string{"date_for_interval": {"Not a valid date."}})
		}
		interval = &parsed
	}
	return date, interval, nil
}
