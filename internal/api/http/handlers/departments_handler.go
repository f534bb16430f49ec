package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/department-service/internal/api/dto"
	"github.com/spec-kit/department-service/internal/domain"
	"github.com/spec-kit/department-service/internal/service"
	apperrors "github.com/spec-kit/department-service/pkg/util/errorutil"
)

const departmentNotFoundFmt = "Department with id = %s was not found"

// DepartmentsHandler serves the department resources and the
// department-scoped employee collection.
type DepartmentsHandler struct {
	departments *service.DepartmentService
	employees   *service.EmployeeService
}

// NewDepartmentsHandler constructs the handler.
func NewDepartmentsHandler(departments *service.DepartmentService, employees *service.EmployeeService) *DepartmentsHandler {
	return &DepartmentsHandler{departments: departments, employees: employees}
}

// List GET /api/v1/departments.
func (h *DepartmentsHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()
	departments, err := h.departments.List(ctx)
	if err != nil {
		return err
	}
	resp := make([]dto.DepartmentResponse, 0, len(departments))
	for i := range departments {
		item, err := departmentResponse(ctx, h.departments, h.employees, &departments[i])
		if err != nil {
			return err
		}
		resp = append(resp, item)
	}
	return c.JSON(resp)
}

// Get GET /api/v1/departments/:id.
func (h *DepartmentsHandler) Get(c *fiber.Ctx) error {
	dept, err := h.findDepartment(c)
	if err != nil {
		return err
	}
	resp, err := departmentResponse(c.UserContext(), h.departments, h.employees, dept)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Create POST /api/v1/departments.
func (h *DepartmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody()
	}
	patch, fieldErrs := req.Validate()
	if fieldErrs != nil {
		return apperrors.NewValidationError(fieldErrs)
	}
	dept, err := h.departments.Create(c.UserContext(), *patch.Title)
	if err != nil {
		return err
	}
	resp, err := departmentResponse(c.UserContext(), h.departments, h.employees, dept)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update PUT /api/v1/departments/:id.
func (h *DepartmentsHandler) Update(c *fiber.Ctx) error {
	dept, err := h.findDepartment(c)
	if err != nil {
		return err
	}
	var req dto.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody()
	}
	patch, fieldErrs := req.Validate()
	if fieldErrs != nil {
		return apperrors.NewValidationError(fieldErrs)
	}
	updated, err := h.departments.Update(c.UserContext(), dept, patch)
	if err != nil {
		return err
	}
	resp, err := departmentResponse(c.UserContext(), h.departments, h.employees, updated)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Delete DELETE /api/v1/departments/:id. Removing a department cascades to
// its employees.
func (h *DepartmentsHandler) Delete(c *fiber.Ctx) error {
	dept, err := h.findDepartment(c)
	if err != nil {
		return err
	}
	if err := h.departments.Delete(c.UserContext(), dept); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListEmployees GET /api/v1/departments/:id/employees.
func (h *DepartmentsHandler) ListEmployees(c *fiber.Ctx) error {
	dept, err := h.findDepartment(c)
	if err != nil {
		return err
	}
	employees, err := h.employees.ListFromDepartment(c.UserContext(), dept.ID)
	if err != nil {
		return err
	}
	resp, err := employeeResponses(c.UserContext(), h.departments, employees)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateEmployee POST /api/v1/departments/:id/employees. The URL department
// id overrides any department_id in the body.
func (h *DepartmentsHandler) CreateEmployee(c *fiber.Ctx) error {
	dept, err := h.findDepartment(c)
	if err != nil {
		return err
	}
	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody()
	}
	patch, fieldErrs := req.ValidateCreate(false)
	if fieldErrs != nil {
		return apperrors.NewValidationError(fieldErrs)
	}
	emp := &domain.Employee{}
	patch.Apply(emp)
	emp.DepartmentID = dept.ID
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

// findDepartment resolves the :id path segment. A non-numeric id matches no
// row, the same as an unknown numeric one.
func (h *DepartmentsHandler) findDepartment(c *fiber.Ctx) (*domain.Department, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperrors.NewNotFound(fmt.Sprintf(departmentNotFoundFmt, raw))
	}
	dept, err := h.departments.GetByID(c.UserContext(), id)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		return nil, apperrors.NewNotFound(fmt.Sprintf(departmentNotFoundFmt, raw))
	}
	return dept, nil
}
