package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/department-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Departments *handlers.DepartmentsHandler
	Employees   *handlers.EmployeesHandler
}

// RegisterRoutes wires HTTP routes. The static search paths are registered
// before the parameterized ones so "search" never binds as an id.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api/v1")

	api.Get("/departments", cfg.Departments.List)
	api.Post("/departments", cfg.Departments.Create)
	api.Get("/departments/:id/employees/search", cfg.Employees.SearchInDepartment)
	api.Get("/departments/:id/employees", cfg.Departments.ListEmployees)
	api.Post("/departments/:id/employees", cfg.Departments.CreateEmployee)
	api.Get("/departments/:id", cfg.Departments.Get)
	api.Put("/departments/:id", cfg.Departments.Update)
	api.Delete("/departments/:id", cfg.Departments.Delete)

	api.Get("/employees/search", cfg.Employees.Search)
	api.Get("/employees", cfg.Employees.List)
	api.Post("/employees", cfg.Employees.Create)
	api.Get("/employees/:id", cfg.Employees.Get)
	api.Put("/employees/:id", cfg.Employees.Update)
	api.Delete("/employees/:id", cfg.Employees.Delete)
}
