package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/department-service/internal/domain"
)

// EmployeeRepository manages employee persistence.
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	ListByDepartment(ctx context.Context, departmentID int64) ([]domain.Employee, error)
	// ListByDateOfBirth returns employees born on from when to is nil, or in
	// the inclusive interval [from, to] otherwise. A non-nil departmentID
	// additionally scopes the result to one department.
	ListByDateOfBirth(ctx context.Context, from time.Time, to *time.Time, departmentID *int64) ([]domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id int64) error
	AvgSalaryByDepartment(ctx context.Context, departmentID int64) (int, error)
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository builds the repository.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

const employeeColumns = `id, full_name, date_of_birth, salary, department_id`

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	const query = `SELECT ` + employeeColumns + ` FROM employees ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEmployees(rows)
}

func (r *employeeRepository) ListByDepartment(ctx context.Context, departmentID int64) ([]domain.Employee, error) {
	const query = `SELECT ` + employeeColumns + ` FROM employees WHERE department_id=$1 ORDER BY id`
	rows, err := r.pool.Query(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEmployees(rows)
}

func (r *employeeRepository) ListByDateOfBirth(ctx context.Context, from time.Time, to *time.Time, departmentID *int64) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE date_of_birth = $1`
	args := []any{from}
	if to != nil {
		query = `SELECT ` + employeeColumns + ` FROM employees WHERE date_of_birth BETWEEN $1 AND $2`
		args = append(args, *to)
	}
	if departmentID != nil {
		args = append(args, *departmentID)
		if to != nil {
			query += ` AND department_id = $3`
		} else {
			query += ` AND department_id = $2`
		}
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEmployees(rows)
}

// GetByID returns nil without error when no employee matches.
func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	const query = `SELECT ` + employeeColumns + ` FROM employees WHERE id=$1`
	var emp domain.Employee
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&emp.ID,
		&emp.FullName,
		&emp.DateOfBirth,
		&emp.Salary,
		&emp.DepartmentID,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	const query = `
        INSERT INTO employees (full_name, date_of_birth, salary, department_id)
        VALUES ($1,$2,$3,$4)
        RETURNING id`
	if err := r.pool.QueryRow(ctx, query,
		emp.FullName,
		emp.DateOfBirth,
		emp.Salary,
		emp.DepartmentID,
	).Scan(&emp.ID); err != nil {
		return translateConstraint(err)
	}
	return nil
}

func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	const query = `
        UPDATE employees SET full_name=$1, date_of_birth=$2, salary=$3, department_id=$4
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		emp.FullName,
		emp.DateOfBirth,
		emp.Salary,
		emp.DepartmentID,
		emp.ID,
	)
	if err != nil {
		return translateConstraint(err)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM employees WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// AvgSalaryByDepartment returns the mean salary rounded to the nearest
// integer, or 0 when the department has no employees.
func (r *employeeRepository) AvgSalaryByDepartment(ctx context.Context, departmentID int64) (int, error) {
	const query = `SELECT COALESCE(ROUND(AVG(salary)), 0)::bigint FROM employees WHERE department_id=$1`
	var avg int64
	if err := r.pool.QueryRow(ctx, query, departmentID).Scan(&avg); err != nil {
		return 0, err
	}
	return int(avg), nil
}

func scanEmployees(rows pgx.Rows) ([]domain.Employee, error) {
	var result []domain.Employee
	for rows.Next() {
		var emp domain.Employee
		if err := rows.Scan(
			&emp.ID,
			&emp.FullName,
			&emp.DateOfBirth,
			&emp.Salary,
			&emp.DepartmentID,
		); err != nil {
			return nil, err
		}
		result = append(result, emp)
	}
	return result, rows.Err()
}
