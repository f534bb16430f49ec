package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type seedEmployee struct {
	fullName    string
	dateOfBirth time.Time
	salary      int
	department  string
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var seedDepartments = []string{"Python", "C++", "Assembler"}

var seedEmployees = []seedEmployee{
	{"Vladyslav Radchenko", date(2002, time.September, 9), 1500, "Python"},
	{"Rhian Sutherland", date(1992, time.February, 2), 1000, "Python"},
	{"Dillan Dejesus", date(1973, time.March, 3), 2000, "C++"},
	{"Evie Amin", date(1995, time.April, 4), 2000, "C++"},
	{"Neil Wilson", date(1985, time.May, 5), 2000, "C++"},
	{"Ayah Hobbs", date(1981, time.January, 1), 1000, "Python"},
	{"Corban Snow", date(1962, time.February, 2), 1000, "Assembler"},
	{"Carmel Boyle", date(1983, time.March, 3), 2000, "Assembler"},
	{"Reema Hoover", date(1999, time.April, 4), 2000, "Python"},
	{"Abdirahman Davidson", date(1995, time.May, 5), 2000, "C++"},
}

// SeedDemoData populates the database with the demo departments and
// employees. The seed is skipped when any department already exists.
func SeedDemoData(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if pool == nil {
		logger.Warn("no postgres pool available; skipping demo seed")
		return nil
	}

	var count int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&count); err != nil {
		return fmt.Errorf("count departments: %w", err)
	}
	if count > 0 {
		logger.Info("departments present; skipping demo seed")
		return nil
	}

	departmentIDs := make(map[string]int64, len(seedDepartments))
	for _, title := range seedDepartments {
		var id int64
		if err := pool.QueryRow(ctx,
			`INSERT INTO departments (title) VALUES ($1) RETURNING id`, title,
		).Scan(&id); err != nil {
			return fmt.Errorf("seed department %s: %w", title, err)
		}
		departmentIDs[title] = id
	}

	for _, emp := range seedEmployees {
		if _, err := pool.Exec(ctx,
			`INSERT INTO employees (full_name, date_of_birth, salary, department_id)
             VALUES ($1,$2,$3,$4)`,
			emp.fullName, emp.dateOfBirth, emp.salary, departmentIDs[emp.department],
		); err != nil {
			return fmt.Errorf("seed employee %s: %w", emp.fullName, err)
		}
	}

	logger.Info("demo data seeded",
		zap.Int("departments", len(seedDepartments)),
		zap.Int("employees", len(seedEmployees)),
	)
	return nil
}
