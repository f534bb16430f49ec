package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	apperrors "github.com/spec-kit/department-service/pkg/util/errorutil"
)

// Postgres error codes for the constraints declared in the schema.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateConstraint maps constraint violations onto the domain error
// taxonomy. The schema carries exactly two constraints that user input can
// trip: the unique department title and the employee department foreign key.
func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.NewUniqueViolation("Department names should be unique")
		case pgForeignKeyViolation:
			return apperrors.NewForeignKeyViolation("Not valid department id")
		}
	}
	return err
}
