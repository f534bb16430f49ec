package errorutil

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors. Fields is set for validation
// failures and rendered as a field-keyed message map; every other error is
// rendered as a single message string.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Fields     map[string][]string
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Message == "" && len(e.Fields) > 0 {
		return fmt.Sprintf("validation failed: %v", e.Fields)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status}
}

// NewValidationError wraps a field-keyed message map into a 400 error.
func NewValidationError(fields map[string][]string) error {
	return &DomainError{
		Code:       "VALIDATION_FAILED",
		HTTPStatus: http.StatusBadRequest,
		Fields:     fields,
	}
}

// NewBadRequest builds a 400 error carrying a single message.
func NewBadRequest(message string) error {
	return NewDomainError("BAD_REQUEST", message, http.StatusBadRequest)
}

// NewNotFound builds a 404 error with the exact message text to serve.
func NewNotFound(message string) error {
	return NewDomainError("NOT_FOUND", message, http.StatusNotFound)
}

// NewUniqueViolation reports a duplicate value rejected by a unique constraint.
func NewUniqueViolation(message string) error {
	return NewDomainError("UNIQUE_VIOLATION", message, http.StatusBadRequest)
}

// NewForeignKeyViolation reports a reference to a missing parent row.
func NewForeignKeyViolation(message string) error {
	return NewDomainError("FOREIGN_KEY_VIOLATION", message, http.StatusBadRequest)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// IsCode reports whether err is a DomainError with the given code.
func IsCode(err error, code string) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == code
}
