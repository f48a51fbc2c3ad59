package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies a domain error so transport layers can map it to a
// status code without string matching.
type ErrorCode string

const (
	ErrCodeNotFound    ErrorCode = "NOT_FOUND"
	ErrCodeForbidden   ErrorCode = "FORBIDDEN"
	ErrCodeConflict    ErrorCode = "CONFLICT"
	ErrCodeValidation  ErrorCode = "VALIDATION_FAILED"
	ErrCodePersistence ErrorCode = "PERSISTENCE_FAILED"
)

// DomainError is the error type returned by the service layer.
type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError builds a domain error without an underlying cause.
func NewDomainError(code ErrorCode, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// WrapDomainError attaches a domain classification to an underlying error.
func WrapDomainError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{Code: code, Message: message, Err: err}
}

// Common domain errors.
var (
	ErrBuyerNotFound = NewDomainError(ErrCodeNotFound, "buyer not found")
	ErrUserNotFound  = NewDomainError(ErrCodeNotFound, "user not found")
	ErrForbidden     = NewDomainError(ErrCodeForbidden, "you do not have permission to modify this buyer")
	ErrConflict      = NewDomainError(ErrCodeConflict, "record changed, please refresh")
)

// IsDomainError reports whether err carries the given code.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *DomainError
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}

// FieldViolation identifies a single offending field in a rejected payload.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports one or more field violations. It satisfies the
// DomainError classification via its Code method so controllers handle it
// uniformly.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewValidationError builds a ValidationError from field violations.
func NewValidationError(violations ...FieldViolation) *ValidationError {
	return &ValidationError{Violations: violations}
}

// AsValidationError extracts a *ValidationError from an error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
