package shared

import "errors"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// CodeValidation marks errors raised by input precondition checks.
// All precondition violations share this single code; the message
// identifies which precondition failed.
const CodeValidation = "VALIDATION_ERROR"

// NewValidationError creates a domain error with the validation code
func NewValidationError(message string) *DomainError {
	return NewDomainError(CodeValidation, message)
}

// IsValidationError reports whether err is a validation domain error
func IsValidationError(err error) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == CodeValidation
	}
	return false
}

// Common domain errors
var (
	ErrNotFound      = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidState  = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
)
