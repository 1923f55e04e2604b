package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound  = errors.New("resource not found")
	ErrDuplicateResource = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenMalformed     = errors.New("malformed token")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
	ErrMissingScope     = errors.New("university id is required")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBatchTooLarge    = errors.New("batch exceeds the allowed size")
	ErrBadRequest       = errors.New("bad request")
)

// Identity errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Entity errors
var (
	ErrUniversityNotFound      = errors.New("university not found")
	ErrUniversityAlreadyExists = errors.New("university with this name already exists")
	ErrDirectionNotFound       = errors.New("direction not found")
	ErrDirectionAlreadyExists  = errors.New("direction with this course already exists in this university")
	ErrKafedraNotFound         = errors.New("kafedra not found")
	ErrSubjectNotFound         = errors.New("subject not found")
	ErrSubjectAlreadyExists    = errors.New("subject with this name already exists in this university")
	ErrLiteratureNotFound      = errors.New("literature not found")
	ErrNewsNotFound            = errors.New("news not found")
	ErrFileNotFound            = errors.New("file not found")
)

// NewNotFoundError creates a resource-not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewDuplicateError creates a duplicate-resource error with a message
func NewDuplicateError(message string) error {
	return &CustomError{
		Err:     ErrDuplicateResource,
		Message: message,
	}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// CustomError carries a sentinel error plus request-specific context
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}
