// Package apperrors defines the domain failures surfaced by the user and
// external-project services. Each failure is raised where it is detected and
// carried unmodified to the HTTP boundary, where middleware.ErrorHandler maps
// it to a status code.
package apperrors

import "fmt"

type UserNotFoundError struct {
	UserID uint
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("User with id '%d' not found", e.UserID)
}

type UserAlreadyExistsError struct {
	Email string
}

func (e *UserAlreadyExistsError) Error() string {
	return fmt.Sprintf("User with email '%s' already exists. Email already registered", e.Email)
}

type ExternalProjectNotFoundError struct {
	ProjectID string
	UserID    uint
}

func (e *ExternalProjectNotFoundError) Error() string {
	return fmt.Sprintf("External project with id '%s' not found for user with id: %d", e.ProjectID, e.UserID)
}

type ExternalProjectAlreadyExistsError struct {
	ProjectID string
	UserID    uint
}

func (e *ExternalProjectAlreadyExistsError) Error() string {
	return fmt.Sprintf("External project with id '%s' already exists for user with id: %d", e.ProjectID, e.UserID)
}

// UnauthorizedError covers failed logins and missing/invalid tokens. The
// message never reveals whether the email exists.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "Not authenticated"
}

// ValidationError batches every violated field constraint of a request.
// Details holds one human-readable message per violation, in field
// declaration order. A ValidationError without details (e.g. malformed JSON,
// non-numeric path id) carries just its message.
type ValidationError struct {
	Message string
	Details []string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "Request validation failed"
}

func NewValidationError(details []string) *ValidationError {
	return &ValidationError{Message: "Request validation failed", Details: details}
}
