package service

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the service packages. The API layer maps them
// to HTTP status codes; callers check them with errors.Is.
var (
	// ErrNotOwned indicates a resource belongs to another user. Maps to 403.
	ErrNotOwned = errors.New("resource is owned by another user")

	// ErrWordNotFound indicates the word does not exist. Maps to 404.
	ErrWordNotFound = errors.New("word not found")
)

// ServiceError records which service operation failed.
type ServiceError struct {
	Service string
	Op      string
	Err     error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s service %s operation failed", e.Service, e.Op)
	}
	return fmt.Sprintf("%s service %s operation failed: %v", e.Service, e.Op, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a ServiceError.
func NewServiceError(service, op string, err error) *ServiceError {
	return &ServiceError{Service: service, Op: op, Err: err}
}
