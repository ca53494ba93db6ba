package errs

import (
	"errors"
	"fmt"
)

// ValidationError reports a request that is malformed before any store
// call is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation on an id that does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ConflictError reports an operation that contradicts current state,
// such as joining a table that is already part of a join group.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// ExternalStoreError wraps a failure from the persistence collaborator.
// It is propagated unchanged to the caller; no retry is performed.
type ExternalStoreError struct {
	Op  string
	Err error
}

func (e *ExternalStoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *ExternalStoreError) Unwrap() error {
	return e.Err
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsNotFound(err error) bool {
	var n *NotFoundError
	return errors.As(err, &n)
}

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

func IsExternalStore(err error) bool {
	var s *ExternalStoreError
	return errors.As(err, &s)
}
