package apperr

import (
	"fmt"
	"net/http"
	"strings"
)

// ValidationError reports client-fixable input problems and names the
// offending fields.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Status() int  { return http.StatusBadRequest }
func (e *ValidationError) Code() string { return "VALIDATION_ERROR" }

func NewValidation(message string, fields ...string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// NotFoundError indicates a referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Status() int  { return http.StatusNotFound }
func (e *NotFoundError) Code() string { return "NOT_FOUND" }

func NewNotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// AuthError covers missing, invalid or expired credentials. The message is
// deliberately uniform so callers cannot learn which part of the credential
// failed.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }
func (e *AuthError) Status() int   { return http.StatusUnauthorized }
func (e *AuthError) Code() string  { return "UNAUTHORIZED" }

func NewAuth(message string) *AuthError {
	return &AuthError{Message: message}
}

// StorageError wraps a persistence failure. The cause is logged server-side
// and never exposed verbatim to the caller.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
func (e *StorageError) Status() int   { return http.StatusInternalServerError }
func (e *StorageError) Code() string  { return "STORAGE_ERROR" }

func NewStorage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}
