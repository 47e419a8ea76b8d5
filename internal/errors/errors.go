package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a unique-constraint violation on insert: the row
// being added collides with an existing row on the entity's identity pair.
type ConflictError struct {
	Entity  string
	Context string // identity the collision happened on, e.g. "at this location"
}

func (e *ConflictError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ReferentialError represents an assignment referencing a customer or product
// pair that does not exist. Callers are expected to pre-validate existence, so
// hitting this in normal flow indicates the pre-check was bypassed.
type ReferentialError struct {
	Entity string
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("referenced %s does not exist", e.Entity)
}

// Is enables errors.Is() comparison for ReferentialError
func (e *ReferentialError) Is(target error) bool {
	t, ok := target.(*ReferentialError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Entity Not Found Errors
var (
	ErrCustomerNotFound   = &NotFoundError{Entity: "customer"}
	ErrProductNotFound    = &NotFoundError{Entity: "product"}
	ErrAssignmentNotFound = &NotFoundError{Entity: "assignment"}
)

// Conflict Errors
var (
	ErrCustomerExists   = &ConflictError{Entity: "customer", Context: "at this location"}
	ErrProductExists    = &ConflictError{Entity: "product", Context: "at this price"}
	ErrAssignmentExists = &ConflictError{Entity: "assignment", Context: "for this customer and product"}
)

// Referential Errors
var (
	ErrCustomerReference = &ReferentialError{Entity: "customer"}
	ErrProductReference  = &ReferentialError{Entity: "product"}
)

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError or a ReferentialError.
// Referential violations are conflict-equivalent for user-facing reporting.
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	if errors.As(err, &conflictErr) {
		return true
	}
	var refErr *ReferentialError
	return errors.As(err, &refErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError for a custom entity
func NewConflictError(entity, context string) error {
	return &ConflictError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
