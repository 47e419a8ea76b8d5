package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "customer"}
		assert.Equal(t, "customer not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "customer"}
		err2 := &NotFoundError{Entity: "customer"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "customer"}
		err2 := &NotFoundError{Entity: "product"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrCustomerNotFound, ErrCustomerNotFound))
		assert.False(t, errors.Is(ErrCustomerNotFound, ErrProductNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrCustomerNotFound))
		assert.False(t, IsNotFound(ErrCustomerExists))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &ConflictError{Entity: "customer", Context: "at this location"}
		assert.Equal(t, "customer already exists at this location", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &ConflictError{Entity: "customer"}
		assert.Equal(t, "customer already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		assert.True(t, errors.Is(ErrProductExists, ErrProductExists))
		assert.False(t, errors.Is(ErrProductExists, ErrAssignmentExists))
	})

	t.Run("IsConflict helper", func(t *testing.T) {
		assert.True(t, IsConflict(ErrAssignmentExists))
		assert.False(t, IsConflict(ErrAssignmentNotFound))
	})
}

func TestReferentialError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &ReferentialError{Entity: "product"}
		assert.Equal(t, "referenced product does not exist", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		assert.True(t, errors.Is(ErrCustomerReference, ErrCustomerReference))
		assert.False(t, errors.Is(ErrCustomerReference, ErrProductReference))
	})

	t.Run("referential violations are conflict-equivalent", func(t *testing.T) {
		assert.True(t, IsConflict(ErrCustomerReference))
		assert.True(t, IsConflict(ErrProductReference))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "phone_num", Message: "must match XXX-XXX-XXXX"}
		assert.Equal(t, "validation error: phone_num - must match XXX-XXX-XXXX", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "bad input"}
		assert.Equal(t, "validation error: bad input", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(&ValidationError{Message: "bad input"}))
		assert.False(t, IsValidation(ErrCustomerNotFound))
	})
}

func TestConstructors(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("entry")
		assert.Equal(t, "entry not found", err.Error())
	})

	t.Run("NewConflictError", func(t *testing.T) {
		err := NewConflictError("entry", "in table")
		assert.Equal(t, "entry already exists in table", err.Error())
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("card_num", "length out of range")
		assert.Equal(t, "validation error: card_num - length out of range", err.Error())
	})
}
