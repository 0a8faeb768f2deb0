package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Messages: []string{
		"name should not be empty",
		"height must be a non-negative integer",
	}}

	assert.Equal(t, "validation failed: name should not be empty, height must be a non-negative integer", err.Error())
}

func TestValidationErrorUnwrapsThroughWrapping(t *testing.T) {
	inner := &ValidationError{Messages: []string{"image should not be empty"}}
	wrapped := fmt.Errorf("create failed: %w", inner)

	var validationErr *ValidationError
	assert.True(t, errors.As(wrapped, &validationErr))
	assert.Equal(t, inner.Messages, validationErr.Messages)
}

func TestSentinelsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrInvalidID, ErrPokemonNotFound))
	assert.False(t, errors.Is(ErrPokemonNotFound, ErrInvalidPageSize))
	assert.Equal(t, "pageSize must be one of 10, 20 or 50", ErrInvalidPageSize.Error())
}
