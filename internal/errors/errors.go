package errors

import (
	"errors"
	"strings"
)

// Custom error types for the pokedex service

// ErrInvalidID is returned when a path id is not a non-negative integer.
var ErrInvalidID = errors.New("invalid id")

// ErrPokemonNotFound is returned when an id references no stored record.
var ErrPokemonNotFound = errors.New("pokemon not found")

// ErrInvalidPageSize is returned when pageSize is outside the accepted set.
// Unlike the filter bounds, pageSize is validated strictly.
var ErrInvalidPageSize = errors.New("pageSize must be one of 10, 20 or 50")

// ValidationError aggregates every field problem found in a payload so the
// client sees all of them in a single response.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, ", ")
}
