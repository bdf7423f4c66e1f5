package timeconv

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when an input lies outside its documented range
	ErrInvalidInput = errors.New("invalid input")
	// ErrShapeMismatch is returned when columnar batch components differ in length
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrRoundTrip is returned when a to-and-fro pair fails to reproduce its input
	ErrRoundTrip = errors.New("round trip mismatch")
)

// InputError describes a single out-of-range input field
type InputError struct {
	Field   string
	Value   float64
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Message)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// ShapeError reports the component lengths of a ragged columnar batch
type ShapeError struct {
	Lengths []int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("batch components have different lengths %v", e.Lengths)
}

func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

func invalid(field string, value float64, message string) error {
	return &InputError{Field: field, Value: value, Message: message}
}
