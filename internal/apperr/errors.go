// Package apperr defines the error kinds a submit can fail with.
// Handlers switch on the kind to pick the status code and the message shown to the user.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrZeroFuel      = errors.New("fuel volume must be greater than zero")
	ErrMissingHeader = errors.New("store has no header row")
)

// FieldError is one failed shape check on a form field.
type FieldError struct {
	Field   string `json:"field" example:"date"`
	Message string `json:"message" example:"date must be in yyyy/mm/dd format"`
}

// ValidationError carries every field that failed; the user may correct and resubmit.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return "invalid input: " + strings.Join(names, ", ")
}

// StoreError wraps a failure talking to the record store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// ComputationError wraps a failure deriving or presenting a record.
type ComputationError struct {
	Err error
}

func (e *ComputationError) Error() string {
	return "computation: " + e.Err.Error()
}

func (e *ComputationError) Unwrap() error { return e.Err }

func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}

func Computation(err error) error {
	if err == nil {
		return nil
	}
	var ce *ComputationError
	if errors.As(err, &ce) {
		return err
	}
	return &ComputationError{Err: err}
}

// Kind names the error kind for logs.
func Kind(err error) string {
	var (
		ve *ValidationError
		se *StoreError
		ce *ComputationError
	)
	switch {
	case errors.As(err, &ve):
		return "validation"
	case errors.As(err, &se):
		return "store"
	case errors.As(err, &ce):
		return "computation"
	default:
		return "unknown"
	}
}
