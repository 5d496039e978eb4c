package utils

import (
	"errors"
	"fmt"
)

// NotFoundError means an identifier did not resolve to a record.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// NotFound builds a NotFoundError.
func NotFound(format string, args ...interface{}) error {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err carries a NotFoundError.
func IsNotFound(err error) bool {
	var t *NotFoundError
	return errors.As(err, &t)
}

// ValidationError means the input was malformed, e.g. a reorder list that is
// not a permutation of the quest's questions.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Invalid builds a ValidationError.
func Invalid(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var t *ValidationError
	return errors.As(err, &t)
}

// TransactionError means the persistence layer failed to commit an atomic
// batch. The batch is fully rolled back, never partially applied.
type TransactionError struct {
	Msg string
	Err error
}

func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *TransactionError) Unwrap() error { return e.Err }

// TxFailed wraps a commit failure.
func TxFailed(err error, format string, args ...interface{}) error {
	return &TransactionError{Msg: fmt.Sprintf(format, args...), Err: err}
}
