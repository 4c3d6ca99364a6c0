package loan

import (
	"errors"

	"creditledger/pkg/wei"
)

// Error kinds. Match with errors.Is.
var (
	ErrValidation    = errors.New("validation failed")
	ErrStateConflict = errors.New("loan state conflict")

	ErrNotFound           = errors.New("loan not found")
	ErrAmountMismatch     = errors.New("Incorrect amount")
	ErrArithmeticOverflow = wei.ErrOverflow
)

// ValidationError names the request field that was rejected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

// StateConflictError is an operation against a loan in the wrong lifecycle state
// or by the wrong party.
type StateConflictError struct{ msg string }

func (e *StateConflictError) Error() string { return e.msg }

func (e *StateConflictError) Is(target error) bool { return target == ErrStateConflict }

var (
	ErrAlreadyFunded error = &StateConflictError{"Loan already funded"}
	ErrLoanInactive  error = &StateConflictError{"Loan is not active"}
	ErrSelfFunding   error = &StateConflictError{"Cannot fund your own loan"}
	ErrNotFunded     error = &StateConflictError{"Loan is not funded"}
	ErrNotBorrower   error = &StateConflictError{"Only the borrower can perform this action"}
)
