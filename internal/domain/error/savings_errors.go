// Package error defines domain-specific errors for the Kumpul application.
package error

import "errors"

// Savings domain errors.
var (
	// ErrSavingsGoalNotFound is returned when a savings goal is not found.
	ErrSavingsGoalNotFound = errors.New("savings goal not found")

	// ErrGoalNameRequired is returned when the goal name is empty.
	ErrGoalNameRequired = errors.New("goal name is required")

	// ErrInvalidGoalAmount is returned when the goal amount is zero or negative.
	ErrInvalidGoalAmount = errors.New("goal amount must be greater than zero")

	// ErrInvalidDepositAmount is returned when a deposit amount is zero or negative.
	ErrInvalidDepositAmount = errors.New("deposit amount must be greater than zero")

	// ErrUnauthorizedGoalAccess is returned when a user accesses another user's goal.
	ErrUnauthorizedGoalAccess = errors.New("savings goal does not belong to user")
)

// SavingsErrorCode defines error codes for savings errors.
// Format: SAV-XXYYYY where XX is category and YYYY is specific error.
type SavingsErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeSavingsGoalNotFound SavingsErrorCode = "SAV-010001"

	// Validation errors (02XXXX)
	ErrCodeGoalNameRequired     SavingsErrorCode = "SAV-020001"
	ErrCodeInvalidGoalAmount    SavingsErrorCode = "SAV-020002"
	ErrCodeInvalidDepositAmount SavingsErrorCode = "SAV-020003"
	ErrCodeMissingSavingsFields SavingsErrorCode = "SAV-020004"

	// Authorization errors (03XXXX)
	ErrCodeUnauthorizedGoalAccess SavingsErrorCode = "SAV-030001"
)

// SavingsError represents a savings error with code and message.
type SavingsError struct {
	Code    SavingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SavingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SavingsError) Unwrap() error {
	return e.Err
}

// NewSavingsError creates a new SavingsError with the given code and message.
func NewSavingsError(code SavingsErrorCode, message string, err error) *SavingsError {
	return &SavingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
