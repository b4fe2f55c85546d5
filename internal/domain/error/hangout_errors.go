// Package error defines domain-specific errors for the Kumpul application.
package error

import "errors"

// Hangout domain errors.
var (
	// ErrHangoutNotFound is returned when a hangout is not found.
	ErrHangoutNotFound = errors.New("hangout not found")

	// ErrHangoutTitleRequired is returned when the hangout title is empty.
	ErrHangoutTitleRequired = errors.New("hangout title is required")

	// ErrInvalidSplitMethod is returned for an unknown split method.
	ErrInvalidSplitMethod = errors.New("invalid split method")

	// ErrInvalidJoinCode is returned when no active hangout matches a join code.
	ErrInvalidJoinCode = errors.New("invalid join code")

	// ErrAlreadyParticipant is returned when a user joins a hangout twice.
	ErrAlreadyParticipant = errors.New("user is already a participant")

	// ErrHangoutFull is returned when a hangout reached its participant limit.
	ErrHangoutFull = errors.New("hangout is full")

	// ErrHangoutSettled is returned when modifying an already settled hangout.
	ErrHangoutSettled = errors.New("hangout is already settled")

	// ErrNotHangoutOwner is returned when a non-owner performs an owner-only action.
	ErrNotHangoutOwner = errors.New("user is not the hangout owner")

	// ErrNotHangoutParticipant is returned when a user is not part of the hangout.
	ErrNotHangoutParticipant = errors.New("user is not a hangout participant")

	// ErrParticipantNotFound is returned when a participant is not found.
	ErrParticipantNotFound = errors.New("participant not found")

	// ErrHangoutExpenseNotFound is returned when a hangout expense is not found.
	ErrHangoutExpenseNotFound = errors.New("hangout expense not found")

	// ErrNotExpensePayer is returned when someone other than the payer edits an expense.
	ErrNotExpensePayer = errors.New("user is not the expense payer")
)

// HangoutErrorCode defines error codes for hangout errors.
// Format: HNG-XXYYYY where XX is category and YYYY is specific error.
type HangoutErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeHangoutNotFound        HangoutErrorCode = "HNG-010001"
	ErrCodeParticipantNotFound    HangoutErrorCode = "HNG-010002"
	ErrCodeHangoutExpenseNotFound HangoutErrorCode = "HNG-010003"

	// Validation errors (02XXXX)
	ErrCodeHangoutTitleRequired HangoutErrorCode = "HNG-020001"
	ErrCodeInvalidSplitMethod   HangoutErrorCode = "HNG-020002"
	ErrCodeMissingHangoutFields HangoutErrorCode = "HNG-020003"
	ErrCodeInvalidExpenseAmount HangoutErrorCode = "HNG-020004"

	// Membership errors (03XXXX)
	ErrCodeInvalidJoinCode    HangoutErrorCode = "HNG-030001"
	ErrCodeAlreadyParticipant HangoutErrorCode = "HNG-030002"
	ErrCodeHangoutFull        HangoutErrorCode = "HNG-030003"

	// Authorization errors (04XXXX)
	ErrCodeNotHangoutOwner       HangoutErrorCode = "HNG-040001"
	ErrCodeNotHangoutParticipant HangoutErrorCode = "HNG-040002"
	ErrCodeNotExpensePayer       HangoutErrorCode = "HNG-040003"

	// State errors (05XXXX)
	ErrCodeHangoutSettled HangoutErrorCode = "HNG-050001"
)

// HangoutError represents a hangout error with code and message.
type HangoutError struct {
	Code    HangoutErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HangoutError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HangoutError) Unwrap() error {
	return e.Err
}

// NewHangoutError creates a new HangoutError with the given code and message.
func NewHangoutError(code HangoutErrorCode, message string, err error) *HangoutError {
	return &HangoutError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
