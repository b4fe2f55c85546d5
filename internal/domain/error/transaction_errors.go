// Package error defines domain-specific errors for the Kumpul application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidAmount is returned when a transaction amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInvalidCategory is returned when an expense category is not in the taxonomy.
	ErrInvalidCategory = errors.New("invalid expense category")

	// ErrMissingSource is returned when an income has no source.
	ErrMissingSource = errors.New("income source is required")

	// ErrInvalidTransactionType is returned for an unknown transaction type.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrUnauthorizedTransactionAccess is returned when a user accesses another user's transaction.
	ErrUnauthorizedTransactionAccess = errors.New("transaction does not belong to user")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-010001"

	// Validation errors (02XXXX)
	ErrCodeInvalidAmount          TransactionErrorCode = "TXN-020001"
	ErrCodeInvalidCategory        TransactionErrorCode = "TXN-020002"
	ErrCodeMissingSource          TransactionErrorCode = "TXN-020003"
	ErrCodeInvalidTransactionType TransactionErrorCode = "TXN-020004"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-020005"

	// Authorization errors (03XXXX)
	ErrCodeUnauthorizedTransactionAccess TransactionErrorCode = "TXN-030001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
