// Package error defines domain-specific errors for the PaisaTrack application.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is missing or owned by another user.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAccountType is returned when the account type is not one of the supported kinds.
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrUPIHandleRequired is returned when a upi account is created without a UPI handle.
	ErrUPIHandleRequired = errors.New("upi handle required for UPI accounts")

	// ErrCreditLimitRequired is returned when a credit_card account lacks a credit limit.
	ErrCreditLimitRequired = errors.New("credit limit required for credit card accounts")

	// ErrInvalidPaymentDueDay is returned when the payment due day falls outside 1-31.
	ErrInvalidPaymentDueDay = errors.New("payment due day must be between 1 and 31")

	// ErrAccountNameTooShort is returned when the account name has fewer than two characters.
	ErrAccountNameTooShort = errors.New("account name too short")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAccountType   AccountErrorCode = "ACC-010001"
	ErrCodeUPIHandleRequired    AccountErrorCode = "ACC-010002"
	ErrCodeCreditLimitRequired  AccountErrorCode = "ACC-010003"
	ErrCodeInvalidPaymentDueDay AccountErrorCode = "ACC-010004"
	ErrCodeAccountNameTooShort  AccountErrorCode = "ACC-010005"
	ErrCodeMissingAccountFields AccountErrorCode = "ACC-010006"

	// Lookup errors (02XXXX)
	ErrCodeAccountNotFound AccountErrorCode = "ACC-020001"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
