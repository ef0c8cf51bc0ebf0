// Package error defines domain-specific errors for the PaisaTrack application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is missing or owned by another user.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetType is returned when the budget type is not overall/category/account.
	ErrInvalidBudgetType = errors.New("invalid budget type")

	// ErrInvalidBudgetPeriod is returned when the budget period is not a supported cycle.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")

	// ErrInvalidBudgetAmount is returned when the target amount is negative.
	ErrInvalidBudgetAmount = errors.New("budget amount must not be negative")

	// ErrBudgetNameTooLong is returned when the budget name exceeds the maximum length.
	ErrBudgetNameTooLong = errors.New("budget name too long")

	// ErrEmptyBudgetScope is returned when a category or account budget has no scope entries.
	ErrEmptyBudgetScope = errors.New("budget scope cannot be empty for this budget type")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetType   BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidBudgetPeriod BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidBudgetAmount BudgetErrorCode = "BGT-010003"
	ErrCodeBudgetNameTooLong   BudgetErrorCode = "BGT-010004"
	ErrCodeEmptyBudgetScope    BudgetErrorCode = "BGT-010005"
	ErrCodeMissingBudgetFields BudgetErrorCode = "BGT-010006"

	// Lookup errors (02XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BGT-020001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
