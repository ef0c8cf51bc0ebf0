// Package error defines domain-specific errors for the PaisaTrack application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is missing or owned by another user.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidContribution is returned when a contribution amount is zero or negative.
	ErrInvalidContribution = errors.New("contribution amount must be positive")

	// ErrInvalidGoalPriority is returned when the priority is not high/medium/low.
	ErrInvalidGoalPriority = errors.New("invalid goal priority")

	// ErrGoalNameTooShort is returned when the goal name has fewer than two characters.
	ErrGoalNameTooShort = errors.New("goal name too short")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTargetAmount GoalErrorCode = "GOL-010001"
	ErrCodeInvalidContribution GoalErrorCode = "GOL-010002"
	ErrCodeInvalidGoalPriority GoalErrorCode = "GOL-010003"
	ErrCodeGoalNameTooShort    GoalErrorCode = "GOL-010004"
	ErrCodeMissingGoalFields   GoalErrorCode = "GOL-010005"

	// Lookup errors (02XXXX)
	ErrCodeGoalNotFound GoalErrorCode = "GOL-020001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
