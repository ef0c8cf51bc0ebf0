package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorResponse reports request binding failures as a map from
// JSON field name to a human-readable message.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// ToValidationErrorResponse unpacks a gin binding error into per-field
// messages. Errors that are not field validations, such as malformed JSON
// or type mismatches, keep a single top-level message instead.
func ToValidationErrorResponse(err error, code string) ValidationErrorResponse {
	response := ValidationErrorResponse{
		Error: "Invalid request body",
		Code:  code,
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		response.Error = "Invalid request body: " + err.Error()
		return response
	}

	response.Fields = make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		response.Fields[jsonFieldName(fieldErr.Field())] = fieldMessage(fieldErr)
	}
	return response
}

// jsonFieldName converts a Go struct field name to the snake_case name the
// request DTOs use in their json tags.
func jsonFieldName(field string) string {
	var b strings.Builder
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && field[i-1] >= 'a' && field[i-1] <= 'z' {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// fieldMessage renders one validator failure as a message.
func fieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fieldErr.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fieldErr.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fieldErr.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fieldErr.Param())
	default:
		return fmt.Sprintf("failed the '%s' rule", fieldErr.Tag())
	}
}
