package dto

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

// bindingValidator mirrors gin's binding setup, which reads rules from the
// "binding" struct tag.
func bindingValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

func TestToValidationErrorResponse(t *testing.T) {
	validate := bindingValidator()

	t.Run("maps each failing field to a message", func(t *testing.T) {
		err := validate.Struct(CreateGoalRequest{})
		if err == nil {
			t.Fatal("expected validation to fail")
		}

		response := ToValidationErrorResponse(err, "GOAL-006")
		if response.Code != "GOAL-006" {
			t.Errorf("Code = %s, want GOAL-006", response.Code)
		}
		if response.Fields["name"] != "is required" {
			t.Errorf("name message = %q, want 'is required'", response.Fields["name"])
		}
		if response.Fields["target_amount"] != "is required" {
			t.Errorf("target_amount message = %q, want 'is required'", response.Fields["target_amount"])
		}
	})

	t.Run("renders rule parameters into the message", func(t *testing.T) {
		err := validate.Struct(CreateGoalRequest{
			Name:         "x",
			TargetAmount: 100,
			Priority:     "urgent",
		})
		if err == nil {
			t.Fatal("expected validation to fail")
		}

		response := ToValidationErrorResponse(err, "")
		if response.Fields["name"] != "must be at least 2 characters" {
			t.Errorf("name message = %q", response.Fields["name"])
		}
		if response.Fields["priority"] != "must be one of: low medium high" {
			t.Errorf("priority message = %q", response.Fields["priority"])
		}
	})

	t.Run("non-validation errors keep a single message", func(t *testing.T) {
		response := ToValidationErrorResponse(errors.New("unexpected EOF"), "")
		if response.Fields != nil {
			t.Errorf("expected no field map, got %v", response.Fields)
		}
		if response.Error != "Invalid request body: unexpected EOF" {
			t.Errorf("Error = %q", response.Error)
		}
	})
}

func TestJSONFieldName(t *testing.T) {
	cases := map[string]string{
		"Name":            "name",
		"TargetAmount":    "target_amount",
		"AccountID":       "account_id",
		"SubCategory":     "sub_category",
		"RolloverEnabled": "rollover_enabled",
	}
	for input, want := range cases {
		if got := jsonFieldName(input); got != want {
			t.Errorf("jsonFieldName(%q) = %q, want %q", input, got, want)
		}
	}
}
