// Package validation defines the request schemas accepted by the API and
// the rules they are checked against. Validation produces a typed result:
// either a pass or a list of field errors.
package validation

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// Validator is a function that validates a string and returns an error if
// the value is invalid.
type Validator func(value string) error

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Result collects the outcome of validating a payload.
type Result struct {
	Errors []FieldError
}

func (r Result) OK() bool { return len(r.Errors) == 0 }

func (r *Result) check(field, value string, validators ...Validator) {
	for _, v := range validators {
		if err := v(value); err != nil {
			r.Errors = append(r.Errors, FieldError{Field: field, Message: err.Error()})
			return
		}
	}
}

// Required ensures the field is not empty.
func Required() Validator {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("this field is required")
		}
		return nil
	}
}

// MinLength checks minimum length.
func MinLength(min int) Validator {
	return func(v string) error {
		if len(v) < min {
			return fmt.Errorf("must be at least %d characters", min)
		}
		return nil
	}
}

// Email validates email format. Empty values pass so Required stays in
// charge of presence.
func Email() Validator {
	return func(v string) error {
		if v == "" {
			return nil
		}
		if _, err := mail.ParseAddress(v); err != nil {
			return fmt.Errorf("must be a valid email address")
		}
		return nil
	}
}

// DateTime ensures the value parses as a real calendar date-time in the
// given layout.
func DateTime(layout string) Validator {
	return func(v string) error {
		if _, err := time.Parse(layout, v); err != nil {
			return fmt.Errorf("must be a date-time in format %s", layout)
		}
		return nil
	}
}
