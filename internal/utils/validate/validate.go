// Package validate wraps go-playground/validator so every caller reports
// failures the same way: one error whose message lists each bad field in
// plain English.
//
// Example output:
//
//	invalid config: field Env must be one of [dev staging prod], field Endpoint must be a valid URL
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// v caches struct metadata across calls; a *validator.Validate is safe
// for concurrent use.
var v = validator.New()

// Struct checks the validate:"..." tags on s. what names the thing being
// checked ("config", "theme") and prefixes the error message.
func Struct(what string, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid %s: %w", what, err)
	}
	return fmt.Errorf("invalid %s: %s", what, Message(verrs))
}

// Message converts a slice of validator.FieldError values into a single
// human-readable string, joined with ", ".
func Message(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))

	for _, e := range errs {
		// Tag, not ActualTag: aliases like iscolor expand to a union
		switch e.Tag() {
		// "required" tag — field was missing or zero-valued
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", e.Field()))
		case "url":
			msgs = append(msgs, fmt.Sprintf("field %s must be a valid URL", e.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("field %s must be one of [%s]", e.Field(), e.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("field %s must have at least %s entries", e.Field(), e.Param()))
		case "iscolor":
			msgs = append(msgs, fmt.Sprintf("field %s must be a colour", e.Field()))
		// Catch-all for any other validation tag
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return strings.Join(msgs, ", ")
}
