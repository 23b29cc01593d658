// Package validation turns gin binding failures into the ordered,
// human-readable violation lists returned by the API. Every violated
// constraint is reported, not just the first, in field declaration order.
package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Messages extracts one message per violated constraint. The second return
// is false when err is not a field-validation error (e.g. malformed JSON).
func Messages(err error) ([]string, bool) {
	var fieldErrors validator.ValidationErrors

	if !errors.As(err, &fieldErrors) {
		return nil, false
	}

	messages := make([]string, 0, len(fieldErrors))

	for _, fe := range fieldErrors {
		messages = append(messages, message(fe))
	}

	return messages, true
}

func message(fe validator.FieldError) string {
	// The Name field appears on both user and project payloads with
	// different wording.
	onProject := strings.HasPrefix(fe.StructNamespace(), "CreateExternalProjectRequest.") ||
		strings.HasPrefix(fe.StructNamespace(), "UpdateExternalProjectRequest.")

	switch fe.Field() {
	case "Email":
		switch fe.Tag() {
		case "required":
			return "Email is required"
		case "email":
			return "Email must be valid"
		default:
			return "Email must not exceed 200 characters"
		}
	case "Password":
		if fe.Tag() == "required" {
			return "Password is required"
		}
		return "Password must be between 6 and 129 characters"
	case "ID":
		if fe.Tag() == "required" {
			return "Project ID is required"
		}
		return "Project ID must not exceed 200 characters"
	case "Name":
		if onProject {
			if fe.Tag() == "required" {
				return "Project name is required"
			}
			return "Project name must not exceed 120 characters"
		}
		return "Name must not exceed 120 characters"
	}

	return fe.Error()
}
