package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Project fields
	"Title":        "Title",
	"Description":  "Description",
	"Budget":       "Budget",
	"Deadline":     "Deadline",
	"Category":     "Category",
	"PaymentType":  "Payment Type",
	"Status":       "Status",
	"Amount":       "Amount",
	"DeliveryTime": "Delivery Time",
	"Message":      "Message",
	"Content":      "Message Content",
	"Rating":       "Rating",
	"Comment":      "Comment",
	// Profile fields
	"Bio":         "Bio",
	"HourlyRate":  "Hourly Rate",
	"Proficiency": "Proficiency Level",
	// Auth fields
	"Email":    "Email",
	"Password": "Password",
	"Name":     "Name",
	"Role":     "Role",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

func formatSingleError(e validator.FieldError) string {
	label, ok := FieldLabels[e.Field()]
	if !ok {
		label = e.Field()
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", label, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", label, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(e.Param(), " ", ", "))
	case "valid_name":
		return fmt.Sprintf("%s contains invalid characters", label)
	case "future_date":
		return fmt.Sprintf("%s must not be in the past", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
