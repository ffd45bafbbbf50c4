package validation

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// Allow letters, numbers, spaces, and common professional punctuation: . ' - / & ( ) ,
var nameRegex = regexp.MustCompile(`^[\p{L}0-9 .'/&(),-]+$`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("future_date", FutureDate)
}

// ValidName validates that a string contains only valid name characters
// Rejects most special symbols
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// FutureDate validates that a time.Time field is not in the past.
// Zero values pass; combine with required where the field is mandatory.
func FutureDate(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	if val.IsZero() {
		return true
	}
	return !val.Before(time.Now())
}
