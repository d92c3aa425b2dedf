package helper

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared request validator. Field names in error messages
// come from json tags, so nested failures read as "donor.firstName".
var Validate = newValidator()

// Leading digit 1-9, up to 15 digits, optional leading +.
var phoneRegex = regexp.MustCompile(`^\+?[1-9][0-9]{0,15}$`)

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})

	return v
}

// TranslateValidationErrors maps raw validator failures to the
// human-readable messages the API returns.
func TranslateValidationErrors(err error) []string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Invalid input"}
	}

	messages := make([]string, 0, len(ve))
	for _, fe := range ve {
		messages = append(messages, translateFieldError(fe))
	}
	return messages
}

func translateFieldError(fe validator.FieldError) string {
	field := fieldPath(fe)

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Please enter a valid email address"
	case "phone":
		return "Please enter a valid phone number"
	case "oneof":
		return fmt.Sprintf("Please select a valid %s", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s cannot exceed %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be no more than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s format is invalid", field)
	}
}

// fieldPath strips the root struct name from the namespace:
// "CreateDonationRequest.donor.firstName" -> "donor.firstName".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
