// Package validation validates decoded request payloads with struct tags.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/errors"
)

var hsCodePattern = regexp.MustCompile(`^[0-9]{2,10}$`)

// Validator wraps validator/v10 with JSON field names and readable messages.
type Validator struct {
	validate *validator.Validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a validator with the custom rules registered
func NewValidator() *Validator {
	v := &Validator{validate: validator.New()}

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.validate.RegisterValidation("hscode", hsCodeValidator)

	return v
}

// Validate checks i against its struct tags. Failures come back as a single
// VALIDATION error listing every offending field.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return appErrors.NewValidation(err.Error())
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, message(e))
	}
	return appErrors.NewValidation(strings.Join(messages, "; "))
}

func message(e validator.FieldError) string {
	field := e.Field()
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, param)
	case "min":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s item(s)", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(param, " ", ", "))
	case "hscode":
		return fmt.Sprintf("%s must be 2 to 10 digits", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, e.Tag())
	}
}

func hsCodeValidator(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if code == "" {
		return true
	}
	return hsCodePattern.MatchString(code)
}
