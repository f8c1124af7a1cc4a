package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"fre-insights/internal/importer"
	"fre-insights/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
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

// NewValidator creates a validator with the import and insights rules registered.
// Field names in errors come from the json, query or form tag, in that order.
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("currency", validateCurrency)
	_ = v.RegisterValidation("date_format", validateDateFormat)
	_ = v.RegisterValidation("direction", validateDirection)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return ""
	})

	return &Validator{validate: v}
}

// Struct validates s and returns validator.ValidationErrors on failure
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FieldErrors flattens validation errors into field name -> message. Ok is false when err
// did not come from the validator.
func FieldErrors(err error) (map[string]string, bool) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, false
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fe.Field()] = FormatFieldError(fe)
	}
	return fields, true
}

// validateCurrency accepts any 3-letter code in either case; it is upper-cased on import
func validateCurrency(fl validator.FieldLevel) bool {
	return models.IsValidCurrency(strings.ToUpper(strings.TrimSpace(fl.Field().String())))
}

func validateDateFormat(fl validator.FieldLevel) bool {
	return importer.IsSupportedDateFormat(fl.Field().String())
}

// validateDirection allows an empty value so it can be combined with omitempty-less filters
func validateDirection(fl validator.FieldLevel) bool {
	direction := fl.Field().String()
	return direction == "" || models.IsValidDirection(direction)
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "datetime":
		return fmt.Sprintf("must be a date in %s layout", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "currency":
		return "must be a 3-letter currency code"
	case "date_format":
		return fmt.Sprintf("must be one of: %s", strings.Join(importer.SupportedDateFormats(), ", "))
	case "direction":
		return fmt.Sprintf("must be %s or %s", models.DirectionIncome, models.DirectionExpense)
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
