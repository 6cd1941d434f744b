package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("currency", validateCurrency)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

var currencyPattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

// validateCurrency validates that a currency is a three-letter ISO 4217 code.
// Case is accepted here; normalization to upper case happens in the services.
func validateCurrency(fl validator.FieldLevel) bool {
	return currencyPattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

// validatePositiveAmount validates that a string-typed monetary amount parses
// as a decimal strictly greater than zero
func validatePositiveAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return false
	}
	return amount.GreaterThan(decimal.Zero)
}
