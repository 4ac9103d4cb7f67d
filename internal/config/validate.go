package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report the config file key instead of the Go field name
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("name"); name != "" {
			return name
		}
		return field.Name
	})
	return v
}

// Validate performs comprehensive validation of the configuration, reporting every problem found
func (c *Config) Validate() error {
	errz := []error{}

	if err := structValidator.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		for _, fe := range fieldErrs {
			errz = append(errz, fieldError(fe))
		}
	}

	if !c.Logging.Format.IsValid() {
		errz = append(errz, fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format))
	}
	if !c.Logging.Level.IsValid() {
		errz = append(errz, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level))
	}

	return errors.Join(errz...)
}

// fieldError maps a struct tag failure onto the package's sentinel errors
func fieldError(fe validator.FieldError) error {
	switch fe.StructField() {
	case "Profile":
		return fmt.Errorf("%w: %q", ErrUnknownProfile, fe.Value())
	case "Port":
		return fmt.Errorf("%w: %v is outside 1-65535", ErrInvalidPort, fe.Value())
	}

	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s", ErrEmptyField, fe.Field())
	case "gte":
		return fmt.Errorf("%w: %s is negative", ErrInvalidValue, fe.Field())
	}
	return fmt.Errorf("%w: %s failed %q", ErrInvalidValue, fe.Field(), fe.Tag())
}
