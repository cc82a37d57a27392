package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their yaml key
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateConfig checks every section of the configuration
func (c *Config) ValidateConfig() error {
	if c.Verifier == nil {
		return fmt.Errorf("%w: verifier", ErrMissingRequired)
	}
	if err := validateSection("verifier", c.Verifier); err != nil {
		return err
	}
	if c.App != nil {
		if err := validateSection("app", c.App); err != nil {
			return err
		}
	}
	return nil
}

func validateSection(section string, s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %s: %v", ErrInvalidValue, section, err)
	}

	missing := make([]string, 0, len(fieldErrs))
	invalid := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		name := section + "." + fe.Field()
		if fe.Tag() == "required" {
			missing = append(missing, name)
			continue
		}
		invalid = append(invalid, fmt.Sprintf("%s=%v (%s)", name, fe.Value(), fe.Tag()))
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequired, strings.Join(missing, ", "))
	}
	return fmt.Errorf("%w: %s", ErrInvalidValue, strings.Join(invalid, ", "))
}
