package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	themeerrors "github.com/alexisbeaulieu97/themecore/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	handlePattern  = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
	hookTagPattern = regexp.MustCompile(`^[A-Za-z0-9_./-]+$`)
	hex6Pattern    = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Validatable is implemented by slices whose rules do not fit struct tags.
type Validatable interface {
	Validate() error
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("handle", func(fl validator.FieldLevel) bool {
			return handlePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("hook_tag", func(fl validator.FieldLevel) bool {
			return hookTagPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
			return hex6Pattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the shared validator instance.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// DecodeSlice decodes a component slice into out and validates the result.
func DecodeSlice(component string, slice Slice, out any) error {
	if err := slice.Decode(out); err != nil {
		return themeerrors.NewValidationError(component, err.Error(), err)
	}
	return ValidateSlice(component, out)
}

// ValidateSlice runs tag validation followed by any Validate method on v.
func ValidateSlice(component string, v any) error {
	if v == nil {
		return themeerrors.NewValidationError(component, "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(v); err != nil {
		var invalid *validator.InvalidValidationError
		if !errors.As(err, &invalid) {
			return convertValidationError(component, err)
		}
	}

	if custom, ok := v.(Validatable); ok {
		if err := custom.Validate(); err != nil {
			var ve *themeerrors.ValidationError
			if errors.As(err, &ve) {
				ve.Field = joinField(component, ve.Field)
				return ve
			}
			return themeerrors.NewValidationError(component, err.Error(), err)
		}
	}

	return nil
}

func convertValidationError(component string, err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := joinField(component, yamlishFieldName(ve))
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return themeerrors.NewValidationError(field, msg, err)
	}

	return themeerrors.NewValidationError(component, err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func joinField(component, field string) string {
	switch {
	case field == "":
		return component
	case component == "":
		return field
	default:
		return component + "." + field
	}
}

func requiredKey(args map[string]any, key string) (string, bool) {
	value, ok := args[key].(string)
	return value, ok && strings.TrimSpace(value) != ""
}
