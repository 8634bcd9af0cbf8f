package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/viewkit/internal/breakpoint"
	"github.com/alexisbeaulieu97/viewkit/internal/color"
	apperrors "github.com/alexisbeaulieu97/viewkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("breakpoint_name", func(fl validator.FieldLevel) bool {
			_, err := breakpoint.ParseBreakpoint(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("hex_rgb", func(fl validator.FieldLevel) bool {
			_, ok := color.HexToRGB(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation on cfg.
func Validate(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return cfg.Thresholds.Validate()
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := fieldName(fe)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
		return apperrors.NewValidationError(field, msg, err)
	}
	return apperrors.NewValidationError("config", err.Error(), err)
}

// fieldName drops the root struct name: "Config.thresholds.sm" -> "thresholds.sm".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		ns = ns[idx+1:]
	}
	return ns
}
