package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/motif/internal/ui/theme"
	motiferrors "github.com/alexisbeaulieu97/motif/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			return slices.Contains(theme.Names(), fl.Field().String())
		})

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			_, err := zerolog.ParseLevel(strings.ToLower(fl.Field().String()))
			return err == nil
		})

		_ = v.RegisterValidation("yaml_path", func(fl validator.FieldLevel) bool {
			path := fl.Field().String()
			if strings.TrimSpace(path) == "" || strings.Contains(path, "\x00") {
				return false
			}
			ext := strings.ToLower(filepath.Ext(path))
			return ext == ".yaml" || ext == ".yml"
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// convertValidationError normalizes validator errors into motif validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := keyFor(ve.StructField())
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Tag() == "theme_name" {
			msg = fmt.Sprintf("unknown theme %q (available: %s)", ve.Value(), strings.Join(theme.Names(), ", "))
		}
		return motiferrors.NewValidationError(field, msg, err)
	}

	return motiferrors.NewValidationError("config", err.Error(), err)
}
