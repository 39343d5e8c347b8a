package config

import (
	"reflect"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/loom/internal/placement"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themes = map[string]struct{}{"light": {}, "dark": {}}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their YAML key.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			_, ok := themes[strings.ToLower(fl.Field().String())]
			return ok
		})

		_ = v.RegisterValidation("side", func(fl validator.FieldLevel) bool {
			_, err := placement.ParseSide(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
			level, err := zerolog.ParseLevel(strings.ToLower(fl.Field().String()))
			return err == nil && level != zerolog.NoLevel
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
