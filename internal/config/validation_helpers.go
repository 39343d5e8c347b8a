package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	loomerrors "github.com/alexisbeaulieu97/loom/pkg/errors"
)

// convertValidationError normalizes validator errors into loom validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlFieldPath(ve)
		return loomerrors.NewValidationError(field, describe(ve), err)
	}

	return loomerrors.NewValidationError("config", err.Error(), err)
}

// yamlFieldPath drops the root struct name from the namespace, leaving the
// dotted YAML path such as "pagination.total_pages".
func yamlFieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "theme":
		return fmt.Sprintf("unknown theme %q (want light or dark)", fe.Value())
	case "side":
		return fmt.Sprintf("unknown side %q (want top or bottom)", fe.Value())
	case "loglevel":
		return fmt.Sprintf("unknown log level %q", fe.Value())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
