package config

import (
	loomerrors "github.com/alexisbeaulieu97/loom/pkg/errors"
)

// ValidateConfig checks every field of cfg against its validate tag.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return loomerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}
