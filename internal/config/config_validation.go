// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validate checks the merged [StructuredConfig] against the `validate` tags
// of its groups. Credentials are skipped; see [Credentials.Validate].
func (cfg *StructuredConfig) validate() error {
	if err := validate.Struct(cfg.Adapter); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
	}

	if err := validate.Struct(cfg.Session); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSessionConfigs, err)
	}

	if err := validate.Struct(cfg.Log); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err)
	}

	return nil
}

// Validate reports whether the credentials are complete enough to attempt a
// login.
func (c Credentials) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	return nil
}
