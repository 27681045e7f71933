// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

// JSON is the codec shared by the models and the HTTP transport. It behaves
// like encoding/json.
var JSON = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode unmarshals body into v and validates the result against the
// `validate` tags of v. Any failure is wrapped with [ErrDecode].
func Decode(body []byte, v any) error {
	if err := JSON.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return nil
}
