// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrBadExtension indicates a settings path without a .json extension.
	ErrBadExtension = errors.New("config: file must have .json extension")

	// ErrTooLarge indicates a settings file above MaxFileSize.
	ErrTooLarge = errors.New("config: file too large")

	// ErrInvalid indicates a settings value outside its accepted range.
	ErrInvalid = errors.New("config: invalid settings")
)
