// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/numerics/extrap"
	"github.com/katalvlaran/numerics/grid"
	"github.com/katalvlaran/numerics/ndarray"
)

// MaxFileSize caps the size of a settings file.
const MaxFileSize = 1 << 20

// Spacing policy names accepted in the "spacing" field.
const (
	SpacingFirst = "first"
	SpacingMean  = "mean"
)

// DefaultResolutions is a quadratic extrapolation over three coarse grids.
var DefaultResolutions = []int{40, 50, 60}

// Settings is the root of the settings file. Pointer fields distinguish
// "unset" from zero values.
type Settings struct {
	Resolutions []int   `json:"resolutions,omitempty"`
	Precision   *int    `json:"precision,omitempty"`
	LogDomain   *bool   `json:"log_domain,omitempty"`
	Spacing     *string `json:"spacing,omitempty"`
}

// Default returns Settings with every field set to its default.
func Default() *Settings {
	precision := ndarray.DefaultPrecision
	logDomain := false
	spacing := SpacingFirst

	return &Settings{
		Resolutions: append([]int(nil), DefaultResolutions...),
		Precision:   &precision,
		LogDomain:   &logDomain,
		Spacing:     &spacing,
	}
}

// Load reads and validates a settings file.
//
// The path must end in .json and the file must not exceed MaxFileSize.
// Unknown fields are rejected so typos do not silently fall back to
// defaults.
func Load(path string) (*Settings, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("%w, got %q", ErrBadExtension, ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("config: stat %s: %w", cleanPath, err)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrTooLarge, info.Size(), MaxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", cleanPath, err)
	}

	s := &Settings{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", cleanPath, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks every set field.
func (s *Settings) Validate() error {
	if s.Resolutions != nil {
		if n := len(s.Resolutions); n < int(extrap.MinOrder) || n > int(extrap.MaxOrder) {
			return fmt.Errorf("%w: resolutions must have 1 to 6 entries, got %d", ErrInvalid, n)
		}
		for _, pts := range s.Resolutions {
			if pts < grid.MinPoints {
				return fmt.Errorf("%w: resolution %d below minimum %d", ErrInvalid, pts, grid.MinPoints)
			}
		}
	}
	if s.Precision != nil && (*s.Precision < 1 || *s.Precision > 17) {
		return fmt.Errorf("%w: precision must be between 1 and 17, got %d", ErrInvalid, *s.Precision)
	}
	if s.Spacing != nil && *s.Spacing != SpacingFirst && *s.Spacing != SpacingMean {
		return fmt.Errorf("%w: spacing must be %q or %q, got %q", ErrInvalid, SpacingFirst, SpacingMean, *s.Spacing)
	}

	return nil
}

// GetResolutions returns the resolutions or DefaultResolutions.
func (s *Settings) GetResolutions() []int {
	if len(s.Resolutions) == 0 {
		return append([]int(nil), DefaultResolutions...)
	}

	return append([]int(nil), s.Resolutions...)
}

// GetPrecision returns the output precision or ndarray.DefaultPrecision.
func (s *Settings) GetPrecision() int {
	if s.Precision == nil {
		return ndarray.DefaultPrecision
	}

	return *s.Precision
}

// GetLogDomain reports whether extrapolation runs in log space (default false).
func (s *Settings) GetLogDomain() bool {
	if s.LogDomain == nil {
		return false
	}

	return *s.LogDomain
}

// GetSpacing returns the spacing policy named by the settings, defaulting to
// grid.FirstSpacing.
func (s *Settings) GetSpacing() grid.SpacingFunc {
	if s.Spacing != nil && *s.Spacing == SpacingMean {
		return grid.MeanSpacing
	}

	return grid.FirstSpacing
}
