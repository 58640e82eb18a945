package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateSpacing checks that a plant spacing is a positive, finite number.
// The engine tolerates any value, but a non-positive spacing in a plan file is
// almost always a typo.
func ValidateSpacing(spacing float64) error {
	if math.IsNaN(spacing) || math.IsInf(spacing, 0) {
		return New(ErrCodeInvalidInput, "spacing must be a finite number")
	}
	if spacing <= 0 {
		return New(ErrCodeInvalidInput, "spacing must be positive (got %g)", spacing)
	}
	return nil
}

// ValidateDimension checks that a named bed dimension is positive and finite.
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidShape, "%s must be a finite number", name)
	}
	if v <= 0 {
		return New(ErrCodeInvalidShape, "%s must be positive (got %g)", name, v)
	}
	return nil
}

// ValidateFraction checks that v lies in the open interval (0, 1).
func ValidateFraction(name string, v float64) error {
	if math.IsNaN(v) || v <= 0 || v >= 1 {
		return New(ErrCodeInvalidInput, "%s must lie strictly between 0 and 1 (got %g)", name, v)
	}
	return nil
}

// planExtensions lists the document formats a plan may be written in.
var planExtensions = map[string]bool{
	".toml": true,
	".yaml": true,
	".yml":  true,
	".json": true,
}

// ValidatePlanPath validates the path of a plan document.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Extension must be .toml, .yaml, .yml or .json
func ValidatePlanPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !planExtensions[ext] {
		return New(ErrCodeInvalidFormat, "unsupported plan format %q (must be .toml, .yaml, .yml or .json)", ext)
	}

	return nil
}
