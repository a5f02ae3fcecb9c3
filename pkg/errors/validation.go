package errors

import (
	"math"
	"slices"
	"strings"
)

// ValidateColumnName rejects empty or whitespace-only column names before
// they reach a dataset lookup.
func ValidateColumnName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "column name cannot be empty")
	}
	return nil
}

// ValidateQuantile checks that q is a fraction in [0, 1].
func ValidateQuantile(q float64) error {
	if math.IsNaN(q) || q < 0 || q > 1 {
		return New(ErrCodeInvalidQuantile, "quantile %v outside [0, 1]", q)
	}
	return nil
}

// ValidateFormat checks f against the allowed output formats.
func ValidateFormat(f string, allowed []string) error {
	if !slices.Contains(allowed, f) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", f, strings.Join(allowed, ", "))
	}
	return nil
}

// ValidatePositive checks that a numeric setting is strictly positive.
func ValidatePositive(field string, v float64) error {
	if math.IsNaN(v) || v <= 0 {
		return New(ErrCodeInvalidConfig, "%s must be positive, got %v", field, v)
	}
	return nil
}
