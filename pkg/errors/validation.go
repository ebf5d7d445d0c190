package errors

import (
	"math"
	"strconv"
	"strings"
)

// ValidateCoord validates a single coordinate value.
// It rejects NaN and infinities, which would silently poison every
// comparison downstream.
func ValidateCoord(name string, v float64) error {
	if math.IsNaN(v) {
		return New(ErrCodeInvalidCoord, "coordinate %s is NaN", name)
	}
	if math.IsInf(v, 0) {
		return New(ErrCodeInvalidCoord, "coordinate %s is infinite", name)
	}
	return nil
}

// ParseCoord parses a coordinate from its textual form and validates it.
// Accepts anything strconv.ParseFloat accepts (integers, decimals,
// scientific notation).
func ParseCoord(name, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, New(ErrCodeInvalidCoord, "coordinate %s is empty", name)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, New(ErrCodeInvalidCoord, "coordinate %s: %q is not a number", name, s)
	}
	if err := ValidateCoord(name, v); err != nil {
		return 0, err
	}
	return v, nil
}

// ValidateFormat validates an output format name against the allowed set.
func ValidateFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unknown format %q (expected one of: %s)", format, strings.Join(allowed, ", "))
}
