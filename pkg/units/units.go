// Package units converts human length expressions ("10mm", "2in", "150")
// into PDF points.
package units

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Parse failures. Callers distinguish them with errors.Is.
var (
	ErrInvalidLength   = errors.New("invalid length expression")
	ErrUnsupportedUnit = errors.New("unsupported length unit")
	ErrMissingDPI      = errors.New("pixel lengths require a dpi value")
)

// lengthRe matches an unsigned decimal number followed by an optional
// letters-only unit token, with optional whitespace around and between.
var lengthRe = regexp.MustCompile(`^\s*([0-9]*\.?[0-9]+)\s*([a-z]*)\s*$`)

// ToPoints converts a length expression to PDF points (1 pt = 1/72 inch).
//
// Supported units: pt (default when no unit is given), mm, cm, in/inch/inches
// and px. Pixel lengths depend on the rendering resolution, so dpi must be
// positive when the unit is px; it is ignored otherwise. Matching is
// case-insensitive and tolerates surrounding whitespace.
func ToPoints(s string, dpi int) (float64, error) {
	m := lengthRe.FindStringSubmatch(strings.ToLower(s))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLength, s)
	}

	val, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLength, s)
	}

	unit := m[2]
	if unit == "" {
		unit = "pt"
	}

	switch unit {
	case "pt":
		return val, nil
	case "mm":
		return val * 72.0 / 25.4, nil
	case "cm":
		return val * 72.0 / 2.54, nil
	case "in", "inch", "inches":
		return val * 72.0, nil
	case "px":
		if dpi <= 0 {
			return 0, fmt.Errorf("%w: %q", ErrMissingDPI, s)
		}
		return val * 72.0 / float64(dpi), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedUnit, unit)
}
