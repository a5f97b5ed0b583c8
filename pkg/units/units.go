// Package units converts absolute pixel measurements into the relative CSS
// units (rem, em) used by the generated theme.
//
// All conversions are pure functions of their inputs: identical inputs always
// produce identical output strings, and the package holds no mutable state,
// so it is safe for concurrent use without synchronization.
//
// Magnitudes are rounded to a fixed 7 fractional digits before formatting.
// This keeps floating-point artifacts (0.8749999...) out of the generated
// stylesheet while preserving enough precision for any realistic pixel input.
//
// # Usage
//
//	c := units.Default()           // rooted at 16px
//	v, err := c.Rem(24)            // "1.5rem"
//	w, err := c.Em(20, 16)         // "1.25em"
package units

import (
	"math"
	"strconv"
	"strings"

	"github.com/mhartvig/typescale/pkg/errors"
)

// DefaultRoot is the conventional document root font size in pixels.
const DefaultRoot = 16

// precision is the maximum number of fractional digits kept by [Round].
const precision = 7

// Converter converts pixel measurements relative to a document root size.
//
// The zero value is not usable; construct one with [New] or [Default].
// Converter is an immutable value and may be copied and shared freely.
type Converter struct {
	root float64
}

// New creates a Converter rooted at the given root font size in pixels.
// The root must be positive and finite.
func New(root float64) (Converter, error) {
	if !isFinite(root) {
		return Converter{}, errors.New(errors.ErrCodeNonFinite, "root size must be finite, got %v", root)
	}
	if root <= 0 {
		return Converter{}, errors.New(errors.ErrCodeZeroBase, "root size must be positive, got %v", root)
	}
	return Converter{root: root}, nil
}

// Default returns a Converter rooted at [DefaultRoot] (16px).
func Default() Converter {
	return Converter{root: DefaultRoot}
}

// Root returns the root font size this Converter divides by.
func (c Converter) Root() float64 {
	return c.root
}

// Rem converts a pixel measurement to a rem string relative to the root
// size, e.g. Rem(24) == "1.5rem" at a 16px root. Rem(root) is exactly
// "1rem".
func (c Converter) Rem(px float64) (string, error) {
	return c.relative(px, c.root, "rem")
}

// Em converts a pixel measurement to an em string relative to base, the
// parent element's font size in pixels, e.g. Em(20, 16) == "1.25em".
// Em(b, b) is exactly "1em".
//
// A zero or negative base fails with an explicit ZERO_BASE error instead of
// propagating Infinity into the generated theme.
func (c Converter) Em(px, base float64) (string, error) {
	return c.relative(px, base, "em")
}

func (c Converter) relative(px, base float64, unit string) (string, error) {
	if !isFinite(px) {
		return "", errors.New(errors.ErrCodeNonFinite, "pixel value must be finite, got %v", px)
	}
	if !isFinite(base) {
		return "", errors.New(errors.ErrCodeNonFinite, "base size must be finite, got %v", base)
	}
	if base <= 0 {
		return "", errors.New(errors.ErrCodeZeroBase, "%s conversion requires a positive base, got %v", unit, base)
	}
	n, err := Round(px / base)
	if err != nil {
		return "", err
	}
	return n + unit, nil
}

// Round formats a number with at most 7 fractional digits, stripping
// trailing zeros and a trailing decimal point. Integers come out without a
// decimal point: Round(8) == "8", Round(8.5) == "8.5", Round(1.0/3) ==
// "0.3333333".
//
// Round is idempotent: re-parsing the output and rounding again yields the
// same string.
func Round(v float64) (string, error) {
	if !isFinite(v) {
		return "", errors.New(errors.ErrCodeNonFinite, "cannot round non-finite value %v", v)
	}
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	// Normalize the negative-zero artifact of formatting.
	if s == "-0" {
		s = "0"
	}
	return s, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
