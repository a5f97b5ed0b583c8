package theme

import (
	"math"

	"github.com/mhartvig/typescale/pkg/errors"
)

// PresetScale holds the pixel constants for one content-density preset.
// All values are design measurements in CSS pixels.
type PresetScale struct {
	FontSize   float64 // body font size
	LineHeight float64 // body line height
	H1         float64
	H2         float64
	H3         float64
	H4         float64
	Code       float64 // inline code font size
	Pre        float64 // code block font size
}

// Decor holds the non-typographic styling literals. They are configuration
// authored by a developer, copied into the DEFAULT preset verbatim and never
// run through the unit converter.
type Decor struct {
	LinkColor           string // anchor color
	LinkHoverDecoration string // text-decoration on a:hover
	CodeBackground      string // inline code background color
	CodeForeground      string // inline code text color
	ParagraphMargin     string // paragraph margin reset, e.g. "revert"
}

// Scale is the full input table for [Build]: a root font size, one
// [PresetScale] per density, and the pass-through [Decor] block.
type Scale struct {
	Root    float64 // document root font size in pixels
	Small   PresetScale
	Default PresetScale
	Large   PresetScale
	Decor   Decor
}

// DefaultScale returns the baseline constant table: a 16px root, 16px body
// with a 24px line height, and the small/large densities stepping the scale
// down to 14px and up to 20px body text.
func DefaultScale() Scale {
	return Scale{
		Root: 16,
		Small: PresetScale{
			FontSize:   14,
			LineHeight: 21,
			H1:         32,
			H2:         26,
			H3:         22,
			H4:         18,
			Code:       13,
			Pre:        13,
		},
		Default: PresetScale{
			FontSize:   16,
			LineHeight: 24,
			H1:         32,
			H2:         28,
			H3:         24,
			H4:         20,
			Code:       14,
			Pre:        14,
		},
		Large: PresetScale{
			FontSize:   20,
			LineHeight: 30,
			H1:         40,
			H2:         30,
			H3:         26,
			H4:         22,
			Code:       16,
			Pre:        16,
		},
		Decor: Decor{
			LinkColor:           "#3b6ecc",
			LinkHoverDecoration: "underline",
			CodeBackground:      "#f6f8fa",
			CodeForeground:      "#24292e",
			ParagraphMargin:     "revert",
		},
	}
}

// presetFields enumerates the typographic fields of a PresetScale in output
// order. Monotonicity checks, the CSS mapping, and the tests all iterate
// this table so the field set stays consistent in one place.
var presetFields = []struct {
	Name string
	Get  func(PresetScale) float64
}{
	{"font-size", func(p PresetScale) float64 { return p.FontSize }},
	{"line-height", func(p PresetScale) float64 { return p.LineHeight }},
	{"h1", func(p PresetScale) float64 { return p.H1 }},
	{"h2", func(p PresetScale) float64 { return p.H2 }},
	{"h3", func(p PresetScale) float64 { return p.H3 }},
	{"h4", func(p PresetScale) float64 { return p.H4 }},
	{"code", func(p PresetScale) float64 { return p.Code }},
	{"pre", func(p PresetScale) float64 { return p.Pre }},
}

// Validate checks the scale for build-time configuration errors: non-finite
// or negative pixel values, a non-positive root, malformed decor literals,
// and densities that break the small <= DEFAULT <= large ordering.
//
// Any failure here is fatal to the build step. A malformed theme would only
// surface as a subtle visual bug downstream, so nothing is repaired or
// defaulted silently.
func (s Scale) Validate() error {
	if math.IsNaN(s.Root) || math.IsInf(s.Root, 0) {
		return errors.New(errors.ErrCodeNonFinite, "root size must be finite, got %v", s.Root)
	}
	if s.Root <= 0 {
		return errors.New(errors.ErrCodeZeroBase, "root size must be positive, got %v", s.Root)
	}

	presets := []struct {
		name  string
		scale PresetScale
	}{
		{"small", s.Small},
		{"DEFAULT", s.Default},
		{"large", s.Large},
	}

	for _, p := range presets {
		for _, f := range presetFields {
			v := f.Get(p.scale)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return errors.New(errors.ErrCodeNonFinite, "%s %s must be finite, got %v", p.name, f.Name, v)
			}
			if v < 0 {
				return errors.New(errors.ErrCodeInvalidScale, "%s %s must be non-negative, got %v", p.name, f.Name, v)
			}
		}
	}

	for _, f := range presetFields {
		small, def, large := f.Get(s.Small), f.Get(s.Default), f.Get(s.Large)
		if small > def || def > large {
			return errors.New(errors.ErrCodeNotMonotonic,
				"%s must satisfy small <= DEFAULT <= large, got %v / %v / %v",
				f.Name, small, def, large)
		}
	}

	return s.Decor.validate()
}

func (d Decor) validate() error {
	if err := errors.ValidateColor(d.LinkColor); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidColor, err, "link color")
	}
	if err := errors.ValidateColor(d.CodeBackground); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidColor, err, "code background")
	}
	if err := errors.ValidateColor(d.CodeForeground); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidColor, err, "code foreground")
	}
	if err := errors.ValidateKeyword(d.LinkHoverDecoration); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidScale, err, "link hover decoration")
	}
	if err := errors.ValidateKeyword(d.ParagraphMargin); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidScale, err, "paragraph margin")
	}
	return nil
}
