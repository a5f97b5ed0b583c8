package theme

import (
	"math"
	"testing"

	"github.com/mhartvig/typescale/pkg/errors"
)

func TestBuildDefaults(t *testing.T) {
	th, err := Build(DefaultScale())
	if err != nil {
		t.Fatalf("Build(DefaultScale()) error: %v", err)
	}

	// 16px body / 24px line height at a 16px root
	if th.Default.FontSize != "1rem" {
		t.Errorf("DEFAULT font size = %q, want %q", th.Default.FontSize, "1rem")
	}
	if th.Default.LineHeight != "1.5rem" {
		t.Errorf("DEFAULT line height = %q, want %q", th.Default.LineHeight, "1.5rem")
	}

	// large h2 at 30px
	if th.Large.H2 != "1.875rem" {
		t.Errorf("large h2 = %q, want %q", th.Large.H2, "1.875rem")
	}

	// small body at 14px
	if th.Small.FontSize != "0.875rem" {
		t.Errorf("small font size = %q, want %q", th.Small.FontSize, "0.875rem")
	}

	if th.Root() != 16 {
		t.Errorf("Root() = %v, want 16", th.Root())
	}
}

func TestBuildDecorPassThrough(t *testing.T) {
	s := DefaultScale()
	s.Decor.LinkColor = "#112233"

	th, err := Build(s)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if th.Decor.LinkColor != "#112233" {
		t.Errorf("decor link color = %q, want %q", th.Decor.LinkColor, "#112233")
	}
	if th.Decor.ParagraphMargin != "revert" {
		t.Errorf("decor paragraph margin = %q, want %q", th.Decor.ParagraphMargin, "revert")
	}
}

// The default table must be a true ordered scale: small <= DEFAULT <= large
// in pixel magnitude for every typographic field.
func TestDefaultScaleMonotonic(t *testing.T) {
	s := DefaultScale()
	for _, f := range presetFields {
		small, def, large := f.Get(s.Small), f.Get(s.Default), f.Get(s.Large)
		if small > def {
			t.Errorf("%s: small %v > DEFAULT %v", f.Name, small, def)
		}
		if def > large {
			t.Errorf("%s: DEFAULT %v > large %v", f.Name, def, large)
		}
	}
}

func TestValidateRejectsNonMonotonic(t *testing.T) {
	s := DefaultScale()
	s.Small.H2 = 99 // larger than DEFAULT's 28

	_, err := Build(s)
	if !errors.Is(err, errors.ErrCodeNotMonotonic) {
		t.Errorf("Build() error = %v, want NOT_MONOTONIC", err)
	}
}

func TestValidateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Scale)
		code   errors.Code
	}{
		{
			name:   "zero root",
			mutate: func(s *Scale) { s.Root = 0 },
			code:   errors.ErrCodeZeroBase,
		},
		{
			name:   "negative root",
			mutate: func(s *Scale) { s.Root = -16 },
			code:   errors.ErrCodeZeroBase,
		},
		{
			name:   "NaN root",
			mutate: func(s *Scale) { s.Root = math.NaN() },
			code:   errors.ErrCodeNonFinite,
		},
		{
			name:   "NaN font size",
			mutate: func(s *Scale) { s.Default.FontSize = math.NaN() },
			code:   errors.ErrCodeNonFinite,
		},
		{
			name:   "infinite heading",
			mutate: func(s *Scale) { s.Large.H1 = math.Inf(1) },
			code:   errors.ErrCodeNonFinite,
		},
		{
			name:   "negative size",
			mutate: func(s *Scale) { s.Small.Code = -1 },
			code:   errors.ErrCodeInvalidScale,
		},
		{
			name:   "malformed link color",
			mutate: func(s *Scale) { s.Decor.LinkColor = "#12345" },
			code:   errors.ErrCodeInvalidColor,
		},
		{
			name:   "malformed hover decoration",
			mutate: func(s *Scale) { s.Decor.LinkHoverDecoration = "Underline!" },
			code:   errors.ErrCodeInvalidScale,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultScale()
			tt.mutate(&s)
			_, err := Build(s)
			if !errors.Is(err, tt.code) {
				t.Errorf("Build() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

// Equal small and DEFAULT values are allowed: the default table keeps h1 at
// 32px for both.
func TestValidateAllowsEqualSteps(t *testing.T) {
	s := DefaultScale()
	if s.Small.H1 != s.Default.H1 {
		t.Fatalf("expected default table to share h1 between small and DEFAULT")
	}
	if _, err := Build(s); err != nil {
		t.Errorf("Build() error = %v, want nil", err)
	}
}

func TestCSSStructuralParity(t *testing.T) {
	th, err := Build(DefaultScale())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	css := th.CSS()

	small, large := css[PresetSmall], css[PresetLarge]
	def := css[PresetDefault]

	// small and large must define exactly the typographic selectors.
	for _, name := range []PresetName{PresetSmall, PresetLarge} {
		rules := css[name]
		if len(rules) != len(Selectors()) {
			t.Errorf("%s defines %d selectors, want %d", name, len(rules), len(Selectors()))
		}
		for _, sel := range Selectors() {
			if _, ok := rules[sel]; !ok {
				t.Errorf("%s missing selector %q", name, sel)
			}
		}
	}

	// small and large must agree on the full key set, property by property.
	for sel, props := range small {
		largeProps, ok := large[sel]
		if !ok {
			t.Errorf("large missing selector %q", sel)
			continue
		}
		if len(props) != len(largeProps) {
			t.Errorf("selector %q: small has %d properties, large has %d", sel, len(props), len(largeProps))
		}
		for prop := range props {
			if _, ok := largeProps[prop]; !ok {
				t.Errorf("large selector %q missing property %q", sel, prop)
			}
		}
	}

	// DEFAULT is a superset: typographic selectors plus the decor rules.
	for _, sel := range append(Selectors(), DecorSelectors()...) {
		if _, ok := def[sel]; !ok {
			t.Errorf("DEFAULT missing selector %q", sel)
		}
	}
	if got := def["a"]["color"]; got != "#3b6ecc" {
		t.Errorf("DEFAULT a.color = %q, want %q", got, "#3b6ecc")
	}
	if got := def["a:hover"]["text-decoration"]; got != "underline" {
		t.Errorf("DEFAULT a:hover decoration = %q, want %q", got, "underline")
	}
	if got := def["p"]["margin"]; got != "revert" {
		t.Errorf("DEFAULT p.margin = %q, want %q", got, "revert")
	}
	if got := def["code"]["background"]; got != "#f6f8fa" {
		t.Errorf("DEFAULT code background = %q, want %q", got, "#f6f8fa")
	}
	if got := def["html"]["font-size"]; got != "1rem" {
		t.Errorf("DEFAULT html font-size = %q, want %q", got, "1rem")
	}
}

func TestPresetLookup(t *testing.T) {
	th := MustBuild(DefaultScale())

	for _, name := range PresetNames {
		if _, ok := th.Preset(name); !ok {
			t.Errorf("Preset(%q) not found", name)
		}
	}
	if _, ok := th.Preset("medium"); ok {
		t.Error(`Preset("medium") = ok, want miss`)
	}
}

// Two builds from the same scale must be identical: the factory holds no
// hidden state.
func TestBuildDeterministic(t *testing.T) {
	a, err := Build(DefaultScale())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	b, err := Build(DefaultScale())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if *a != *b {
		t.Errorf("two builds differ: %+v vs %+v", a, b)
	}
}

func TestMustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustBuild with invalid scale did not panic")
		}
	}()
	s := DefaultScale()
	s.Root = 0
	MustBuild(s)
}
