package theme

import (
	"github.com/mhartvig/typescale/pkg/units"
)

// PresetName identifies one of the three content-density presets.
type PresetName string

const (
	// PresetDefault is the baseline preset. It also carries the
	// non-typographic rules shared by all densities.
	PresetDefault PresetName = "DEFAULT"

	// PresetSmall is the compact density override.
	PresetSmall PresetName = "small"

	// PresetLarge is the spacious density override.
	PresetLarge PresetName = "large"
)

// PresetNames lists the presets in ascending density order.
var PresetNames = [...]PresetName{PresetSmall, PresetDefault, PresetLarge}

// Preset holds the converted rem values for one density. Every field is
// always present, so structural parity across presets holds by
// construction rather than by runtime map merging.
type Preset struct {
	FontSize   string
	LineHeight string
	H1         string
	H2         string
	H3         string
	H4         string
	Code       string
	Pre        string
}

// Theme is the complete, immutable theme description: three structurally
// parallel presets plus the pass-through decor block. Build it with [Build];
// it has no mutation after construction.
type Theme struct {
	Default Preset
	Small   Preset
	Large   Preset
	Decor   Decor

	root float64
}

// Root returns the root font size in pixels the theme was built against.
func (t *Theme) Root() float64 {
	return t.root
}

// Preset returns the preset for a density name. The boolean reports whether
// the name is one of the three known densities.
func (t *Theme) Preset(name PresetName) (Preset, bool) {
	switch name {
	case PresetDefault:
		return t.Default, true
	case PresetSmall:
		return t.Small, true
	case PresetLarge:
		return t.Large, true
	}
	return Preset{}, false
}

// Build validates the scale and derives the theme, converting every
// typographic dimension to rem rooted at the scale's root size. Decor
// literals are copied through unmodified.
//
// Build is a pure factory: it reads nothing but its argument and returns a
// value that is never mutated afterwards, so it is safe to call from
// multiple goroutines.
func Build(s Scale) (*Theme, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	conv, err := units.New(s.Root)
	if err != nil {
		return nil, err
	}

	t := &Theme{Decor: s.Decor, root: s.Root}
	for _, p := range []struct {
		src PresetScale
		dst *Preset
	}{
		{s.Small, &t.Small},
		{s.Default, &t.Default},
		{s.Large, &t.Large},
	} {
		if *p.dst, err = convertPreset(conv, p.src); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// MustBuild is like [Build] but panics on error. It is intended for
// building from compile-time-known constants, where a failure is a
// programming mistake rather than a runtime condition.
func MustBuild(s Scale) *Theme {
	t, err := Build(s)
	if err != nil {
		panic(err)
	}
	return t
}

func convertPreset(conv units.Converter, s PresetScale) (Preset, error) {
	var p Preset
	for _, f := range []struct {
		px  float64
		dst *string
	}{
		{s.FontSize, &p.FontSize},
		{s.LineHeight, &p.LineHeight},
		{s.H1, &p.H1},
		{s.H2, &p.H2},
		{s.H3, &p.H3},
		{s.H4, &p.H4},
		{s.Code, &p.Code},
		{s.Pre, &p.Pre},
	} {
		v, err := conv.Rem(f.px)
		if err != nil {
			return Preset{}, err
		}
		*f.dst = v
	}
	return p, nil
}
