// Package config loads the optional typescale.toml constants file.
//
// The file overrides the built-in baseline table field by field. Absent or
// zero values keep the default, so a config only needs to name the
// constants it changes:
//
//	root = 16
//
//	[large]
//	font-size = 22
//	h1 = 44
//
//	[decor]
//	link-color = "#0b6b49"
//
// Section names match the preset names ([small], [default], [large]) and
// the decor block ([decor]).
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mhartvig/typescale/pkg/errors"
	"github.com/mhartvig/typescale/pkg/theme"
)

// DefaultFilename is the conventional config file name looked up in the
// working directory when no explicit path is given.
const DefaultFilename = "typescale.toml"

// file mirrors the TOML document. Zero values mean "keep the default".
type file struct {
	Root    float64     `toml:"root"`
	Small   presetTable `toml:"small"`
	Default presetTable `toml:"default"`
	Large   presetTable `toml:"large"`
	Decor   decorTable  `toml:"decor"`
}

type presetTable struct {
	FontSize   float64 `toml:"font-size"`
	LineHeight float64 `toml:"line-height"`
	H1         float64 `toml:"h1"`
	H2         float64 `toml:"h2"`
	H3         float64 `toml:"h3"`
	H4         float64 `toml:"h4"`
	Code       float64 `toml:"code"`
	Pre        float64 `toml:"pre"`
}

type decorTable struct {
	LinkColor           string `toml:"link-color"`
	LinkHoverDecoration string `toml:"link-hover-decoration"`
	CodeBackground      string `toml:"code-background"`
	CodeForeground      string `toml:"code-foreground"`
	ParagraphMargin     string `toml:"paragraph-margin"`
}

// Load reads a TOML constants file and applies it on top of
// [theme.DefaultScale]. If path is empty, [DefaultFilename] is tried and a
// missing file silently yields the defaults; an explicit path that does not
// exist is an error.
//
// Load does not validate the resulting scale — that is [theme.Build]'s job,
// so callers get one consistent validation path whether constants come from
// a file or from code.
func Load(path string) (theme.Scale, error) {
	scale := theme.DefaultScale()

	explicit := path != ""
	if !explicit {
		path = DefaultFilename
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return scale, nil
		}
		if os.IsNotExist(err) {
			return theme.Scale{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return theme.Scale{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return theme.Scale{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	apply(&scale, f)
	return scale, nil
}

// apply copies non-zero config values onto the baseline scale.
func apply(s *theme.Scale, f file) {
	if f.Root > 0 {
		s.Root = f.Root
	}
	applyPreset(&s.Small, f.Small)
	applyPreset(&s.Default, f.Default)
	applyPreset(&s.Large, f.Large)
	applyDecor(&s.Decor, f.Decor)
}

func applyPreset(dst *theme.PresetScale, src presetTable) {
	for _, o := range []struct {
		dst *float64
		src float64
	}{
		{&dst.FontSize, src.FontSize},
		{&dst.LineHeight, src.LineHeight},
		{&dst.H1, src.H1},
		{&dst.H2, src.H2},
		{&dst.H3, src.H3},
		{&dst.H4, src.H4},
		{&dst.Code, src.Code},
		{&dst.Pre, src.Pre},
	} {
		if o.src > 0 {
			*o.dst = o.src
		}
	}
}

func applyDecor(dst *theme.Decor, src decorTable) {
	for _, o := range []struct {
		dst *string
		src string
	}{
		{&dst.LinkColor, src.LinkColor},
		{&dst.LinkHoverDecoration, src.LinkHoverDecoration},
		{&dst.CodeBackground, src.CodeBackground},
		{&dst.CodeForeground, src.CodeForeground},
		{&dst.ParagraphMargin, src.ParagraphMargin},
	} {
		if o.src != "" {
			*o.dst = o.src
		}
	}
}
