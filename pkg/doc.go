// Package pkg provides the core libraries for typescale theme generation.
//
// # Overview
//
// typescale derives a typographic theme — font sizes, line heights, heading
// scales for three content-density presets — from a small table of pixel
// constants. The pkg directory is organized by responsibility:
//
//  1. [units] - Pixel-to-relative-unit conversion (rem/em) with controlled rounding
//  2. [theme] - The constants table, validation, and the theme factory
//  3. [config] - Optional TOML overrides for the constants
//  4. [sink] - Output renderers (JSON theme description, CSS stylesheet)
//  5. [errors] - Structured errors with machine-readable codes
//
// # Architecture
//
// The data flow through typescale:
//
//	typescale.toml (optional overrides)
//	         ↓
//	    [config] package (constants table)
//	         ↓
//	    [theme] package (validate + convert via [units])
//	         ↓
//	    [sink] package (JSON / CSS artifacts)
//	         ↓
//	    static-site styling pipeline
//
// # Quick Start
//
//	scale := theme.DefaultScale()
//	th, err := theme.Build(scale)
//	if err != nil {
//	    return err
//	}
//	data, err := sink.RenderJSON(th)
//
// [units]: github.com/mhartvig/typescale/pkg/units
// [theme]: github.com/mhartvig/typescale/pkg/theme
// [config]: github.com/mhartvig/typescale/pkg/config
// [sink]: github.com/mhartvig/typescale/pkg/sink
// [errors]: github.com/mhartvig/typescale/pkg/errors
package pkg
