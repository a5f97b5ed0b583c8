// Package theme derives a typographic theme description from a table of
// pixel constants.
//
// # Overview
//
// A [Scale] holds the pixel inputs: one [PresetScale] per content density
// (small, DEFAULT, large), a root font size, and a [Decor] block of
// pass-through styling literals. [Build] validates the scale and converts
// every typographic dimension to rem, producing an immutable [Theme].
//
// The three densities form a true ordered scale, not arbitrary presets:
// every typographic field must satisfy small <= DEFAULT <= large in pixel
// magnitude, and [Build] rejects tables that break the ordering.
//
// # Output Contract
//
// The consuming styling pipeline receives the theme through [Theme.CSS]:
// a nested mapping of preset name -> selector -> property -> value. Values
// are rem strings ("1.875rem") or pass-through literals (hex colors,
// keywords like "revert"). DEFAULT carries the non-typographic rules; small
// and large are overrides the consumer composes on top of DEFAULT.
//
// # Purity
//
// Build is a pure factory: there is no package-level theme singleton, no
// caching, and no mutation after construction. Two calls with the same
// Scale return equal themes, and independent themes can be built with
// different constants (useful in tests).
package theme
