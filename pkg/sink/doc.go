// Package sink renders a built theme into its output formats.
//
// Two sinks exist:
//
//   - [RenderJSON]: the nested preset mapping consumed by the styling
//     pipeline (preset name -> css -> selector -> property -> value).
//   - [RenderCSS]: a plain stylesheet with the DEFAULT rules unscoped and
//     the small/large overrides scoped under a density attribute selector.
//
// Both sinks are configured through functional options and produce
// deterministic, byte-stable output for a given theme.
package sink
