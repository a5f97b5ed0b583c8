package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhartvig/typescale/pkg/config"
	"github.com/mhartvig/typescale/pkg/errors"
	"github.com/mhartvig/typescale/pkg/sink"
	"github.com/mhartvig/typescale/pkg/theme"
)

// Output formats supported by the build command.
const (
	FormatJSON = "json"
	FormatCSS  = "css"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	configPath string   // constants file ("" uses typescale.toml if present)
	output     string   // output base path, or "-" for stdout
	formats    []string // output formats: "json", "css"
	compact    bool     // compact JSON output
	scopeAttr  string   // density scope attribute for the CSS sink
}

// buildCommand creates the build command for generating theme artifacts.
//
// Default settings:
//   - formats: json
//   - output: "theme" (producing theme.json / theme.css)
//   - constants: built-in baseline, overridden by typescale.toml if present
func (c *CLI) buildCommand() *cobra.Command {
	var formatsStr string
	opts := buildOpts{
		output:    "theme",
		scopeAttr: "data-density",
	}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the theme artifacts from the constants table",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			if opts.output == "-" && len(opts.formats) > 1 {
				return errors.New(errors.ErrCodeInvalidFormat, "stdout output requires a single format")
			}
			return c.runBuild(&opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "constants file (default: typescale.toml if present)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output base path, or - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json (default), css (comma-separated)")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "compact JSON output")
	cmd.Flags().StringVar(&opts.scopeAttr, "scope-attr", opts.scopeAttr, "attribute used to scope density overrides in CSS output")

	return cmd
}

// runBuild loads the constants, builds the theme, and writes one artifact
// per requested format.
func (c *CLI) runBuild(opts *buildOpts) error {
	p := newProgress(c.Logger)

	scale, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	c.Logger.Debugf("constants loaded: root=%vpx body=%v/%v/%vpx",
		scale.Root, scale.Small.FontSize, scale.Default.FontSize, scale.Large.FontSize)

	th, err := theme.Build(scale)
	if err != nil {
		return err
	}

	for _, format := range opts.formats {
		data, err := renderFormat(th, format, opts)
		if err != nil {
			return err
		}

		if opts.output == "-" {
			if _, err := os.Stdout.Write(data); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "write stdout")
			}
			continue
		}

		path := opts.output + "." + format
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
		}
		printFile(path)
	}

	p.done(fmt.Sprintf("Built theme (%d presets)", len(theme.PresetNames)))
	if opts.output != "-" {
		printSuccess("theme ready")
	}
	return nil
}

// renderFormat dispatches to the sink for a single output format.
func renderFormat(th *theme.Theme, format string, opts *buildOpts) ([]byte, error) {
	switch format {
	case FormatJSON:
		jsonOpts := []sink.JSONOption{sink.WithJSONRoot()}
		if opts.compact {
			jsonOpts = append(jsonOpts, sink.WithJSONCompact())
		}
		return sink.RenderJSON(th, jsonOpts...)
	case FormatCSS:
		return sink.RenderCSS(th, sink.WithScopeAttr(opts.scopeAttr))
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{FormatJSON}
	}
	return strings.Split(s, ",")
}

// validateFormats checks that every requested format is known.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if f != FormatJSON && f != FormatCSS {
			return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (valid: json, css)", f)
		}
	}
	return nil
}
