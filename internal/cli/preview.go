package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mhartvig/typescale/pkg/config"
	"github.com/mhartvig/typescale/pkg/errors"
	"github.com/mhartvig/typescale/pkg/theme"
)

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	configPath  string // constants file
	density     string // show a single density instead of all three
	interactive bool   // browse densities in a TUI
}

// previewCommand creates the preview command for inspecting the converted
// scale in the terminal.
func (c *CLI) previewCommand() *cobra.Command {
	var opts previewOpts

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the converted typographic scale as a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(&opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "constants file (default: typescale.toml if present)")
	cmd.Flags().StringVarP(&opts.density, "density", "d", "", "show a single density: small, DEFAULT, large")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse densities interactively")

	return cmd
}

func (c *CLI) runPreview(opts *previewOpts) error {
	scale, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	th, err := theme.Build(scale)
	if err != nil {
		return err
	}

	if opts.interactive {
		m := newPreviewModel(th, scale)
		if _, err := tea.NewProgram(m).Run(); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "interactive preview")
		}
		return nil
	}

	if opts.density != "" {
		p, ok := th.Preset(theme.PresetName(opts.density))
		if !ok {
			return errors.New(errors.ErrCodeInvalidFormat, "unknown density %q (valid: small, DEFAULT, large)", opts.density)
		}
		fmt.Println(renderDensityTable(opts.density, p, presetPixels(scale, theme.PresetName(opts.density))))
		return nil
	}

	fmt.Println(renderScaleTable(th, scale))
	fmt.Println(renderDecor(th.Decor))
	return nil
}

// scaleRows lists the typographic dimensions in display order, mirroring
// the field order of theme.PresetScale.
var scaleRows = []struct {
	label string
	get   func(theme.Preset) string
	px    func(theme.PresetScale) float64
}{
	{"font-size", func(p theme.Preset) string { return p.FontSize }, func(s theme.PresetScale) float64 { return s.FontSize }},
	{"line-height", func(p theme.Preset) string { return p.LineHeight }, func(s theme.PresetScale) float64 { return s.LineHeight }},
	{"h1", func(p theme.Preset) string { return p.H1 }, func(s theme.PresetScale) float64 { return s.H1 }},
	{"h2", func(p theme.Preset) string { return p.H2 }, func(s theme.PresetScale) float64 { return s.H2 }},
	{"h3", func(p theme.Preset) string { return p.H3 }, func(s theme.PresetScale) float64 { return s.H3 }},
	{"h4", func(p theme.Preset) string { return p.H4 }, func(s theme.PresetScale) float64 { return s.H4 }},
	{"code", func(p theme.Preset) string { return p.Code }, func(s theme.PresetScale) float64 { return s.Code }},
	{"pre", func(p theme.Preset) string { return p.Pre }, func(s theme.PresetScale) float64 { return s.Pre }},
}

// presetPixels returns the pixel table for a density name.
func presetPixels(s theme.Scale, name theme.PresetName) theme.PresetScale {
	switch name {
	case theme.PresetSmall:
		return s.Small
	case theme.PresetLarge:
		return s.Large
	default:
		return s.Default
	}
}

// renderScaleTable renders all three densities side by side.
func renderScaleTable(th *theme.Theme, scale theme.Scale) string {
	rows := make([][]string, 0, len(scaleRows))
	for _, r := range scaleRows {
		rows = append(rows, []string{
			r.label,
			fmt.Sprintf("%s (%gpx)", r.get(th.Small), r.px(scale.Small)),
			fmt.Sprintf("%s (%gpx)", r.get(th.Default), r.px(scale.Default)),
			fmt.Sprintf("%s (%gpx)", r.get(th.Large), r.px(scale.Large)),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "small", "DEFAULT", "large").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 0 {
				return StyleDim
			}
			return StyleNumber
		})

	var b strings.Builder
	b.WriteString(StyleTitle.Render(fmt.Sprintf("Typographic scale (root %gpx)", th.Root())))
	b.WriteString("\n")
	b.WriteString(t.Render())
	return b.String()
}

// renderDensityTable renders a single density as a two-column table.
func renderDensityTable(name string, p theme.Preset, px theme.PresetScale) string {
	rows := make([][]string, 0, len(scaleRows))
	for _, r := range scaleRows {
		rows = append(rows, []string{r.label, r.get(p), fmt.Sprintf("%gpx", r.px(px))})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(name, "rem", "px").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 0 {
				return StyleDim
			}
			return StyleNumber
		})

	return t.Render()
}

// renderDecor renders the pass-through decor block.
func renderDecor(d theme.Decor) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Decor (pass-through)"))
	b.WriteString("\n")
	for _, kv := range []struct{ key, value string }{
		{"link color", d.LinkColor},
		{"link hover", d.LinkHoverDecoration},
		{"code background", d.CodeBackground},
		{"code foreground", d.CodeForeground},
		{"paragraph margin", d.ParagraphMargin},
	} {
		b.WriteString("  ")
		b.WriteString(styleSwatch.Render(fmt.Sprintf("%-17s", kv.key)))
		b.WriteString(StyleValue.Render(kv.value))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
