package sink

import (
	"encoding/json"

	"github.com/mhartvig/typescale/pkg/errors"
	"github.com/mhartvig/typescale/pkg/theme"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	indent      string
	includeRoot bool
}

// WithJSONIndent sets the indentation string for the output. The default is
// two spaces; an empty string produces compact output.
func WithJSONIndent(indent string) JSONOption {
	return func(r *jsonRenderer) { r.indent = indent }
}

// WithJSONCompact disables indentation entirely.
func WithJSONCompact() JSONOption {
	return func(r *jsonRenderer) { r.indent = "" }
}

// WithJSONRoot records the root font size in the output, enabling
// reproducible rebuilds from the artifact alone.
func WithJSONRoot() JSONOption {
	return func(r *jsonRenderer) { r.includeRoot = true }
}

// jsonOutput fixes the top-level key order: DEFAULT first, then the
// overrides in ascending density.
type jsonOutput struct {
	Root    float64    `json:"root,omitempty"`
	Default jsonPreset `json:"DEFAULT"`
	Small   jsonPreset `json:"small"`
	Large   jsonPreset `json:"large"`
}

type jsonPreset struct {
	CSS theme.RuleSet `json:"css"`
}

// RenderJSON encodes the theme as the nested preset mapping the styling
// pipeline consumes. Each preset holds a css-shaped selector -> property ->
// value object; values are rem strings or pass-through literals.
func RenderJSON(t *theme.Theme, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{indent: "  "}
	for _, opt := range opts {
		opt(&r)
	}

	css := t.CSS()
	out := jsonOutput{
		Default: jsonPreset{CSS: css[theme.PresetDefault]},
		Small:   jsonPreset{CSS: css[theme.PresetSmall]},
		Large:   jsonPreset{CSS: css[theme.PresetLarge]},
	}
	if r.includeRoot {
		out.Root = t.Root()
	}

	var (
		data []byte
		err  error
	)
	if r.indent == "" {
		data, err = json.Marshal(out)
	} else {
		data, err = json.MarshalIndent(out, "", r.indent)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode theme")
	}
	return append(data, '\n'), nil
}
