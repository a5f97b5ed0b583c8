package sink

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/mhartvig/typescale/pkg/theme"
)

// defaultScopeAttr is the data attribute the consuming site sets on its
// root element to switch density.
const defaultScopeAttr = "data-density"

// CSSOption configures stylesheet rendering via [RenderCSS].
type CSSOption func(*cssRenderer)

type cssRenderer struct {
	scopeAttr string
	header    bool
}

// WithScopeAttr changes the attribute used to scope the small/large
// override blocks, e.g. WithScopeAttr("data-size") yields
// `[data-size="small"] html { ... }`.
func WithScopeAttr(attr string) CSSOption {
	return func(r *cssRenderer) { r.scopeAttr = attr }
}

// WithoutHeader suppresses the generated-file comment at the top of the
// stylesheet.
func WithoutHeader() CSSOption {
	return func(r *cssRenderer) { r.header = false }
}

// RenderCSS renders the theme as a plain stylesheet. DEFAULT rules are
// emitted unscoped; the small and large presets follow as override blocks
// scoped under the density attribute. Selector and property order is fixed,
// so output is byte-stable for a given theme.
func RenderCSS(t *theme.Theme, opts ...CSSOption) ([]byte, error) {
	r := cssRenderer{scopeAttr: defaultScopeAttr, header: true}
	for _, opt := range opts {
		opt(&r)
	}

	css := t.CSS()
	var buf bytes.Buffer

	if r.header {
		buf.WriteString("/* generated by typescale; edit typescale.toml instead */\n\n")
	}

	// DEFAULT: typographic rules first, decor rules after.
	def := css[theme.PresetDefault]
	for _, sel := range theme.Selectors() {
		writeRule(&buf, "", sel, def[sel])
	}
	for _, sel := range theme.DecorSelectors() {
		writeRule(&buf, "", sel, def[sel])
	}

	for _, name := range []theme.PresetName{theme.PresetSmall, theme.PresetLarge} {
		scope := fmt.Sprintf(`[%s=%q]`, r.scopeAttr, string(name))
		for _, sel := range theme.Selectors() {
			writeRule(&buf, scope, sel, css[name][sel])
		}
	}

	return buf.Bytes(), nil
}

// writeRule emits one `selector { prop: value; }` block with properties in
// lexical order. html gets its scope prefix without a descendant space so
// the override targets the root element itself.
func writeRule(buf *bytes.Buffer, scope, sel string, props map[string]string) {
	if len(props) == 0 {
		return
	}

	full := sel
	if scope != "" {
		if sel == "html" {
			full = "html" + scope
		} else {
			full = scope + " " + sel
		}
	}

	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(buf, "%s {\n", full)
	for _, name := range names {
		fmt.Fprintf(buf, "  %s: %s;\n", name, props[name])
	}
	buf.WriteString("}\n\n")
}
