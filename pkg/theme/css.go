package theme

// RuleSet is a css-shaped mapping of selector -> property -> value, the
// shape the consuming styling pipeline expects under each preset name.
type RuleSet map[string]map[string]string

// CSS produces the theme's full output contract: a mapping from preset name
// to its rule set. Values are rem strings or pass-through literals.
//
// Every preset defines the same typographic selectors and properties; only
// the magnitudes differ. DEFAULT additionally carries the non-typographic
// rules (link color, hover decoration, code colors, paragraph margin),
// which the consumer composes under the small/large overrides.
func (t *Theme) CSS() map[PresetName]RuleSet {
	out := map[PresetName]RuleSet{
		PresetSmall:   t.Small.rules(),
		PresetDefault: t.Default.rules(),
		PresetLarge:   t.Large.rules(),
	}

	def := out[PresetDefault]
	def["a"] = map[string]string{"color": t.Decor.LinkColor}
	def["a:hover"] = map[string]string{"text-decoration": t.Decor.LinkHoverDecoration}
	def["p"] = map[string]string{"margin": t.Decor.ParagraphMargin}
	def["code"]["background"] = t.Decor.CodeBackground
	def["code"]["color"] = t.Decor.CodeForeground

	return out
}

// rules maps one preset's converted values onto selectors.
func (p Preset) rules() RuleSet {
	return RuleSet{
		"html": {
			"font-size":   p.FontSize,
			"line-height": p.LineHeight,
		},
		"h1":   {"font-size": p.H1},
		"h2":   {"font-size": p.H2},
		"h3":   {"font-size": p.H3},
		"h4":   {"font-size": p.H4},
		"code": {"font-size": p.Code},
		"pre":  {"font-size": p.Pre},
	}
}

// Selectors lists the typographic selectors every preset defines, in
// stylesheet output order. Decor-only selectors ("a", "a:hover", "p") are
// not included; they appear only under DEFAULT.
func Selectors() []string {
	return []string{"html", "h1", "h2", "h3", "h4", "code", "pre"}
}

// DecorSelectors lists the DEFAULT-only selectors in stylesheet output
// order.
func DecorSelectors() []string {
	return []string{"a", "a:hover", "p"}
}
