package sink

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/mhartvig/typescale/pkg/theme"
)

func buildTheme(t *testing.T) *theme.Theme {
	t.Helper()
	th, err := theme.Build(theme.DefaultScale())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return th
}

func TestRenderJSON(t *testing.T) {
	th := buildTheme(t)

	data, err := RenderJSON(th)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out map[string]struct {
		CSS map[string]map[string]string `json:"css"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("output does not parse as JSON: %v", err)
	}

	for _, name := range []string{"DEFAULT", "small", "large"} {
		if _, ok := out[name]; !ok {
			t.Errorf("output missing preset %q", name)
		}
	}

	if got := out["DEFAULT"].CSS["html"]["font-size"]; got != "1rem" {
		t.Errorf("DEFAULT html font-size = %q, want %q", got, "1rem")
	}
	if got := out["DEFAULT"].CSS["html"]["line-height"]; got != "1.5rem" {
		t.Errorf("DEFAULT html line-height = %q, want %q", got, "1.5rem")
	}
	if got := out["large"].CSS["h2"]["font-size"]; got != "1.875rem" {
		t.Errorf("large h2 font-size = %q, want %q", got, "1.875rem")
	}
	if got := out["DEFAULT"].CSS["p"]["margin"]; got != "revert" {
		t.Errorf("DEFAULT p margin = %q, want %q", got, "revert")
	}

	// Decor never leaks into the overrides.
	if _, ok := out["small"].CSS["a"]; ok {
		t.Error("small preset carries decor selector \"a\"")
	}
}

func TestRenderJSONOptions(t *testing.T) {
	th := buildTheme(t)

	compact, err := RenderJSON(th, WithJSONCompact())
	if err != nil {
		t.Fatalf("RenderJSON(compact) error: %v", err)
	}
	if bytes.ContainsRune(bytes.TrimRight(compact, "\n"), '\n') {
		t.Error("compact output contains interior newlines")
	}

	withRoot, err := RenderJSON(th, WithJSONRoot())
	if err != nil {
		t.Fatalf("RenderJSON(root) error: %v", err)
	}
	var out struct {
		Root float64 `json:"root"`
	}
	if err := json.Unmarshal(withRoot, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Root != 16 {
		t.Errorf("root = %v, want 16", out.Root)
	}
}

func TestRenderJSONDeterministic(t *testing.T) {
	th := buildTheme(t)

	a, err := RenderJSON(th)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	b, err := RenderJSON(th)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("two renders of the same theme differ")
	}
}
