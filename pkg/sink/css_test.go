package sink

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderCSS(t *testing.T) {
	th := buildTheme(t)

	data, err := RenderCSS(th)
	if err != nil {
		t.Fatalf("RenderCSS() error: %v", err)
	}
	out := string(data)

	for _, want := range []string{
		"html {\n  font-size: 1rem;\n  line-height: 1.5rem;\n}",
		"h2 {\n  font-size: 1.75rem;\n}",
		`[data-density="small"] h1 {`,
		`[data-density="large"] h2 {
  font-size: 1.875rem;
}`,
		`html[data-density="small"] {`,
		"a:hover {\n  text-decoration: underline;\n}",
		"p {\n  margin: revert;\n}",
		"background: #f6f8fa;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stylesheet missing %q\nGot:\n%s", want, out)
		}
	}

	// Decor rules appear once, never inside the density overrides.
	if got := strings.Count(out, "a:hover"); got != 1 {
		t.Errorf("a:hover appears %d times, want 1", got)
	}
}

func TestRenderCSSScopeAttr(t *testing.T) {
	th := buildTheme(t)

	data, err := RenderCSS(th, WithScopeAttr("data-size"))
	if err != nil {
		t.Fatalf("RenderCSS() error: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, `[data-size="large"]`) {
		t.Errorf("stylesheet missing custom scope attribute\nGot:\n%s", out)
	}
	if strings.Contains(out, "data-density") {
		t.Error("stylesheet still references the default scope attribute")
	}
}

func TestRenderCSSHeader(t *testing.T) {
	th := buildTheme(t)

	withHeader, err := RenderCSS(th)
	if err != nil {
		t.Fatalf("RenderCSS() error: %v", err)
	}
	if !bytes.HasPrefix(withHeader, []byte("/*")) {
		t.Error("default output missing header comment")
	}

	bare, err := RenderCSS(th, WithoutHeader())
	if err != nil {
		t.Fatalf("RenderCSS() error: %v", err)
	}
	if bytes.HasPrefix(bare, []byte("/*")) {
		t.Error("WithoutHeader output still has header comment")
	}
}

func TestRenderCSSDeterministic(t *testing.T) {
	th := buildTheme(t)

	a, err := RenderCSS(th)
	if err != nil {
		t.Fatalf("RenderCSS() error: %v", err)
	}
	b, err := RenderCSS(th)
	if err != nil {
		t.Fatalf("RenderCSS() error: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("two renders of the same theme differ")
	}
}
