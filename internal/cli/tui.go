package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mhartvig/typescale/pkg/theme"
)

// =============================================================================
// previewModel - Interactive density browser
// =============================================================================

// previewModel is the bubbletea model for browsing the three densities.
// Left/right cycles through small, DEFAULT, and large; "a" shows all three
// side by side.
type previewModel struct {
	theme   *theme.Theme
	scale   theme.Scale
	cursor  int  // index into theme.PresetNames
	showAll bool // render the combined table instead of a single density
}

// newPreviewModel creates a preview model starting on the DEFAULT density.
func newPreviewModel(th *theme.Theme, scale theme.Scale) previewModel {
	cursor := 0
	for i, name := range theme.PresetNames {
		if name == theme.PresetDefault {
			cursor = i
		}
	}
	return previewModel{theme: th, scale: scale, cursor: cursor}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.showAll = false
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l", "tab":
			m.showAll = false
			if m.cursor < len(theme.PresetNames)-1 {
				m.cursor++
			}
		case "a":
			m.showAll = !m.showAll
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("typescale preview"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ switch density  a toggle all  q quit"))
	b.WriteString("\n\n")

	if m.showAll {
		b.WriteString(renderScaleTable(m.theme, m.scale))
		b.WriteString("\n")
	} else {
		name := theme.PresetNames[m.cursor]
		preset, _ := m.theme.Preset(name)
		b.WriteString(renderDensityTab(m.cursor))
		b.WriteString("\n")
		b.WriteString(renderDensityTable(string(name), preset, presetPixels(m.scale, name)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderDecor(m.theme.Decor))
	b.WriteString("\n")
	return b.String()
}

// renderDensityTab renders the density selector line with the active
// density highlighted.
func renderDensityTab(cursor int) string {
	parts := make([]string, len(theme.PresetNames))
	for i, name := range theme.PresetNames {
		label := string(name)
		if i == cursor {
			parts[i] = StyleNumber.Render("[" + label + "]")
		} else {
			parts[i] = StyleDim.Render(" " + label + " ")
		}
	}
	return strings.Join(parts, " ")
}
