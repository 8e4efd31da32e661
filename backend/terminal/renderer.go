package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-theft-auto/tooltip"
)

// StyledRenderer renders tooltip rows with lipgloss: a colored swatch per
// series, the active row in bold, a dim truncation note and total line.
type StyledRenderer struct {
	Swatch string // per-row marker glyph, "●" when empty

	labelStyle  lipgloss.Style
	activeStyle lipgloss.Style
	dimStyle    lipgloss.Style
	headerStyle lipgloss.Style
}

// NewStyledRenderer creates a renderer with the default styles.
func NewStyledRenderer() *StyledRenderer {
	return &StyledRenderer{
		Swatch:      "●",
		labelStyle:  lipgloss.NewStyle(),
		activeStyle: lipgloss.NewStyle().Bold(true),
		dimStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		headerStyle: lipgloss.NewStyle().Bold(true),
	}
}

// Render implements tooltip.RowRenderer.
func (r *StyledRenderer) Render(rows []tooltip.Row, rc tooltip.RenderContext) string {
	limit := len(rows)
	if !rc.RenderAll && rc.MaxRows > 0 && limit > rc.MaxRows {
		limit = rc.MaxRows
	}

	var lines []string
	if rc.XLabel != "" {
		lines = append(lines, r.headerStyle.Render(rc.XLabel))
	}
	for _, row := range rows[:limit] {
		lines = append(lines, r.renderRow(row, rc))
	}
	if hidden := len(rows) - limit; hidden > 0 {
		lines = append(lines, r.dimStyle.Render(fmt.Sprintf("+%d more", hidden)))
	}
	if rc.ShowSum {
		lines = append(lines, r.dimStyle.Render(fmt.Sprintf("total %.2f", rc.Sum)))
	}
	return strings.Join(lines, "\n")
}

func (r *StyledRenderer) renderRow(row tooltip.Row, rc tooltip.RenderContext) string {
	swatch := r.Swatch
	if row.Color != "" {
		swatch = lipgloss.NewStyle().Foreground(lipgloss.Color(row.Color)).Render(swatch)
	}

	label := row.Name + " " + row.Display
	if row.HasNorm {
		label += fmt.Sprintf(" (%.0f%%)", row.Norm*100)
	}

	style := r.labelStyle
	if row.Active && rc.Highlight {
		style = r.activeStyle
	}
	return swatch + " " + style.Render(label)
}
