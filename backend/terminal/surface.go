// Package terminal provides a Bubble Tea backend for the tooltip package:
// a bordered text-cell surface, a styled row renderer, a mouse adapter and
// a click source for pin handling.
package terminal

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/go-theft-auto/tooltip"
)

// Surface renders the tooltip as a bordered box of terminal cells. The
// host view composites it over the chart with Compose.
type Surface struct {
	style   lipgloss.Style
	content string
	pos     tooltip.Vec2
	visible bool
	held    []tooltip.Marker
	removed bool
}

// NewSurface creates a surface with a rounded border and a subtle
// background suitable for dark terminals.
func NewSurface() *Surface {
	return &Surface{
		style: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
	}
}

// WithStyle replaces the box style.
func (s *Surface) WithStyle(style lipgloss.Style) *Surface {
	s.style = style
	return s
}

// SetContent implements tooltip.Surface.
func (s *Surface) SetContent(content string) {
	s.content = content
}

// Size implements tooltip.Surface: the rendered box footprint in cells,
// border and padding included.
func (s *Surface) Size() tooltip.Vec2 {
	view := s.style.Render(s.content)
	return tooltip.Vec2{
		X: float64(lipgloss.Width(view)),
		Y: float64(lipgloss.Height(view)),
	}
}

// MoveTo implements tooltip.Surface.
func (s *Surface) MoveTo(pos tooltip.Vec2) {
	s.pos = pos
}

// Show implements tooltip.Surface.
func (s *Surface) Show() { s.visible = true }

// Hide implements tooltip.Surface.
func (s *Surface) Hide() { s.visible = false }

// HoldMarkers implements tooltip.Surface. The held snapshot is exposed
// through Held for the host view to draw.
func (s *Surface) HoldMarkers(ms []tooltip.Marker) {
	s.held = ms
}

// ReleaseMarkers implements tooltip.Surface.
func (s *Surface) ReleaseMarkers() {
	s.held = nil
}

// Remove implements tooltip.Surface.
func (s *Surface) Remove() {
	s.visible = false
	s.content = ""
	s.held = nil
	s.removed = true
}

// Pos returns the surface's last placement.
func (s *Surface) Pos() tooltip.Vec2 {
	return s.pos
}

// Held returns the marker snapshot held while pinned, nil otherwise.
func (s *Surface) Held() []tooltip.Marker {
	return s.held
}

// Visible reports whether the surface should be drawn.
func (s *Surface) Visible() bool {
	return s.visible && !s.removed
}

// View returns the rendered box, empty when hidden.
func (s *Surface) View() string {
	if !s.Visible() {
		return ""
	}
	return s.style.Render(s.content)
}

// Compose overlays the rendered box onto the base view at the surface's
// current position. Hidden surfaces return the base unchanged.
func (s *Surface) Compose(base string) string {
	if !s.Visible() {
		return base
	}
	return overlayAt(base, s.style.Render(s.content), int(s.pos.X), int(s.pos.Y))
}
