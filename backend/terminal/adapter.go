package terminal

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-theft-auto/tooltip"
)

// MouseAdapter adapts Bubble Tea mouse events to overlay pointer calls:
// enter/leave edges on motion, click candidates on left press/release,
// and document-level click emission for the pin handler.
type MouseAdapter struct {
	overlay  *tooltip.Overlay
	clicks   *Clicks
	layer    func() tooltip.Rect
	classify func(x, y int) tooltip.Click
	inside   bool
}

// NewMouseAdapter creates a mouse adapter. layer returns the chart's
// interaction rectangle in screen cells; classify maps a screen cell to a
// click region (clicks and classify may be nil when pinning is unused).
func NewMouseAdapter(overlay *tooltip.Overlay, clicks *Clicks, layer func() tooltip.Rect, classify func(x, y int) tooltip.Click) *MouseAdapter {
	return &MouseAdapter{
		overlay:  overlay,
		clicks:   clicks,
		layer:    layer,
		classify: classify,
	}
}

// Handle processes one mouse event. The host remains responsible for
// updating the chart's cursor and calling SetCursor on motion.
func (a *MouseAdapter) Handle(msg tea.MouseMsg) {
	rect := a.layer()
	screen := tooltip.Vec2{X: float64(msg.X), Y: float64(msg.Y)}
	in := rect.Contains(screen)
	pos := screen.Sub(tooltip.Vec2{X: rect.X, Y: rect.Y})

	switch msg.Action {
	case tea.MouseActionMotion:
		if in && !a.inside {
			a.overlay.PointerEnter()
		} else if !in && a.inside {
			a.overlay.PointerLeave()
		}
		a.inside = in

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if a.clicks != nil && a.classify != nil {
			a.clicks.Emit(a.classify(msg.X, msg.Y))
		}
		if in {
			a.overlay.PointerDown(pos)
		}

	case tea.MouseActionRelease:
		// Some terminals report release with the button cleared.
		if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonNone {
			return
		}
		if in {
			a.overlay.PointerUp(pos)
		}
	}
}

// Inside reports whether the pointer was inside the interaction layer at
// the last motion event.
func (a *MouseAdapter) Inside() bool {
	return a.inside
}
