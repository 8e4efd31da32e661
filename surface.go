package tooltip

// Surface is the persistent overlay element the tooltip renders into.
// It is created once when the chart instance initializes the overlay and
// removed exactly once at teardown; its identity is stable for the
// overlay's lifetime.
//
// Implementations perform the actual drawing; the overlay only tells the
// surface what to show and where. The backend/terminal package provides a
// Bubble Tea implementation.
type Surface interface {
	// SetContent replaces the rendered row content.
	SetContent(content string)

	// Size returns the current content size in pixels. Valid after
	// SetContent; used for placement.
	Size() Vec2

	// MoveTo positions the surface's top-left corner.
	MoveTo(p Vec2)

	// Show and Hide toggle the surface's visibility. Both must be safe
	// to call redundantly.
	Show()
	Hide()

	// HoldMarkers clones the given markers into a dedicated holder
	// layer that survives cursor movement while pinned.
	HoldMarkers(ms []Marker)

	// ReleaseMarkers removes the holder layer.
	ReleaseMarkers()

	// Remove tears the surface down. No other method is called after.
	Remove()
}
