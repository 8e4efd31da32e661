package tooltip

// Placer positions the overlay near an anchor point while respecting the
// bounding rectangle. Implementations must be pure: same inputs, same
// position.
type Placer interface {
	Place(size, anchor Vec2, bounds Rect) Vec2
}

// ClampPlacer places the overlay at the anchor and clamps it into the
// bounds so no edge clips.
type ClampPlacer struct{}

// Place implements Placer.
func (ClampPlacer) Place(size, anchor Vec2, bounds Rect) Vec2 {
	return Vec2{
		X: clampf(anchor.X, bounds.X, bounds.X+bounds.W-size.X),
		Y: clampf(anchor.Y, bounds.Y, bounds.Y+bounds.H-size.Y),
	}
}
