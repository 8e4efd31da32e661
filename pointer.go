package tooltip

import "math"

// PointerDown records a click candidate: the horizontal coordinate the
// press started at.
func (o *Overlay) PointerDown(pos Vec2) {
	if o.destroyed || !o.mounted {
		return
	}
	o.clickX = pos.X
}

// PointerUp completes a click candidate. The pin toggles only when
// pinning is enabled and the pointer did not move horizontally between
// down and up: a true click, not a drag.
func (o *Overlay) PointerUp(pos Vec2) {
	if o.destroyed || !o.mounted {
		return
	}
	start := o.clickX
	o.clickX = math.NaN()
	if !o.cfg.Pinnable || math.IsNaN(start) || pos.X != start {
		return
	}
	o.TogglePin()
}

// PointerEnter is invoked when the pointer enters the chart's
// interaction layer.
func (o *Overlay) PointerEnter() {
	if o.destroyed || !o.mounted {
		return
	}
	o.Show()
}

// PointerLeave is invoked when the pointer leaves the chart's
// interaction layer. Pinned overlays stay put.
func (o *Overlay) PointerLeave() {
	if o.destroyed || !o.mounted || o.pinned {
		return
	}
	o.Hide()
}

// TogglePin pins or unpins the overlay. Also exposed to notification
// consumers through Controls.Pin.
func (o *Overlay) TogglePin() {
	if o.destroyed || !o.mounted || !o.cfg.Pinnable {
		return
	}
	if o.pinned {
		o.unpin()
	} else {
		o.pin()
	}
}

// pin freezes the overlay: show, force an immediate render flush
// (bypassing the suppression used while pinned), snapshot the current
// markers into the surface's holder layer, and subscribe to document
// clicks for row focus and outside-click release.
func (o *Overlay) pin() {
	o.pinned = true
	o.Show()
	o.flush()
	o.surface.HoldMarkers(o.chart.Markers())
	if o.cfg.Clicks != nil {
		o.clickSub = o.cfg.Clicks.Subscribe(o.onDocClick)
	}
	o.notify(ActionPin)
}

// unpin releases the pin: the holder layer is removed and the document
// click subscription detaches.
func (o *Overlay) unpin() {
	o.pinned = false
	o.surface.ReleaseMarkers()
	if o.clickSub != nil {
		o.clickSub.Unsubscribe()
		o.clickSub = nil
	}
	o.notify(ActionUnpin)
}

// onDocClick handles document-level clicks while pinned: a click on a
// tooltip row focuses the matching series; a click neither inside the
// overlay nor the chart's interaction layer releases the pin and hides.
func (o *Overlay) onDocClick(c Click) {
	if !o.pinned {
		return
	}
	switch c.Region {
	case RegionOverlayRow:
		if c.Row >= 0 && c.Row < len(o.lastRows) {
			o.chart.FocusSeries(o.lastRows[c.Row].SeriesID)
		}
	case RegionOverlay, RegionChart:
		// Inside: the pin holds.
	default:
		o.unpin()
		o.Hide()
	}
}
