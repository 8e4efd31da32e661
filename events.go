package tooltip

// Region classifies where a document-level click landed, relative to the
// overlay and the chart's interaction layer.
type Region uint8

const (
	RegionOutside    Region = iota // neither overlay nor chart
	RegionChart                    // inside the chart's interaction layer
	RegionOverlay                  // inside the overlay, outside any row
	RegionOverlayRow               // on a specific tooltip row
)

// Click is a document-level pointer event delivered by a ClickSource.
type Click struct {
	Pos    Vec2
	Region Region
	Row    int // row index when Region == RegionOverlayRow
}

// ClickSource is a capability object representing the host's document
// level input: clicks anywhere on the page/screen, not just over the
// chart. The overlay subscribes while pinned (to map row clicks to series
// focus and to release the pin on outside clicks) and unsubscribes when
// the pin is released, so the subscription lifetime is exactly the pinned
// state's lifetime.
type ClickSource interface {
	Subscribe(fn func(Click)) Subscription
}

// Subscription is a handle to an active ClickSource subscription.
type Subscription interface {
	Unsubscribe()
}
