package tooltip

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidData reports a chart data shape the overlay cannot operate
// on. It is fatal: the overlay ignores cursor updates until a subsequent
// SetData succeeds.
var ErrInvalidData = errors.New("tooltip: invalid chart data")

// Overlay is the data-cursor tooltip for one chart instance. All methods
// must be called from the host's event loop; the overlay is not safe for
// concurrent use and never needs to be.
type Overlay struct {
	chart   Chart
	surface Surface
	cfg     Config

	mounted   bool
	visible   bool
	pinned    bool
	destroyed bool
	dataOK    bool
	clickX    float64 // pointer-down x coordinate, NaN when no click candidate

	plotRect Rect // cached chart bounds, recomputed by SetSize
	offset   Vec2 // interaction layer's bounding offset

	pending  pendingRender
	lastRows []Row // rows as last rendered, for row click -> series focus

	clickSub Subscription
}

// New creates the overlay for a chart. The configuration is resolved
// once from the documented defaults plus the given options; an init
// notification fires before New returns.
func New(chart Chart, surface Surface, opts ...Option) *Overlay {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	o := &Overlay{
		chart:   chart,
		surface: surface,
		cfg:     cfg,
		dataOK:  true,
		clickX:  math.NaN(),
	}
	o.notify(ActionInit)
	return o
}

// Init mounts the overlay onto the chart. One-way: invoked once by the
// engine after the chart is ready.
func (o *Overlay) Init() {
	if o.mounted || o.destroyed {
		return
	}
	o.mounted = true
	o.SetSize()
	o.notify(ActionMount)
}

// SetData revalidates the chart's data after it changes. A shape that is
// not a list of per-series sample slices (empty, or with a nil slice) is
// a fatal error: no recovery, no partial operation, and cursor updates
// are refused until a valid SetData.
func (o *Overlay) SetData() error {
	o.dataOK = false
	data := o.chart.Data()
	if len(data) == 0 {
		return fmt.Errorf("%w: no series arrays", ErrInvalidData)
	}
	for i, vals := range data {
		if vals == nil {
			return fmt.Errorf("%w: series %d is not an array", ErrInvalidData, i)
		}
	}
	o.dataOK = true
	return nil
}

// SetSize recomputes the cached plot bounds and the interaction layer's
// bounding offset. Invoked by the engine after a resize.
func (o *Overlay) SetSize() {
	if o.destroyed {
		return
	}
	o.plotRect = o.chart.Bounds()
	o.offset = Vec2{X: o.plotRect.X, Y: o.plotRect.Y}
}

// boundsRect returns the placement bounds: the configured provider if
// any, otherwise the chart's plot bounds.
func (o *Overlay) boundsRect() Rect {
	if o.cfg.Bounds != nil {
		return o.cfg.Bounds()
	}
	return o.plotRect
}

// SetCursor is the per-move entry point, invoked by the engine on every
// cursor position change.
//
// Missing data, an undefined index or an offscreen chart are not errors:
// the update is a no-op that leaves the prior visual state untouched. A
// cursor outside the plot bounds hides the overlay unless pinned. An
// empty row set hides; otherwise the overlay shows and stages a render,
// flushed immediately unless pinned (pinned renders are suppressed until
// the pin-toggle flush).
func (o *Overlay) SetCursor() {
	if o.destroyed || !o.mounted || !o.dataOK {
		return
	}
	cur := o.chart.Cursor()
	if len(o.chart.Data()) == 0 || cur.Idx < 0 || !o.chart.Onscreen() {
		return
	}

	layer := Rect{W: o.plotRect.W, H: o.plotRect.H}
	if !layer.Contains(cur.Pos) {
		if !o.pinned {
			o.Hide()
		}
		return
	}

	rows, sum, available := o.buildRows(cur.Idx)
	if len(rows) == 0 {
		o.Hide()
		return
	}

	o.Show()
	rc := RenderContext{
		Index:     cur.Idx,
		Sum:       sum,
		ShowSum:   o.cfg.ShowTotal,
		MaxRows:   o.cfg.MaxRows,
		RenderAll: o.cfg.RenderAll,
		Highlight: o.cfg.HighlightActive,
		Available: available,
	}
	if o.cfg.ShowIndex {
		rc.XLabel = o.xLabel(cur.Idx)
	}
	o.stage(rows, rc)
	if !o.pinned {
		o.flush()
	}
}

// xLabel formats the x-axis value at the given index.
func (o *Overlay) xLabel(idx int) string {
	data := o.chart.Data()
	if len(data) == 0 || idx < 0 || idx >= len(data[0]) {
		return ""
	}
	var x Series
	if series := o.chart.Series(); len(series) > 0 {
		x = series[0]
	}
	return o.formatValue(x, data[0][idx])
}

// Show makes the overlay visible. Idempotent: a repeated call while
// already visible changes nothing and does not re-emit.
func (o *Overlay) Show() {
	if o.destroyed || !o.mounted || o.visible {
		return
	}
	o.visible = true
	o.surface.Show()
	o.notify(ActionShow)
}

// Hide conceals the overlay. The visual hide side effect is applied on
// every call; the notification fires only on the visible-to-hidden edge,
// mirroring Show's gating.
func (o *Overlay) Hide() {
	if o.destroyed || !o.mounted {
		return
	}
	shouldEmit := o.visible
	o.visible = false
	o.surface.Hide()
	if shouldEmit {
		o.notify(ActionHide)
	}
}

// State returns a snapshot of the interaction state.
func (o *Overlay) State() State {
	return State{Pinned: o.pinned, Visible: o.visible, Mounted: o.mounted}
}

// Pinned returns true while the overlay is pinned.
func (o *Overlay) Pinned() bool {
	return o.pinned
}

// Visible returns true while the overlay is visible.
func (o *Overlay) Visible() bool {
	return o.visible
}

// Destroy tears the overlay down: all subscriptions detach, the surface
// is removed, and a final destroy notification fires. Terminal; every
// later call on the overlay is a no-op.
func (o *Overlay) Destroy() {
	if o.destroyed {
		return
	}
	if o.clickSub != nil {
		o.clickSub.Unsubscribe()
		o.clickSub = nil
	}
	o.pinned = false
	o.visible = false
	o.surface.Remove()
	o.destroyed = true
	o.notify(ActionDestroy)
}
