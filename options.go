package tooltip

import "strconv"

// Config holds the overlay configuration. Every field has a documented
// default; the record is resolved once by New and never changes after.
type Config struct {
	// Tracking selects the active-row policy. Default TrackSticky.
	Tracking TrackingPolicy

	// Snap selects the gap resolution policy. Default SnapClosest.
	Snap SnapPolicy

	// MaxRows limits displayed rows before truncation. Default 10.
	MaxRows int

	// HighlightActive emphasizes the active row. Default true.
	HighlightActive bool

	// ShowTotal accumulates and displays the numeric sum. Default true.
	ShowTotal bool

	// RenderAll ignores MaxRows and renders every row. Default false.
	RenderAll bool

	// Renderer produces the overlay content. Default DefaultRenderer.
	Renderer RowRenderer

	// Pinnable allows click-to-pin. Default true.
	Pinnable bool

	// FormatValue formats numeric values at the series' precision.
	// Default: fixed-point notation with precision fraction digits.
	FormatValue func(v float64, precision int) string

	// Less is an optional row sort comparator applied to the final row
	// sequence. Default nil: rows keep series declaration order.
	Less func(a, b Row) bool

	// ShowIndex adds a header line with the x value under the cursor.
	// Default false.
	ShowIndex bool

	// HideNoData skips rows whose resolved value is still the gap
	// marker. Default false.
	HideNoData bool

	// StripValue is the gap marker sentinel. Default Gap.
	StripValue Value

	// Bounds supplies the placement bounds. Default nil: the chart's
	// plot bounds are used.
	Bounds func() Rect

	// Placer positions the overlay near its anchor. Default ClampPlacer.
	Placer Placer

	// Clicks is the document-level click capability used while pinned.
	// Default nil: no outside-click or row-focus handling.
	Clicks ClickSource

	// OnState receives state-change notifications. Default nil.
	OnState func(Notification)

	// AnchorGap is the fixed offset between the cursor and the overlay.
	// Default 12.
	AnchorGap float64
}

// Option configures the overlay at construction time.
type Option func(*Config)

// defaultConfig returns the Config documented defaults.
func defaultConfig() Config {
	return Config{
		Tracking:        TrackSticky,
		Snap:            SnapClosest,
		MaxRows:         10,
		HighlightActive: true,
		ShowTotal:       true,
		Renderer:        DefaultRenderer{},
		Pinnable:        true,
		FormatValue: func(v float64, precision int) string {
			return strconv.FormatFloat(v, 'f', precision, 64)
		},
		StripValue: Gap,
		Placer:     ClampPlacer{},
		AnchorGap:  12,
	}
}

// WithTracking sets the active-row tracking policy.
func WithTracking(p TrackingPolicy) Option {
	return func(c *Config) { c.Tracking = p }
}

// WithSnap sets the gap resolution policy.
func WithSnap(p SnapPolicy) Option {
	return func(c *Config) { c.Snap = p }
}

// WithMaxRows limits the number of displayed rows.
func WithMaxRows(n int) Option {
	return func(c *Config) { c.MaxRows = n }
}

// WithHighlight toggles emphasis of the active row.
func WithHighlight(on bool) Option {
	return func(c *Config) { c.HighlightActive = on }
}

// WithTotal toggles the numeric sum line.
func WithTotal(on bool) Option {
	return func(c *Config) { c.ShowTotal = on }
}

// RenderAll renders every row, ignoring the MaxRows limit.
func RenderAll() Option {
	return func(c *Config) { c.RenderAll = true }
}

// WithRenderer sets the row rendering strategy.
func WithRenderer(r RowRenderer) Option {
	return func(c *Config) { c.Renderer = r }
}

// WithPinnable toggles click-to-pin.
func WithPinnable(on bool) Option {
	return func(c *Config) { c.Pinnable = on }
}

// WithFormatter sets the numeric value formatter.
func WithFormatter(f func(v float64, precision int) string) Option {
	return func(c *Config) { c.FormatValue = f }
}

// WithSort sets the row sort comparator.
func WithSort(less func(a, b Row) bool) Option {
	return func(c *Config) { c.Less = less }
}

// ShowIndex adds a header line with the x value under the cursor.
func ShowIndex() Option {
	return func(c *Config) { c.ShowIndex = true }
}

// HideNoData skips rows that resolve to the gap marker.
func HideNoData() Option {
	return func(c *Config) { c.HideNoData = true }
}

// WithStripValue sets the gap marker sentinel, for charts that use a
// dedicated filler value (0, NaN, ...) instead of true gaps.
func WithStripValue(v Value) Option {
	return func(c *Config) { c.StripValue = v }
}

// WithBounds sets the placement bounds provider.
func WithBounds(fn func() Rect) Option {
	return func(c *Config) { c.Bounds = fn }
}

// WithPlacer sets the overlay placement strategy.
func WithPlacer(p Placer) Option {
	return func(c *Config) { c.Placer = p }
}

// WithClickSource sets the document-level click capability used while
// pinned.
func WithClickSource(s ClickSource) Option {
	return func(c *Config) { c.Clicks = s }
}

// WithNotify sets the state-change notification callback.
func WithNotify(fn func(Notification)) Option {
	return func(c *Config) { c.OnState = fn }
}

// WithAnchorGap sets the fixed cursor-to-overlay offset.
func WithAnchorGap(gap float64) Option {
	return func(c *Config) { c.AnchorGap = gap }
}
