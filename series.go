package tooltip

// Series describes one visualization track of the host chart.
// The chart owns its series; the overlay only reads them.
type Series struct {
	// ID uniquely identifies the series within its chart.
	ID string

	// Name is the display label shown in tooltip rows.
	Name string

	// Color is the series color, in whatever form the renderer and
	// surface understand (hex string, ANSI color, ...).
	Color string

	// Visible mirrors the chart's visibility toggle. Invisible series
	// never produce rows.
	Visible bool

	// InTooltip marks the series as eligible for tooltip display.
	// Ineligible series still participate in active-row tracking.
	InTooltip bool

	// Precision is the number of fraction digits the default formatter
	// uses for numeric values.
	Precision int

	// Format overrides the configured value formatter for this series.
	Format func(v Value) string

	// Norm holds optional pre-normalized shares (0..1), aligned to the
	// x axis. Rows carry the share when present.
	Norm []float64

	// Display is an optional distinct display source, used when the
	// plotted array contains engine-interpolated fillers that should
	// not be shown as genuine values. When set, values are resolved
	// from this array instead of the plotted one.
	Display []Value
}

// Cursor is the chart's pointer-derived position: pixel coordinates
// relative to the interaction layer plus the resolved data index.
type Cursor struct {
	Pos Vec2
	Idx int // data index into the shared x axis, -1 when undefined
}

// Marker is a visual capture of one series' cursor marker. While the
// overlay is pinned, the markers present at pin time are cloned into a
// dedicated holder layer on the surface so they survive cursor movement.
type Marker struct {
	SeriesID string
	Pos      Vec2
	Color    string
}

// Chart is the overlay's read-only view of the host charting engine.
// FocusSeries is the single write the overlay ever performs.
type Chart interface {
	// Series returns the series list. Index 0 is the shared x axis and
	// is never rendered as a row.
	Series() []Series

	// Data returns one sample slice per series, aligned to the x axis.
	Data() [][]Value

	// Bounds returns the plot area (the interaction layer) in pixels.
	Bounds() Rect

	// Cursor returns the current pointer position and data index.
	Cursor() Cursor

	// ValueAtY maps a y pixel coordinate (relative to the interaction
	// layer) to a value on the primary y scale. Used for active-row
	// tracking.
	ValueAtY(y float64) float64

	// Markers returns the current per-series cursor markers.
	Markers() []Marker

	// Onscreen reports whether the chart is in the visible viewport.
	// Cursor updates are ignored while offscreen.
	Onscreen() bool

	// FocusSeries asks the chart to visually focus one series.
	FocusSeries(id string)
}
