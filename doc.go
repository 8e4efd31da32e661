/*
Package tooltip implements an interactive data-cursor overlay for charts:
given a pointer position over a plotted dataset, it resolves the value of
every series under the cursor, picks the single series to emphasize, and
renders a floating info panel that follows the pointer and can be pinned
in place with a click.

The package draws nothing itself. It reads the host chart through the
read-only Chart interface, renders content through a pluggable RowRenderer,
and pushes the result into a host-provided Surface. Pointer events are fed
in by the host the same way the host feeds input to a widget toolkit.

# Quick Start

	// Setup: the host implements Chart and Surface.
	overlay := tooltip.New(chart, surface,
	    tooltip.WithTracking(tooltip.TrackSticky),
	    tooltip.WithMaxRows(8),
	)
	overlay.Init()

	// Engine hooks, invoked by the host chart:
	overlay.SetData()   // after the chart's data changes
	overlay.SetSize()   // after the chart is resized
	overlay.SetCursor() // on every cursor position change

	// Pointer events from the chart's interaction layer:
	overlay.PointerEnter()
	overlay.PointerDown(pos)
	overlay.PointerUp(pos) // a true click (no horizontal drag) toggles the pin
	overlay.PointerLeave()

	// Teardown:
	overlay.Destroy()

All operations run synchronously inside the host's event loop; the overlay
never spawns goroutines. Repeated cursor updates replace the pending render
rather than queueing work, so only the most recent cursor position is ever
rendered.

The backend/terminal package provides a Bubble Tea host binding, and
example/ wires the overlay to an ntcharts line chart.
*/
package tooltip
