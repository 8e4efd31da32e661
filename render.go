package tooltip

import (
	"fmt"
	"strings"
)

// RenderContext carries per-update context to the row renderer.
type RenderContext struct {
	Index     int     // data index under the cursor
	XLabel    string  // formatted x value, set when ShowIndex is on
	Sum       float64 // numeric sum over emitted rows
	ShowSum   bool
	MaxRows   int
	RenderAll bool
	Highlight bool
	Available int // series eligible for display, regardless of visibility
}

// RowRenderer is the strategy that turns resolved rows into overlay
// content. DefaultRenderer is the plain-text variant; backend packages
// may provide styled ones.
type RowRenderer interface {
	Render(rows []Row, rc RenderContext) string
}

// RowRendererFunc adapts a plain function to RowRenderer.
type RowRendererFunc func(rows []Row, rc RenderContext) string

// Render implements RowRenderer.
func (f RowRendererFunc) Render(rows []Row, rc RenderContext) string {
	return f(rows, rc)
}

// DefaultRenderer renders rows as plain text: one line per row with the
// series name, formatted value and optional normalized percentage, the
// active row marked with a leading '>'.
type DefaultRenderer struct{}

// Render implements RowRenderer.
func (DefaultRenderer) Render(rows []Row, rc RenderContext) string {
	limit := len(rows)
	if !rc.RenderAll && rc.MaxRows > 0 && limit > rc.MaxRows {
		limit = rc.MaxRows
	}

	var b strings.Builder
	if rc.XLabel != "" {
		b.WriteString(rc.XLabel)
		b.WriteByte('\n')
	}
	for _, r := range rows[:limit] {
		mark := "  "
		if r.Active && rc.Highlight {
			mark = "> "
		}
		b.WriteString(mark)
		b.WriteString(r.Name)
		b.WriteString("  ")
		b.WriteString(r.Display)
		if r.HasNorm {
			fmt.Fprintf(&b, " (%.0f%%)", r.Norm*100)
		}
		b.WriteByte('\n')
	}
	if hidden := len(rows) - limit; hidden > 0 {
		fmt.Fprintf(&b, "  +%d more\n", hidden)
	}
	if rc.ShowSum {
		fmt.Fprintf(&b, "  total  %.2f\n", rc.Sum)
	}
	return strings.TrimRight(b.String(), "\n")
}

// pendingRender is the deferred render holder: the latest row set plus
// its context, replaced (never queued) on every cursor update and
// consumed by flush.
type pendingRender struct {
	rows   []Row
	rc     RenderContext
	anchor Vec2
	flip   bool // anchor is right of the cursor's half: subtract width
	ok     bool
}

// stage replaces the pending render payload with the given rows.
func (o *Overlay) stage(rows []Row, rc RenderContext) {
	anchor, flip := o.anchor()
	o.pending = pendingRender{rows: rows, rc: rc, anchor: anchor, flip: flip, ok: true}
}

// anchor computes the overlay anchor from the raw cursor position plus
// the interaction layer's bounding offset, nudged horizontally away from
// the bound edge nearest the cursor so the overlay never clips there.
func (o *Overlay) anchor() (Vec2, bool) {
	p := o.chart.Cursor().Pos.Add(o.offset)
	b := o.boundsRect()
	if p.X < b.X+b.W/2 {
		p.X += o.cfg.AnchorGap
		return p, false
	}
	p.X -= o.cfg.AnchorGap
	return p, true
}

// flush renders the pending payload: content through the configured
// renderer, then placement, then the render notification. While pinned,
// cursor updates only stage; flush runs again when the pin toggles.
func (o *Overlay) flush() {
	if !o.pending.ok || o.destroyed {
		return
	}
	content := o.cfg.Renderer.Render(o.pending.rows, o.pending.rc)
	o.surface.SetContent(content)

	size := o.surface.Size()
	anchor := o.pending.anchor
	if o.pending.flip {
		anchor.X -= size.X
	}
	o.surface.MoveTo(o.cfg.Placer.Place(size, anchor, o.boundsRect()))

	o.lastRows = o.pending.rows
	o.notify(ActionRender)
}
