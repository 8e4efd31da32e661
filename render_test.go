package tooltip

import (
	"strings"
	"testing"
)

func TestDefaultRenderer_Basic(t *testing.T) {
	rows := []Row{
		{Name: "cpu", Display: "20", Active: true},
		{Name: "mem", Display: "15", Norm: 0.25, HasNorm: true},
	}
	rc := RenderContext{Sum: 35, ShowSum: true, MaxRows: 10, Highlight: true}

	got := DefaultRenderer{}.Render(rows, rc)

	want := "> cpu  20\n  mem  15 (25%)\n  total  35.00"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDefaultRenderer_Truncation(t *testing.T) {
	rows := []Row{
		{Name: "a", Display: "1"},
		{Name: "b", Display: "2"},
		{Name: "c", Display: "3"},
	}
	rc := RenderContext{MaxRows: 2}

	got := DefaultRenderer{}.Render(rows, rc)

	if !strings.Contains(got, "+1 more") {
		t.Errorf("expected truncation note, got %q", got)
	}
	if strings.Contains(got, "c") {
		t.Errorf("expected third row cut, got %q", got)
	}
}

func TestDefaultRenderer_RenderAll(t *testing.T) {
	rows := []Row{
		{Name: "a", Display: "1"},
		{Name: "b", Display: "2"},
		{Name: "c", Display: "3"},
	}
	rc := RenderContext{MaxRows: 2, RenderAll: true}

	got := DefaultRenderer{}.Render(rows, rc)

	if strings.Contains(got, "more") {
		t.Errorf("expected no truncation with RenderAll, got %q", got)
	}
	if !strings.Contains(got, "c") {
		t.Errorf("expected every row rendered, got %q", got)
	}
}

func TestDefaultRenderer_HighlightOff(t *testing.T) {
	rows := []Row{{Name: "cpu", Display: "20", Active: true}}
	rc := RenderContext{MaxRows: 10}

	if got := (DefaultRenderer{}).Render(rows, rc); strings.Contains(got, ">") {
		t.Errorf("expected no active marker with highlighting off, got %q", got)
	}
}

func TestDefaultRenderer_XLabelHeader(t *testing.T) {
	rows := []Row{{Name: "cpu", Display: "20"}}
	rc := RenderContext{XLabel: "12:05", MaxRows: 10}

	got := DefaultRenderer{}.Render(rows, rc)

	if !strings.HasPrefix(got, "12:05\n") {
		t.Errorf("expected x label header, got %q", got)
	}
}

func TestStageReplacesPending(t *testing.T) {
	chart := newTestChart()
	var renders int
	var last []Row
	o := New(chart, &fakeSurface{}, WithRenderer(RowRendererFunc(
		func(rows []Row, rc RenderContext) string {
			renders++
			last = rows
			return "content"
		})))
	o.Init()

	first := []Row{{Name: "first"}}
	second := []Row{{Name: "second"}}
	o.stage(first, RenderContext{})
	o.stage(second, RenderContext{})
	o.flush()

	if renders != 1 {
		t.Fatalf("expected a single render for two stages, got %d", renders)
	}
	if len(last) != 1 || last[0].Name != "second" {
		t.Errorf("expected the latest payload to win, got %v", last)
	}
}

func TestFlushWithoutPendingIsNoOp(t *testing.T) {
	chart := newTestChart()
	var renders int
	o := New(chart, &fakeSurface{}, WithRenderer(RowRendererFunc(
		func(rows []Row, rc RenderContext) string {
			renders++
			return "content"
		})))
	o.Init()

	o.flush()

	if renders != 0 {
		t.Errorf("expected no render without a staged payload, got %d", renders)
	}
}

func TestAnchorNudgesAwayFromNearestEdge(t *testing.T) {
	chart := newTestChart() // bounds 100 wide, gap 12

	o := New(chart, &fakeSurface{})
	o.Init()

	chart.cursor.Pos = Vec2{X: 10, Y: 18}
	p, flip := o.anchor()
	if flip || p.X != 22 {
		t.Errorf("left half: expected anchor x 22 without flip, got %v flip=%v", p.X, flip)
	}

	chart.cursor.Pos = Vec2{X: 80, Y: 18}
	p, flip = o.anchor()
	if !flip || p.X != 68 {
		t.Errorf("right half: expected anchor x 68 with flip, got %v flip=%v", p.X, flip)
	}
}

func TestFlushFlipSubtractsSurfaceWidth(t *testing.T) {
	chart := newTestChart()
	chart.cursor.Pos = Vec2{X: 80, Y: 18}
	surface := &fakeSurface{}
	o := New(chart, surface)
	o.Init()
	o.SetCursor()

	// The surface's measured width is subtracted so the box opens to the
	// left of the cursor.
	want := 68 - surface.Size().X
	if surface.pos.X != want {
		t.Errorf("expected surface at x %v, got %v", want, surface.pos.X)
	}
}

func TestFlushRespectsBoundsOverride(t *testing.T) {
	chart := newTestChart()
	chart.cursor.Pos = Vec2{X: 1, Y: 2}
	surface := &fakeSurface{}
	o := New(chart, surface, WithBounds(func() Rect {
		return Rect{X: 5, Y: 5, W: 40, H: 20}
	}))
	o.Init()
	o.SetCursor()

	if surface.pos.X < 5 || surface.pos.Y < 5 {
		t.Errorf("expected placement clamped into override bounds, got %+v", surface.pos)
	}
}
