package tooltip

import (
	"strings"
	"testing"
)

func TestBuildRowsPrefersDisplaySource(t *testing.T) {
	chart := newTestChart()
	chart.series[1].Display = []Value{Label("10%"), Label("20%"), Label("30%"), Label("40%")}
	surface := &fakeSurface{}
	o := New(chart, surface)
	o.Init()
	o.SetCursor()

	if !strings.Contains(surface.content, "20%") {
		t.Errorf("expected display source value, got %q", surface.content)
	}
}

func TestBuildRowsSeriesFormatterWins(t *testing.T) {
	chart := newTestChart()
	chart.series[1].Format = func(v Value) string { return "custom" }
	surface := &fakeSurface{}
	o := New(chart, surface, WithFormatter(func(v float64, precision int) string {
		return "configured"
	}))
	o.Init()
	o.SetCursor()

	if !strings.Contains(surface.content, "custom") {
		t.Errorf("expected the series formatter to win, got %q", surface.content)
	}
	if !strings.Contains(surface.content, "configured") {
		t.Errorf("expected the configured formatter for the other series, got %q", surface.content)
	}
}

func TestBuildRowsPrecision(t *testing.T) {
	chart := newTestChart()
	chart.series[1].Precision = 2
	surface := &fakeSurface{}
	o := New(chart, surface)
	o.Init()
	o.SetCursor()

	if !strings.Contains(surface.content, "20.00") {
		t.Errorf("expected 2 fraction digits for cpu, got %q", surface.content)
	}
}

func TestBuildRowsHiddenSeriesStillTracked(t *testing.T) {
	// mem emits no row but its y value still participates in sticky
	// selection, so a cursor nearest to mem selects nothing.
	chart := newTestChart()
	chart.series[2].InTooltip = false
	chart.cursor.Pos.Y = 15 // identity scale: exactly mem's value
	surface := &fakeSurface{}
	o := New(chart, surface)
	o.Init()
	o.SetCursor()

	if strings.Contains(surface.content, "> cpu") {
		t.Errorf("expected no active row when the nearest series emits none, got %q", surface.content)
	}
}

func TestXLabelHeader(t *testing.T) {
	chart := newTestChart()
	chart.series[0].Format = func(v Value) string { return "t=" + v.Text }
	chart.data[0] = []Value{Label("00"), Label("05"), Label("10"), Label("15")}
	surface := &fakeSurface{}
	o := New(chart, surface, ShowIndex())
	o.Init()
	o.SetCursor()

	if !strings.HasPrefix(surface.content, "t=05") {
		t.Errorf("expected x label header for index 1, got %q", surface.content)
	}
}
