// Example demonstrates the tooltip overlay on an ntcharts line chart
// inside a Bubble Tea program.
//
// Run with:
//
//	go run ./example/
//
// Move the mouse over the plot to inspect values, click to pin the
// tooltip, click outside the chart to release it. 'q' quits. State
// transitions are logged to tooltip.log.
package main

import (
	"fmt"
	"math"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"

	"github.com/go-theft-auto/tooltip"
	"github.com/go-theft-auto/tooltip/backend/terminal"
)

const (
	chartWidth  = 72
	chartHeight = 20
	points      = 60
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	logFile, err := os.Create("tooltip.log")
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})

	m := newModel(logger)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// demoChart adapts an ntcharts line chart to the tooltip.Chart interface.
type demoChart struct {
	lc      linechart.Model
	series  []tooltip.Series
	data    [][]tooltip.Value
	cursor  tooltip.Cursor
	focused string
}

func newDemoChart() *demoChart {
	c := &demoChart{
		lc: linechart.New(chartWidth, chartHeight, 0, points-1, 0, 100,
			linechart.WithXYSteps(6, 4)),
		series: []tooltip.Series{
			{ID: "t", Name: "t", Format: func(v tooltip.Value) string {
				return fmt.Sprintf("t=%.0f", v.Num)
			}},
			{ID: "cpu", Name: "cpu", Color: "10", Visible: true, InTooltip: true, Precision: 1},
			{ID: "mem", Name: "mem", Color: "12", Visible: true, InTooltip: true, Precision: 1},
			{ID: "io", Name: "io", Color: "11", Visible: true, InTooltip: true, Precision: 1},
		},
	}
	c.data = make([][]tooltip.Value, 4)
	for i := range c.data {
		c.data[i] = make([]tooltip.Value, points)
	}
	for i := 0; i < points; i++ {
		x := float64(i)
		c.data[0][i] = tooltip.Num(x)
		c.data[1][i] = tooltip.Num(50 + 35*math.Sin(x/6))
		// mem has a hole in the middle so snapping is visible.
		if i >= 25 && i < 35 {
			c.data[2][i] = tooltip.Gap
		} else {
			c.data[2][i] = tooltip.Num(40 + 20*math.Cos(x/9))
		}
		c.data[3][i] = tooltip.Num(15 + 10*math.Sin(x/3)*math.Cos(x/13))
	}
	return c
}

func (c *demoChart) Series() []tooltip.Series { return c.series }
func (c *demoChart) Data() [][]tooltip.Value  { return c.data }

// Bounds returns the plot area in screen cells: the columns right of the
// y axis over the rows above the x axis.
func (c *demoChart) Bounds() tooltip.Rect {
	origin := c.lc.Origin()
	return tooltip.Rect{
		X: float64(origin.X + 1),
		Y: 0,
		W: float64(c.lc.GraphWidth()),
		H: float64(c.lc.GraphHeight()),
	}
}

func (c *demoChart) Cursor() tooltip.Cursor { return c.cursor }

// ValueAtY converts a layer-relative row to the chart's y scale.
func (c *demoChart) ValueAtY(y float64) float64 {
	h := float64(c.lc.GraphHeight() - 1)
	if h <= 0 {
		return c.lc.ViewMinY()
	}
	span := c.lc.ViewMaxY() - c.lc.ViewMinY()
	return c.lc.ViewMaxY() - y/h*span
}

// Markers returns one marker per visible series at the cursor index, in
// layer-relative cells.
func (c *demoChart) Markers() []tooltip.Marker {
	idx := c.cursor.Idx
	if idx < 0 || idx >= points {
		return nil
	}
	var ms []tooltip.Marker
	for si := 1; si < len(c.series); si++ {
		s := c.series[si]
		v := c.data[si][idx]
		if !s.Visible || !v.IsNum() {
			continue
		}
		ms = append(ms, tooltip.Marker{
			SeriesID: s.ID,
			Pos:      tooltip.Vec2{X: c.cursor.Pos.X, Y: c.rowForValue(v.Num)},
			Color:    s.Color,
		})
	}
	return ms
}

func (c *demoChart) rowForValue(v float64) float64 {
	span := c.lc.ViewMaxY() - c.lc.ViewMinY()
	if span == 0 {
		return 0
	}
	return (c.lc.ViewMaxY() - v) / span * float64(c.lc.GraphHeight()-1)
}

func (c *demoChart) Onscreen() bool { return true }

func (c *demoChart) FocusSeries(id string) { c.focused = id }

// setCursorCell maps a layer-relative cell to the nearest data index.
func (c *demoChart) setCursorCell(pos tooltip.Vec2) {
	w := float64(c.lc.GraphWidth() - 1)
	idx := -1
	if w > 0 {
		span := c.lc.ViewMaxX() - c.lc.ViewMinX()
		x := c.lc.ViewMinX() + pos.X/w*span
		idx = int(math.Round(x))
		if idx < 0 || idx >= points {
			idx = -1
		}
	}
	c.cursor = tooltip.Cursor{Pos: pos, Idx: idx}
}

// draw repaints the chart canvas from the data arrays.
func (c *demoChart) draw() {
	c.lc.Clear()
	c.lc.DrawXYAxisAndLabel()
	for si := 1; si < len(c.series); si++ {
		s := c.series[si]
		if !s.Visible {
			continue
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color))
		if c.focused == s.ID {
			style = style.Bold(true)
		}
		vals := c.data[si]
		for i := 0; i < points-1; i++ {
			if !vals[i].IsNum() || !vals[i+1].IsNum() {
				continue
			}
			c.lc.DrawBrailleLineWithStyle(
				canvas.Float64Point{X: float64(i), Y: vals[i].Num},
				canvas.Float64Point{X: float64(i + 1), Y: vals[i+1].Num},
				style,
			)
		}
	}
}

// model is the Bubble Tea program state.
type model struct {
	chart   *demoChart
	surface *terminal.Surface
	clicks  *terminal.Clicks
	overlay *tooltip.Overlay
	adapter *terminal.MouseAdapter
	logger  *log.Logger
}

func newModel(logger *log.Logger) *model {
	chart := newDemoChart()
	surface := terminal.NewSurface()
	clicks := terminal.NewClicks()

	m := &model{
		chart:   chart,
		surface: surface,
		clicks:  clicks,
		logger:  logger,
	}

	m.overlay = tooltip.New(chart, surface,
		tooltip.WithRenderer(terminal.NewStyledRenderer()),
		tooltip.ShowIndex(),
		tooltip.WithClickSource(clicks),
		tooltip.WithNotify(func(n tooltip.Notification) {
			logger.Debug("overlay",
				"action", n.Action.String(),
				"pinned", n.State.Pinned,
				"visible", n.State.Visible)
		}),
	)
	m.overlay.Init()
	if err := m.overlay.SetData(); err != nil {
		logger.Error("set data", "err", err)
	}

	m.adapter = terminal.NewMouseAdapter(m.overlay, clicks,
		chart.Bounds, m.classify)
	return m
}

// classify maps a screen cell to a click region for pin handling: tooltip
// rows first, then the tooltip box, then the chart layer.
func (m *model) classify(x, y int) tooltip.Click {
	pos := tooltip.Vec2{X: float64(x), Y: float64(y)}
	click := tooltip.Click{Pos: pos, Region: tooltip.RegionOutside, Row: -1}

	if m.surface.Visible() {
		at := m.surface.Pos()
		size := m.surface.Size()
		box := tooltip.Rect{X: at.X, Y: at.Y, W: size.X, H: size.Y}
		if box.Contains(pos) {
			click.Region = tooltip.RegionOverlay
			// Rows sit below the top border and the header line.
			if row := y - int(at.Y) - 2; row >= 0 {
				click.Region = tooltip.RegionOverlayRow
				click.Row = row
			}
			return click
		}
	}
	if m.chart.Bounds().Contains(pos) {
		click.Region = tooltip.RegionChart
	}
	return click
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.overlay.Destroy()
			return m, tea.Quit
		}

	case tea.MouseMsg:
		m.adapter.Handle(msg)
		if msg.Action == tea.MouseActionMotion && m.adapter.Inside() {
			rect := m.chart.Bounds()
			m.chart.setCursorCell(tooltip.Vec2{
				X: float64(msg.X) - rect.X,
				Y: float64(msg.Y) - rect.Y,
			})
			m.overlay.SetCursor()
		}
	}
	return m, nil
}

func (m *model) View() string {
	m.chart.draw()
	base := m.chart.lc.View()
	base += "\nmove: inspect  click: pin  q: quit"
	return m.surface.Compose(base)
}
