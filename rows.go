package tooltip

import (
	"math"
	"sort"
)

// Row is one tooltip line. Rows are rebuilt on every cursor update and
// carry no identity across updates.
type Row struct {
	SeriesID string
	Name     string
	Value    Value   // resolved original value
	Display  string  // formatted display value
	Y        float64 // y-scale equivalent used for tracking, NaN when non-numeric
	Color    string
	Active   bool
	Norm     float64 // normalized share when the series carries one
	HasNorm  bool
}

// buildRows assembles the tooltip rows for one data index.
//
// The implicit first series (the shared x axis) and invisible series are
// skipped. Series that opt out of display (InTooltip false) or resolve to
// the gap marker under HideNoData emit no row but still contribute to the
// y bookkeeping the active-row selector runs over. The sum accumulates
// only numeric values of emitted rows, and availableLineCount is counted
// from InTooltip eligibility independent of the emission loop.
//
// An empty row slice means "cursor over no visible data"; the caller
// hides instead of rendering.
func (o *Overlay) buildRows(idx int) (rows []Row, sum float64, available int) {
	series := o.chart.Series()
	if len(series) == 0 {
		return nil, 0, 0
	}
	data := o.chart.Data()

	for _, s := range series[1:] {
		if s.InTooltip {
			available++
		}
	}

	cursorY := o.chart.ValueAtY(o.chart.Cursor().Pos.Y)

	// ys collects one entry per visible series; emitted maps each entry
	// back to its row index, -1 when the series emitted none.
	ys := make([]float64, 0, len(series)-1)
	emitted := make([]int, 0, len(series)-1)

	for si := 1; si < len(series); si++ {
		s := series[si]
		if !s.Visible || si >= len(data) {
			continue
		}

		src := data[si]
		if s.Display != nil {
			src = s.Display
		}
		v := resolveValue(src, idx, o.cfg.Snap, o.cfg.StripValue)

		y := math.NaN()
		if v.IsNum() {
			y = v.Num
		}
		ys = append(ys, y)

		if !s.InTooltip || (o.cfg.HideNoData && isStripped(v, o.cfg.StripValue)) {
			emitted = append(emitted, -1)
			continue
		}

		// Categorical labels are display values only; they never join
		// the numeric sum.
		if o.cfg.ShowTotal && v.IsNum() {
			sum += v.Num
		}

		row := Row{
			SeriesID: s.ID,
			Name:     s.Name,
			Value:    v,
			Display:  o.formatValue(s, v),
			Y:        y,
			Color:    s.Color,
		}
		if s.Norm != nil && idx >= 0 && idx < len(s.Norm) {
			row.Norm = s.Norm[idx]
			row.HasNorm = true
		}
		emitted = append(emitted, len(rows))
		rows = append(rows, row)
	}

	if o.cfg.Tracking != TrackNone {
		if hit := selectActive(ys, cursorY, o.cfg.Tracking); hit >= 0 && emitted[hit] >= 0 {
			rows[emitted[hit]].Active = true
		}
	}

	if o.cfg.Less != nil {
		less := o.cfg.Less
		sort.SliceStable(rows, func(i, j int) bool {
			return less(rows[i], rows[j])
		})
	}

	return rows, sum, available
}

// formatValue formats one resolved value for display, preferring the
// series' own formatter over the configured one.
func (o *Overlay) formatValue(s Series, v Value) string {
	if s.Format != nil {
		return s.Format(v)
	}
	switch v.Kind {
	case ValueNum:
		return o.cfg.FormatValue(v.Num, s.Precision)
	case ValueText:
		return v.Text
	default:
		return "--"
	}
}
