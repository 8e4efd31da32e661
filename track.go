package tooltip

import "math"

// TrackingPolicy governs which single row is visually emphasized.
type TrackingPolicy uint8

const (
	// TrackSticky picks the row whose y value is numerically closest to
	// the cursor's y value. Ties resolve to the lowest index.
	TrackSticky TrackingPolicy = iota

	// TrackArea interprets the row values as stacked band boundaries
	// and picks the first band containing the cursor's y value.
	TrackArea

	// TrackNone never selects a row.
	TrackNone
)

// selectActive picks the active row index for the given y equivalents and
// cursor y value, or -1 when no row qualifies. Entries that have no
// numeric y (categorical or gap values) are NaN and never selected.
// The selection is visual-only metadata; it never affects which rows are
// included.
func selectActive(ys []float64, cursorY float64, policy TrackingPolicy) int {
	switch policy {
	case TrackSticky:
		best := -1
		bestDist := math.Inf(1)
		for i, y := range ys {
			if math.IsNaN(y) {
				continue
			}
			// Strict < keeps the lowest index on ties.
			if d := math.Abs(y - cursorY); d < bestDist {
				bestDist = d
				best = i
			}
		}
		return best

	case TrackArea:
		// Band i spans ys[i]..ys[i+1]; ascending scan, first band
		// containing the cursor wins.
		for i := 0; i+1 < len(ys); i++ {
			lo, hi := ys[i], ys[i+1]
			if math.IsNaN(lo) || math.IsNaN(hi) {
				continue
			}
			if lo > hi {
				lo, hi = hi, lo
			}
			if cursorY >= lo && cursorY < hi {
				return i
			}
		}
		return -1

	default:
		return -1
	}
}
