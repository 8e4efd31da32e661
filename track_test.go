package tooltip

import (
	"math"
	"testing"
)

func TestSelectActive_Sticky(t *testing.T) {
	ys := []float64{10, 20, 30}

	if got := selectActive(ys, 19, TrackSticky); got != 1 {
		t.Errorf("expected index 1 (20 closest to 19), got %d", got)
	}
}

func TestSelectActive_StickyTieLowestIndex(t *testing.T) {
	// Cursor at 20 is equidistant from 10 and 30.
	ys := []float64{10, 30}

	if got := selectActive(ys, 20, TrackSticky); got != 0 {
		t.Errorf("expected tie to resolve to index 0, got %d", got)
	}
}

func TestSelectActive_StickySkipsNaN(t *testing.T) {
	ys := []float64{math.NaN(), 20, 30}

	if got := selectActive(ys, 19, TrackSticky); got != 1 {
		t.Errorf("expected index 1, got %d", got)
	}
}

func TestSelectActive_Area(t *testing.T) {
	// Band boundaries [0, 10, 20]: 15 falls in [10, 20), owned by
	// index 1.
	ys := []float64{0, 10, 20}

	if got := selectActive(ys, 15, TrackArea); got != 1 {
		t.Errorf("expected band index 1, got %d", got)
	}
}

func TestSelectActive_AreaNoBand(t *testing.T) {
	ys := []float64{0, 10, 20}

	if got := selectActive(ys, 25, TrackArea); got != -1 {
		t.Errorf("expected no band for 25, got %d", got)
	}
}

func TestSelectActive_AreaDescendingBoundaries(t *testing.T) {
	// Boundaries are ordered per band, not globally.
	ys := []float64{20, 10}

	if got := selectActive(ys, 15, TrackArea); got != 0 {
		t.Errorf("expected band index 0, got %d", got)
	}
}

func TestSelectActive_None(t *testing.T) {
	ys := []float64{10, 20, 30}

	if got := selectActive(ys, 19, TrackNone); got != -1 {
		t.Errorf("expected no selection with tracking disabled, got %d", got)
	}
}

func TestSelectActive_Empty(t *testing.T) {
	if got := selectActive(nil, 10, TrackSticky); got != -1 {
		t.Errorf("expected -1 for empty input, got %d", got)
	}
}
