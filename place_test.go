package tooltip

import "testing"

func TestClampPlacer(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, W: 100, H: 50}
	size := Vec2{X: 20, Y: 10}

	cases := []struct {
		name   string
		anchor Vec2
		want   Vec2
	}{
		{"fits", Vec2{X: 30, Y: 20}, Vec2{X: 30, Y: 20}},
		{"right overflow", Vec2{X: 95, Y: 20}, Vec2{X: 80, Y: 20}},
		{"bottom overflow", Vec2{X: 30, Y: 48}, Vec2{X: 30, Y: 40}},
		{"negative anchor", Vec2{X: -5, Y: -5}, Vec2{X: 0, Y: 0}},
	}

	for _, tc := range cases {
		if got := (ClampPlacer{}).Place(size, tc.anchor, bounds); got != tc.want {
			t.Errorf("%s: expected %+v, got %+v", tc.name, tc.want, got)
		}
	}
}

func TestClampPlacerOffsetBounds(t *testing.T) {
	bounds := Rect{X: 10, Y: 5, W: 50, H: 30}
	size := Vec2{X: 20, Y: 10}

	got := ClampPlacer{}.Place(size, Vec2{X: 0, Y: 0}, bounds)
	if got.X != 10 || got.Y != 5 {
		t.Errorf("expected clamp to bounds origin, got %+v", got)
	}
}
