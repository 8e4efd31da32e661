package tooltip

import "math"

// ValueKind tells which field of a Value is meaningful.
type ValueKind uint8

const (
	ValueGap  ValueKind = iota // no data at this sample
	ValueNum                   // numeric sample
	ValueText                  // categorical label
)

// Value is a single sample in a series. A sample is either numeric, a
// categorical text label, or a gap (missing or engine-interpolated data
// that should not be shown as genuine). The zero Value is a gap.
type Value struct {
	Kind ValueKind
	Num  float64
	Text string
}

// Gap is the canonical "no data" sample.
var Gap = Value{}

// Num returns a numeric Value.
func Num(v float64) Value {
	return Value{Kind: ValueNum, Num: v}
}

// Label returns a categorical text Value.
func Label(s string) Value {
	return Value{Kind: ValueText, Text: s}
}

// IsGap returns true if the sample carries no data.
func (v Value) IsGap() bool {
	return v.Kind == ValueGap
}

// IsNum returns true if the sample is numeric.
func (v Value) IsNum() bool {
	return v.Kind == ValueNum
}

// IsText returns true if the sample is a categorical label.
func (v Value) IsText() bool {
	return v.Kind == ValueText
}

// Equal reports whether two samples are the same. Numeric comparison is
// NaN-aware so NaN can serve as a strip value.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case ValueNum:
		if math.IsNaN(v.Num) && math.IsNaN(other.Num) {
			return true
		}
		return v.Num == other.Num
	case ValueText:
		return v.Text == other.Text
	default:
		return true
	}
}
