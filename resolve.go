package tooltip

// SnapPolicy governs how a gap at the cursor index is resolved.
type SnapPolicy uint8

const (
	// SnapClosest searches outward from the cursor index in both
	// directions and returns the nearest non-gap value. Equidistant
	// neighbors resolve to the earlier (left) index.
	SnapClosest SnapPolicy = iota

	// SnapNone returns the gap marker as-is; the caller treats it as
	// "no data".
	SnapNone
)

// resolveValue returns the value to display for one series at idx.
//
// vals is the series' plotted array, or its declared display source when
// the two diverge. strip is the configured gap marker. A value that is
// not the gap marker is returned unchanged. Otherwise, under SnapClosest,
// the nearest non-gap neighbor wins; if the series has no non-gap value
// at all, the gap marker is returned. The input is never mutated.
func resolveValue(vals []Value, idx int, snap SnapPolicy, strip Value) Value {
	if idx < 0 || idx >= len(vals) {
		return Gap
	}
	if !isStripped(vals[idx], strip) {
		return vals[idx]
	}
	if snap == SnapNone {
		return vals[idx]
	}
	for d := 1; d < len(vals); d++ {
		if i := idx - d; i >= 0 && !isStripped(vals[i], strip) {
			return vals[i]
		}
		if i := idx + d; i < len(vals) && !isStripped(vals[i], strip) {
			return vals[i]
		}
	}
	return vals[idx]
}

// isStripped reports whether a sample counts as "no data": either a true
// gap or equal to the configured strip value.
func isStripped(v, strip Value) bool {
	return v.IsGap() || v.Equal(strip)
}
